package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/reportrhq/reportr-go/config"
	"github.com/reportrhq/reportr-go/internal/analytics"
	"github.com/reportrhq/reportr-go/internal/http/rest"
	"github.com/reportrhq/reportr-go/internal/model"
	"github.com/reportrhq/reportr-go/internal/prefs"
	"github.com/reportrhq/reportr-go/internal/realtime"
	"github.com/reportrhq/reportr-go/internal/session"
	"github.com/reportrhq/reportr-go/internal/vote"
	"github.com/reportrhq/reportr-go/util/storage"
)

// app holds everything a command needs, built once before any command runs.
type app struct {
	cfg     *config.Config
	session *session.Store
	prefs   *prefs.Store
	client  *rest.Client
}

// notifier surfaces vote outcomes on stdout and signals settlement so
// commands can wait for the reconciler.
type notifier struct {
	settled chan error
}

func (n *notifier) Success(msg string) {
	fmt.Println(msg)
	n.settled <- nil
}

func (n *notifier) Error(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	n.settled <- fmt.Errorf("%s", msg)
}

// navigator is the CLI's stand-in for a sign-in redirect.
type navigator struct{}

func (navigator) RedirectToSignIn() {
	fmt.Fprintln(os.Stderr, "You are not signed in. Run `reportr login` first.")
}

func newApp() (*app, error) {
	cfg := config.New()

	sess, err := session.Open(cfg.SessionPath)
	if err != nil {
		return nil, err
	}
	prf, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		session: sess,
		prefs:   prf,
		client:  rest.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, sess),
	}, nil
}

func main() {
	a, err := newApp()
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	root := &cobra.Command{
		Use:           "reportr",
		Short:         "Client for the Reportr civic issue tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		searchCmd(a),
		showCmd(a),
		submitCmd(a),
		voteCmd(a),
		watchCmd(a),
		analyticsCmd(a),
		queryCmd(a),
		themeCmd(a),
	)

	if err := root.Execute(); err != nil {
		log.Fatalln(err)
	}
}

func loginCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
			defer cancel()

			resp, err := a.client.Login(ctx, username, password)
			if err != nil {
				return err
			}
			if err := a.session.SetFromLogin(resp); err != nil {
				return err
			}
			fmt.Printf("Signed in as %s (%s)\n", resp.User.Username, resp.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.Clear()
		},
	}
}

func searchCmd(a *app) *cobra.Command {
	var params rest.SearchReportsParams

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if params.Limit == 0 {
				params.Limit = a.prefs.PageSize()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
			defer cancel()

			page, err := a.client.SearchReports(ctx, params)
			if err != nil {
				return err
			}

			for _, r := range page.Reports {
				fmt.Printf("#%-5d %-40s %-16s ▲%-4d ▼%-4d %s\n",
					r.ReportID, truncate(r.Title, 40), truncate(r.CategoryName, 16),
					r.Upvotes, r.Downvotes, r.CreatedAt)
			}
			fmt.Printf("page %d of %d (%d reports)\n", page.CurrentPage, page.TotalPages, page.TotalReports)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Query, "query", "", "search term")
	cmd.Flags().StringVar(&params.Category, "category", "", "category name")
	cmd.Flags().StringVar(&params.Location, "location", "", "street, city or state")
	cmd.Flags().StringVar(&params.DateFrom, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&params.DateTo, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&params.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size")
	cmd.Flags().StringVar(&params.SortBy, "sort", "createdAt_desc", "sort order")
	return cmd
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <reportID>",
		Short: "Show one report in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportID, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
			defer cancel()

			detail, err := a.client.GetReportDetails(ctx, reportID)
			if err != nil {
				return err
			}

			fmt.Printf("#%d %s\n", detail.ReportID, detail.Title)
			fmt.Printf("category: %s  status: %s  by: %s\n", detail.CategoryName, detail.Status, detail.Username)
			if detail.Street != "" {
				fmt.Printf("where: %s, %s, %s\n", detail.Street, detail.City, detail.State)
			}
			fmt.Printf("▲ %d  ▼ %d\n\n%s\n", detail.Upvotes, detail.Downvotes, detail.Description)
			for _, img := range detail.Images {
				fmt.Printf("image: %s\n", img.ImageURL)
			}
			return nil
		},
	}
}

func submitCmd(a *app) *cobra.Command {
	var req model.CreateReportRequest
	var imagePath string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new report, optionally with an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*a.cfg.RequestTimeout)
			defer cancel()

			reportID, err := a.client.CreateReport(ctx, req)
			if err != nil {
				return err
			}
			fmt.Printf("Report #%d created\n", reportID)

			if imagePath == "" {
				return nil
			}

			cld, err := storage.NewCloudinary(a.cfg)
			if err != nil {
				return err
			}
			imageURL, err := cld.UploadImage(ctx, imagePath)
			if err != nil {
				return err
			}
			if _, err := a.client.AttachImage(ctx, reportID, imageURL); err != nil {
				return err
			}
			fmt.Printf("Image attached: %s\n", imageURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "report title")
	cmd.Flags().StringVar(&req.Description, "description", "", "what happened")
	cmd.Flags().IntVar(&req.CategoryID, "category", 0, "category ID")
	cmd.Flags().IntVar(&req.LocationID, "location", 0, "location ID")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to an image file")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("description")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("location")
	return cmd
}

func voteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <reportID> <up|down>",
		Short: "Vote on a report (re-voting the same way withdraws it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportID, err := parseID(args[0])
			if err != nil {
				return err
			}
			voteType, err := model.ParseVoteType(args[1])
			if err != nil {
				return err
			}

			n := &notifier{settled: make(chan error, 1)}
			rec := vote.New(a.client, a.session, n, navigator{})
			defer rec.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
			defer cancel()

			state, tally, err := a.client.GetVote(ctx, reportID)
			if err != nil {
				return err
			}
			rec.Track(reportID, state, tally)

			if err := rec.Vote(reportID, voteType); err != nil {
				return err
			}

			select {
			case err := <-n.settled:
				if err != nil {
					return err
				}
			case <-time.After(2 * a.cfg.RequestTimeout):
				return fmt.Errorf("vote did not settle in time")
			}

			_, tally, _ = rec.Snapshot(reportID)
			fmt.Printf("▲ %d  ▼ %d\n", tally.Upvotes, tally.Downvotes)
			return nil
		},
	}
}

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <reportID>...",
		Short: "Stream live tally updates for the given reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := vote.New(a.client, a.session, nil, navigator{})
			defer rec.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
			for _, arg := range args {
				reportID, err := parseID(arg)
				if err != nil {
					cancel()
					return err
				}
				state, tally, err := a.client.GetVote(ctx, reportID)
				if err != nil {
					cancel()
					return err
				}
				rec.Track(reportID, state, tally)
				fmt.Printf("#%d ▲ %d  ▼ %d\n", reportID, tally.Upvotes, tally.Downvotes)
			}
			cancel()

			feed, err := realtime.Dial(cmd.Context(), a.cfg.WSBaseURL, a.session.DeviceID())
			if err != nil {
				return err
			}
			defer feed.Close()

			go func() {
				if err := feed.Listen(); err != nil {
					log.Printf("feed closed: %v", err)
				}
			}()

			stopChan := make(chan os.Signal, 1)
			signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

			for {
				select {
				case ev, ok := <-feed.Events():
					if !ok {
						return nil
					}
					if _, _, tracked := rec.Snapshot(ev.ReportID); !tracked {
						continue
					}
					rec.SetSettled(ev.ReportID, ev.Tally)
					fmt.Printf("#%d ▲ %d  ▼ %d\n", ev.ReportID, ev.Tally.Upvotes, ev.Tally.Downvotes)
				case <-stopChan:
					return nil
				}
			}
		},
	}
}

func analyticsCmd(a *app) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show the category dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
			defer cancel()

			analysis, err := a.client.GetCategoryAnalysis(ctx, rest.CategoryAnalysisParams{Period: period})
			if err != nil {
				return err
			}

			fmt.Println("Top categories:")
			for _, nv := range analytics.TopCategories(analysis.MostReportedCategories, 5) {
				fmt.Printf("  %-24s %d\n", nv.Name, nv.Value)
			}

			chart := analytics.PivotCategoryTrend(analysis.CategoryTrends)
			fmt.Printf("\nTrend (%s):\n", analysis.Period)
			for name, series := range chart.Series {
				fmt.Printf("  %-24s %v\n", name, series)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "monthly", "daily, weekly, monthly, quarterly or yearly")
	return cmd
}

func queryCmd(a *app) *cobra.Command {
	var ask bool

	cmd := &cobra.Command{
		Use:   "query <sql|question>",
		Short: "Run an ad-hoc admin query, or draft one from plain language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
			defer cancel()

			if ask {
				sql, err := a.client.GenerateSQL(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Println(sql)
				return nil
			}

			res, err := a.client.ExecuteQuery(ctx, args[0])
			if err != nil {
				return err
			}
			for _, col := range res.Columns {
				fmt.Printf("%-20s", truncate(col, 19))
			}
			fmt.Println()
			for _, row := range res.Rows {
				for _, cell := range row {
					fmt.Printf("%-20v", cell)
				}
				fmt.Println()
			}
			fmt.Println(res.Message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&ask, "ask", false, "treat the argument as plain language and print suggested SQL")
	return cmd
}

func themeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Toggle between light and dark theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := a.prefs.ToggleTheme()
			if err != nil {
				return err
			}
			fmt.Printf("theme: %s\n", theme)
			return nil
		},
	}
}

func parseID(s string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid report ID %q", s)
	}
	return id, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
