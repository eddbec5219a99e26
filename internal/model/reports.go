package model

// ReportListItem is one row of a paginated report search.
type ReportListItem struct {
	ReportID     int    `json:"reportID"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CategoryName string `json:"categoryName,omitempty"`
	Street       string `json:"street,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Username     string `json:"username,omitempty"`
	ImageCount   int    `json:"imageCount"`
	Upvotes      int    `json:"upvotes"`
	Downvotes    int    `json:"downvotes"`
	CreatedAt    string `json:"createdAt"`
}

// ReportPage is a page of search results.
type ReportPage struct {
	Reports      []ReportListItem `json:"reports"`
	TotalPages   int              `json:"totalPages"`
	CurrentPage  int              `json:"currentPage"`
	TotalReports int              `json:"totalReports"`
}

// ReportDetail carries everything the detail view renders.
type ReportDetail struct {
	ReportID     int      `json:"reportID"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	CategoryID   int      `json:"categoryID"`
	LocationID   int      `json:"locationID"`
	UserID       int      `json:"userID"`
	CategoryName string   `json:"categoryName,omitempty"`
	Street       string   `json:"street,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Country      string   `json:"country,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Username     string   `json:"username,omitempty"`
	Status       string   `json:"status,omitempty"`
	Upvotes      int      `json:"upvotes"`
	Downvotes    int      `json:"downvotes"`
	Images       []Image  `json:"images,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
}

// Tally extracts the vote counts from a detail view.
func (r ReportDetail) Tally() Tally {
	return Tally{Upvotes: r.Upvotes, Downvotes: r.Downvotes}
}

// CreateReportRequest is the payload for submitting a new report.
type CreateReportRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	CategoryID  int    `json:"categoryID" validate:"required"`
	LocationID  int    `json:"locationID" validate:"required"`
}

// UpdateReportRequest carries the fields being changed; nil fields are
// left untouched server-side.
type UpdateReportRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	CategoryID  *int    `json:"categoryID,omitempty"`
	LocationID  *int    `json:"locationID,omitempty"`
}
