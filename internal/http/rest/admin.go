package rest

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

type executeQueryRequest struct {
	Query string `json:"query"`
}

type executeQueryResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Results []map[string]interface{} `json:"results"`
	Columns []string                 `json:"columns"`
	Error   string                   `json:"error,omitempty"`
}

type generateSQLRequest struct {
	NaturalLanguageQuery string `json:"natural_language_query"`
}

type generateSQLResponse struct {
	Success      bool   `json:"success"`
	SuggestedSQL string `json:"suggested_sql"`
	Message      string `json:"message"`
	Error        string `json:"error,omitempty"`
}

// QueryResult is an admin query result normalized for table rendering:
// a fixed column order with every row densified against it. Cells the
// server left out of a row come back as nil.
type QueryResult struct {
	Columns []string
	Rows    [][]interface{}
	Message string
}

// ExecuteQuery runs an ad-hoc admin query and normalizes the loosely
// shaped response into a renderable table. Admin role required
// server-side.
func (c *Client) ExecuteQuery(ctx context.Context, query string) (QueryResult, error) {
	var resp executeQueryResponse
	err := c.do(ctx, http.MethodPost, "/api/admin/execute-query", nil, executeQueryRequest{Query: query}, &resp)
	if err != nil {
		return QueryResult{}, err
	}
	if !resp.Success {
		return QueryResult{}, errors.Errorf("query failed: %s", firstNonEmpty(resp.Error, resp.Message))
	}

	result := QueryResult{Columns: resp.Columns, Message: resp.Message}

	// Rows arrive as arbitrary maps; columns may even be absent for
	// statements without a result set. Derive a stable order and fill
	// the gaps so the renderer never touches raw maps.
	if len(result.Columns) == 0 && len(resp.Results) > 0 {
		seen := make(map[string]bool)
		for _, row := range resp.Results {
			for key := range row {
				if !seen[key] {
					seen[key] = true
					result.Columns = append(result.Columns, key)
				}
			}
		}
	}

	for _, row := range resp.Results {
		cells := make([]interface{}, len(result.Columns))
		for i, col := range result.Columns {
			cells[i] = row[col]
		}
		result.Rows = append(result.Rows, cells)
	}
	return result, nil
}

// GenerateSQL asks the backend to draft SQL from a natural-language
// question. The draft still goes through ExecuteQuery by hand; nothing
// runs automatically.
func (c *Client) GenerateSQL(ctx context.Context, question string) (string, error) {
	var resp generateSQLResponse
	err := c.do(ctx, http.MethodPost, "/api/admin/generate-sql-from-natural-language", nil,
		generateSQLRequest{NaturalLanguageQuery: question}, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", errors.Errorf("sql generation failed: %s", firstNonEmpty(resp.Error, resp.Message))
	}
	return resp.SuggestedSQL, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return "no detail"
}
