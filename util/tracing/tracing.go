package tracing

import (
	"net/http"

	"github.com/lucsky/cuid"

	"github.com/reportrhq/reportr-go/util/values"
)

// Context identifies a single client request end to end. The backend
// echoes the request ID in its logs, so one ID per logical user action.
type Context struct {
	RequestID     string
	RequestSource string
}

// New creates a tracing context with a fresh request ID.
func New() Context {
	return Context{
		RequestID:     cuid.New(),
		RequestSource: values.RequestSource,
	}
}

// Apply sets the tracing headers on an outgoing request.
func (tc Context) Apply(req *http.Request) {
	req.Header.Set(values.HeaderRequestID, tc.RequestID)
	req.Header.Set(values.HeaderRequestSource, tc.RequestSource)
}
