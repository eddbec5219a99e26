package values

// Headers attached to every outgoing request.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderRequestSource = "X-Request-Source"
	HeaderDeviceID      = "X-Device-ID"
)

// RequestSource identifies this SDK to the backend's tracing middleware.
const RequestSource = "reportr-go"

// Themes the preferences store accepts.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
