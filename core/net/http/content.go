package http

// Common Content-Types
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
)

// Supported dispatch methods
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

// Header names managed by the dispatcher
const (
	HeaderContentType = "Content-Type"
	HeaderUserAgent   = "User-Agent"
)

// DefaultUserAgent identifies the client on every outbound request
const DefaultUserAgent = "kochabx-restkit/1.0"

// validMethod reports whether method is one of the four dispatch verbs
func validMethod(method string) bool {
	switch method {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	}
	return false
}
