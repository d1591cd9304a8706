package trip

import "net/http"

// Kind classifies a pipeline failure for the API boundary.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindUpstream
	KindInternal
)

// Error is the closed set of failures the pipelines return. Status carries
// the provider's HTTP status for upstream failures; zero otherwise.
type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

// E constructs an Error of the given kind.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// UpstreamError constructs an upstream failure carrying the provider's status.
func UpstreamError(status int, message string) *Error {
	return &Error{Kind: KindUpstream, Message: message, Status: status}
}

// HTTPStatus maps the error kind to the response status code. Upstream
// failures surface the provider's status when one was recorded.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		if e.Status > 0 {
			return e.Status
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
