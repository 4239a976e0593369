package boundary

import "net/http"

// StatusClass is the closed set of transport-agnostic response classes.
// Exactly these six exist; adding one means revisiting every mapping table
// in this package.
type StatusClass uint8

const (
	InternalError StatusClass = iota
	BadRequest
	Unauthorized
	NotFound
	Conflict
	Gone
)

// HTTPStatus maps a status class to its HTTP status code. Pure and total.
func (c StatusClass) HTTPStatus() int {
	switch c {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Gone:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

func (c StatusClass) String() string {
	switch c {
	case BadRequest:
		return "bad request"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	case Gone:
		return "gone"
	default:
		return "internal error"
	}
}

// Error is what the transport layer renders: a status class plus the exact
// message to show the client. Domain messages pass through verbatim.
type Error struct {
	Class   StatusClass
	Message string
}

func (e *Error) Error() string { return e.Message }
