package geo

import "github.com/snapspot-api/internal/persistence"

// Kind enumerates the request domain's error variants.
type Kind uint8

const (
	KindInternalFailure Kind = iota
	KindValidationFailed
	KindNotFound
)

// Kinds lists all declared variants for the boundary totality check.
var Kinds = []Kind{
	KindInternalFailure,
	KindValidationFailed,
	KindNotFound,
}

func (k Kind) String() string {
	switch k {
	case KindValidationFailed:
		return "validation failed"
	case KindNotFound:
		return "not found"
	default:
		return "internal failure"
	}
}

// Error is a request-domain failure: variant tag plus message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Internal(msg string) *Error         { return &Error{Kind: KindInternalFailure, Message: msg} }
func ValidationFailed(msg string) *Error { return &Error{Kind: KindValidationFailed, Message: msg} }
func NotFound(msg string) *Error         { return &Error{Kind: KindNotFound, Message: msg} }

// The storage conversion deliberately binds no not-found constructor: a
// no-rows outcome that reaches it is a bug, not a missing request, and
// surfaces as an internal failure. Lookups that can legitimately miss
// construct NotFound explicitly after checking persistence.IsNoRows.
type catalog struct{}

func (catalog) Internal(msg string) *Error { return Internal(msg) }

var conv = persistence.NewConverter[*Error](catalog{})

// FromStorage converts a storage error into a request-domain error.
func FromStorage(err error) *Error { return conv.Convert(err) }
