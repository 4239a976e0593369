package identity

import "github.com/snapspot-api/internal/persistence"

// Kind enumerates every error variant the identity domain can produce.
// The set is closed: services construct these and nothing else, and the
// boundary mapper must cover each one.
type Kind uint8

const (
	KindInternalFailure Kind = iota
	KindUnauthorized
	KindValidationFailed
	KindInvalidToken
	KindTokenExpired
	KindTokenAlreadyUsed
	KindNotFound
)

// Kinds lists all declared variants, in declaration order. The boundary
// startup check iterates it to prove its mapping table is total.
var Kinds = []Kind{
	KindInternalFailure,
	KindUnauthorized,
	KindValidationFailed,
	KindInvalidToken,
	KindTokenExpired,
	KindTokenAlreadyUsed,
	KindNotFound,
}

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindValidationFailed:
		return "validation failed"
	case KindInvalidToken:
		return "invalid token"
	case KindTokenExpired:
		return "token expired"
	case KindTokenAlreadyUsed:
		return "token already used"
	case KindNotFound:
		return "not found"
	default:
		return "internal failure"
	}
}

// Error is an identity-domain failure: a variant tag plus a human-readable
// message. It carries no structured internal state.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Internal(msg string) *Error         { return &Error{Kind: KindInternalFailure, Message: msg} }
func Unauthorized(msg string) *Error     { return &Error{Kind: KindUnauthorized, Message: msg} }
func ValidationFailed(msg string) *Error { return &Error{Kind: KindValidationFailed, Message: msg} }
func InvalidToken(msg string) *Error     { return &Error{Kind: KindInvalidToken, Message: msg} }
func TokenExpired(msg string) *Error     { return &Error{Kind: KindTokenExpired, Message: msg} }
func TokenAlreadyUsed(msg string) *Error { return &Error{Kind: KindTokenAlreadyUsed, Message: msg} }
func NotFound(msg string) *Error         { return &Error{Kind: KindNotFound, Message: msg} }

// catalog adapts the constructors above to the persistence converter. The
// identity catalog designates NotFound for no-rows outcomes.
type catalog struct{}

func (catalog) Internal(msg string) *Error { return Internal(msg) }
func (catalog) NotFound(msg string) *Error { return NotFound(msg) }

var conv = persistence.NewConverter[*Error](catalog{})

// FromStorage converts any error returned by an identity store into a
// catalog error. It is the only way a storage failure enters this domain.
func FromStorage(err error) *Error { return conv.Convert(err) }
