package persistence

import "errors"

// Kind identifies the classified result of a failed storage operation.
type Kind uint8

const (
	// KindStorageFailure covers every backend failure that isn't one of the
	// two recognized conditions below.
	KindStorageFailure Kind = iota
	// KindNoRows means the backend returned zero rows for an operation that
	// expected exactly one.
	KindNoRows
	// KindUniqueViolation means the backend rejected a write because of a
	// unique or primary-key constraint.
	KindUniqueViolation
)

func (k Kind) String() string {
	switch k {
	case KindNoRows:
		return "no rows"
	case KindUniqueViolation:
		return "unique constraint violation"
	default:
		return "storage failure"
	}
}

// Outcome is the classified form of a storage error. It is produced at the
// point the operation fails and carried upward until a domain catalog
// converts it; nothing outside the domain layer should read Detail.
//
// Detail holds the operation context for no-rows outcomes and the backend's
// own description for everything else.
type Outcome struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (o *Outcome) Error() string {
	if o.Detail == "" {
		return o.Kind.String()
	}
	return o.Kind.String() + ": " + o.Detail
}

func (o *Outcome) Unwrap() error { return o.Cause }

// DriverError is the minimal surface a storage driver error must expose for
// classification. Drivers that can't report these conditions natively wrap
// their errors in an adapter (see the dynamo package).
type DriverError interface {
	error
	NoRows() bool
	UniqueViolation() bool
}

// Classify turns a raw storage error into an Outcome. context labels the
// operation that failed ("user lookup") and becomes the payload of no-rows
// outcomes; other outcomes carry the driver's description.
//
// Classify is pure and total: any non-nil error yields exactly one Outcome,
// the same one every time.
func Classify(err error, context string) *Outcome {
	var de DriverError
	if errors.As(err, &de) {
		switch {
		case de.NoRows():
			return &Outcome{Kind: KindNoRows, Detail: context, Cause: err}
		case de.UniqueViolation():
			return &Outcome{Kind: KindUniqueViolation, Detail: de.Error(), Cause: err}
		}
	}
	return &Outcome{Kind: KindStorageFailure, Detail: err.Error(), Cause: err}
}

// IsNoRows reports whether err carries a no-rows outcome. Services use it to
// give absence a business meaning (invalid token, unknown login) before the
// generic conversion applies.
func IsNoRows(err error) bool {
	var o *Outcome
	return errors.As(err, &o) && o.Kind == KindNoRows
}
