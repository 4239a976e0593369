package persistence

import "errors"

const dbErrPrefix = "Database error: "

// Catalog is the single constructor every domain error catalog must provide:
// its generic internal-failure variant. E is the catalog's error type.
type Catalog[E error] interface {
	Internal(msg string) E
}

// NotFoundCatalog is implemented in addition by catalogs that designate a
// not-found variant. Catalogs without one fall back to the internal-failure
// variant for no-rows outcomes.
type NotFoundCatalog[E error] interface {
	Catalog[E]
	NotFound(msg string) E
}

// Converter carries the two conversions generated for one domain catalog.
// Both are pure, total and safe for concurrent use.
type Converter[E error] struct {
	internal func(string) E
	notFound func(string) E // nil when the catalog has no not-found variant
}

// NewConverter builds the converter for cat, detecting the optional
// not-found constructor once.
func NewConverter[E error](cat Catalog[E]) Converter[E] {
	c := Converter[E]{internal: cat.Internal}
	if nf, ok := cat.(NotFoundCatalog[E]); ok {
		c.notFound = nf.NotFound
	}
	return c
}

// FromStorageError converts a raw, unclassified storage error into the
// catalog's internal-failure variant.
func (c Converter[E]) FromStorageError(err error) E {
	return c.internal(dbErrPrefix + err.Error())
}

// FromOutcome converts a classified outcome into a catalog error. No-rows
// outcomes become the not-found variant with the operation context as the
// message; every other kind becomes the internal-failure variant. Unique
// violations are deliberately not promoted to a conflict-class error.
func (c Converter[E]) FromOutcome(o *Outcome) E {
	if o.Kind == KindNoRows && c.notFound != nil {
		return c.notFound(o.Detail)
	}
	return c.internal(dbErrPrefix + o.Detail)
}

// Convert is the single entry point for a storage error crossing into a
// domain: classified outcomes go through FromOutcome, anything else through
// FromStorageError.
func (c Converter[E]) Convert(err error) E {
	var o *Outcome
	if errors.As(err, &o) {
		return c.FromOutcome(o)
	}
	return c.FromStorageError(err)
}
