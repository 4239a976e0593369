package boundary

import (
	"errors"
	"fmt"

	"github.com/snapspot-api/internal/domain/geo"
	"github.com/snapspot-api/internal/domain/identity"
	"github.com/snapspot-api/internal/domain/media"
)

// internalMessage is the only text an unrecognized error may surface.
const internalMessage = "Internal server error occurred"

// Hand-maintained mapping tables, one per domain catalog. Verify proves at
// startup that every declared variant has an entry; keep them in sync with
// the Kinds slices.

var identityClasses = map[identity.Kind]StatusClass{
	identity.KindInternalFailure:  InternalError,
	identity.KindUnauthorized:     Unauthorized,
	identity.KindValidationFailed: BadRequest,
	identity.KindInvalidToken:     BadRequest,
	identity.KindTokenExpired:     Gone,
	identity.KindTokenAlreadyUsed: Conflict,
	identity.KindNotFound:         NotFound,
}

var geoClasses = map[geo.Kind]StatusClass{
	geo.KindInternalFailure:  InternalError,
	geo.KindValidationFailed: BadRequest,
	geo.KindNotFound:         NotFound,
}

var mediaClasses = map[media.Kind]StatusClass{
	media.KindInternalFailure:  InternalError,
	media.KindValidationFailed: BadRequest,
	media.KindNotFound:         NotFound,
}

// FromIdentity maps an identity-domain error to its boundary form.
func FromIdentity(e *identity.Error) *Error {
	return &Error{Class: identityClasses[e.Kind], Message: e.Message}
}

// FromGeo maps a request-domain error to its boundary form.
func FromGeo(e *geo.Error) *Error {
	return &Error{Class: geoClasses[e.Kind], Message: e.Message}
}

// FromMedia maps a picture-domain error to its boundary form.
func FromMedia(e *media.Error) *Error {
	return &Error{Class: mediaClasses[e.Kind], Message: e.Message}
}

// FromError resolves any error into a boundary error. Catalog errors map
// through their tables, boundary errors pass through unchanged, and
// anything else collapses to a generic internal error so no stray failure
// ever leaks its text to a client.
func FromError(err error) *Error {
	var be *Error
	if errors.As(err, &be) {
		return be
	}
	var ie *identity.Error
	if errors.As(err, &ie) {
		return FromIdentity(ie)
	}
	var ge *geo.Error
	if errors.As(err, &ge) {
		return FromGeo(ge)
	}
	var me *media.Error
	if errors.As(err, &me) {
		return FromMedia(me)
	}
	return &Error{Class: InternalError, Message: internalMessage}
}

// Verify asserts that every declared variant of every catalog has a mapping
// entry. main treats a failure as a startup defect; tests assert it too.
func Verify() error {
	for _, k := range identity.Kinds {
		if _, ok := identityClasses[k]; !ok {
			return fmt.Errorf("identity catalog: variant %q has no boundary mapping", k)
		}
	}
	for _, k := range geo.Kinds {
		if _, ok := geoClasses[k]; !ok {
			return fmt.Errorf("geo catalog: variant %q has no boundary mapping", k)
		}
	}
	for _, k := range media.Kinds {
		if _, ok := mediaClasses[k]; !ok {
			return fmt.Errorf("media catalog: variant %q has no boundary mapping", k)
		}
	}
	return nil
}
