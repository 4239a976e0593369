package boundary

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapspot-api/internal/domain/geo"
	"github.com/snapspot-api/internal/domain/identity"
	"github.com/snapspot-api/internal/domain/media"
	"github.com/snapspot-api/internal/persistence"
)

func TestVerify_AllCatalogsCovered(t *testing.T) {
	require.NoError(t, Verify())
}

func TestHTTPStatus_AllClasses(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, InternalError.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, BadRequest.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, Unauthorized.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NotFound.HTTPStatus())
	assert.Equal(t, http.StatusConflict, Conflict.HTTPStatus())
	assert.Equal(t, http.StatusGone, Gone.HTTPStatus())
}

func TestFromIdentity_FullMapping(t *testing.T) {
	cases := []struct {
		kind identity.Kind
		want StatusClass
	}{
		{identity.KindUnauthorized, Unauthorized},
		{identity.KindValidationFailed, BadRequest},
		{identity.KindInternalFailure, InternalError},
		{identity.KindInvalidToken, BadRequest},
		{identity.KindTokenExpired, Gone},
		{identity.KindTokenAlreadyUsed, Conflict},
		{identity.KindNotFound, NotFound},
	}
	for _, tc := range cases {
		be := FromIdentity(&identity.Error{Kind: tc.kind, Message: "m"})
		assert.Equal(t, tc.want, be.Class, "kind %s", tc.kind)
		assert.Equal(t, "m", be.Message)
	}
}

func TestFromGeo_FullMapping(t *testing.T) {
	assert.Equal(t, InternalError, FromGeo(geo.Internal("x")).Class)
	assert.Equal(t, BadRequest, FromGeo(geo.ValidationFailed("x")).Class)
	assert.Equal(t, NotFound, FromGeo(geo.NotFound("x")).Class)
}

func TestFromMedia_FullMapping(t *testing.T) {
	assert.Equal(t, InternalError, FromMedia(media.Internal("x")).Class)
	assert.Equal(t, BadRequest, FromMedia(media.ValidationFailed("x")).Class)
	assert.Equal(t, NotFound, FromMedia(media.NotFound("x")).Class)
}

func TestFromError_MessagePassesVerbatim(t *testing.T) {
	be := FromError(identity.NotFound("user lookup"))
	assert.Equal(t, NotFound, be.Class)
	assert.Equal(t, "user lookup", be.Message)
}

func TestFromError_BoundaryErrorPassesThrough(t *testing.T) {
	in := &Error{Class: Unauthorized, Message: "Authorization header missing"}
	assert.Same(t, in, FromError(in))
}

func TestFromError_UnknownErrorBecomesGenericInternal(t *testing.T) {
	be := FromError(errors.New("secret driver detail"))
	assert.Equal(t, InternalError, be.Class)
	assert.Equal(t, "Internal server error occurred", be.Message)
	assert.NotContains(t, be.Message, "secret")
}

func TestFromError_Deterministic(t *testing.T) {
	e := identity.TokenExpired("verification link expired")
	assert.Equal(t, FromError(e), FromError(e))
}

// A no-rows outcome during a user lookup must surface as 404 with the
// operation context as the visible message.
func TestPipeline_UserLookupNotFound(t *testing.T) {
	raw := persistence.Classify(noRowsDriverErr{}, "user lookup")
	be := FromError(identity.FromStorage(raw))
	assert.Equal(t, NotFound, be.Class)
	assert.Equal(t, http.StatusNotFound, be.Class.HTTPStatus())
	assert.Equal(t, "user lookup", be.Message)
}

// A unique violation with no conflict mapping configured must collapse to a
// 500 whose message carries the detail behind the fixed prefix.
func TestPipeline_UnmappedConflictBecomesInternal(t *testing.T) {
	raw := persistence.Classify(uniqueDriverErr{}, "request create")
	be := FromError(identity.FromStorage(raw))
	assert.Equal(t, InternalError, be.Class)
	assert.Equal(t, "Database error: duplicate (user_id, request_id)", be.Message)
}

// A directly constructed business failure goes through the mapper alone,
// message untouched.
func TestPipeline_DirectTokenExpired(t *testing.T) {
	be := FromError(identity.TokenExpired("verification link expired"))
	assert.Equal(t, Gone, be.Class)
	assert.Equal(t, http.StatusGone, be.Class.HTTPStatus())
	assert.Equal(t, "verification link expired", be.Message)
}

// The geo storage conversion binds no not-found constructor: a no-rows
// outcome reaching it falls back to the internal-failure variant
// deterministically.
func TestPipeline_NoRowsFallbackWithoutNotFoundVariant(t *testing.T) {
	raw := persistence.Classify(noRowsDriverErr{}, "request lookup")
	be1 := FromError(geo.FromStorage(raw))
	be2 := FromError(geo.FromStorage(raw))
	assert.Equal(t, InternalError, be1.Class)
	assert.Equal(t, "Database error: request lookup", be1.Message)
	assert.Equal(t, be1, be2)
}

// Raw driver text may only ever appear behind the "Database error: " prefix
// composed at the domain tier.
func TestPipeline_DriverDetailOnlyBehindPrefix(t *testing.T) {
	raw := persistence.Classify(errors.New("pq: syntax error in SELECT"), "user lookup")
	be := FromError(identity.FromStorage(raw))
	assert.Equal(t, InternalError, be.Class)
	assert.Equal(t, "Database error: pq: syntax error in SELECT", be.Message)
}

type noRowsDriverErr struct{}

func (noRowsDriverErr) Error() string         { return "no item found" }
func (noRowsDriverErr) NoRows() bool          { return true }
func (noRowsDriverErr) UniqueViolation() bool { return false }

type uniqueDriverErr struct{}

func (uniqueDriverErr) Error() string         { return "duplicate (user_id, request_id)" }
func (uniqueDriverErr) NoRows() bool          { return false }
func (uniqueDriverErr) UniqueViolation() bool { return true }
