package persistence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testErr is a minimal catalog error for converter tests.
type testErr struct {
	variant string
	msg     string
}

func (e *testErr) Error() string { return e.msg }

// fullCatalog has both constructors; minimalCatalog only the mandatory one.
type fullCatalog struct{}

func (fullCatalog) Internal(msg string) *testErr { return &testErr{variant: "internal", msg: msg} }
func (fullCatalog) NotFound(msg string) *testErr { return &testErr{variant: "not_found", msg: msg} }

type minimalCatalog struct{}

func (minimalCatalog) Internal(msg string) *testErr { return &testErr{variant: "internal", msg: msg} }

func TestFromStorageError_PrefixesDescription(t *testing.T) {
	c := NewConverter[*testErr](fullCatalog{})
	e := c.FromStorageError(errors.New("connection refused"))
	assert.Equal(t, "internal", e.variant)
	assert.Equal(t, "Database error: connection refused", e.msg)
}

func TestFromOutcome_NoRows_UsesNotFoundConstructor(t *testing.T) {
	c := NewConverter[*testErr](fullCatalog{})
	e := c.FromOutcome(&Outcome{Kind: KindNoRows, Detail: "user lookup"})
	assert.Equal(t, "not_found", e.variant)
	assert.Equal(t, "user lookup", e.msg)
}

func TestFromOutcome_NoRows_FallsBackWithoutNotFound(t *testing.T) {
	c := NewConverter[*testErr](minimalCatalog{})
	e := c.FromOutcome(&Outcome{Kind: KindNoRows, Detail: "request lookup"})
	assert.Equal(t, "internal", e.variant)
	assert.Equal(t, "Database error: request lookup", e.msg)
}

func TestFromOutcome_UniqueViolation_NotPromotedToConflict(t *testing.T) {
	c := NewConverter[*testErr](fullCatalog{})
	e := c.FromOutcome(&Outcome{Kind: KindUniqueViolation, Detail: "duplicate key (user_id, request_id)"})
	assert.Equal(t, "internal", e.variant)
	assert.Equal(t, "Database error: duplicate key (user_id, request_id)", e.msg)
}

func TestFromOutcome_StorageFailure(t *testing.T) {
	c := NewConverter[*testErr](fullCatalog{})
	e := c.FromOutcome(&Outcome{Kind: KindStorageFailure, Detail: "throttled"})
	assert.Equal(t, "internal", e.variant)
	assert.Equal(t, "Database error: throttled", e.msg)
}

func TestConvert_DispatchesOutcomeVsRaw(t *testing.T) {
	c := NewConverter[*testErr](fullCatalog{})

	viaOutcome := c.Convert(&Outcome{Kind: KindNoRows, Detail: "user lookup"})
	assert.Equal(t, "not_found", viaOutcome.variant)

	viaRaw := c.Convert(errors.New("marshal user: bad attribute"))
	assert.Equal(t, "internal", viaRaw.variant)
	assert.Equal(t, "Database error: marshal user: bad attribute", viaRaw.msg)
}

func TestConvert_Deterministic(t *testing.T) {
	c := NewConverter[*testErr](minimalCatalog{})
	o := &Outcome{Kind: KindUniqueViolation, Detail: "dup"}
	assert.Equal(t, c.Convert(o), c.Convert(o))
}
