package persistence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriverErr implements DriverError for classifier tests.
type fakeDriverErr struct {
	msg    string
	noRows bool
	unique bool
}

func (e *fakeDriverErr) Error() string         { return e.msg }
func (e *fakeDriverErr) NoRows() bool          { return e.noRows }
func (e *fakeDriverErr) UniqueViolation() bool { return e.unique }

func TestClassify_NoRows_CarriesContext(t *testing.T) {
	err := &fakeDriverErr{msg: "no item found", noRows: true}
	o := Classify(err, "user lookup")
	require.NotNil(t, o)
	assert.Equal(t, KindNoRows, o.Kind)
	assert.Equal(t, "user lookup", o.Detail)
}

func TestClassify_UniqueViolation_CarriesDriverDescription(t *testing.T) {
	err := &fakeDriverErr{msg: "conditional check failed on (user_id, request_id)", unique: true}
	o := Classify(err, "request create")
	assert.Equal(t, KindUniqueViolation, o.Kind)
	assert.Equal(t, "conditional check failed on (user_id, request_id)", o.Detail)
}

func TestClassify_OtherDriverError_IsStorageFailure(t *testing.T) {
	err := &fakeDriverErr{msg: "connection reset"}
	o := Classify(err, "user lookup")
	assert.Equal(t, KindStorageFailure, o.Kind)
	assert.Equal(t, "connection reset", o.Detail)
}

func TestClassify_PlainError_IsStorageFailure(t *testing.T) {
	o := Classify(errors.New("dial tcp: timeout"), "verification lookup")
	assert.Equal(t, KindStorageFailure, o.Kind)
	assert.Equal(t, "dial tcp: timeout", o.Detail)
}

func TestClassify_WrappedDriverError(t *testing.T) {
	inner := &fakeDriverErr{msg: "no item found", noRows: true}
	wrapped := fmt.Errorf("get user: %w", inner)
	o := Classify(wrapped, "user lookup")
	assert.Equal(t, KindNoRows, o.Kind)
	assert.Equal(t, "user lookup", o.Detail)
}

func TestClassify_Deterministic(t *testing.T) {
	err := &fakeDriverErr{msg: "throttled", unique: false}
	o1 := Classify(err, "picture scan")
	o2 := Classify(err, "picture scan")
	assert.Equal(t, o1.Kind, o2.Kind)
	assert.Equal(t, o1.Detail, o2.Detail)
}

func TestOutcome_ErrorString(t *testing.T) {
	o := &Outcome{Kind: KindNoRows, Detail: "user lookup"}
	assert.Equal(t, "no rows: user lookup", o.Error())

	o = &Outcome{Kind: KindStorageFailure}
	assert.Equal(t, "storage failure", o.Error())
}

func TestOutcome_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	o := Classify(cause, "user lookup")
	assert.True(t, errors.Is(o, cause))
}

func TestIsNoRows(t *testing.T) {
	noRows := Classify(&fakeDriverErr{msg: "empty", noRows: true}, "token lookup")
	assert.True(t, IsNoRows(noRows))
	assert.True(t, IsNoRows(fmt.Errorf("verify: %w", noRows)))

	failure := Classify(errors.New("boom"), "token lookup")
	assert.False(t, IsNoRows(failure))
	assert.False(t, IsNoRows(errors.New("unrelated")))
}
