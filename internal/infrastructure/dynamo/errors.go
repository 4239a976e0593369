package dynamo

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/snapspot-api/internal/persistence"
)

// storeError adapts DynamoDB SDK failures (and the synthesized no-item
// condition — Dynamo reports empty reads as success) to the driver surface
// the persistence classifier consumes.
type storeError struct {
	cause error
	empty bool
}

func (e *storeError) Error() string {
	if e.empty {
		return "no item found"
	}
	return e.cause.Error()
}

func (e *storeError) Unwrap() error { return e.cause }

func (e *storeError) NoRows() bool { return e.empty }

func (e *storeError) UniqueViolation() bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(e.cause, &ccf)
}

// fail classifies a raw SDK error under the given operation context.
func fail(err error, context string) *persistence.Outcome {
	return persistence.Classify(&storeError{cause: err}, context)
}

// noItem reports the zero-rows condition for a single-item read.
func noItem(context string) *persistence.Outcome {
	return persistence.Classify(&storeError{empty: true}, context)
}
