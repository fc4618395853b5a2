package outcome

import (
	"fmt"

	"github.com/google/uuid"
)

type Outcome[T, E any] struct {
	id        uuid.UUID
	result    T
	failure   E
	isSuccess bool
}

func Success[T, E any](r T) Outcome[T, E] {
	return Outcome[T, E]{
		result:    r,
		isSuccess: true,
		id:        uuid.New(),
	}
}

func Failure[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{
		failure:   e,
		isSuccess: false,
		id:        uuid.New(),
	}
}

// successFrom and failureFrom build an outcome that keeps the id of from.
func successFrom[T, E, In, InE any](from Outcome[In, InE], r T) Outcome[T, E] {
	return Outcome[T, E]{id: from.id, result: r, isSuccess: true}
}

func failureFrom[T, E, In, InE any](from Outcome[In, InE], e E) Outcome[T, E] {
	return Outcome[T, E]{id: from.id, failure: e}
}

func (o Outcome[T, E]) Result() T {
	return o.result
}

func (o Outcome[T, E]) Failure() E {
	return o.failure
}

// Get returns both channels; ok reports success.
func (o Outcome[T, E]) Get() (result T, failure E, ok bool) {
	return o.result, o.failure, o.isSuccess
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.isSuccess
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}

// Err returns the failure as an error, or nil on success. A failure that is
// not an error itself, such as a bare struct, is formatted with %v.
func (o Outcome[T, E]) Err() error {
	if o.isSuccess {
		return nil
	}
	if err, ok := any(o.failure).(error); ok {
		return err
	}
	return fmt.Errorf("%v", o.failure)
}

func (o Outcome[T, E]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("success(%v)", o.result)
	}
	return fmt.Sprintf("failure(%v)", o.failure)
}
