package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is either a success carrying a value or a failure carrying an error.
// Exactly one of the two is populated and a Result never changes after it
// has been built.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of lifts a plain value into a successful Result.
func Of[T any](r T) Result[T] {
	return Success(r)
}

// FailFrom carries the failure of from over to a Result of another type.
// Id and creation time are kept, so a forwarded failure stays the same failure.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
