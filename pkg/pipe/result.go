package pipe

import (
	"time"

	"github.com/google/uuid"
)

// Result tags a message with a success or failure channel so that a driver
// can route it to distinct sinks. A failure may still carry a value, e.g.
// the encoded diagnostic to write out.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

func FailWithResult[T any](res T, err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		result:    res,
		hasResult: true,
		id:        uuid.New(),
	}
}

// Convert maps the value of r keeping its id, creation time and channel.
// A failure without a value stays without one.
func Convert[In, Out any](r Result[In], f func(In) Out) Result[Out] {
	out := Result[Out]{
		err:       r.err,
		isSuccess: r.isSuccess,
		createdAt: r.createdAt,
		hasResult: r.hasResult,
		id:        r.id,
	}
	if r.hasResult {
		out.result = f(r.result)
	}
	return out
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

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
