package rop

// Map applies onSuccess to a successful value. A failure is returned as is
// and onSuccess is never called.
func Map[In, Out any](input Result[In], onSuccess func(r In) Out) Result[Out] {
	if input.IsSuccess() {
		return Success(onSuccess(input.Result()))
	}
	return FailFrom[In, Out](input)
}

// FlatMap hands a successful value to onSuccess and returns whatever it
// produces. A failure short-circuits: onSuccess is never called.
func FlatMap[In, Out any](input Result[In], onSuccess func(r In) Result[Out]) Result[Out] {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return FailFrom[In, Out](input)
}

// Fold reduces a result to a plain value.
func Fold[In, Out any](input Result[In],
	onSuccess func(r In) Out,
	onFailure func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}

// Same reports whether a and b are the same variant holding equal payloads.
// Failures compare by error text.
func Same[T comparable](a, b Result[T]) bool {
	if a.IsSuccess() != b.IsSuccess() {
		return false
	}
	if a.IsSuccess() {
		return a.Result() == b.Result()
	}
	if a.Err() == nil || b.Err() == nil {
		return a.Err() == b.Err()
	}
	return a.Err().Error() == b.Err().Error()
}
