package outcome

func Map[In, Out, E any](input Outcome[In, E], onSuccess func(r In) Out) Outcome[Out, E] {
	if input.IsSuccess() {
		return successFrom[Out, E](input, onSuccess(input.Result()))
	}
	return failureFrom[Out, E](input, input.Failure())
}

// Then switches to the outcome returned by onSuccess. The id of input is kept.
func Then[In, Out, E any](input Outcome[In, E], onSuccess func(r In) Outcome[Out, E]) Outcome[Out, E] {
	if input.IsSuccess() {
		next := onSuccess(input.Result())
		next.id = input.id
		return next
	}
	return failureFrom[Out, E](input, input.Failure())
}

func MapFailure[T, E, F any](input Outcome[T, E], onFailure func(e E) F) Outcome[T, F] {
	if input.IsSuccess() {
		return successFrom[T, F](input, input.Result())
	}
	return failureFrom[T, F](input, onFailure(input.Failure()))
}

func Tee[T, E any](input Outcome[T, E], onSuccess func(r T)) Outcome[T, E] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func Finally[T, E, Out any](input Outcome[T, E],
	onSuccess func(r T) Out,
	onFailure func(e E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Failure())
}

// Try converts a (value, error) pair into an outcome, keeping the error as
// the failure channel.
func Try[T any](r T, err error) Outcome[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](r)
}
