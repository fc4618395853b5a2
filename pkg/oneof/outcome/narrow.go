package outcome

import "github.com/ib-77/oneof/pkg/oneof"

// NarrowErr splits Target off the failure channel of o using narrow, which is
// normally a method expression such as oneof.Of3[A, B, C].Narrow1.
//
//   - success(t) becomes success(success(t))
//   - a Target failure becomes success(failure(target))
//   - any other failure becomes failure(rest), rest being the remainder union
//     or, when one kind is left, the bare value
func NarrowErr[T, E, Target, Rest any](o Outcome[T, E],
	narrow func(E) oneof.Either[Target, Rest]) Outcome[Outcome[T, Target], Rest] {

	if o.isSuccess {
		return successFrom[Outcome[T, Target], Rest](o, successFrom[T, Target](o, o.result))
	}

	target, rest, ok := narrow(o.failure).Unpack()
	if ok {
		return successFrom[Outcome[T, Target], Rest](o, failureFrom[T, Target](o, target))
	}
	return failureFrom[Outcome[T, Target], Rest](o, rest)
}

// Recover collapses the result of NarrowErr back to two cases, turning the
// handled failure into whatever handle returns.
func Recover[T, Target, Rest any](o Outcome[Outcome[T, Target], Rest],
	handle func(Target) Outcome[T, Rest]) Outcome[T, Rest] {

	if o.IsFailure() {
		return failureFrom[T, Rest](o, o.failure)
	}

	inner := o.result
	if inner.isSuccess {
		return successFrom[T, Rest](o, inner.result)
	}

	handled := handle(inner.failure)
	handled.id = o.id
	return handled
}
