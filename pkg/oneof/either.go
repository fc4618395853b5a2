package oneof

// Either holds a left or a right value. Narrowing puts the extracted member
// on the left and the remainder on the right.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v, isLeft: true}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v}
}

func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

func (e Either[L, R]) Left() (L, bool) {
	return e.left, e.isLeft
}

func (e Either[L, R]) Right() (R, bool) {
	return e.right, !e.isLeft
}

// Unpack returns both sides; ok reports whether the left one is set.
func (e Either[L, R]) Unpack() (left L, right R, ok bool) {
	return e.left, e.right, e.isLeft
}

// Fold reduces e with the handler for the side it holds.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isLeft {
		return onLeft(e.left)
	}
	return onRight(e.right)
}
