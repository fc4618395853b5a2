package oneof

// Never is the surface type of an empty variant list. Nothing implements it,
// so no value of it other than nil can exist.
type Never interface {
	never()
}

// Last narrows a bare value, the collapsed form of a one-member list. The
// member is always there, so the remainder side is never set.
func Last[T any](v T) Either[T, Never] {
	return Left[T, Never](v)
}

// Absurd is the handler for a Never value; reaching it is a bug.
func Absurd[T any](Never) T {
	panic("oneof: value of uninhabited type")
}
