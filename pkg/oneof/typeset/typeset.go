package typeset

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty     = errors.New("typeset: empty variant list")
	ErrDuplicate = errors.New("typeset: duplicate member")
	ErrAbsent    = errors.New("typeset: member not in variant list")
	ErrAmbiguous = errors.New("typeset: member occurs at more than one position")
	ErrPosition  = errors.New("typeset: position out of range")
)

// Form is the surface representation of a variant list of a given length.
type Form int

const (
	Uninhabited Form = iota
	Bare
	Union
)

func (f Form) String() string {
	switch f {
	case Uninhabited:
		return "uninhabited"
	case Bare:
		return "bare"
	case Union:
		return "union"
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

// FormOf returns the surface form of a list holding n members.
func FormOf(n int) Form {
	switch {
	case n <= 0:
		return Uninhabited
	case n == 1:
		return Bare
	default:
		return Union
	}
}

// Shift maps discriminant i of a list to its discriminant in the remainder
// left after removing position k. i == k has no image and panics.
func Shift(i, k int) int {
	switch {
	case i < k:
		return i
	case i > k:
		return i - 1
	}
	panic(fmt.Sprintf("typeset: shift of removed position %d", k))
}

// Remove returns list without the element at k. The input is not modified.
func Remove[T any](list []T, k int) ([]T, error) {
	if k < 0 || k >= len(list) {
		return nil, fmt.Errorf("remove %d of %d: %w", k, len(list), ErrPosition)
	}
	rest := make([]T, 0, len(list)-1)
	rest = append(rest, list[:k]...)
	return append(rest, list[k+1:]...), nil
}

// Validate checks that list names a non-empty, duplicate-free variant list.
func Validate[T comparable](list []T) error {
	if len(list) == 0 {
		return ErrEmpty
	}
	seen := make(map[T]int, len(list))
	for i, m := range list {
		if j, ok := seen[m]; ok {
			return fmt.Errorf("%v at %d and %d: %w", m, j, i, ErrDuplicate)
		}
		seen[m] = i
	}
	return nil
}

// Position infers where member sits in list. It succeeds only when member
// occurs exactly once; otherwise the caller has to name the position.
func Position[T comparable](list []T, member T) (int, error) {
	pos := -1
	for i, m := range list {
		if m != member {
			continue
		}
		if pos >= 0 {
			return 0, fmt.Errorf("%v at %d and %d: %w", member, pos, i, ErrAmbiguous)
		}
		pos = i
	}
	if pos < 0 {
		return 0, fmt.Errorf("%v: %w", member, ErrAbsent)
	}
	return pos, nil
}
