package oneof

import "fmt"

// Union is the behaviour shared by every OfN.
type Union interface {
	// Index returns the discriminant, the position of the held member.
	Index() int
	// Len returns the number of members in the variant list.
	Len() int
	// Value returns the held member boxed; meant for formatting only.
	Value() any
	fmt.Stringer
	error
}

var (
	_ Union = Of2[int, string]{}
	_ Union = Of3[int, string, bool]{}
	_ Union = Of4[int, string, bool, float64]{}
	_ Union = Of5[int, string, bool, float64, error]{}
)

func describe(v any) string {
	return fmt.Sprint(v)
}

// errorText goes through fmt, which calls Error on an error member and copes
// with a nil pointer receiver inside a non-nil interface.
func errorText(v any) string {
	return fmt.Sprint(v)
}

func unwrapError(v any) error {
	err, _ := v.(error)
	return err
}
