package gen

import (
	"fmt"

	"github.com/ib-77/oneof/pkg/oneof/typeset"
)

// Resolution names the narrowing method that removes Target from a union.
type Resolution struct {
	Union     string
	Target    string
	Position  int
	Method    string
	Remainder string
}

func (r Resolution) String() string {
	return fmt.Sprintf("%s.%s() Either[%s, %s]", r.Union, r.Method, r.Target, r.Remainder)
}

// Resolve finds the position of target among the member type names of a
// union. A member listed more than once has no inferable position and is
// rejected with typeset.ErrAmbiguous; the caller then picks NarrowK itself.
func Resolve(members []string, target string) (Resolution, error) {
	if len(members) < minArity || len(members) > MaxSupportedArity {
		return Resolution{}, fmt.Errorf("%d members, want %d..%d: %w",
			len(members), minArity, MaxSupportedArity, ErrArity)
	}

	pos, err := typeset.Position(members, target)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve %s: %w", target, err)
	}
	rest, err := typeset.Remove(members, pos)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve %s: %w", target, err)
	}

	return Resolution{
		Union:     surface(members),
		Target:    target,
		Position:  pos,
		Method:    fmt.Sprintf("Narrow%d", pos),
		Remainder: surface(rest),
	}, nil
}
