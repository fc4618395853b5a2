package typeset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Uninhabited, FormOf(0))
	assert.Equal(t, Bare, FormOf(1))
	assert.Equal(t, Union, FormOf(2))
	assert.Equal(t, Union, FormOf(7))
	assert.Equal(t, "bare", Bare.String())
	assert.Equal(t, "Form(9)", Form(9).String())
}

func TestShift_IsBijectiveOnKeptPositions(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 8; n++ {
		for k := 0; k < n; k++ {
			seen := make(map[int]bool)
			for i := 0; i < n; i++ {
				if i == k {
					continue
				}
				j := Shift(i, k)
				require.GreaterOrEqual(t, j, 0)
				require.Less(t, j, n-1)
				require.False(t, seen[j], "n=%d k=%d i=%d collides", n, k, i)
				seen[j] = true

				if i < k {
					assert.Equal(t, i, j)
				} else {
					assert.Equal(t, i-1, j)
				}
			}
			assert.Len(t, seen, n-1)
		}
	}
}

func TestShift_RemovedPositionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Shift(2, 2) })
}

func TestRemove_SizeAndOrder(t *testing.T) {
	t.Parallel()

	list := []string{"A", "B", "C", "D"}
	for k := range list {
		rest, err := Remove(list, k)
		require.NoError(t, err)
		require.Len(t, rest, len(list)-1)

		for i, m := range list {
			if i == k {
				assert.NotContains(t, rest, m)
				continue
			}
			assert.Equal(t, m, rest[Shift(i, k)])
		}
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, list)
}

func TestRemove_OutOfRange(t *testing.T) {
	t.Parallel()

	_, err := Remove([]string{"A"}, 1)
	assert.True(t, errors.Is(err, ErrPosition))

	_, err = Remove([]string{"A"}, -1)
	assert.ErrorIs(t, err, ErrPosition)
}

func TestRemove_LastMemberLeavesUninhabited(t *testing.T) {
	t.Parallel()

	rest, err := Remove([]string{"A"}, 0)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, Uninhabited, FormOf(len(rest)))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate([]string{"A", "B"}))
	assert.ErrorIs(t, Validate([]string{}), ErrEmpty)
	assert.ErrorIs(t, Validate([]string{"A", "B", "A"}), ErrDuplicate)
}

func TestPosition(t *testing.T) {
	t.Parallel()

	pos, err := Position([]string{"A", "B", "C"}, "C")
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	_, err = Position([]string{"A", "B", "A"}, "A")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = Position([]string{"A", "B"}, "Z")
	assert.ErrorIs(t, err, ErrAbsent)
}
