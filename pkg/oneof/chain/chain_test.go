package chain

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/oneof/pkg/oneof"
	"github.com/ib-77/oneof/pkg/oneof/outcome"
)

type (
	empty      struct{}
	notANumber struct{ input string }
	outOfRange struct{ n int }
)

type parseErr = oneof.Of3[empty, notANumber, outOfRange]

func parse(_ context.Context, s string) outcome.Outcome[int, parseErr] {
	if s == "" {
		return outcome.Failure[int](parseErr{}.With0(empty{}))
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return outcome.Failure[int](parseErr{}.With1(notANumber{s}))
	}
	if n < 0 || n > 100 {
		return outcome.Failure[int](parseErr{}.With2(outOfRange{n}))
	}
	return outcome.Success[int, parseErr](n)
}

func run(ctx context.Context, s string) string {
	c := Then(FromValue[string, parseErr](ctx, s), parse)

	noEmpty := Handle(c, parseErr.Narrow0,
		func(context.Context, empty) outcome.Outcome[int, oneof.Of2[notANumber, outOfRange]] {
			return outcome.Success[int, oneof.Of2[notANumber, outOfRange]](0)
		})

	clamped := Handle(noEmpty, oneof.Of2[notANumber, outOfRange].Narrow1,
		func(_ context.Context, r outOfRange) outcome.Outcome[int, notANumber] {
			if r.n < 0 {
				return outcome.Success[int, notANumber](0)
			}
			return outcome.Success[int, notANumber](100)
		})

	return Finally(Map(clamped, func(_ context.Context, n int) string { return strconv.Itoa(n) }),
		func(_ context.Context, s string) string { return s },
		func(_ context.Context, e notANumber) string { return "not a number: " + e.input })
}

func TestHandle_ShrinksFailureOneKindPerStep(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cases := map[string]string{
		"42":  "42",
		"":    "0",
		"-5":  "0",
		"500": "100",
		"x1":  "not a number: x1",
	}
	for in, want := range cases {
		assert.Equal(t, want, run(ctx, in), "input %q", in)
	}
}

func TestHandle_KeepsId(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	start := outcome.Failure[int](parseErr{}.With0(empty{}))
	c := Handle(Start(ctx, start), parseErr.Narrow0,
		func(context.Context, empty) outcome.Outcome[int, oneof.Of2[notANumber, outOfRange]] {
			return outcome.Success[int, oneof.Of2[notANumber, outOfRange]](1)
		})

	assert.True(t, c.Outcome().IsSuccess())
	assert.Equal(t, start.Id(), c.Outcome().Id())
}

func TestHandle_SkipsHandlerOnOtherFailures(t *testing.T) {
	t.Parallel()

	called := false
	c := Handle(Start(context.Background(), outcome.Failure[int](parseErr{}.With1(notANumber{"q"}))),
		parseErr.Narrow0,
		func(context.Context, empty) outcome.Outcome[int, oneof.Of2[notANumber, outOfRange]] {
			called = true
			return outcome.Success[int, oneof.Of2[notANumber, outOfRange]](0)
		})

	assert.False(t, called)
	assert.True(t, c.Outcome().IsFailure())
	assert.Equal(t, 0, c.Outcome().Failure().Index())
}

func TestEnsure_OnlyOnSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seen := 0
	FromValue[int, parseErr](ctx, 7).Ensure(func(_ context.Context, n int) { seen += n })
	Start(ctx, outcome.Failure[int](parseErr{}.With0(empty{}))).Ensure(func(_ context.Context, n int) { seen += 100 })

	assert.Equal(t, 7, seen)
}
