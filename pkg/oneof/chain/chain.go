package chain

import (
	"context"

	"github.com/ib-77/oneof/pkg/oneof"
	"github.com/ib-77/oneof/pkg/oneof/outcome"
)

// Chain wraps an outcome.Outcome with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx     context.Context
	outcome outcome.Outcome[T, E]
}

// Start creates a new chain from an outcome.Outcome
func Start[T, E any](ctx context.Context, o outcome.Outcome[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:     ctx,
		outcome: o,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:     ctx,
		outcome: outcome.Success[T, E](value),
	}
}

// Outcome returns the underlying outcome.Outcome
func (c *Chain[T, E]) Outcome() outcome.Outcome[T, E] {
	return c.outcome
}

// Then chains a function that returns outcome.Outcome[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) outcome.Outcome[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		outcome: outcome.Then(c.outcome, func(r T) outcome.Outcome[U, E] {
			return onSuccess(c.ctx, r)
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		outcome: outcome.Map(c.outcome, func(r T) U {
			return onSuccess(c.ctx, r)
		}),
	}
}

// Handle narrows Target off the failure channel and lets handler recover
// from it. Other failures pass through as the smaller Rest.
func Handle[T, E, Target, Rest any](c *Chain[T, E],
	narrow func(E) oneof.Either[Target, Rest],
	handler func(context.Context, Target) outcome.Outcome[T, Rest]) *Chain[T, Rest] {

	return &Chain[T, Rest]{
		ctx: c.ctx,
		outcome: outcome.Recover(outcome.NarrowErr(c.outcome, narrow), func(t Target) outcome.Outcome[T, Rest] {
			return handler(c.ctx, t)
		}),
	}
}

// Ensure performs a side effect without changing the outcome
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		outcome: outcome.Tee(c.outcome, func(r T) {
			onSuccess(c.ctx, r)
		}),
	}
}

// Finally collapses the chain into a final value using outcome.Finally
func Finally[T, E, U any](c *Chain[T, E], onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return outcome.Finally(c.outcome,
		func(r T) U { return onSuccess(c.ctx, r) },
		func(e E) U { return onFailure(c.ctx, e) })
}
