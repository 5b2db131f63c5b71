package chain

import (
	"context"

	"github.com/ib-77/sumtype/pkg/sum/async"
	"github.com/ib-77/sumtype/pkg/sum/factory"
	"github.com/ib-77/sumtype/pkg/sum/result"
)

// Chain wraps a result.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result result.Result[T]
}

// Start creates a new chain from a result.Result
func Start[T any](ctx context.Context, r result.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: r,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, result.Ok(value))
}

// Result returns the underlying result.Result
func (c *Chain[T]) Result() result.Result[T] {
	return c.result
}

// Then chains a function that returns result.Result[U]
func Then[T, U any](c *Chain[T], onOk func(context.Context, T) result.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: result.SelectMany(c.result, func(v T) result.Result[U] {
			return onOk(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error); panics become errors too
func ThenTry[T, U any](c *Chain[T], tryOnOk func(context.Context, T) (U, error)) *Chain[U] {
	lifted := factory.LiftToResult(func(v T) (U, error) {
		return tryOnOk(c.ctx, v)
	})
	return &Chain[U]{
		ctx:    c.ctx,
		result: result.SelectMany(c.result, lifted),
	}
}

// ThenAsync chains a function that starts a task and waits for it. If the
// chain's context ends first, the chain fails with the context error.
func ThenAsync[T, U any](c *Chain[T], start func(context.Context, T) *async.Task[U]) *Chain[U] {
	pending := result.TraverseAsync(c.result, func(v T) *async.Task[U] {
		return start(c.ctx, v)
	})

	r, err := pending.Await(c.ctx)
	if err != nil {
		r = result.Error[U](err)
	}

	return &Chain[U]{
		ctx:    c.ctx,
		result: r,
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onOk func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: result.Map(c.result, func(v T) U {
			return onOk(c.ctx, v)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onOk func(context.Context, T)) *Chain[T] {
	if v, err := c.result.Get(); err == nil {
		onOk(c.ctx, v)
	}
	return c
}

func (c *Chain[T]) Filter(pred func(context.Context, T) bool, onError func(context.Context, T) error) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: c.result.Filter(
			func(v T) bool { return pred(c.ctx, v) },
			func(v T) error { return onError(c.ctx, v) }),
	}
}

func (c *Chain[T]) Catch(handler func(context.Context, error) result.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: c.result.Catch(func(err error) result.Result[T] {
			return handler(c.ctx, err)
		}),
	}
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onOk func(context.Context, T) U, onError func(context.Context, error) U) U {
	return result.Fold(c.result,
		func(v T) U { return onOk(c.ctx, v) },
		func(err error) U { return onError(c.ctx, err) })
}
