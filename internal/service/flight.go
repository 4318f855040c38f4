package service

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// FlightTimeout bounds a run shared by concurrent callers of one user.
const FlightTimeout = 30 * time.Second

// shared runs fn once per key for all concurrent callers. fn runs on a
// context detached from the caller that started it, so cancelling one caller
// never fails the others; every caller still returns when its own ctx is done.
func shared[T any](ctx context.Context, g *singleflight.Group, key string, fn func(context.Context) (T, error)) (T, error) {
	ch := g.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), FlightTimeout)
		defer cancel()
		return fn(fctx)
	})
	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
