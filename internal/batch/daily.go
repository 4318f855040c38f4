// Package batch runs the daily prescription cycle for every user.
package batch

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/limbo/mindrep/internal/service"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultConcurrency = 4
	DefaultPageSize    = 100
)

type UserLister interface {
	ListIDs(ctx context.Context, limit, offset int) ([]uuid.UUID, error)
}

type Options struct {
	Concurrency int
	PageSize    int
}

// Report counts users per outcome. Skipped users have nothing to work on yet.
type Report struct {
	Users     int64 `json:"users"`
	Succeeded int64 `json:"succeeded"`
	Skipped   int64 `json:"skipped"`
	Failed    int64 `json:"failed"`
}

type Runner struct {
	users         UserLister
	prescriptions service.PrescriptionServiceI
	correlations  service.CorrelationServiceI
	opts          Options
}

func NewRunner(users UserLister, prescriptions service.PrescriptionServiceI, correlations service.CorrelationServiceI, opts Options) *Runner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	return &Runner{
		users:         users,
		prescriptions: prescriptions,
		correlations:  correlations,
		opts:          opts,
	}
}

// Daily issues today's prescription for every user. A failing user is
// logged and counted, it never stops the run.
func (r *Runner) Daily(ctx context.Context) (Report, error) {
	return r.forEachUser(ctx, func(ctx context.Context, uid uuid.UUID, rep *Report) {
		p, err := r.prescriptions.Today(ctx, uid)
		switch {
		case err != nil:
			atomic.AddInt64(&rep.Failed, 1)
			slog.Error("daily prescription failed", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		case p == nil:
			atomic.AddInt64(&rep.Skipped, 1)
		default:
			atomic.AddInt64(&rep.Succeeded, 1)
		}
	})
}

// Recompute forces a fresh correlation snapshot for every user.
func (r *Runner) Recompute(ctx context.Context) (Report, error) {
	return r.forEachUser(ctx, func(ctx context.Context, uid uuid.UUID, rep *Report) {
		rows, err := r.correlations.Recompute(ctx, uid)
		switch {
		case err != nil:
			atomic.AddInt64(&rep.Failed, 1)
			slog.Error("recompute failed", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		case len(rows) == 0:
			atomic.AddInt64(&rep.Skipped, 1)
		default:
			atomic.AddInt64(&rep.Succeeded, 1)
		}
	})
}

func (r *Runner) forEachUser(ctx context.Context, job func(context.Context, uuid.UUID, *Report)) (Report, error) {
	var rep Report
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)
	for offset := 0; ; offset += r.opts.PageSize {
		if gctx.Err() != nil {
			break
		}
		ids, err := r.users.ListIDs(gctx, r.opts.PageSize, offset)
		if err != nil {
			_ = g.Wait()
			return rep, errors.New("listing users error: " + err.Error())
		}
		for _, uid := range ids {
			rep.Users++
			g.Go(func() error {
				job(gctx, uid, &rep)
				return nil
			})
		}
		if len(ids) < r.opts.PageSize {
			break
		}
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	return rep, nil
}
