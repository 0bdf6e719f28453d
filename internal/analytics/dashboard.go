package analytics

import (
	"context"

	"github.com/metinatakli/cinema-statistics/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Dashboard runs every statistics pipeline concurrently and returns the
// combined result only when all of them succeed. The first failure cancels
// the remaining pipelines and is returned as is.
//
// Each pipeline reads the store on its own, so the parts of one dashboard are
// not guaranteed to describe the same point in time.
func (e *Engine) Dashboard(ctx context.Context, granularity domain.Granularity) (*domain.Dashboard, error) {
	granularity, err := resolveGranularity(granularity)
	if err != nil {
		return nil, err
	}

	var dashboard domain.Dashboard

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := e.TotalRevenue(ctx)
		dashboard.TotalRevenue = total
		return err
	})

	g.Go(func() error {
		byCinema, err := e.RevenueByCinema(ctx)
		dashboard.RevenueByCinema = byCinema
		return err
	})

	g.Go(func() error {
		byTime, err := e.RevenueByTime(ctx, granularity)
		dashboard.RevenueByTime = byTime
		return err
	})

	g.Go(func() error {
		bookings, err := e.BookingCountByTime(ctx, granularity)
		dashboard.BookingCountByTime = bookings
		return err
	})

	g.Go(func() error {
		movies, err := e.MovieStatistics(ctx)
		dashboard.MovieStatistics = movies
		return err
	})

	g.Go(func() error {
		showtimes, err := e.ShowtimesThisWeek(ctx)
		dashboard.ShowtimesThisWeek = showtimes
		return err
	})

	if err := g.Wait(); err != nil {
		e.logger.ErrorContext(ctx, "dashboard aggregation failed", "filter", string(granularity), "error", err)
		return nil, err
	}

	return &dashboard, nil
}
