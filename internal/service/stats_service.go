package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	source port.StatsSource
	loc    *time.Location
	log    zerolog.Logger
	now    func() time.Time
}

// NewStatsService computes day and month windows in loc; nil means UTC.
func NewStatsService(source port.StatsSource, loc *time.Location, log zerolog.Logger) *StatsService {
	if loc == nil {
		loc = time.UTC
	}

	return &StatsService{
		source: source,
		loc:    loc,
		log:    log.With().Str("component", "stats_service").Logger(),
		now:    time.Now,
	}
}

// GetStats reads every collection in parallel and aggregates them. The
// returned time is the moment the windows were computed against.
func (s *StatsService) GetStats(ctx context.Context, user domain.CurrentUser) (domain.Stats, time.Time, error) {
	if !user.IsAdmin() {
		return domain.Stats{}, time.Time{}, fmt.Errorf("%w: admin role required", domain.ErrAuthorization)
	}

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read stats snapshot")
		return domain.Stats{}, time.Time{}, fmt.Errorf("%w: %w", domain.ErrAggregation, err)
	}

	now := s.now().In(s.loc)

	return domain.ComputeStats(snapshot, now), now, nil
}

func (s *StatsService) snapshot(ctx context.Context) (domain.StatsSnapshot, error) {
	var snapshot domain.StatsSnapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		if snapshot.Orders, err = s.source.ListOrders(gctx); err != nil {
			return fmt.Errorf("source.ListOrders: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snapshot.Products, err = s.source.ListProducts(gctx); err != nil {
			return fmt.Errorf("source.ListProducts: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snapshot.Users, err = s.source.ListUsers(gctx); err != nil {
			return fmt.Errorf("source.ListUsers: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snapshot.Categories, err = s.source.ListCategories(gctx); err != nil {
			return fmt.Errorf("source.ListCategories: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snapshot.Blogs, err = s.source.ListBlogs(gctx); err != nil {
			return fmt.Errorf("source.ListBlogs: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snapshot.Coupons, err = s.source.ListCoupons(gctx); err != nil {
			return fmt.Errorf("source.ListCoupons: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.StatsSnapshot{}, err
	}

	return snapshot, nil
}
