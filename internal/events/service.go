package events

import (
	"context"
	"time"

	"itickets/internal/shared/constants"
	"itickets/pkg/cache"
	"itickets/pkg/logger"
)

type Service interface {
	GetPublishedEvent(ctx context.Context, id int64) (*Event, error)
	ListUpcoming(ctx context.Context) ([]EventResponse, error)
	InvalidateUpcoming(ctx context.Context) error
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
	logger   *logger.Logger
	now      func() time.Time
}

// NewService builds the catalog. cacheService may be nil, in which case
// listings are always read from the database.
func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	if cacheTTL <= 0 {
		cacheTTL = constants.TTL_EVENTS_UPCOMING
	}
	return &service{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
		logger:   logger.GetDefault(),
		now:      time.Now,
	}
}

func (s *service) GetPublishedEvent(ctx context.Context, id int64) (*Event, error) {
	if id <= 0 {
		return nil, ErrEventNotFound
	}
	return s.repo.GetPublishedEvent(ctx, id)
}

func (s *service) ListUpcoming(ctx context.Context) ([]EventResponse, error) {
	if s.cache == nil {
		return s.loadUpcoming(ctx)
	}

	return cache.GetOrLoad(ctx, s.cache, constants.CACHE_KEY_EVENTS_UPCOMING, s.cacheTTL, s.loadUpcoming,
		func(err error) {
			s.logger.WarnWithContext(ctx, "Catalog cache unavailable", err, nil)
		})
}

func (s *service) loadUpcoming(ctx context.Context) ([]EventResponse, error) {
	rows, err := s.repo.ListUpcoming(ctx, s.now())
	if err != nil {
		return nil, err
	}

	responses := make([]EventResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, rows[i].ToResponse())
	}
	return responses, nil
}

// InvalidateUpcoming drops the cached listing so availability is recomputed
func (s *service) InvalidateUpcoming(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, constants.CACHE_KEY_EVENTS_UPCOMING)
}
