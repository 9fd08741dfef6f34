package snapshot

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"bitbucket.org/novatechnologies/chartview/client/feed"
	"bitbucket.org/novatechnologies/chartview/domain"
)

// Store is the persistence surface the service needs from a repository.
type Store interface {
	Save(ctx context.Context, symbol string, resolution domain.Resolution, candles []domain.Candle) error
	Last(ctx context.Context, symbol string, resolution domain.Resolution) ([]domain.Candle, error)
}

// Service loads candle snapshots from the upstream feed and keeps the last
// good one in the store. It also tracks the currently selected symbol and
// resolution for the polling loop.
type Service struct {
	feed  feed.Client
	store Store

	mu         sync.Mutex
	symbol     string
	resolution domain.Resolution
}

func NewService(feedClient feed.Client, store Store) *Service {
	return &Service{feed: feedClient, store: store}
}

func (s *Service) SetSelection(symbol string, resolution domain.Resolution) {
	s.mu.Lock()
	s.symbol = symbol
	s.resolution = resolution
	s.mu.Unlock()
}

func (s *Service) Selection() (string, domain.Resolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.symbol, s.resolution
}

// Load fetches a fresh snapshot from the feed and caches it. When the feed
// is unavailable it falls back to the stored snapshot, which may be nil.
func (s *Service) Load(
	ctx context.Context,
	symbol string,
	resolution domain.Resolution,
) ([]domain.Candle, error) {
	candles, err := s.feed.Candles(ctx, symbol, resolution)
	if err != nil {
		log.WithField("symbol", symbol).
			Warnf("feed unavailable, falling back to stored snapshot: %v", err)
		return s.store.Last(ctx, symbol, resolution)
	}

	if err := s.store.Save(ctx, symbol, resolution, candles); err != nil {
		// Serving the fresh snapshot matters more than caching it.
		log.WithField("symbol", symbol).Errorf("can't cache snapshot: %v", err)
	}

	return candles, nil
}

// Watch polls the current selection until the context is done and hands
// every loaded snapshot to apply. The first load happens immediately.
func (s *Service) Watch(
	ctx context.Context,
	interval time.Duration,
	apply func(symbol string, candles []domain.Candle),
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		symbol, resolution := s.Selection()
		candles, err := s.Load(ctx, symbol, resolution)
		if err != nil {
			log.WithField("symbol", symbol).Errorf("can't load snapshot: %v", err)
		} else {
			apply(symbol, candles)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
