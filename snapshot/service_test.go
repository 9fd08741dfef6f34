package snapshot

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/novatechnologies/chartview/domain"
)

type stubFeed struct {
	candles []domain.Candle
	err     error
	calls   int
}

func (f *stubFeed) Candles(
	_ context.Context, _ string, _ domain.Resolution,
) ([]domain.Candle, error) {
	f.calls++
	return f.candles, f.err
}

type stubStore struct {
	saved   []domain.Candle
	last    []domain.Candle
	saveErr error
}

func (s *stubStore) Save(
	_ context.Context, _ string, _ domain.Resolution, candles []domain.Candle,
) error {
	s.saved = candles
	return s.saveErr
}

func (s *stubStore) Last(
	_ context.Context, _ string, _ domain.Resolution,
) ([]domain.Candle, error) {
	return s.last, nil
}

func TestService_Load(t *testing.T) {
	fresh := []domain.Candle{{Timestamp: 1700000000, Close: 1.5}}
	feedStub := &stubFeed{candles: fresh}
	store := &stubStore{}
	service := NewService(feedStub, store)

	candles, err := service.Load(context.Background(), "BTC-USDT", domain.Candle1HResolution)

	require.NoError(t, err)
	assert.Equal(t, fresh, candles)
	assert.Equal(t, fresh, store.saved, "fresh snapshot must be cached")
}

func TestService_Load_FeedDownFallsBackToStore(t *testing.T) {
	cached := []domain.Candle{{Timestamp: 1700000000, Close: 2.5}}
	feedStub := &stubFeed{err: errors.New("feed down")}
	store := &stubStore{last: cached}
	service := NewService(feedStub, store)

	candles, err := service.Load(context.Background(), "BTC-USDT", domain.Candle1HResolution)

	require.NoError(t, err)
	assert.Equal(t, cached, candles)
	assert.Nil(t, store.saved)
}

func TestService_Load_SaveFailureStillServes(t *testing.T) {
	fresh := []domain.Candle{{Timestamp: 1700000000, Close: 1.5}}
	feedStub := &stubFeed{candles: fresh}
	store := &stubStore{saveErr: errors.New("mongo down")}
	service := NewService(feedStub, store)

	candles, err := service.Load(context.Background(), "BTC-USDT", domain.Candle1HResolution)

	require.NoError(t, err)
	assert.Equal(t, fresh, candles)
}

func TestService_Selection(t *testing.T) {
	service := NewService(&stubFeed{}, &stubStore{})

	service.SetSelection("MSFT", domain.Candle5MResolution)

	symbol, resolution := service.Selection()
	assert.Equal(t, "MSFT", symbol)
	assert.Equal(t, domain.Candle5MResolution, resolution)
}
