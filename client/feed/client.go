// Package feed fetches candle snapshots from the exchange chart API. The
// core treats every response as a fresh immutable snapshot; nothing here is
// incremental.
package feed

import (
	"context"
	"net/url"
	"time"

	"github.com/go-http-utils/headers"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"bitbucket.org/novatechnologies/chartview/domain"
)

const (
	uriPathCandles = "/api/candles"

	defaultTimeout    = 4 * time.Second
	defaultRetryCount = 2
)

type Client interface {
	Candles(ctx context.Context, symbol string, resolution domain.Resolution) ([]domain.Candle, error)
}

type Config struct {
	ServerURL  string
	Token      string
	Timeout    *time.Duration
	RetryCount *int
}

type client struct {
	cli *resty.Client
}

func New(config Config) (Client, error) {
	if _, err := url.Parse(config.ServerURL); err != nil {
		return nil, errors.Wrap(err, "failed to parse server url")
	}

	cli := resty.New()
	cli.SetBaseURL(config.ServerURL)
	cli.SetHeader(headers.Accept, "application/json")
	if config.Token != "" {
		cli.SetHeader(headers.Authorization, "Bearer "+config.Token)
	}

	cli.SetTimeout(defaultTimeout)
	if config.Timeout != nil {
		cli.SetTimeout(*config.Timeout)
	}
	cli.SetRetryCount(defaultRetryCount)
	if config.RetryCount != nil {
		cli.SetRetryCount(*config.RetryCount)
	}

	return &client{cli: cli}, nil
}

// chartPayload is the upstream wire format: parallel arrays with decimal
// string prices.
type chartPayload struct {
	O []string `json:"o"`
	H []string `json:"h"`
	L []string `json:"l"`
	C []string `json:"c"`
	T []int64  `json:"t"`
}

func (c *client) Candles(
	ctx context.Context,
	symbol string,
	resolution domain.Resolution,
) ([]domain.Candle, error) {
	var payload chartPayload

	resp, err := c.cli.R().
		SetContext(ctx).
		SetQueryParam("market", symbol).
		SetQueryParam("resolution", string(resolution)).
		SetResult(&payload).
		Get(uriPathCandles)
	if err != nil {
		return nil, errors.Wrap(err, "can't fetch candles for "+symbol)
	}
	if resp.IsError() {
		return nil, errors.Errorf(
			"candles request for %s failed with status %d", symbol, resp.StatusCode(),
		)
	}

	return decodeChart(payload)
}

func decodeChart(payload chartPayload) ([]domain.Candle, error) {
	n := len(payload.T)
	if len(payload.O) != n || len(payload.H) != n ||
		len(payload.L) != n || len(payload.C) != n {
		return nil, errors.New("malformed chart payload: column lengths differ")
	}

	candles := make([]domain.Candle, 0, n)
	for i := 0; i < n; i++ {
		open, err := parsePrice(payload.O[i])
		if err != nil {
			return nil, errors.Wrapf(err, "can't parse open at %d", i)
		}
		high, err := parsePrice(payload.H[i])
		if err != nil {
			return nil, errors.Wrapf(err, "can't parse high at %d", i)
		}
		low, err := parsePrice(payload.L[i])
		if err != nil {
			return nil, errors.Wrapf(err, "can't parse low at %d", i)
		}
		cls, err := parsePrice(payload.C[i])
		if err != nil {
			return nil, errors.Wrapf(err, "can't parse close at %d", i)
		}

		candles = append(candles, domain.Candle{
			Timestamp: payload.T[i],
			Open:      open,
			High:      high,
			Low:       low,
			Close:     cls,
		})
	}

	return candles, nil
}

func parsePrice(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
