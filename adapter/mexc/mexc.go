package mexc

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/yitech/klineterm/adapter"
	"github.com/yitech/klineterm/model/candle"
)

// DefaultBaseURL is the public MEXC REST host.
const DefaultBaseURL = "https://www.mexc.com"

// Adapter is the MEXC exchange adapter.
type Adapter struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

var _ adapter.Adapter = (*Adapter)(nil)

// New returns an Adapter for baseURL. A nil httpClient uses
// http.DefaultClient. rps caps outgoing requests per second; rps <= 0
// disables the cap.
func New(baseURL string, httpClient *http.Client, rps float64) *Adapter {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Adapter{
		httpClient: httpClient,
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// FetchKlines requests the latest klines for symbol/interval.
func (a *Adapter) FetchKlines(ctx context.Context, symbol, interval string) (*candle.MarketResponse, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, &adapter.FetchError{Kind: adapter.KindTransport, Exchange: exchange, Err: err}
	}

	log.Debug().Str("symbol", symbol).Str("interval", interval).Msg("mexc: fetching klines")

	resp, err := fetchKlines(ctx, a.httpClient, a.baseURL, symbol, interval)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Str("interval", interval).Msg("mexc: fetch failed")
		return nil, err
	}

	log.Info().Str("symbol", symbol).Str("interval", interval).Int("candles", len(resp.Data)).Msg("mexc: fetched klines")
	return resp, nil
}
