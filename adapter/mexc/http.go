package mexc

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/yitech/klineterm/adapter"
	"github.com/yitech/klineterm/model/candle"
)

const (
	exchange  = "mexc"
	klinePath = "/open/api/v2/market/kline"
)

// klineURL interpolates symbol and interval verbatim; both come from the
// operator's configuration.
func klineURL(baseURL, symbol, interval string) string {
	return fmt.Sprintf("%s%s?symbol=%s&interval=%s", baseURL, klinePath, symbol, interval)
}

// fetchKlines performs a single GET against the kline endpoint.
//
// MEXC envelope:
//
//	{"code": 0, "data": [{"timestamp": 1669899600, "open": "100", ...}, ...]}
//
// Price fields may arrive as strings or numbers; see candle.DecodeNumber.
func fetchKlines(ctx context.Context, client *http.Client, baseURL, symbol, interval string) (*candle.MarketResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, klineURL(baseURL, symbol, interval), nil)
	if err != nil {
		return nil, transportErr(fmt.Errorf("build request: %w", err))
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, transportErr(fmt.Errorf("http get: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, transportErr(fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportErr(fmt.Errorf("read body: %w", err))
	}

	out, err := candle.DecodeResponse(body)
	if err != nil {
		return nil, &adapter.FetchError{Kind: adapter.KindDecode, Exchange: exchange, Err: fmt.Errorf("decode response: %w", err)}
	}
	if out.Code != 0 {
		return nil, &adapter.FetchError{Kind: adapter.KindAPI, Exchange: exchange, Err: fmt.Errorf("api code %d", out.Code)}
	}
	return out, nil
}

func transportErr(err error) error {
	return &adapter.FetchError{Kind: adapter.KindTransport, Exchange: exchange, Err: err}
}
