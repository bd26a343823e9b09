package adapter

import (
	"context"
	"fmt"

	"github.com/yitech/klineterm/model/candle"
)

// Adapter defines the contract for exchange market-data adapters.
type Adapter interface {
	// FetchKlines performs exactly one request for symbol/interval and
	// returns the fully decoded response or a *FetchError.
	FetchKlines(ctx context.Context, symbol, interval string) (*candle.MarketResponse, error)
}

// Kind classifies why a fetch failed.
type Kind int

const (
	// KindTransport covers connection failures and non-2xx HTTP statuses.
	KindTransport Kind = iota + 1
	// KindDecode means the body did not have the expected shape.
	KindDecode
	// KindAPI means the exchange answered with a nonzero code.
	KindAPI
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// FetchError is the error type returned by every Adapter.
type FetchError struct {
	Kind     Kind
	Exchange string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Exchange, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
