package candle

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMissingField is returned when the envelope or a candle lacks a required
// field, or carries null for it.
var ErrMissingField = errors.New("missing field")

// CandleStick is one OHLCV sample as returned by the kline endpoint.
// Timestamp is in seconds since the Unix epoch.
type CandleStick struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	Close     float64 `json:"close"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Volume    float64 `json:"volume"`
	Amount    float64 `json:"amount"`
}

// MarketResponse is the kline response envelope. Data keeps the order the
// exchange sent it in.
type MarketResponse struct {
	Code int           `json:"code"`
	Data []CandleStick `json:"data"`
}

// wireCandle holds the numeric fields undecoded so each one can go through
// DecodeNumber.
type wireCandle struct {
	Timestamp *int64          `json:"timestamp"`
	Open      json.RawMessage `json:"open"`
	Close     json.RawMessage `json:"close"`
	High      json.RawMessage `json:"high"`
	Low       json.RawMessage `json:"low"`
	Volume    json.RawMessage `json:"volume"`
	Amount    json.RawMessage `json:"amount"`
}

// UnmarshalJSON accepts each price field as either a JSON number or a
// string holding one.
func (c *CandleStick) UnmarshalJSON(b []byte) error {
	var w wireCandle
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	if w.Timestamp == nil {
		return fmt.Errorf("candle: %w: timestamp", ErrMissingField)
	}

	out := CandleStick{Timestamp: *w.Timestamp}
	fields := []struct {
		name string
		raw  json.RawMessage
		dst  *float64
	}{
		{"open", w.Open, &out.Open},
		{"close", w.Close, &out.Close},
		{"high", w.High, &out.High},
		{"low", w.Low, &out.Low},
		{"volume", w.Volume, &out.Volume},
		{"amount", w.Amount, &out.Amount},
	}
	for _, f := range fields {
		v, err := DecodeNumber(f.raw)
		if err != nil {
			return fmt.Errorf("candle %d: %s: %w", out.Timestamp, f.name, err)
		}
		*f.dst = v
	}

	*c = out
	return nil
}

// Time returns the sample's open time in UTC.
func (c CandleStick) Time() time.Time {
	return time.Unix(c.Timestamp, 0).UTC()
}

// wireResponse tells absent or null envelope fields apart from zero values.
type wireResponse struct {
	Code *int           `json:"code"`
	Data *[]CandleStick `json:"data"`
}

// DecodeResponse parses a kline response body. code must be present, and a
// success (code 0) must carry a non-null data array. Any malformed candle
// fails the whole response.
func DecodeResponse(body []byte) (*MarketResponse, error) {
	var w wireResponse
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, err
	}
	if w.Code == nil {
		return nil, fmt.Errorf("response: %w: code", ErrMissingField)
	}
	resp := &MarketResponse{Code: *w.Code}
	if w.Data != nil {
		resp.Data = *w.Data
	} else if resp.Code == 0 {
		return nil, fmt.Errorf("response: %w: data", ErrMissingField)
	}
	return resp, nil
}
