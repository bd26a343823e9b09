package main

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	klinePath = "/open/api/v2/market/kline"
	numKlines = 100
)

type klineHandler struct {
	now func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func newKlineHandler(now func() time.Time, seed int64) *klineHandler {
	return &klineHandler{now: now, rnd: rand.New(rand.NewSource(seed))}
}

func (h *klineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	interval := r.URL.Query().Get("interval")
	step := intervalToSec(interval)

	log.Info().Str("symbol", symbol).Str("interval", interval).Msg("kline request")

	w.Header().Set("Content-Type", "application/json")
	if symbol == "" || step == 0 {
		writeJSON(w, map[string]any{"code": 400, "msg": "invalid symbol or interval", "data": []any{}})
		return
	}
	writeJSON(w, map[string]any{"code": 0, "data": h.klines(step)})
}

// klines returns numKlines candles, newest first, with prices in a mix of
// string and number encodings.
func (h *klineHandler) klines(step int64) []map[string]any {
	h.mu.Lock()
	defer h.mu.Unlock()

	latest := h.now().Unix() / step * step
	out := make([]map[string]any, 0, numKlines)
	for i := int64(0); i < numKlines; i++ {
		base := 40000 + h.rnd.Float64()*1000
		open := base
		cls := base + h.rnd.Float64()*100 - 50
		high := max(open, cls) + h.rnd.Float64()*200
		low := min(open, cls) - h.rnd.Float64()*200
		vol := h.rnd.Float64() * 100

		out = append(out, map[string]any{
			"timestamp": latest - i*step,
			"open":      price(open),
			"close":     cls,
			"high":      price(high),
			"low":       low,
			"volume":    strconv.FormatFloat(vol, 'f', 4, 64),
			"amount":    strconv.FormatFloat(vol*base, 'f', 2, 64),
		})
	}
	return out
}

func price(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write response")
	}
}

// intervalToSec converts an interval such as 1m, 15m, 1h, 1d, 1w or 1M to
// seconds. Unknown intervals return 0.
func intervalToSec(interval string) int64 {
	const minute = 60
	if len(interval) < 2 {
		return 0
	}

	unit := interval[len(interval)-1]
	n, err := strconv.ParseInt(interval[:len(interval)-1], 10, 64)
	if err != nil || n <= 0 {
		return 0
	}

	switch unit {
	case 'm':
		return n * minute
	case 'h', 'H':
		return n * 60 * minute
	case 'd', 'D':
		return n * 24 * 60 * minute
	case 'w', 'W':
		return n * 7 * 24 * 60 * minute
	case 'M':
		return n * 30 * 24 * 60 * minute // approximate
	default:
		return 0
	}
}
