package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// srv is a stand-in for the exchange's kline endpoint, for running the
// dashboard offline: MEXC_BASE_URL=http://localhost:8080 client.
func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	mux := http.NewServeMux()
	mux.Handle(klinePath, newKlineHandler(time.Now, time.Now().UnixNano()))

	log.Info().Str("addr", *addr).Msg("mock exchange listening")
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal().Err(err).Msg("failed to serve")
	}
}
