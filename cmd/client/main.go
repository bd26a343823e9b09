package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/yitech/klineterm/adapter/mexc"
	"github.com/yitech/klineterm/config"
	"github.com/yitech/klineterm/dashboard"
	"github.com/yitech/klineterm/logger"
	"github.com/yitech/klineterm/terminal"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	closer, err := logger.Init("klineterm", cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		return 1
	}
	defer closer.Close()

	size, err := terminal.Probe(int(os.Stdout.Fd()))
	if err != nil {
		log.Error().Err(err).Msg("terminal unusable")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	source := mexc.New(cfg.BaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, cfg.RateLimit)

	log.Info().
		Str("symbol", cfg.Symbol).
		Str("interval", cfg.Interval).
		Int("width", size.Width).
		Int("height", size.Height).
		Msg("starting dashboard")

	m := dashboard.New(context.Background(), source, cfg.Symbol, cfg.Interval).WithSize(size.Width, size.Height)

	// bubbletea restores the terminal on every exit path, panics included.
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("tui error")
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		return 1
	}

	log.Info().Msg("dashboard closed")
	return 0
}
