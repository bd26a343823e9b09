// Package render turns a kline response and a layout into terminal lines.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/yitech/klineterm/layout"
	"github.com/yitech/klineterm/model/candle"
)

const (
	dateFormat     = "2006-01-02 15:04:05"
	loadingMessage = "Fetching data..."
)

var headers = [layout.Columns]string{" Date ", " Open ", " Close ", " High ", " Low "}

// Frame carries the text that surrounds the table.
type Frame struct {
	Symbol   string
	Interval string
	Help     string
	Status   string
}

// Title is the caption drawn above the table.
func (f Frame) Title() string {
	return fmt.Sprintf("%s -- %s", f.Symbol, f.Interval)
}

// Dashboard renders the full table screen. It always emits exactly
// l.VisibleRows data lines; rows without a candle are blank. resp may be nil.
// No line is wider than l.Width.
func (f Frame) Dashboard(resp *candle.MarketResponse, l layout.Spec) []string {
	lines := make([]string, 0, layout.ReservedRows+l.VisibleRows)

	lines = append(lines,
		Pad(lipgloss.PlaceHorizontal(l.Width, lipgloss.Center, f.Title()), l.Width, " "),
		"",
		border("┌", "┬", "┐", headers[:], l.ColumnWidth),
	)

	var data []candle.CandleStick
	if resp != nil {
		data = resp.Data
	}
	for i := 0; i < l.VisibleRows; i++ {
		if i < len(data) {
			lines = append(lines, Row(data[i], l.ColumnWidth))
		} else {
			lines = append(lines, "")
		}
	}

	lines = append(lines,
		border("└", "┴", "┘", make([]string, layout.Columns), l.ColumnWidth),
		Pad("  Commands:", l.Width, ""),
		Pad("  "+f.Help, l.Width, ""),
		Pad("  "+f.Status, l.Width, ""),
	)
	return lines
}

// Loading renders the screen shown while a fetch is in flight.
func (f Frame) Loading(l layout.Spec) []string {
	return centered(loadingMessage, l)
}

// TooSmall renders the screen shown when the terminal shrinks below the
// minimum size.
func (f Frame) TooSmall(l layout.Spec) []string {
	msg := fmt.Sprintf("Terminal too small (%dx%d, need %dx%d)", l.Width, l.Height, layout.MinWidth, layout.MinHeight)
	return centered(msg, l)
}

// Row renders one candle as a bordered table line.
func Row(c candle.CandleStick, columnWidth int) string {
	cells := []string{
		FormatDate(c.Time()),
		FormatPrice(c.Open),
		FormatPrice(c.Close),
		FormatPrice(c.High),
		FormatPrice(c.Low),
	}
	for i, cell := range cells {
		cells[i] = Pad(cell, columnWidth, " ")
	}
	return " │" + strings.Join(cells, "│") + "│"
}

// FormatDate renders t in UTC as "2006-01-02 15:04:05".
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateFormat)
}

// FormatPrice renders v with the fewest digits that represent it exactly.
func FormatPrice(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).String()
}

func border(left, sep, right string, labels []string, columnWidth int) string {
	cells := make([]string, len(labels))
	for i, label := range labels {
		cells[i] = Pad(label, columnWidth, "─")
	}
	return " " + left + strings.Join(cells, sep) + right
}

func centered(msg string, l layout.Spec) []string {
	if l.Width <= 0 || l.Height <= 0 {
		return []string{msg}
	}
	return strings.Split(lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, msg), "\n")
}
