package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cond measures box-drawing characters as one column regardless of locale.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Pad appends fill until text occupies width terminal columns. Text wider
// than width is truncated.
func Pad(text string, width int, fill string) string {
	if width <= 0 {
		return ""
	}

	w := cond.StringWidth(text)
	if w >= width {
		return cond.Truncate(text, width, "")
	}

	fw := cond.StringWidth(fill)
	if fw == 0 {
		return text
	}
	return text + strings.Repeat(fill, (width-w)/fw)
}

// Width is the display width of s.
func Width(s string) int {
	return cond.StringWidth(s)
}
