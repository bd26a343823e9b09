// Package layout derives the dashboard table geometry from the terminal size.
package layout

import (
	"errors"
	"fmt"
)

const (
	// Columns is the number of table columns: date, open, close, high, low.
	Columns = 5

	// MinWidth is the narrowest terminal for which ColumnWidth is non-negative.
	MinWidth = 8

	// ReservedRows counts the lines drawn around the data rows:
	// title, spacer, header border, closing border, two help lines, status.
	ReservedRows = 7

	// MinHeight leaves room for at least one data row.
	MinHeight = ReservedRows + 1
)

// ErrTooSmall is returned by Validate for terminals below MinWidth/MinHeight.
var ErrTooSmall = errors.New("terminal too small")

// Spec is the table geometry for one render pass.
type Spec struct {
	Width       int
	Height      int
	ColumnWidth int
	VisibleRows int
}

// New computes the Spec for a width x height terminal.
func New(width, height int) Spec {
	return Spec{
		Width:       width,
		Height:      height,
		ColumnWidth: ColumnWidth(width),
		VisibleRows: VisibleRowCount(height, ReservedRows),
	}
}

// Fits reports whether the terminal is large enough to draw the table.
func (s Spec) Fits() bool {
	return s.Width >= MinWidth && s.Height >= MinHeight
}

// ColumnWidth is (width-3)/Columns - 1, clamped at zero. The 3 accounts for
// the leading margin, the left border and one spare column.
func ColumnWidth(width int) int {
	if width < MinWidth {
		return 0
	}
	return (width-3)/Columns - 1
}

// VisibleRowCount is height minus reservedRows, clamped at zero.
func VisibleRowCount(height, reservedRows int) int {
	return max(height-reservedRows, 0)
}

// Validate reports ErrTooSmall when the terminal cannot hold the table.
func Validate(width, height int) error {
	if width < MinWidth || height < MinHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, width, height, MinWidth, MinHeight)
	}
	return nil
}
