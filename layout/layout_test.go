package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnWidth(t *testing.T) {
	for w := MinWidth; w <= 400; w++ {
		got := ColumnWidth(w)
		assert.Equal(t, (w-3)/5-1, got, "width %d", w)
		assert.GreaterOrEqual(t, got, 0, "width %d", w)
		// five cells plus their borders and the margin never overflow
		assert.LessOrEqual(t, 2+Columns*(got+1), w, "width %d", w)
	}
}

func TestColumnWidth_BelowMinimum(t *testing.T) {
	for _, w := range []int{-5, 0, 1, 3, 7} {
		assert.Equal(t, 0, ColumnWidth(w), "width %d", w)
	}
}

func TestColumnWidth_Examples(t *testing.T) {
	assert.Equal(t, 0, ColumnWidth(8))
	assert.Equal(t, 14, ColumnWidth(80))
	assert.Equal(t, 22, ColumnWidth(120))
}

func TestVisibleRowCount(t *testing.T) {
	assert.Equal(t, 17, VisibleRowCount(24, ReservedRows))
	assert.Equal(t, 0, VisibleRowCount(7, ReservedRows))
	assert.Equal(t, 0, VisibleRowCount(3, ReservedRows))
	assert.Equal(t, 10, VisibleRowCount(10, 0))
}

func TestNew(t *testing.T) {
	s := New(120, 30)
	assert.Equal(t, Spec{Width: 120, Height: 30, ColumnWidth: 22, VisibleRows: 23}, s)
	assert.True(t, s.Fits())

	assert.False(t, New(7, 30).Fits())
	assert.False(t, New(120, 7).Fits())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(MinWidth, MinHeight))
	assert.ErrorIs(t, Validate(MinWidth-1, 40), ErrTooSmall)
	assert.ErrorIs(t, Validate(80, MinHeight-1), ErrTooSmall)
}
