package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorStaysOnPageWhileRoomRemains(t *testing.T) {
	cur := newCursor(25, 252)

	assert.False(t, cur.ensure(rowHeight))
	cur.advance(rowHeight)
	assert.Equal(t, 35.0, cur.pos())
	assert.Equal(t, 0, cur.breaks)
}

func TestCursorBreaksWhenRowWouldOverflow(t *testing.T) {
	cur := newCursor(25, 252)
	cur.moveTo(250)

	broke := cur.ensure(rowHeight)

	assert.True(t, broke)
	assert.Equal(t, 25.0, cur.pos(), "cursor resets to the top of the fresh page")
	assert.Equal(t, 1, cur.breaks)
}

func TestCursorRowCapacityPerPage(t *testing.T) {
	// Page one starts lower (header/metadata above the table); continuation
	// pages start at the cursor top. Every row must land fully above bottom.
	cur := newCursor(25, 252)
	cur.moveTo(106) // table start under the page-one header

	rows := 500
	breaks := 0
	rowsOnPage := 0
	for i := 0; i < rows; i++ {
		if cur.ensure(rowHeight) {
			breaks++
			rowsOnPage = 0
		}
		assert.LessOrEqual(t, cur.pos()+rowHeight, 252.0, "row %d crosses the page boundary", i)
		cur.advance(rowHeight)
		rowsOnPage++
	}

	assert.Greater(t, breaks, 0)
	// Continuation pages hold floor((252-25)/10) = 22 rows.
	assert.LessOrEqual(t, rowsOnPage, 22)
}

func TestCursorExactFitDoesNotBreak(t *testing.T) {
	cur := newCursor(25, 252)
	cur.moveTo(242)

	assert.False(t, cur.ensure(rowHeight), "a row ending exactly at the boundary still fits")
}
