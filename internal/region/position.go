// Package region implements the selection geometry of the grabber: cell
// positions over a vertically scrollable viewport, and the closed set of
// selection shapes (unselected, stream, columnar) that decide what a pair
// of positions selects and which lines a cursor move dirties.
package region

import "fmt"

// Position is the location of a cell within the captured buffer.
//
// X is the 0-based display column, Y the 0-based row within the viewport,
// TopLine the 1-based absolute line number of the viewport's first row.
// Positions are immutable; every transformation returns a new value.
type Position struct {
	X       int
	Y       int
	TopLine int
}

// Line returns the 1-based absolute line number of the position.
func (p Position) Line() int { return p.Y + p.TopLine }

// Moved returns p translated by the given deltas. No bounds checking is
// done; callers enforce validity.
func (p Position) Moved(dx, dy, dtop int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, TopLine: p.TopLine + dtop}
}

// Scrolled returns a position equivalent to p but with the viewport
// scrolled dtop lines. The absolute line stays fixed.
func (p Position) Scrolled(dtop int) Position {
	return p.Moved(0, -dtop, dtop)
}

// ScrolledUp returns a position equivalent to p with TopLine as small as
// legally possible for a viewport of rows rows.
func (p Position) ScrolledUp(rows int) Position {
	return p.Scrolled(-min(p.TopLine-1, rows-1-p.Y))
}

// ScrolledDown returns a position equivalent to p with TopLine as large as
// possible for a viewport of rows rows over a buffer of lines lines.
func (p Position) ScrolledDown(rows, lines int) Position {
	return p.Scrolled(min(lines-rows+1-p.TopLine, p.Y))
}

// ScrolledTowards returns a position equivalent to p, scrolled to reveal
// other. If p and other fit within a single viewport of rows rows, the
// scroll is the minimum needed to make both visible. Otherwise the scroll
// is maximal towards other, clamped to the buffer of lines lines.
func (p Position) ScrolledTowards(other Position, rows, lines int) Position {
	switch {
	case other.Line() <= p.Line()-rows: // above, unreachable
		return p.ScrolledUp(rows)
	case other.Line() >= p.Line()+rows: // below, unreachable
		return p.ScrolledDown(rows, lines)
	case other.Line() < p.TopLine: // above, reachable
		return p.Scrolled(other.Line() - p.TopLine)
	case other.Line() > p.TopLine+rows-1: // below, reachable
		return p.Scrolled(other.Line() - p.TopLine - rows + 1)
	}
	return p // both visible
}

// Less reports whether p precedes q in buffer order. Order is solely a
// function of (absolute line, column); two positions describing the same
// cell under different scroll offsets compare equal.
func (p Position) Less(q Position) bool {
	if p.Line() != q.Line() {
		return p.Line() < q.Line()
	}
	return p.X < q.X
}

// Same reports whether p and q name the same buffer cell, regardless of
// how the viewport is scrolled.
func (p Position) Same(q Position) bool {
	return p.Line() == q.Line() && p.X == q.X
}

// Order returns a and b sorted into buffer order.
func Order(a, b Position) (start, end Position) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d+%d", p.X, p.Y, p.TopLine)
}
