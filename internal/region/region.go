package region

// Region is one of the three selection shapes. Implementations are
// stateless; every method is a pure function of its arguments. The set is
// closed: Unselected, Stream and Columnar are the only implementations.
type Region interface {
	// Name is the shape's display name.
	Name() string

	// UsesMark reports whether the shape anchors a selection at a mark.
	UsesMark() bool

	// Adjust returns the normalized marker pair equivalent to start and
	// end. Normalization is shape-specific.
	Adjust(start, end Position) (Position, Position)

	// LineInside reports whether line is entirely inside the selection
	// bounded by start and end.
	LineInside(line int, start, end Position) bool

	// LineOutside reports whether line is entirely outside the selection
	// bounded by start and end.
	LineOutside(line int, start, end Position) bool

	// SelectionInLine returns the column bounds [startX, endX) of the
	// selected part of line, where maxx is the display width of the
	// line's text. ok is false when nothing on the line is selected.
	SelectionInLine(line int, start, end Position, maxx int) (startX, endX int, ok bool)

	// LinesAffected returns the absolute lines that must be redrawn when
	// the point moves from old to point with the given mark.
	LinesAffected(mark *Position, old, point Position) []int

	// PageUp returns the position one page up from point over a viewport
	// of rows rows and a buffer of lines lines.
	PageUp(mark *Position, point Position, rows, lines int) Position

	// PageDown is the downward counterpart of PageUp.
	PageDown(mark *Position, point Position, rows, lines int) Position
}

// The three selection shapes.
var (
	Unselected Region = unselected{}
	Stream     Region = stream{}
	Columnar   Region = columnar{}
)

// span returns the inclusive run of absolute lines covering every
// argument, excluding except (pass a line outside the run, such as 0, to
// exclude nothing).
func span(except int, lines ...int) []int {
	lo, hi := lines[0], lines[0]
	for _, l := range lines[1:] {
		lo, hi = min(lo, l), max(hi, l)
	}
	out := make([]int, 0, hi-lo+1)
	for l := lo; l <= hi; l++ {
		if l != except {
			out = append(out, l)
		}
	}
	return out
}

// base supplies the shape-independent defaults: no selection geometry and
// plain page motion that ignores the mark.
type base struct{}

func (base) Adjust(start, end Position) (Position, Position) { return start, end }

func (base) LineInside(line int, start, end Position) bool { return false }

func (base) LineOutside(line int, start, end Position) bool {
	return line < start.Line() || end.Line() < line
}

func (base) SelectionInLine(line int, start, end Position, maxx int) (int, int, bool) {
	return 0, 0, false
}

func (base) LinesAffected(mark *Position, old, point Position) []int { return nil }

func (base) PageUp(mark *Position, point Position, rows, lines int) Position {
	return pageUp(point, rows)
}

func (base) PageDown(mark *Position, point Position, rows, lines int) Position {
	return pageDown(point, rows, lines)
}

// pageUp moves the point to the top row of the viewport, or scrolls one
// page up when already there. TopLine never drops below 1.
func pageUp(point Position, rows int) Position {
	if point.Y > 0 {
		return Position{X: point.X, Y: 0, TopLine: point.TopLine}
	}
	return Position{X: point.X, Y: 0, TopLine: max(1, point.TopLine-rows+1)}
}

// pageDown moves the point to the bottom row of the viewport, or scrolls
// one page down when already there, clamped to the end of the buffer.
func pageDown(point Position, rows, lines int) Position {
	maxy := rows - 1
	if point.Y < maxy {
		return Position{X: point.X, Y: maxy, TopLine: point.TopLine}
	}
	return Position{X: point.X, Y: maxy, TopLine: min(lines-maxy, point.TopLine+maxy)}
}

// ---------------------------------------------------------------------------
// Unselected
// ---------------------------------------------------------------------------

type unselected struct{ base }

func (unselected) Name() string   { return "unselected" }
func (unselected) UsesMark() bool { return false }

// LineOutside always reports false: with no selection nothing is drawn as
// selected, but no line is excluded from plain redraws either.
func (unselected) LineOutside(line int, start, end Position) bool { return false }

// ---------------------------------------------------------------------------
// marked: shared behavior of the mark-using shapes
// ---------------------------------------------------------------------------

// marked overrides page motion to keep as much of the selection visible as
// possible: after the plain page move, scroll as little as possible to
// bring both mark and point on screen, or failing that, as much as
// possible towards the mark while keeping the point on screen.
type marked struct{ base }

func (marked) UsesMark() bool { return true }

func (m marked) PageUp(mark *Position, point Position, rows, lines int) Position {
	mustMark(mark)
	return pageUp(point, rows).ScrolledTowards(*mark, rows, lines)
}

func (m marked) PageDown(mark *Position, point Position, rows, lines int) Position {
	mustMark(mark)
	return pageDown(point, rows, lines).ScrolledTowards(*mark, rows, lines)
}

// mustMark enforces the internal contract that mark-using shapes are never
// consulted without a mark. Reaching this with nil is a programming error,
// not a user-facing condition.
func mustMark(mark *Position) {
	if mark == nil {
		panic("region: mark-using shape invoked without a mark")
	}
}

// ---------------------------------------------------------------------------
// Stream
// ---------------------------------------------------------------------------

type stream struct{ marked }

func (stream) Name() string { return "stream" }

func (s stream) LineInside(line int, start, end Position) bool {
	return start.Line() < line && line < end.Line()
}

func (s stream) SelectionInLine(line int, start, end Position, maxx int) (int, int, bool) {
	if s.LineOutside(line, start, end) {
		return 0, 0, false
	}
	startX, endX := 0, maxx
	if line == start.Line() {
		startX = start.X
	}
	if line == end.Line() {
		endX = end.X
	}
	return startX, endX, true
}

func (stream) LinesAffected(mark *Position, old, point Position) []int {
	return span(0, old.Line(), point.Line())
}

// ---------------------------------------------------------------------------
// Columnar
// ---------------------------------------------------------------------------

type columnar struct{ marked }

func (columnar) Name() string { return "columnar" }

// Adjust normalizes the pair so start carries the smaller column and end
// the larger, independent of the line order.
func (columnar) Adjust(start, end Position) (Position, Position) {
	lo, hi := min(start.X, end.X), max(start.X, end.X)
	start.X, end.X = lo, hi
	return start, end
}

func (c columnar) SelectionInLine(line int, start, end Position, maxx int) (int, int, bool) {
	if c.LineOutside(line, start, end) {
		return 0, 0, false
	}
	return start.X, end.X, true
}

// LinesAffected keeps the redraw set minimal for vertical moves: only
// lines whose selection boundary actually changed are returned. A column
// change moves every boundary in the span, so everything between mark and
// both point positions is affected.
func (columnar) LinesAffected(mark *Position, old, point Position) []int {
	mustMark(mark)
	if old.X != point.X {
		return span(0, mark.Line(), old.Line(), point.Line())
	}
	switch {
	case old.Less(*mark) && mark.Less(point), point.Less(*mark) && mark.Less(old):
		// Point passed over the mark: every passed line changed except
		// the mark's own line.
		return span(mark.Line(), old.Line(), point.Line())
	case mark.Less(old) && old.Less(point), point.Less(old) && old.Less(*mark):
		// Point moved away from the mark: the old point line keeps its
		// boundary.
		return span(old.Line(), old.Line(), point.Line())
	default:
		// Point moved towards the mark: the new point line keeps its
		// boundary.
		return span(point.Line(), old.Line(), point.Line())
	}
}
