// Package session implements the selection session: the cursor (point),
// the optional selection anchor (mark), the active selection shape and
// mode, and the dispatch of parsed commands into cursor motion, damage
// sets and, on confirmation, the extracted plain text.
//
// The session knows nothing about terminals. It consumes parsed commands
// and produces Redraw values describing the minimal set of buffer lines a
// renderer has to repaint.
package session

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/snag/internal/region"
	"github.com/xonecas/snag/internal/textwidth"
)

// Mode is the modal selection state, vim-style.
type Mode string

const (
	ModeNormal Mode = "normal" // plain moves clear any selection
	ModeVisual Mode = "visual" // plain moves extend a stream selection
	ModeBlock  Mode = "block"  // plain moves extend a columnar selection
)

// Status is the lifecycle state of the session.
type Status int

const (
	Running Status = iota
	Confirmed
	Cancelled
)

// Redraw describes what a renderer must repaint after a command. The zero
// value means the cursor alone moved (or nothing happened).
type Redraw struct {
	// All requests a full viewport repaint.
	All bool
	// Lines are the absolute line numbers to repaint when All is false.
	Lines []int
}

// Session owns the state of one grab. The captured buffer is immutable
// for the session's lifetime; all mutation happens through Apply.
type Session struct {
	lines     []string // styled, 1-based via index+1
	plain     []string // stripped cache, filled lazily
	plainOK   []bool
	rows      int // viewport height; 0 until SetSize
	cols      int // viewport width
	wordChars string

	point  region.Position
	mark   *region.Position
	shape  region.Region
	mode   Mode
	status Status
	result string
}

// New creates a session over the captured styled lines with the cursor at
// start. wordChars are the extra word-constituent characters for word
// motion. The viewport has no size until SetSize is called.
func New(lines []string, start region.Position, wordChars string) *Session {
	return &Session{
		lines:     lines,
		plain:     make([]string, len(lines)),
		plainOK:   make([]bool, len(lines)),
		wordChars: wordChars,
		point:     start,
		shape:     region.Unselected,
		mode:      ModeNormal,
	}
}

// SetSize sets the viewport geometry and clamps the point back into it.
func (s *Session) SetSize(rows, cols int) {
	s.rows, s.cols = rows, cols
	if s.point.Y >= rows {
		// Keep the absolute line fixed, pull the row back on screen.
		s.point = s.point.Scrolled(s.point.Y - rows + 1)
	}
	if s.point.TopLine < 1 {
		s.point.TopLine = 1
	}
}

// Accessors. The renderer reads these; only Apply writes.

func (s *Session) Point() region.Position { return s.point }
func (s *Session) Mark() *region.Position { return s.mark }
func (s *Session) Shape() region.Region   { return s.shape }
func (s *Session) Mode() Mode             { return s.mode }
func (s *Session) Status() Status         { return s.status }
func (s *Session) Rows() int              { return s.rows }
func (s *Session) Cols() int              { return s.cols }
func (s *Session) LineCount() int         { return len(s.lines) }

// Result returns the selected text after a confirm.
func (s *Session) Result() (string, bool) {
	return s.result, s.status == Confirmed
}

// Line returns the styled text of the 1-based absolute line.
func (s *Session) Line(n int) string { return s.lines[n-1] }

// Plain returns the de-styled text of the 1-based absolute line.
func (s *Session) Plain(n int) string {
	if !s.plainOK[n-1] {
		s.plain[n-1] = textwidth.Strip(s.lines[n-1])
		s.plainOK[n-1] = true
	}
	return s.plain[n-1]
}

// StartEnd returns the selection endpoints in buffer order, normalized by
// the active shape. With no mark both endpoints are the point.
func (s *Session) StartEnd() (region.Position, region.Position) {
	other := s.point
	if s.mark != nil {
		other = *s.mark
	}
	start, end := region.Order(s.point, other)
	return s.shape.Adjust(start, end)
}

// Apply dispatches one command and returns the damage it caused. Apply
// before SetSize is a programming error.
func (s *Session) Apply(cmd Command) Redraw {
	if s.rows <= 0 || s.cols <= 0 {
		panic("session: Apply before SetSize")
	}
	log.Debug().
		Str("action", string(cmd.Action)).
		Str("shape", cmd.Shape).
		Str("arg", cmd.Arg).
		Stringer("point", s.point).
		Msg("dispatch")

	switch cmd.Action {
	case ActionQuit:
		s.status = Cancelled
		return Redraw{}
	case ActionConfirm:
		s.result = s.extract()
		s.status = Confirmed
		return Redraw{}
	case ActionScroll:
		dtop := 1
		if cmd.Arg == "up" {
			dtop = -1
		}
		return s.scroll(dtop)
	case ActionSetMode:
		s.mode = Mode(cmd.Arg)
		return s.selectMotion("noop", s.modeShape())
	case ActionMove:
		return s.selectMotion(cmd.Arg, s.modeShape())
	case ActionSelect:
		return s.selectMotion(cmd.Arg, shapeByName(cmd.Shape))
	}
	return Redraw{}
}

func (s *Session) modeShape() region.Region {
	switch s.mode {
	case ModeVisual:
		return region.Stream
	case ModeBlock:
		return region.Columnar
	}
	return region.Unselected
}

func shapeByName(name string) region.Region {
	if name == "columnar" {
		return region.Columnar
	}
	return region.Stream
}

// selectMotion is the common move/select path: flip the active shape if
// needed, run the motion, and compute the damage. Any viewport scroll (or
// a shape flip, which toggles highlighting everywhere) costs a full
// repaint; otherwise only the shape's affected lines are dirty.
func (s *Session) selectMotion(motion string, shape region.Region) Redraw {
	flipped := s.ensureMark(shape)
	old := s.point
	s.point = s.motion(motion)
	if flipped || s.point.TopLine != old.TopLine {
		return Redraw{All: true}
	}
	return Redraw{Lines: s.shape.LinesAffected(s.mark, old, s.point)}
}

// ensureMark activates shape, anchoring or clearing the mark as its
// UsesMark contract requires. An existing mark survives a switch between
// the two mark-using shapes. Reports whether the shape changed.
func (s *Session) ensureMark(shape region.Region) bool {
	changed := shape != s.shape
	s.shape = shape
	if shape.UsesMark() {
		if s.mark == nil {
			m := s.point
			s.mark = &m
		}
	} else {
		s.mark = nil
	}
	return changed
}

// scroll shifts the viewport by dtop without moving the cursor's screen
// position, when the buffer allows it.
func (s *Session) scroll(dtop int) Redraw {
	p := s.point.Moved(0, 0, dtop)
	if p.TopLine < 1 || p.TopLine > 1+len(s.lines)-s.rows {
		return Redraw{}
	}
	s.point = p
	return Redraw{All: true}
}

// extract concatenates the selected text across the marked lines, slicing
// each line's plain text to the shape's column bounds.
func (s *Session) extract() string {
	start, end := s.StartEnd()
	var parts []string
	for line := start.Line(); line <= min(end.Line(), len(s.lines)); line++ {
		plain := s.Plain(line)
		startX, endX, ok := s.shape.SelectionInLine(line, start, end, textwidth.StringWidth(plain))
		if !ok {
			continue
		}
		slice, _ := textwidth.Slice(plain, startX, endX)
		parts = append(parts, slice)
	}
	return strings.Join(parts, "\n")
}
