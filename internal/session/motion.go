package session

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xonecas/snag/internal/region"
	"github.com/xonecas/snag/internal/textwidth"
)

// motion computes the candidate position for a named motion. Motions
// never mutate the session; boundary violations degrade to no-ops.
func (s *Session) motion(name string) region.Position {
	switch name {
	case "left":
		return s.left()
	case "right":
		return s.right()
	case "up":
		return s.up()
	case "down":
		return s.down()
	case "page up":
		return s.pageUp()
	case "page down":
		return s.pageDown()
	case "first":
		return s.first()
	case "first nonwhite":
		return s.firstNonwhite()
	case "last nonwhite":
		return s.lastNonwhite()
	case "last":
		return s.last()
	case "top":
		return s.top()
	case "bottom":
		return s.bottom()
	case "word left":
		return s.wordLeft()
	case "word right":
		return s.wordRight()
	}
	return s.point // noop
}

func (s *Session) left() region.Position {
	if s.point.X > 0 {
		return s.point.Moved(-1, 0, 0)
	}
	return s.point
}

func (s *Session) right() region.Position {
	if s.point.X+1 < s.cols {
		return s.point.Moved(1, 0, 0)
	}
	return s.point
}

func (s *Session) up() region.Position {
	switch {
	case s.point.Y > 0:
		return s.point.Moved(0, -1, 0)
	case s.point.TopLine > 1:
		return s.point.Moved(0, 0, -1)
	}
	return s.point
}

func (s *Session) down() region.Position {
	if s.point.Line() >= len(s.lines) {
		return s.point
	}
	if s.point.Y+1 < s.rows {
		return s.point.Moved(0, 1, 0)
	}
	return s.point.Moved(0, 0, 1)
}

// pageLines is the buffer length page motion clamps against. A buffer
// shorter than the viewport behaves as if it filled the screen.
func (s *Session) pageLines() int {
	return max(s.rows, len(s.lines))
}

func (s *Session) pageUp() region.Position {
	return s.shape.PageUp(s.mark, s.point, s.rows, s.pageLines())
}

func (s *Session) pageDown() region.Position {
	return s.clampToBuffer(s.shape.PageDown(s.mark, s.point, s.rows, s.pageLines()))
}

// clampToBuffer pulls the row back up when a motion landed below the last
// buffer line. Short buffers leave the bottom viewport rows empty, so the
// page-motion snap to the bottom row can overshoot.
func (s *Session) clampToBuffer(p region.Position) region.Position {
	if over := p.Line() - len(s.lines); over > 0 {
		p.Y -= over
	}
	return p
}

func (s *Session) first() region.Position {
	return region.Position{X: 0, Y: s.point.Y, TopLine: s.point.TopLine}
}

// last targets the column one past the viewport's right edge so that a
// stream selection through it takes the whole line.
func (s *Session) last() region.Position {
	return region.Position{X: s.cols, Y: s.point.Y, TopLine: s.point.TopLine}
}

func (s *Session) firstNonwhite() region.Position {
	plain := s.Plain(s.point.Line())
	prefix := plain[:len(plain)-len(strings.TrimLeftFunc(plain, unicode.IsSpace))]
	return region.Position{X: textwidth.StringWidth(prefix), Y: s.point.Y, TopLine: s.point.TopLine}
}

func (s *Session) lastNonwhite() region.Position {
	plain := strings.TrimRightFunc(s.Plain(s.point.Line()), unicode.IsSpace)
	return region.Position{X: textwidth.StringWidth(plain), Y: s.point.Y, TopLine: s.point.TopLine}
}

func (s *Session) top() region.Position {
	return region.Position{X: 0, Y: 0, TopLine: 1}
}

func (s *Session) bottom() region.Position {
	x := textwidth.StringWidth(s.Plain(len(s.lines)))
	y := min(len(s.lines)-s.point.TopLine, s.rows-1)
	return region.Position{X: x, Y: y, TopLine: len(s.lines) - y}
}

// isWordRune classifies a rune as word-constituent: Unicode letters and
// numbers, plus the configured extra word characters.
func (s *Session) isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || strings.ContainsRune(s.wordChars, r)
}

// wordLeft skips backward over a maximal run of the class of the rune
// left of the cursor. At column 0 it moves to the end of the previous
// line, scrolling if that line is off screen.
func (s *Session) wordLeft() region.Position {
	p := s.point
	if p.X > 0 {
		plain := s.Plain(p.Line())
		pos := textwidth.TruncatePoint(plain, p.X)
		r, _ := utf8.DecodeLastRuneInString(plain[:pos])
		inWord := s.isWordRune(r)
		for pos > 0 {
			r, size := utf8.DecodeLastRuneInString(plain[:pos])
			if s.isWordRune(r) != inWord {
				break
			}
			pos -= size
		}
		return region.Position{X: textwidth.StringWidth(plain[:pos]), Y: p.Y, TopLine: p.TopLine}
	}
	if p.Y > 0 {
		return region.Position{X: textwidth.StringWidth(s.Plain(p.Line() - 1)), Y: p.Y - 1, TopLine: p.TopLine}
	}
	if p.TopLine > 1 {
		return region.Position{X: textwidth.StringWidth(s.Plain(p.Line() - 1)), Y: p.Y, TopLine: p.TopLine - 1}
	}
	return p
}

// wordRight is the forward counterpart: skip over the run starting at the
// cursor, or cross to the start of the next line at end of line.
func (s *Session) wordRight() region.Position {
	p := s.point
	plain := s.Plain(p.Line())
	pos := textwidth.TruncatePoint(plain, p.X)
	if pos < len(plain) {
		r, _ := utf8.DecodeRuneInString(plain[pos:])
		inWord := s.isWordRune(r)
		for pos < len(plain) {
			r, size := utf8.DecodeRuneInString(plain[pos:])
			if s.isWordRune(r) != inWord {
				break
			}
			pos += size
		}
		return region.Position{X: textwidth.StringWidth(plain[:pos]), Y: p.Y, TopLine: p.TopLine}
	}
	if p.Y+1 < s.rows && p.Line() < len(s.lines) {
		return region.Position{X: 0, Y: p.Y + 1, TopLine: p.TopLine}
	}
	if p.Y+1 >= s.rows && p.Line() < len(s.lines) {
		return region.Position{X: 0, Y: p.Y, TopLine: p.TopLine + 1}
	}
	return p
}
