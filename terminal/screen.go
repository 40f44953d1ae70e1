package terminal

import (
	"io"
	"strings"
)

// ANSI sequences used to repaint the tty.
const (
	ansiHome  = "\x1b[H"
	ansiClear = "\x1b[2J"
)

// screen repaints the console text on a tty when it changes.
type screen struct {
	out   io.Writer
	width int // columns to show; 0 shows full lines
	last  string
	drawn bool
}

// draw repaints text plus a status line if either changed since the last
// call. It reports whether anything was written.
func (s *screen) draw(text, status string) (bool, error) {
	frame := text
	if status != "" {
		frame += "\n\n" + status
	}
	if s.drawn && frame == s.last {
		return false, nil
	}
	s.last = frame
	s.drawn = true

	var b strings.Builder
	b.WriteString(ansiHome)
	b.WriteString(ansiClear)
	for i, line := range strings.Split(frame, "\n") {
		if i > 0 {
			// Raw mode does not turn LF into CRLF.
			b.WriteString("\r\n")
		}
		if s.width > 0 && len(line) > s.width {
			line = line[:s.width]
		}
		b.WriteString(line)
	}

	_, err := io.WriteString(s.out, b.String())
	return true, err
}
