// Package console implements the fixed-size scrolling text console that a
// virtual machine writes its character output into.
package console

import "strings"

// Default grid size. A 256 pixel wide frame shows 32 columns of 8x8 glyphs;
// columns 32..39 are kept in the grid but clipped when rendered.
const (
	DefaultCols = 40
	DefaultRows = 30
)

const (
	codeLF = 10
	codeCR = 13

	firstPrintable = 32
	lastPrintable  = 126
)

// Console is a grid of character cells plus a cursor. A zero cell is empty.
// The cursor is always inside the grid between calls to Intake.
type Console struct {
	cols, rows int
	cells      []byte
	cursorX    int
	cursorY    int
	scrolls    int
}

// New creates an empty console. Non-positive dimensions are clamped to 1.
func New(cols, rows int) *Console {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return &Console{
		cols:  cols,
		rows:  rows,
		cells: make([]byte, cols*rows),
	}
}

// Intake consumes one character code. Only the low byte is significant.
func (c *Console) Intake(code uint16) {
	ch := byte(code & 0xFF)

	if ch == codeCR {
		c.cursorX = 0
		return
	}

	if ch == codeLF {
		c.cursorX = 0
		c.cursorY++
	} else if ch >= firstPrintable && ch <= lastPrintable {
		c.cells[c.cursorY*c.cols+c.cursorX] = ch
		c.cursorX++
		if c.cursorX >= c.cols {
			c.cursorX = 0
			c.cursorY++
		}
	}

	if c.cursorY >= c.rows {
		c.scroll()
		c.cursorY = c.rows - 1
	}
}

// scroll drops the top row, moves the rest up and blanks the last row.
func (c *Console) scroll() {
	copy(c.cells, c.cells[c.cols:])
	last := c.cells[(c.rows-1)*c.cols:]
	for i := range last {
		last[i] = 0
	}
	c.scrolls++
}

// Clear empties every cell, homes the cursor and resets the scroll count.
func (c *Console) Clear() {
	for i := range c.cells {
		c.cells[i] = 0
	}
	c.cursorX = 0
	c.cursorY = 0
	c.scrolls = 0
}

// Cols returns the number of columns.
func (c *Console) Cols() int { return c.cols }

// Rows returns the number of rows.
func (c *Console) Rows() int { return c.rows }

// Cursor returns the cursor column and row.
func (c *Console) Cursor() (col, row int) {
	return c.cursorX, c.cursorY
}

// Scrolls returns how many times the grid has scrolled since the last Clear.
func (c *Console) Scrolls() int {
	return c.scrolls
}

// Cell returns the character at row, col, or 0 for empty or out of range.
func (c *Console) Cell(row, col int) byte {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return 0
	}
	return c.cells[row*c.cols+col]
}

// Row returns a copy of one row of cells.
func (c *Console) Row(row int) []byte {
	out := make([]byte, c.cols)
	if row < 0 || row >= c.rows {
		return out
	}
	copy(out, c.cells[row*c.cols:(row+1)*c.cols])
	return out
}

// Text returns the grid as text, one line per row with empty cells as
// spaces. Trailing spaces and trailing empty lines are trimmed.
func (c *Console) Text() string {
	lines := make([]string, c.rows)
	buf := make([]byte, c.cols)
	for r := 0; r < c.rows; r++ {
		for x, ch := range c.cells[r*c.cols : (r+1)*c.cols] {
			if ch == 0 {
				ch = ' '
			}
			buf[x] = ch
		}
		lines[r] = strings.TrimRight(string(buf), " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
