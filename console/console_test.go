package console

import (
	"strings"
	"testing"
)

func intakeString(c *Console, s string) {
	for i := 0; i < len(s); i++ {
		c.Intake(uint16(s[i]))
	}
}

func checkCursorInBounds(t *testing.T, c *Console) {
	t.Helper()
	x, y := c.Cursor()
	if x < 0 || x >= c.Cols() || y < 0 || y >= c.Rows() {
		t.Fatalf("cursor (%d, %d) outside %dx%d grid", x, y, c.Cols(), c.Rows())
	}
}

func TestIntake_ShortRunStaysOnRow(t *testing.T) {
	for n := 0; n < DefaultCols; n++ {
		c := New(DefaultCols, DefaultRows)
		intakeString(c, strings.Repeat("x", n))

		x, y := c.Cursor()
		if y != 0 {
			t.Fatalf("n=%d: row = %d, expected 0", n, y)
		}
		if x != n {
			t.Fatalf("n=%d: column = %d, expected %d", n, x, n)
		}
	}
}

func TestIntake_FullRowWraps(t *testing.T) {
	c := New(DefaultCols, DefaultRows)
	intakeString(c, strings.Repeat("a", DefaultCols))

	x, y := c.Cursor()
	if x != 0 || y != 1 {
		t.Fatalf("cursor = (%d, %d), expected (0, 1)", x, y)
	}
	if c.Cell(0, DefaultCols-1) != 'a' {
		t.Errorf("last column of row 0 = %q, expected 'a'", c.Cell(0, DefaultCols-1))
	}
	if c.Cell(1, 0) != 0 {
		t.Errorf("row 1 should be untouched, got %q", c.Cell(1, 0))
	}
}

func TestIntake_OverflowScrollsOnce(t *testing.T) {
	c := New(DefaultCols, DefaultRows)
	total := DefaultRows*DefaultCols + 1

	for i := 0; i < total; i++ {
		c.Intake('A' + uint16(i/DefaultCols%26))
		checkCursorInBounds(t, c)
	}

	if c.Scrolls() != 1 {
		t.Fatalf("scrolls = %d, expected 1", c.Scrolls())
	}

	bottom := c.Row(DefaultRows - 1)
	count := 0
	for _, ch := range bottom {
		if ch != 0 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("bottom row holds %d characters, expected 1", count)
	}

	// Row 0 of the original grid ('A') was discarded; 'B' moved to the top.
	if c.Cell(0, 0) != 'B' {
		t.Errorf("top row = %q, expected 'B'", c.Cell(0, 0))
	}
	x, y := c.Cursor()
	if x != 1 || y != DefaultRows-1 {
		t.Errorf("cursor = (%d, %d), expected (1, %d)", x, y, DefaultRows-1)
	}
}

func TestIntake_ScrollPreservesOrder(t *testing.T) {
	c := New(4, 3)
	intakeString(c, "one\ntwo\nsix\nten")

	want := []string{"two", "six", "ten"}
	for r, w := range want {
		got := strings.TrimRight(string(c.Row(r)), "\x00")
		if got != w {
			t.Errorf("row %d = %q, expected %q", r, got, w)
		}
	}
	if c.Scrolls() != 1 {
		t.Errorf("scrolls = %d, expected 1", c.Scrolls())
	}

	// Scrolling again must blank the new bottom row completely.
	c.Intake('\n')
	for col, ch := range c.Row(2) {
		if ch != 0 {
			t.Errorf("stale cell %q at bottom row column %d", ch, col)
		}
	}
}

func TestIntake_CarriageReturnOverwritesColumnZero(t *testing.T) {
	c := New(DefaultCols, DefaultRows)
	intakeString(c, "\nhello\rJ")

	if c.Cell(1, 0) != 'J' {
		t.Errorf("cell (1,0) = %q, expected 'J'", c.Cell(1, 0))
	}
	if c.Cell(1, 5) != 0 {
		t.Errorf("cell (1,5) = %q, expected empty", c.Cell(1, 5))
	}
	if c.Cell(1, 1) != 'e' {
		t.Errorf("cell (1,1) = %q, expected 'e'", c.Cell(1, 1))
	}
	x, y := c.Cursor()
	if x != 1 || y != 1 {
		t.Errorf("cursor = (%d, %d), expected (1, 1)", x, y)
	}
}

func TestIntake_CarriageReturnOnLastRowDoesNotScroll(t *testing.T) {
	c := New(3, 2)
	intakeString(c, "ab\ncd\r")
	if c.Scrolls() != 0 {
		t.Errorf("scrolls = %d, expected 0", c.Scrolls())
	}
}

func TestIntake_IgnoredCodes(t *testing.T) {
	c := New(DefaultCols, DefaultRows)
	for _, code := range []uint16{0, 7, 8, 9, 27, 127, 128, 200, 255} {
		c.Intake(code)
	}
	x, y := c.Cursor()
	if x != 0 || y != 0 {
		t.Fatalf("cursor moved to (%d, %d) on ignored codes", x, y)
	}
	if c.Text() != "" {
		t.Fatalf("grid written on ignored codes: %q", c.Text())
	}
}

func TestIntake_HighByteIgnored(t *testing.T) {
	c := New(DefaultCols, DefaultRows)
	c.Intake(0x4100 | 'z')
	if c.Cell(0, 0) != 'z' {
		t.Errorf("cell (0,0) = %q, expected 'z'", c.Cell(0, 0))
	}
}

func TestIntake_NewlinesOnlyScroll(t *testing.T) {
	c := New(DefaultCols, DefaultRows)
	for i := 0; i < DefaultRows*3; i++ {
		c.Intake('\n')
		checkCursorInBounds(t, c)
	}
	if c.Scrolls() != DefaultRows*2+1 {
		t.Errorf("scrolls = %d, expected %d", c.Scrolls(), DefaultRows*2+1)
	}
}

func TestClear(t *testing.T) {
	c := New(4, 2)
	intakeString(c, "abcdefghij")
	c.Clear()

	x, y := c.Cursor()
	if x != 0 || y != 0 {
		t.Errorf("cursor = (%d, %d), expected origin", x, y)
	}
	if c.Scrolls() != 0 {
		t.Errorf("scrolls = %d, expected 0", c.Scrolls())
	}
	for r := 0; r < c.Rows(); r++ {
		for col := 0; col < c.Cols(); col++ {
			if c.Cell(r, col) != 0 {
				t.Fatalf("cell (%d,%d) not cleared", r, col)
			}
		}
	}
}

func TestText(t *testing.T) {
	c := New(8, 4)
	intakeString(c, "hi\n\n  there")

	want := "hi\n\n  there"
	if got := c.Text(); got != want {
		t.Errorf("Text() = %q, expected %q", got, want)
	}
}

func TestNew_ClampsDimensions(t *testing.T) {
	c := New(0, -3)
	if c.Cols() != 1 || c.Rows() != 1 {
		t.Fatalf("New(0, -3) = %dx%d, expected 1x1", c.Cols(), c.Rows())
	}
	// Each character fills the only cell, wraps past the last row and
	// scrolls itself away.
	c.Intake('a')
	c.Intake('b')
	if c.Cell(0, 0) != 0 {
		t.Errorf("cell (0,0) = %q, expected empty", c.Cell(0, 0))
	}
	if c.Scrolls() != 2 {
		t.Errorf("expected 2 scrolls, got %d", c.Scrolls())
	}
	checkCursorInBounds(t, c)
}

func TestCell_OutOfRange(t *testing.T) {
	c := New(2, 2)
	if c.Cell(-1, 0) != 0 || c.Cell(0, 2) != 0 || c.Cell(5, 5) != 0 {
		t.Error("out of range Cell should return 0")
	}
	if len(c.Row(9)) != 2 {
		t.Error("out of range Row should return an empty row of Cols() cells")
	}
}
