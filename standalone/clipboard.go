//go:build !libretro

package standalone

import (
	"errors"

	"golang.design/x/clipboard"
)

// errClipboardUnavailable is returned when the system clipboard could not
// be initialized.
var errClipboardUnavailable = errors.New("clipboard unavailable")

// consoleClipboard copies console text to the system clipboard.
type consoleClipboard struct {
	inited bool
	failed bool
}

// Copy writes text to the clipboard, initializing it on first use.
func (c *consoleClipboard) Copy(text string) error {
	if !c.inited && !c.failed {
		if err := clipboard.Init(); err != nil {
			c.failed = true
		} else {
			c.inited = true
		}
	}
	if !c.inited {
		return errClipboardUnavailable
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
