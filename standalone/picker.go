//go:build !libretro

package standalone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sqweek/dialog"
	"github.com/user-none/lc3sim/objloader"
)

// pickerTitle is shown on the program file dialog.
const pickerTitle = "Open LC-3 Program"

// pickerExtensions are offered in the dialog filter, without dots.
func pickerExtensions(extensions []string) []string {
	all := append(append([]string(nil), extensions...), objloader.ArchiveExtensions()...)
	exts := make([]string, 0, len(all))
	for _, ext := range all {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	return exts
}

// PickProgram asks for a program file with a native dialog. It returns
// "" and no error when the user cancels.
func PickProgram(extensions []string) (string, error) {
	path, err := dialog.File().
		Filter("LC-3 programs", pickerExtensions(extensions)...).
		Title(pickerTitle).
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to open file dialog: %w", err)
	}
	return path, nil
}
