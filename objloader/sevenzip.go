package objloader

import (
	"fmt"

	"github.com/bodgit/sevenzip"
)

func walk7z(path string, visit visitFunc) error {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open 7z: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		// Skip solid-block decompression for entries we do not want
		if !isObjectFile(f.Name) {
			continue
		}
		done, err := visit7zEntry(f, visit)
		if err != nil || done {
			return err
		}
	}
	return nil
}

func visit7zEntry(f *sevenzip.File, visit visitFunc) (bool, error) {
	rc, err := f.Open()
	if err != nil {
		return true, fmt.Errorf("failed to open %s in archive: %w", f.Name, err)
	}
	defer rc.Close()
	return visit(f.Name, rc)
}
