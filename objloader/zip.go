package objloader

import (
	"archive/zip"
	"fmt"
)

func walkZIP(path string, visit visitFunc) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		done, err := visitZIPEntry(f, visit)
		if err != nil || done {
			return err
		}
	}
	return nil
}

func visitZIPEntry(f *zip.File, visit visitFunc) (bool, error) {
	rc, err := f.Open()
	if err != nil {
		return true, fmt.Errorf("failed to open %s in archive: %w", f.Name, err)
	}
	defer rc.Close()
	return visit(f.Name, rc)
}
