package objloader

import (
	"errors"
	"fmt"
	"io"

	"github.com/nwaples/rardecode/v2"
)

func walkRAR(path string, visit visitFunc) error {
	r, err := rardecode.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open rar: %w", err)
	}
	defer r.Close()

	for {
		header, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read rar entry: %w", err)
		}
		if header.IsDir {
			continue
		}
		done, err := visit(header.Name, r)
		if err != nil || done {
			return err
		}
	}
}
