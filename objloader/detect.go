package objloader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// container is a supported file layout.
type container int

const (
	containerRaw container = iota
	containerZIP
	container7z
	containerGzip
	containerRAR
)

var containerNames = map[container]string{
	containerRaw:  "raw",
	containerZIP:  "zip",
	container7z:   "7z",
	containerGzip: "gzip",
	containerRAR:  "rar",
}

func (c container) String() string {
	return containerNames[c]
}

// signature binds leading magic bytes to a container.
type signature struct {
	magic []byte
	kind  container
}

var signatures = []signature{
	{[]byte{0x50, 0x4B, 0x03, 0x04}, containerZIP},
	{[]byte{0x50, 0x4B, 0x05, 0x06}, containerZIP}, // empty zip
	{[]byte{0x52, 0x61, 0x72, 0x21}, containerRAR}, // "Rar!"
	{[]byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}, container7z},
	{[]byte{0x1F, 0x8B}, containerGzip},
}

var archiveExtensions = map[string]container{
	".zip": containerZIP,
	".7z":  container7z,
	".gz":  containerGzip,
	".tgz": containerGzip,
	".rar": containerRAR,
}

// ArchiveExtensions returns the archive file extensions ReadFile unpacks,
// sorted, with leading dots.
func ArchiveExtensions() []string {
	exts := make([]string, 0, len(archiveExtensions))
	for ext := range archiveExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// detect picks the container from magic bytes, then from the file name.
// Anything unrecognised is a raw image: object files carry no magic.
func detect(header []byte, path string) container {
	for _, sig := range signatures {
		if bytes.HasPrefix(header, sig.magic) {
			return sig.kind
		}
	}
	if kind, ok := archiveExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return kind
	}
	return containerRaw
}

// ReadFile returns the raw image bytes at path, extracting the first object
// file when path is an archive. The returned name is the base name of the
// file the data came from.
func ReadFile(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, 8)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, "", fmt.Errorf("failed to read file header: %w", err)
	}

	kind := detect(header[:n], path)
	if kind == containerRaw {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, "", fmt.Errorf("failed to seek file: %w", err)
		}
		data, err := limitedRead(f)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read image: %w", err)
		}
		return data, filepath.Base(path), nil
	}

	var walk walkFunc
	switch kind {
	case containerZIP:
		walk = walkZIP
	case container7z:
		walk = walk7z
	case containerRAR:
		walk = walkRAR
	case containerGzip:
		if isTarball(path) {
			walk = walkTarGz
		} else {
			return readGzip(path)
		}
	}

	data, name, err := firstObject(path, walk)
	if err != nil {
		return nil, "", fmt.Errorf("failed to extract from %s archive: %w", kind, err)
	}
	return data, name, nil
}

// visitFunc is called for every regular file in an archive. Returning true
// stops the walk.
type visitFunc func(name string, r io.Reader) (bool, error)

// walkFunc iterates the regular files of the archive at path.
type walkFunc func(path string, visit visitFunc) error

// firstObject returns the contents of the first object file found by walk.
func firstObject(path string, walk walkFunc) ([]byte, string, error) {
	var data []byte
	var name string
	err := walk(path, func(entry string, r io.Reader) (bool, error) {
		if !isObjectFile(entry) {
			return false, nil
		}
		b, err := limitedRead(r)
		if err != nil {
			return true, fmt.Errorf("failed to read %s: %w", entry, err)
		}
		data = b
		name = filepath.Base(entry)
		return true, nil
	})
	if err != nil {
		return nil, "", err
	}
	if data == nil {
		return nil, "", ErrNoObject
	}
	return data, name, nil
}

func isObjectFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), Extension)
}

func isTarball(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz")
}

// limitedRead reads all of r, failing once it passes maxImageSize.
func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxImageSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
