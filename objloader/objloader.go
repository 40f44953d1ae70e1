// Package objloader reads LC-3 object images from plain files and from
// compressed archives (ZIP, 7z, gzip, tar.gz, RAR).
package objloader

import (
	"errors"
	"fmt"
)

// Extension is the file extension of an object image.
const Extension = ".obj"

// An image is at most one origin word plus the whole address space.
const maxImageSize = 2 * (0x10000 + 1)

var (
	// ErrNoObject is returned when an archive holds no object image.
	ErrNoObject = errors.New("no object file found in archive")

	// ErrFileTooLarge is returned when the image is bigger than the address
	// space.
	ErrFileTooLarge = errors.New("file exceeds maximum image size")

	// ErrInvalidImage is returned for data that is not a well formed image.
	ErrInvalidImage = errors.New("invalid object image")
)

// Image is a decoded object image: words to be placed in memory starting at
// Origin.
type Image struct {
	Name   string
	Origin uint16
	Words  []uint16
}

// End returns the address one past the last word of the image.
func (img *Image) End() int {
	return int(img.Origin) + len(img.Words)
}

// Decode parses big-endian image data. The first word is the origin and the
// rest are loaded from there on.
func Decode(data []byte) (*Image, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidImage, len(data))
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: %d bytes is shorter than an origin and one word", ErrInvalidImage, len(data))
	}

	origin := uint16(data[0])<<8 | uint16(data[1])
	words := make([]uint16, len(data)/2-1)
	for i := range words {
		words[i] = uint16(data[2+2*i])<<8 | uint16(data[3+2*i])
	}

	img := &Image{Origin: origin, Words: words}
	if img.End() > 0x10000 {
		return nil, fmt.Errorf("%w: %d words at x%04X run past the end of memory", ErrInvalidImage, len(words), origin)
	}
	return img, nil
}

// Open reads and decodes the object image at path.
func Open(path string) (*Image, error) {
	data, name, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	img.Name = name
	return img, nil
}
