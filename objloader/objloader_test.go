package objloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file named name in a fresh temp dir
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func TestDecode(t *testing.T) {
	img, err := Decode([]byte{0x30, 0x00, 0xF0, 0x25, 0x12, 0x34})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Origin != 0x3000 {
		t.Errorf("origin: expected x3000, got x%04X", img.Origin)
	}
	if len(img.Words) != 2 || img.Words[0] != 0xF025 || img.Words[1] != 0x1234 {
		t.Errorf("unexpected words %04X", img.Words)
	}
	if img.End() != 0x3002 {
		t.Errorf("end: expected x3002, got x%04X", img.End())
	}
}

func TestDecode_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"odd length", []byte{0x30, 0x00, 0xF0}},
		{"origin only", []byte{0x30, 0x00}},
		{"past end of memory", []byte{0xFF, 0xFF, 0x00, 0x01, 0x00, 0x02}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			if !errors.Is(err, ErrInvalidImage) {
				t.Errorf("expected ErrInvalidImage, got %v", err)
			}
		})
	}
}

// TestDecode_LastWord fills memory up to and including xFFFF
func TestDecode_LastWord(t *testing.T) {
	img, err := Decode([]byte{0xFF, 0xFF, 0xAB, 0xCD})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.End() != 0x10000 {
		t.Errorf("expected end x10000, got x%X", img.End())
	}
}

func TestOpen_Raw(t *testing.T) {
	path := writeFile(t, "hello.obj", []byte{0x30, 0x00, 0xF0, 0x25})

	img, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if img.Name != "hello.obj" {
		t.Errorf("Name mismatch: expected hello.obj, got %s", img.Name)
	}
	if img.Origin != 0x3000 || len(img.Words) != 1 {
		t.Errorf("unexpected image %+v", img)
	}
}

// TestOpen_RawAnyExtension checks files without archive magic load as raw
func TestOpen_RawAnyExtension(t *testing.T) {
	path := writeFile(t, "program.bin", []byte{0x30, 0x00, 0xF0, 0x25})
	if _, err := Open(path); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
}

func TestOpen_InvalidImage(t *testing.T) {
	path := writeFile(t, "bad.obj", []byte{0x30})
	_, err := Open(path)
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("expected ErrInvalidImage, got %v", err)
	}
}

func TestOpen_FileNotFound(t *testing.T) {
	_, err := Open("/nonexistent/path/prog.obj")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestReadFile_TooLarge(t *testing.T) {
	path := writeFile(t, "huge.obj", make([]byte, maxImageSize+2))
	_, _, err := ReadFile(path)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}
}

// TestReadFile_MaxSize accepts an image covering all of memory
func TestReadFile_MaxSize(t *testing.T) {
	path := writeFile(t, "full.obj", make([]byte, maxImageSize))
	data, _, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(data) != maxImageSize {
		t.Errorf("expected %d bytes, got %d", maxImageSize, len(data))
	}
}

func TestDetect(t *testing.T) {
	testCases := []struct {
		name   string
		header []byte
		path   string
		want   container
	}{
		{"zip magic", []byte{0x50, 0x4B, 0x03, 0x04, 0x00}, "prog.obj", containerZIP},
		{"empty zip magic", []byte{0x50, 0x4B, 0x05, 0x06}, "prog", containerZIP},
		{"rar magic", []byte("Rar!\x1a\x07"), "prog.obj", containerRAR},
		{"7z magic", []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}, "prog.obj", container7z},
		{"gzip magic", []byte{0x1F, 0x8B, 0x08}, "prog.obj", containerGzip},
		{"zip extension", nil, "prog.ZIP", containerZIP},
		{"7z extension", nil, "prog.7z", container7z},
		{"tgz extension", nil, "prog.tgz", containerGzip},
		{"rar extension", nil, "prog.rar", containerRAR},
		{"object", []byte{0x30, 0x00}, "prog.obj", containerRaw},
		{"partial magic", []byte{0x52, 0x61}, "prog.obj", containerRaw},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := detect(tc.header, tc.path); got != tc.want {
				t.Errorf("detect(%v, %s): expected %v, got %v", tc.header, tc.path, tc.want, got)
			}
		})
	}
}

func TestIsObjectFile(t *testing.T) {
	testCases := []struct {
		name string
		want bool
	}{
		{"prog.obj", true},
		{"PROG.OBJ", true},
		{"dir/prog.obj", true},
		{"prog.asm", false},
		{"prog.sym", false},
		{"obj", false},
	}

	for _, tc := range testCases {
		if got := isObjectFile(tc.name); got != tc.want {
			t.Errorf("isObjectFile(%q): expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
