package objloader

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var testImage = []byte{0x30, 0x00, 0xE0, 0x02, 0xF0, 0x22, 0xF0, 0x25}

type archiveEntry struct {
	name string
	data []byte
}

func createZip(t *testing.T, entries ...archiveEntry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.zip")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		if e.data == nil {
			if _, err := w.Create(e.name); err != nil {
				t.Fatalf("Failed to create dir in zip: %v", err)
			}
			continue
		}
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("Failed to create file in zip: %v", err)
		}
		if _, err := fw.Write(e.data); err != nil {
			t.Fatalf("Failed to write to zip: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return path
}

func createTarGz(t *testing.T, name string, entries ...archiveEntry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for _, e := range entries {
		hdr := &tar.Header{
			Name:     e.name,
			Mode:     0644,
			Size:     int64(len(e.data)),
			Typeflag: tar.TypeReg,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("Failed to write tar header: %v", err)
		}
		if _, err := tw.Write(e.data); err != nil {
			t.Fatalf("Failed to write tar entry: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Failed to close tar: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("Failed to close gzip: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}
	return path
}

func TestReadFile_Zip(t *testing.T) {
	path := createZip(t,
		archiveEntry{"readme.txt", []byte("not an image")},
		archiveEntry{"progs/", nil},
		archiveEntry{"progs/echo.obj", testImage},
	)

	data, name, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(data, testImage) {
		t.Errorf("Data mismatch: expected %v, got %v", testImage, data)
	}
	if name != "echo.obj" {
		t.Errorf("Name mismatch: expected echo.obj, got %s", name)
	}
}

func TestReadFile_ZipNoObject(t *testing.T) {
	path := createZip(t, archiveEntry{"prog.asm", []byte(".ORIG x3000")})

	_, _, err := ReadFile(path)
	if !errors.Is(err, ErrNoObject) {
		t.Errorf("expected ErrNoObject, got %v", err)
	}
}

func TestReadFile_ZipFirstObjectWins(t *testing.T) {
	second := []byte{0x40, 0x00, 0xF0, 0x25}
	path := createZip(t,
		archiveEntry{"a.obj", testImage},
		archiveEntry{"b.obj", second},
	)

	data, name, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if name != "a.obj" || !bytes.Equal(data, testImage) {
		t.Errorf("expected a.obj, got %s", name)
	}
}

func TestReadFile_Gzip(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(testImage); err != nil {
		t.Fatalf("Failed to write gzip: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("Failed to close gzip: %v", err)
	}
	path := writeFile(t, "echo.obj.gz", buf.Bytes())

	data, name, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(data, testImage) {
		t.Errorf("Data mismatch: expected %v, got %v", testImage, data)
	}
	if name != "echo.obj" {
		t.Errorf("Name mismatch: expected echo.obj, got %s", name)
	}
}

func TestReadFile_TarGz(t *testing.T) {
	for _, archive := range []string{"progs.tar.gz", "progs.tgz"} {
		t.Run(archive, func(t *testing.T) {
			path := createTarGz(t, archive,
				archiveEntry{"notes.txt", []byte("hello")},
				archiveEntry{"bin/echo.obj", testImage},
			)

			img, err := Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if img.Name != "echo.obj" {
				t.Errorf("Name mismatch: expected echo.obj, got %s", img.Name)
			}
			if img.Origin != 0x3000 || len(img.Words) != 3 {
				t.Errorf("unexpected image %+v", img)
			}
		})
	}
}

func TestReadFile_TarGzNoObject(t *testing.T) {
	path := createTarGz(t, "empty.tar.gz", archiveEntry{"notes.txt", []byte("hello")})

	_, _, err := ReadFile(path)
	if !errors.Is(err, ErrNoObject) {
		t.Errorf("expected ErrNoObject, got %v", err)
	}
}

// TestReadFile_BrokenArchives covers files whose name or magic claims an
// archive format that the data does not hold
func TestReadFile_BrokenArchives(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"fake.7z", []byte("not a 7z file")},
		{"empty.7z", []byte{}},
		{"fake.rar", []byte("not a rar file")},
		{"empty.rar", []byte{}},
		{"magic.rar", []byte{0x52, 0x61, 0x72, 0x21, 0x00}},
		{"fake.zip", []byte("not a zip file")},
		{"fake.tgz", []byte("not a gzip file")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.name, tc.data)
			if _, _, err := ReadFile(path); err == nil {
				t.Error("expected error for broken archive")
			}
		})
	}
}

func TestWalk_Missing(t *testing.T) {
	walks := map[string]walkFunc{
		"zip":    walkZIP,
		"7z":     walk7z,
		"rar":    walkRAR,
		"tar.gz": walkTarGz,
	}
	for name, walk := range walks {
		t.Run(name, func(t *testing.T) {
			_, _, err := firstObject("/nonexistent/path/test."+name, walk)
			if err == nil {
				t.Error("expected error for nonexistent file")
			}
		})
	}
}

func TestArchiveExtensions(t *testing.T) {
	want := []string{".7z", ".gz", ".rar", ".tgz", ".zip"}
	got := ArchiveExtensions()
	if len(got) != len(want) {
		t.Fatalf("ArchiveExtensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ArchiveExtensions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
