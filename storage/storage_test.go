package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// useTempBase points the data directory at a temp dir
func useTempBase(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("data directory override uses XDG_DATA_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	return filepath.Join(dir, appName)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Version != 1 {
		t.Errorf("expected version 1, got %d", config.Version)
	}
	if config.Video.Scale != 3 {
		t.Errorf("expected scale 3, got %d", config.Video.Scale)
	}
	if config.Pacer.StepsPerFrame != 1000 {
		t.Errorf("expected 1000 steps per frame, got %d", config.Pacer.StepsPerFrame)
	}
	if config.Input.Mode != "mapped" {
		t.Errorf("expected mapped input, got %q", config.Input.Mode)
	}
	if problems := ValidateConfig(config, testPalettes); len(problems) != 0 {
		t.Errorf("default config should be valid, got %v", problems)
	}
}

func TestGetBaseDir(t *testing.T) {
	base := useTempBase(t)

	got, err := GetBaseDir()
	if err != nil {
		t.Fatalf("GetBaseDir failed: %v", err)
	}
	if got != base {
		t.Errorf("expected %s, got %s", base, got)
	}

	shots, err := GetScreenshotDir()
	if err != nil {
		t.Fatalf("GetScreenshotDir failed: %v", err)
	}
	if shots != filepath.Join(base, "screenshots") {
		t.Errorf("unexpected screenshot dir %s", shots)
	}

	logPath, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath failed: %v", err)
	}
	if filepath.Dir(logPath) != base {
		t.Errorf("log file should live in %s, got %s", base, logPath)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := useTempBase(t)

	if err := EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(filepath.Join(base, "screenshots"))
	if err != nil || !info.IsDir() {
		t.Errorf("screenshot directory not created: %v", err)
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.json")

	data := map[string]int{"answer": 42}
	if err := AtomicWriteJSON(path, data); err != nil {
		t.Fatalf("AtomicWriteJSON failed: %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should be gone")
	}

	var got map[string]int
	if err := ReadJSON(path, &got); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if got["answer"] != 42 {
		t.Errorf("expected 42, got %d", got["answer"])
	}
}

func TestAtomicWriteJSONInvalidDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	// A regular file cannot be a parent directory
	if err := AtomicWriteJSON(filepath.Join(file, "test.json"), 1); err == nil {
		t.Error("expected error writing under a regular file")
	}
}

func TestReadJSONInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	var v map[string]any
	err := ReadJSON(path, &v)
	if err == nil || !strings.Contains(err.Error(), "failed to parse JSON") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestReadJSONNonexistentFile(t *testing.T) {
	var v map[string]any
	if err := ReadJSON(filepath.Join(t.TempDir(), "missing.json"), &v); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	useTempBase(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *config != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", config)
	}
}

func TestLoadConfig_Corrupted(t *testing.T) {
	base := useTempBase(t)
	if err := os.MkdirAll(base, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "config.json"), []byte("{oops"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for corrupted config")
	}
}

// TestSaveLoadConfig writes a config and reads it back with partial fields
// defaulted
func TestSaveLoadConfig(t *testing.T) {
	base := useTempBase(t)

	config := DefaultConfig()
	config.Video.Palette = "amber"
	config.Pacer.StepsPerFrame = 5000
	if err := SaveConfig(config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *got != *config {
		t.Errorf("round trip mismatch: expected %+v, got %+v", config, got)
	}

	partial := `{"video": {"palette": "green"}, "pacer": {"stepsPerFrame": 0}}`
	if err := os.WriteFile(filepath.Join(base, "config.json"), []byte(partial), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	got, err = LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got.Video.Palette != "green" || got.Video.Scale != 3 {
		t.Errorf("unexpected video config %+v", got.Video)
	}
	if got.Pacer.StepsPerFrame != 0 {
		t.Errorf("present zero should be kept, got %d", got.Pacer.StepsPerFrame)
	}
	if got.Input.Mode != "mapped" || got.Version != 1 {
		t.Errorf("missing fields should be defaulted, got %+v", got)
	}
}

func TestCreateAndDeleteConfig(t *testing.T) {
	base := useTempBase(t)
	path := filepath.Join(base, "config.json")

	if err := CreateConfigIfMissing(); err != nil {
		t.Fatalf("CreateConfigIfMissing failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not created: %v", err)
	}

	// Existing files are left alone
	if err := os.WriteFile(path, []byte(`{"video": {"scale": 5}}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if err := CreateConfigIfMissing(); err != nil {
		t.Fatalf("CreateConfigIfMissing failed: %v", err)
	}
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Video.Scale != 5 {
		t.Errorf("existing config overwritten, scale %d", config.Video.Scale)
	}

	if err := DeleteConfig(); err != nil {
		t.Fatalf("DeleteConfig failed: %v", err)
	}
	if err := DeleteConfig(); err != nil {
		t.Errorf("deleting a missing config should succeed, got %v", err)
	}
}
