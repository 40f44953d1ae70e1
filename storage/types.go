package storage

// Config represents the application configuration stored in config.json
type Config struct {
	Version int          `json:"version"`
	Video   VideoConfig  `json:"video"`
	Pacer   PacerConfig  `json:"pacer"`
	Input   InputConfig  `json:"input"`
	Window  WindowConfig `json:"window"`
}

// VideoConfig contains display settings
type VideoConfig struct {
	Scale   int    `json:"scale"`   // Window scale factor, 1-8
	Palette string `json:"palette"` // Console palette name
}

// PacerConfig contains execution speed settings
type PacerConfig struct {
	StepsPerFrame int `json:"stepsPerFrame"` // Instructions per frame, 1-100000
}

// InputConfig contains input settings
type InputConfig struct {
	Mode string `json:"mode"` // "mapped" or "raw"
}

// WindowConfig contains the window size
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
}

// Limits used by validation.
const (
	MinScale         = 1
	MaxScale         = 8
	MinStepsPerFrame = 1
	MaxStepsPerFrame = 100000
	MinWindowSize    = 256
)

// InputModes lists the valid input.mode values.
var InputModes = []string{"mapped", "raw"}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Video: VideoConfig{
			Scale:   3,
			Palette: "white",
		},
		Pacer: PacerConfig{
			StepsPerFrame: 1000,
		},
		Input: InputConfig{
			Mode: "mapped",
		},
		Window: WindowConfig{
			Width:  768,
			Height: 768,
		},
	}
}
