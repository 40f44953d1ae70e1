package storage

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// trackedKeys are the dotted config paths that get a default when absent.
var trackedKeys = []string{
	"version",
	"video.scale",
	"video.palette",
	"pacer.stepsPerFrame",
	"input.mode",
	"window.width",
	"window.height",
}

// detectPresentKeys reports which tracked keys appear in the JSON, so an
// explicit zero is not mistaken for a missing field.
func detectPresentKeys(jsonBytes []byte) map[string]bool {
	present := make(map[string]bool)

	var root map[string]json.RawMessage
	if err := json.Unmarshal(jsonBytes, &root); err != nil {
		return present
	}

	for _, key := range trackedKeys {
		if hasPath(root, strings.Split(key, ".")) {
			present[key] = true
		}
	}
	return present
}

func hasPath(obj map[string]json.RawMessage, path []string) bool {
	raw, ok := obj[path[0]]
	if !ok {
		return false
	}
	if len(path) == 1 {
		return true
	}
	var child map[string]json.RawMessage
	if json.Unmarshal(raw, &child) != nil {
		return false
	}
	return hasPath(child, path[1:])
}

// ApplyMissingDefaults sets default values for config fields that are absent
// from the JSON file. Present fields are left alone, zero or not.
func ApplyMissingDefaults(config *Config, presentKeys map[string]bool) {
	defaults := DefaultConfig()

	if !presentKeys["version"] {
		config.Version = defaults.Version
	}
	if !presentKeys["video.scale"] {
		config.Video.Scale = defaults.Video.Scale
	}
	if !presentKeys["video.palette"] {
		config.Video.Palette = defaults.Video.Palette
	}
	if !presentKeys["pacer.stepsPerFrame"] {
		config.Pacer.StepsPerFrame = defaults.Pacer.StepsPerFrame
	}
	if !presentKeys["input.mode"] {
		config.Input.Mode = defaults.Input.Mode
	}
	if !presentKeys["window.width"] {
		config.Window.Width = defaults.Window.Width
	}
	if !presentKeys["window.height"] {
		config.Window.Height = defaults.Window.Height
	}
}

// fieldRule checks one config field and resets it to its default.
type fieldRule struct {
	valid   func(c *Config) bool
	problem func(c *Config) string
	reset   func(c, defaults *Config)
}

func configRules(validPalettes []string) []fieldRule {
	return []fieldRule{
		{
			valid:   func(c *Config) bool { return c.Version == 1 },
			problem: func(c *Config) string { return fmt.Sprintf("version: %d (valid: 1)", c.Version) },
			reset:   func(c, d *Config) { c.Version = d.Version },
		},
		{
			valid: func(c *Config) bool { return c.Video.Scale >= MinScale && c.Video.Scale <= MaxScale },
			problem: func(c *Config) string {
				return fmt.Sprintf("video.scale: %d (valid: %d-%d)", c.Video.Scale, MinScale, MaxScale)
			},
			reset: func(c, d *Config) { c.Video.Scale = d.Video.Scale },
		},
		{
			valid: func(c *Config) bool { return slices.Contains(validPalettes, c.Video.Palette) },
			problem: func(c *Config) string {
				return fmt.Sprintf("video.palette: %q (valid: %v)", c.Video.Palette, validPalettes)
			},
			reset: func(c, d *Config) { c.Video.Palette = d.Video.Palette },
		},
		{
			valid: func(c *Config) bool {
				return c.Pacer.StepsPerFrame >= MinStepsPerFrame && c.Pacer.StepsPerFrame <= MaxStepsPerFrame
			},
			problem: func(c *Config) string {
				return fmt.Sprintf("pacer.stepsPerFrame: %d (valid: %d-%d)", c.Pacer.StepsPerFrame, MinStepsPerFrame, MaxStepsPerFrame)
			},
			reset: func(c, d *Config) { c.Pacer.StepsPerFrame = d.Pacer.StepsPerFrame },
		},
		{
			valid: func(c *Config) bool { return slices.Contains(InputModes, c.Input.Mode) },
			problem: func(c *Config) string {
				return fmt.Sprintf("input.mode: %q (valid: %v)", c.Input.Mode, InputModes)
			},
			reset: func(c, d *Config) { c.Input.Mode = d.Input.Mode },
		},
		{
			valid: func(c *Config) bool { return c.Window.Width >= MinWindowSize },
			problem: func(c *Config) string {
				return fmt.Sprintf("window.width: %d (valid: >= %d)", c.Window.Width, MinWindowSize)
			},
			reset: func(c, d *Config) { c.Window.Width = d.Window.Width },
		},
		{
			valid: func(c *Config) bool { return c.Window.Height >= MinWindowSize },
			problem: func(c *Config) string {
				return fmt.Sprintf("window.height: %d (valid: >= %d)", c.Window.Height, MinWindowSize)
			},
			reset: func(c, d *Config) { c.Window.Height = d.Window.Height },
		},
	}
}

// ValidateConfig checks all config fields against valid ranges and returns
// human-readable error descriptions. An empty slice means the config is valid.
// validPalettes is the list of known palette names.
func ValidateConfig(config *Config, validPalettes []string) []string {
	var problems []string
	for _, rule := range configRules(validPalettes) {
		if !rule.valid(config) {
			problems = append(problems, rule.problem(config))
		}
	}
	return problems
}

// CorrectConfig resets any invalid fields to their defaults from
// DefaultConfig. Valid fields are preserved.
func CorrectConfig(config *Config, validPalettes []string) *Config {
	defaults := DefaultConfig()
	for _, rule := range configRules(validPalettes) {
		if !rule.valid(config) {
			rule.reset(config, defaults)
		}
	}
	return config
}
