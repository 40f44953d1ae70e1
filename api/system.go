package vmcore

// CoreOptionType identifies the kind of core option.
type CoreOptionType int

const (
	CoreOptionBool CoreOptionType = iota
	CoreOptionSelect
)

// CoreOption describes a configurable core setting exposed to frontends
// that support options (libretro variables).
type CoreOption struct {
	Key         string
	Label       string
	Description string
	Type        CoreOptionType
	Default     string
	Values      []string // Options for Select type
}

// SystemInfo describes the machine and the fixed video/audio geometry the
// frontend reports to its host.
type SystemInfo struct {
	Name         string
	CoreName     string
	CoreVersion  string
	Extensions   []string
	NeedFullPath bool // Host must pass a path instead of image bytes
	ScreenWidth  int
	ScreenHeight int
	AspectRatio  float64
	FPS          int
	SampleRate   int
	CoreOptions  []CoreOption
	DataDirName  string
}

// DisplayAspectRatio returns the display aspect ratio for a frame of the
// given size and pixel aspect ratio.
func DisplayAspectRatio(width, height int, pixelAspect float64) float64 {
	if height == 0 {
		return 0
	}
	return float64(width) / float64(height) * pixelAspect
}
