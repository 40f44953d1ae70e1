package frontend

import (
	vmcore "github.com/user-none/lc3sim/api"
	"github.com/user-none/lc3sim/render"
)

// AVInfo is the fixed audio/video geometry reported to hosts.
type AVInfo struct {
	BaseWidth   int
	BaseHeight  int
	MaxWidth    int
	MaxHeight   int
	AspectRatio float64
	FPS         float64
	SampleRate  float64
}

// SystemInfo returns the machine's system metadata.
func (f *Frontend) SystemInfo() vmcore.SystemInfo {
	return f.info
}

// AVInfo returns the frame geometry and timing.
func (f *Frontend) AVInfo() AVInfo {
	w, h := f.renderer.Size()
	aspect := f.info.AspectRatio
	if aspect == 0 {
		aspect = vmcore.DisplayAspectRatio(w, h, 1.0)
	}
	fps := f.info.FPS
	if fps == 0 {
		fps = 60
	}
	rate := f.info.SampleRate
	if rate == 0 {
		rate = 44100
	}
	return AVInfo{
		BaseWidth:   w,
		BaseHeight:  h,
		MaxWidth:    render.Width,
		MaxHeight:   render.Height,
		AspectRatio: aspect,
		FPS:         float64(fps),
		SampleRate:  float64(rate),
	}
}

// Region returns the video region.
func (f *Frontend) Region() vmcore.Region {
	return vmcore.RegionNTSC
}

// SerializeSize returns the save state size. Save states are not
// supported.
func (f *Frontend) SerializeSize() int {
	return 0
}

// Serialize always fails with ErrUnsupported.
func (f *Frontend) Serialize() ([]byte, error) {
	return nil, ErrUnsupported
}

// Unserialize always fails with ErrUnsupported.
func (f *Frontend) Unserialize(data []byte) error {
	return ErrUnsupported
}
