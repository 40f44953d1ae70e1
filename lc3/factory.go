package lc3

import (
	vmcore "github.com/user-none/lc3sim/api"
)

// System constants reported to frontend hosts.
const (
	CoreName    = "lc3sim"
	CoreVersion = "0.1"
	ScreenSize  = 256
	FPS         = 60
	SampleRate  = 44100
)

// Factory creates LC-3 machines.
type Factory struct{}

// NewFactory returns the LC-3 machine factory.
func NewFactory() Factory {
	return Factory{}
}

// SystemInfo implements vmcore.Factory.
func (Factory) SystemInfo() vmcore.SystemInfo {
	return vmcore.SystemInfo{
		Name:         "LC-3",
		CoreName:     CoreName,
		CoreVersion:  CoreVersion,
		Extensions:   []string{".obj"},
		NeedFullPath: true,
		ScreenWidth:  ScreenSize,
		ScreenHeight: ScreenSize,
		AspectRatio:  vmcore.DisplayAspectRatio(ScreenSize, ScreenSize, 1.0),
		FPS:          FPS,
		SampleRate:   SampleRate,
		DataDirName:  CoreName,
	}
}

// CreateMachine implements vmcore.Factory.
func (Factory) CreateMachine(out vmcore.OutputFunc, in vmcore.InputFunc) (vmcore.Machine, error) {
	return New(out, in), nil
}
