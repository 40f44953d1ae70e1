// Package libretro exposes a frontend.Frontend through the libretro core
// ABI. The C ABI is process-wide, so the core keeps one frontend in
// package state.
package libretro

/*
#include "libretro.h"
#include "cfuncs.h"
*/
import "C"
import (
	"log"
	"unsafe"

	vmcore "github.com/user-none/lc3sim/api"
	"github.com/user-none/lc3sim/frontend"
	"github.com/user-none/lc3sim/input"
)

// Libretro joypad button ID constants.
const (
	JoypadB      = C.RETRO_DEVICE_ID_JOYPAD_B
	JoypadY      = C.RETRO_DEVICE_ID_JOYPAD_Y
	JoypadSelect = C.RETRO_DEVICE_ID_JOYPAD_SELECT
	JoypadStart  = C.RETRO_DEVICE_ID_JOYPAD_START
	JoypadUp     = C.RETRO_DEVICE_ID_JOYPAD_UP
	JoypadDown   = C.RETRO_DEVICE_ID_JOYPAD_DOWN
	JoypadLeft   = C.RETRO_DEVICE_ID_JOYPAD_LEFT
	JoypadRight  = C.RETRO_DEVICE_ID_JOYPAD_RIGHT
	JoypadA      = C.RETRO_DEVICE_ID_JOYPAD_A
	JoypadX      = C.RETRO_DEVICE_ID_JOYPAD_X
)

var (
	factory vmcore.Factory
	sysInfo vmcore.SystemInfo

	fe      *frontend.Frontend
	source  retroSource
	xrgbBuf []byte

	// Pre-allocated C strings (allocated once, freed in retro_deinit)
	libNameStr   *C.char
	libVerStr    *C.char
	validExtStr  *C.char
	stringsReady bool

	logger = log.New(logWriter{}, "", 0)

	// Core options and their C strings
	coreOptions []vmcore.CoreOption
	coreOptKeys []*C.char
	coreOptVals []*C.char
)

// RegisterFactory sets the Factory used by the libretro core.
// Must be called during init() before any retro_* function runs.
func RegisterFactory(f vmcore.Factory) {
	factory = f
	sysInfo = f.SystemInfo()
}

// retroSource reads port 0 through the frontend's input callbacks.
type retroSource struct{}

// Poll implements input.Source.
func (retroSource) Poll() {
	C.call_input_poll_cb()
}

// KeyPressed implements input.Source.
func (retroSource) KeyPressed(code int) bool {
	return C.call_input_state_cb(0, C.RETRO_DEVICE_KEYBOARD, 0, C.uint(code)) != 0
}

// ButtonPressed implements input.Source.
func (retroSource) ButtonPressed(id int) bool {
	return C.call_input_state_cb(0, C.RETRO_DEVICE_JOYPAD, 0, C.uint(id)) != 0
}

var _ input.Source = retroSource{}

// logWriter forwards each log line to the frontend's log interface.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	msg := C.CString(string(p))
	defer C.free(unsafe.Pointer(msg))

	level := C.enum_retro_log_level(C.RETRO_LOG_INFO)
	if logLevel(string(p)) == levelWarn {
		level = C.RETRO_LOG_WARN
	}
	C.call_log_cb(level, msg)
	return len(p), nil
}

//export retro_set_environment
func retro_set_environment(cb C.retro_environment_t) {
	C._retro_set_environment(cb)
	ensureOptionStrings()
	setVariables()
}

//export retro_set_video_refresh
func retro_set_video_refresh(cb C.retro_video_refresh_t) {
	C._retro_set_video_refresh(cb)
}

//export retro_set_audio_sample
func retro_set_audio_sample(cb C.retro_audio_sample_t) {
	C._retro_set_audio_sample(cb)
}

//export retro_set_audio_sample_batch
func retro_set_audio_sample_batch(cb C.retro_audio_sample_batch_t) {
	C._retro_set_audio_sample_batch(cb)
}

//export retro_set_input_poll
func retro_set_input_poll(cb C.retro_input_poll_t) {
	C._retro_set_input_poll(cb)
}

//export retro_set_input_state
func retro_set_input_state(cb C.retro_input_state_t) {
	C._retro_set_input_state(cb)
}

//export retro_init
func retro_init() {
	C.init_log_interface()

	fe = frontend.New(factory, frontend.Options{Logger: logger})
	w, h := fe.Renderer().Size()
	xrgbBuf = make([]byte, w*h*4)

	ensureStrings()
	ensureOptionStrings()
}

//export retro_deinit
func retro_deinit() {
	if fe != nil {
		fe.Unload()
	}
	fe = nil
	xrgbBuf = nil
	freeStrings()
}

//export retro_api_version
func retro_api_version() C.uint {
	return C.RETRO_API_VERSION
}

//export retro_get_system_info
func retro_get_system_info(info *C.struct_retro_system_info) {
	ensureStrings()
	info.library_name = libNameStr
	info.library_version = libVerStr
	info.valid_extensions = validExtStr
	info.need_fullpath = C.bool(sysInfo.NeedFullPath)
	info.block_extract = C.bool(false)
}

//export retro_get_system_av_info
func retro_get_system_av_info(info *C.struct_retro_system_av_info) {
	if fe == nil {
		return
	}
	av := fe.AVInfo()
	info.timing.fps = C.double(av.FPS)
	info.timing.sample_rate = C.double(av.SampleRate)
	info.geometry.base_width = C.uint(av.BaseWidth)
	info.geometry.base_height = C.uint(av.BaseHeight)
	info.geometry.max_width = C.uint(av.MaxWidth)
	info.geometry.max_height = C.uint(av.MaxHeight)
	info.geometry.aspect_ratio = C.float(av.AspectRatio)
}

//export retro_set_controller_port_device
func retro_set_controller_port_device(port C.uint, device C.uint) {
}

//export retro_reset
func retro_reset() {
	if fe == nil {
		return
	}
	if err := fe.Reset(); err != nil {
		logger.Printf("Warning: reset failed: %v", err)
	}
}

//export retro_run
func retro_run() {
	if fe == nil {
		return
	}

	// Check for option changes
	var updated C.bool
	if C.call_environ_cb(C.RETRO_ENVIRONMENT_GET_VARIABLE_UPDATE, unsafe.Pointer(&updated)) && updated {
		updateCoreOptions()
	}

	pixels := fe.RunFrame(source)
	outputVideo(pixels)
}

//export retro_serialize_size
func retro_serialize_size() C.size_t {
	if fe == nil {
		return 0
	}
	return C.size_t(fe.SerializeSize())
}

//export retro_serialize
func retro_serialize(data unsafe.Pointer, size C.size_t) C.bool {
	if fe == nil {
		return C.bool(false)
	}

	state, err := fe.Serialize()
	if err != nil || len(state) > int(size) {
		return C.bool(false)
	}

	dst := unsafe.Slice((*byte)(data), size)
	copy(dst, state)
	return C.bool(true)
}

//export retro_unserialize
func retro_unserialize(data unsafe.Pointer, size C.size_t) C.bool {
	if fe == nil {
		return C.bool(false)
	}

	state := C.GoBytes(data, C.int(size))
	if err := fe.Unserialize(state); err != nil {
		return C.bool(false)
	}
	return C.bool(true)
}

//export retro_cheat_reset
func retro_cheat_reset() {
}

//export retro_cheat_set
func retro_cheat_set(index C.uint, enabled C.bool, code *C.char) {
}

//export retro_load_game
func retro_load_game(game *C.struct_retro_game_info) C.bool {
	if game == nil || game.path == nil || fe == nil {
		return C.bool(false)
	}

	// Set pixel format
	var pixelFormat C.int = C.RETRO_PIXEL_FORMAT_XRGB8888
	if !C.call_environ_cb(C.RETRO_ENVIRONMENT_SET_PIXEL_FORMAT, unsafe.Pointer(&pixelFormat)) {
		logger.Printf("Warning: XRGB8888 pixel format not supported")
		fe.Unload()
		return C.bool(false)
	}

	if err := fe.Load(C.GoString(game.path)); err != nil {
		logger.Printf("Warning: %v", err)
		return C.bool(false)
	}

	updateCoreOptions()
	return C.bool(true)
}

//export retro_load_game_special
func retro_load_game_special(gameType C.uint, info *C.struct_retro_game_info, numInfo C.size_t) C.bool {
	return C.bool(false)
}

//export retro_unload_game
func retro_unload_game() {
	if fe != nil {
		fe.Unload()
	}
}

//export retro_get_region
func retro_get_region() C.uint {
	if fe != nil && fe.Region() == vmcore.RegionPAL {
		return C.RETRO_REGION_PAL
	}
	return C.RETRO_REGION_NTSC
}

//export retro_get_memory_data
func retro_get_memory_data(id C.uint) unsafe.Pointer {
	return nil
}

//export retro_get_memory_size
func retro_get_memory_size(id C.uint) C.size_t {
	return 0
}

// ensureStrings allocates C strings for system info once.
func ensureStrings() {
	if stringsReady {
		return
	}
	libNameStr = C.CString(sysInfo.CoreName)
	libVerStr = C.CString(sysInfo.CoreVersion)
	validExtStr = C.CString(validExtensions(sysInfo.Extensions))
	stringsReady = true
}

// freeStrings releases the system info C strings.
func freeStrings() {
	if !stringsReady {
		return
	}
	C.free(unsafe.Pointer(libNameStr))
	C.free(unsafe.Pointer(libVerStr))
	C.free(unsafe.Pointer(validExtStr))
	libNameStr, libVerStr, validExtStr = nil, nil, nil
	stringsReady = false
}

// ensureOptionStrings allocates C strings for core options once.
func ensureOptionStrings() {
	if coreOptKeys != nil {
		return
	}
	coreOptions = frontend.CoreOptions()
	for _, opt := range coreOptions {
		coreOptKeys = append(coreOptKeys, C.CString(opt.Key))
		coreOptVals = append(coreOptVals, C.CString(optionValue(opt)))
	}
}

// setVariables registers all core options with the frontend.
func setVariables() {
	options := make([]C.struct_retro_variable, len(coreOptKeys)+1)
	for i := range coreOptKeys {
		options[i] = C.struct_retro_variable{key: coreOptKeys[i], value: coreOptVals[i]}
	}

	// Nil terminator
	options[len(coreOptKeys)] = C.struct_retro_variable{key: nil, value: nil}

	C.call_environ_cb(C.RETRO_ENVIRONMENT_SET_VARIABLES, unsafe.Pointer(&options[0]))
}

// updateCoreOptions reads core options from the frontend.
func updateCoreOptions() {
	if fe == nil {
		return
	}
	for i, cKey := range coreOptKeys {
		var v C.struct_retro_variable
		v.key = cKey
		if C.call_environ_cb(C.RETRO_ENVIRONMENT_GET_VARIABLE, unsafe.Pointer(&v)) && v.value != nil {
			fe.ApplyOption(coreOptions[i].Key, C.GoString(v.value))
		}
	}
}

// outputVideo converts a frame and hands it to the libretro frontend.
func outputVideo(fb []byte) {
	w, h := fe.Renderer().Size()
	pixels := w * h
	if len(fb) < pixels*4 || len(xrgbBuf) < pixels*4 {
		return
	}
	convertRGBAToXRGB8888(fb, xrgbBuf, pixels)
	C.call_video_cb(unsafe.Pointer(&xrgbBuf[0]), C.uint(w), C.uint(h), C.size_t(w*4))
}
