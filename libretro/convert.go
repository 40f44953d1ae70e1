package libretro

import (
	"strings"

	vmcore "github.com/user-none/lc3sim/api"
)

type logSeverity int

const (
	levelInfo logSeverity = iota
	levelWarn
)

// logLevel picks the libretro log level for a formatted log line.
func logLevel(line string) logSeverity {
	if strings.HasPrefix(line, "Warning:") {
		return levelWarn
	}
	return levelInfo
}

// validExtensions formats extensions the way retro_system_info expects:
// without dots, separated by "|".
func validExtensions(extensions []string) string {
	exts := make([]string, len(extensions))
	for i, ext := range extensions {
		exts[i] = strings.TrimPrefix(ext, ".")
	}
	return strings.Join(exts, "|")
}

// optionValue builds the "Label; default|other|..." string for one core
// option.
func optionValue(opt vmcore.CoreOption) string {
	switch opt.Type {
	case vmcore.CoreOptionBool:
		if opt.Default == "true" {
			return opt.Label + "; true|false"
		}
		return opt.Label + "; false|true"
	case vmcore.CoreOptionSelect:
		ordered := reorderDefault(opt.Values, opt.Default)
		return opt.Label + "; " + strings.Join(ordered, "|")
	default:
		return opt.Label + "; " + strings.Join(opt.Values, "|")
	}
}

// convertRGBAToXRGB8888 converts RGBA pixels to XRGB8888 format.
func convertRGBAToXRGB8888(src, dst []byte, pixels int) {
	for i := 0; i < pixels; i++ {
		srcIdx := i * 4
		dstIdx := i * 4
		dst[dstIdx+0] = src[srcIdx+2] // B
		dst[dstIdx+1] = src[srcIdx+1] // G
		dst[dstIdx+2] = src[srcIdx+0] // R
		dst[dstIdx+3] = 0xFF          // X
	}
}

// reorderDefault moves the default value to the front of a values slice.
func reorderDefault(values []string, def string) []string {
	result := make([]string, 0, len(values))
	result = append(result, def)
	for _, v := range values {
		if v != def {
			result = append(result, v)
		}
	}
	return result
}
