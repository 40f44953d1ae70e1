package frontend

import (
	"strconv"

	vmcore "github.com/user-none/lc3sim/api"
	"github.com/user-none/lc3sim/input"
	"github.com/user-none/lc3sim/pacer"
	"github.com/user-none/lc3sim/render"
)

// Option keys understood by ApplyOption.
const (
	OptionStepsPerFrame = "lc3sim_steps_per_frame"
	OptionPalette       = "lc3sim_palette"
	OptionInputMode     = "lc3sim_input_mode"
)

// StepsPerFrameChoices are the budgets offered to hosts with option menus.
var StepsPerFrameChoices = []string{"250", "500", "1000", "2000", "5000"}

// CoreOptions describes the settings hosts may expose.
func CoreOptions() []vmcore.CoreOption {
	return []vmcore.CoreOption{
		{
			Key:         OptionStepsPerFrame,
			Label:       "Instructions per frame",
			Description: "How many instructions the machine executes every frame",
			Type:        vmcore.CoreOptionSelect,
			Default:     strconv.Itoa(pacer.DefaultBudget),
			Values:      StepsPerFrameChoices,
		},
		{
			Key:         OptionPalette,
			Label:       "Palette",
			Description: "Console text and background colors",
			Type:        vmcore.CoreOptionSelect,
			Default:     render.Palettes[0].Name,
			Values:      render.PaletteNames(),
		},
		{
			Key:         OptionInputMode,
			Label:       "Raw keyboard",
			Description: "Pass every key code to the machine instead of letters, Return and Backspace",
			Type:        vmcore.CoreOptionBool,
			Default:     "false",
		},
	}
}

// ApplyOption sets one option from its host string value. It reports
// whether the key and value were understood.
func (f *Frontend) ApplyOption(key, value string) bool {
	switch key {
	case OptionStepsPerFrame:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			f.log.Printf("Warning: invalid %s value %q", key, value)
			return false
		}
		f.SetStepsPerFrame(n)
		return true
	case OptionPalette:
		p, ok := render.LookupPalette(value)
		if !ok {
			f.log.Printf("Warning: unknown palette %q", value)
			return false
		}
		f.SetColors(p.Foreground, p.Background)
		return true
	case OptionInputMode:
		switch value {
		case "true":
			f.SetInputMode(input.ModeRaw)
		case "false":
			f.SetInputMode(input.ModeMapped)
		default:
			return false
		}
		return true
	}
	return false
}
