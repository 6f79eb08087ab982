package config

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/dragboard/internal/config/colors"
)

// ColorScheme is the configurable TUI palette
type ColorScheme = colors.ColorScheme

// Preset returns a copy of the named palette, or the default one for unknown names
func Preset(name string) ColorScheme {
	return *colors.GetPreset(name)
}

func validatePreset(name string) error {
	if _, ok := colors.Lookup(name); !ok {
		return fmt.Errorf("unknown theme preset %q (want one of %s)", name, strings.Join(colors.Names(), ", "))
	}
	return nil
}
