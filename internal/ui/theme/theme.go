// Package theme provides the semantic colour palettes the chip text field
// draws with.
package theme

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	apperrors "chiptextfield/internal/errors"
)

// Palette holds the 16 semantic colours of a theme.
// Every entry is an AdaptiveColor so light and dark terminals both work.
type Palette struct {
	// Base colors
	Primary   lipgloss.AdaptiveColor `toml:"primary"`   // Main accent (focused indicator)
	Secondary lipgloss.AdaptiveColor `toml:"secondary"` // Highlighted chip
	Accent    lipgloss.AdaptiveColor `toml:"accent"`

	// Status colors
	Error   lipgloss.AdaptiveColor `toml:"error"`
	Warning lipgloss.AdaptiveColor `toml:"warning"`
	Success lipgloss.AdaptiveColor `toml:"success"`
	Info    lipgloss.AdaptiveColor `toml:"info"` // Default chip fill

	// Text colors
	Text           lipgloss.AdaptiveColor `toml:"text"`
	TextMuted      lipgloss.AdaptiveColor `toml:"text-muted"` // Placeholder, disabled
	TextEmphasized lipgloss.AdaptiveColor `toml:"text-emphasized"`

	// Background colors
	Background          lipgloss.AdaptiveColor `toml:"background"`
	BackgroundSecondary lipgloss.AdaptiveColor `toml:"background-secondary"`
	BackgroundDarker    lipgloss.AdaptiveColor `toml:"background-darker"`

	// Border colors
	BorderNormal  lipgloss.AdaptiveColor `toml:"border-normal"`
	BorderFocused lipgloss.AdaptiveColor `toml:"border-focused"`
	BorderDim     lipgloss.AdaptiveColor `toml:"border-dim"`
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// LoadPaletteFile reads a TOML palette. Keys missing from the file keep the
// value from base, so a file only needs to list the colours it changes:
//
//	[info]
//	light = "#0db9d7"
//	dark  = "#7dcfff"
func LoadPaletteFile(path string, base Palette) (Palette, error) {
	p := base
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return base, apperrors.New(apperrors.CodePaletteInvalid, fmt.Sprintf("parse palette %s: %v", path, err), err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, apperrors.New(apperrors.CodePaletteInvalid,
			fmt.Sprintf("palette %s: unknown key %q", path, undecoded[0].String()), nil)
	}
	return p, nil
}
