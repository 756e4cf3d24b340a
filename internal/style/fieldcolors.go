package style

import (
	"github.com/charmbracelet/lipgloss"

	"chiptextfield/internal/ui/theme"
)

// FieldColors are the colours of the text field that hosts the chips.
type FieldColors struct {
	Text         lipgloss.TerminalColor
	DisabledText lipgloss.TerminalColor
	Container    lipgloss.TerminalColor
	Cursor       lipgloss.TerminalColor
	ErrorCursor  lipgloss.TerminalColor

	FocusedIndicator   lipgloss.TerminalColor
	HoveredIndicator   lipgloss.TerminalColor
	UnfocusedIndicator lipgloss.TerminalColor
	DisabledIndicator  lipgloss.TerminalColor
	ErrorIndicator     lipgloss.TerminalColor

	Label        lipgloss.TerminalColor
	FocusedLabel lipgloss.TerminalColor
	ErrorLabel   lipgloss.TerminalColor
	Placeholder  lipgloss.TerminalColor

	Icon      lipgloss.TerminalColor
	ErrorIcon lipgloss.TerminalColor
}

// DefaultFieldColors derives field colours from a palette.
func DefaultFieldColors(p theme.Palette) FieldColors {
	return FieldColors{
		Text:         p.Text,
		DisabledText: p.TextMuted,
		Container:    lipgloss.NoColor{},
		Cursor:       p.Primary,
		ErrorCursor:  p.Error,

		FocusedIndicator:   p.BorderFocused,
		HoveredIndicator:   p.Primary,
		UnfocusedIndicator: p.BorderNormal,
		DisabledIndicator:  p.BorderDim,
		ErrorIndicator:     p.Error,

		Label:        p.TextMuted,
		FocusedLabel: p.Primary,
		ErrorLabel:   p.Error,
		Placeholder:  p.TextMuted,

		Icon:      p.TextMuted,
		ErrorIcon: p.Error,
	}
}

// TextColor is the colour of typed text.
func (c FieldColors) TextColor(enabled bool) lipgloss.TerminalColor {
	if !enabled {
		return c.DisabledText
	}
	return c.Text
}

// CursorColor is the colour of the input cursor.
func (c FieldColors) CursorColor(isError bool) lipgloss.TerminalColor {
	if isError {
		return c.ErrorCursor
	}
	return c.Cursor
}

// IndicatorColor is the colour of the field border.
func (c FieldColors) IndicatorColor(enabled, isError bool, i Interaction) lipgloss.TerminalColor {
	switch {
	case !enabled:
		return c.DisabledIndicator
	case isError:
		return c.ErrorIndicator
	case i.Has(Focused):
		return c.FocusedIndicator
	case i.Has(Hovered):
		return c.HoveredIndicator
	}
	return c.UnfocusedIndicator
}

// LabelColor is the colour of the label above the field.
func (c FieldColors) LabelColor(enabled, isError bool, i Interaction) lipgloss.TerminalColor {
	switch {
	case !enabled:
		return c.DisabledText
	case isError:
		return c.ErrorLabel
	case i.Has(Focused):
		return c.FocusedLabel
	}
	return c.Label
}

// PlaceholderColor is the colour of the placeholder text.
func (c FieldColors) PlaceholderColor(enabled bool) lipgloss.TerminalColor {
	if !enabled {
		return c.DisabledText
	}
	return c.Placeholder
}

// IconColor is the colour of leading and trailing icons.
func (c FieldColors) IconColor(enabled, isError bool) lipgloss.TerminalColor {
	switch {
	case !enabled:
		return c.DisabledText
	case isError:
		return c.ErrorIcon
	}
	return c.Icon
}
