package style

import (
	"github.com/charmbracelet/lipgloss"

	"chiptextfield/internal/ui/theme"
)

// Shape is the pair of end caps drawn around a chip label.
type Shape struct {
	Left  string
	Right string
}

// Powerline glyphs give the pill its rounded ends.
var (
	PillShape    = Shape{Left: "\ue0b6", Right: "\ue0b4"}
	BracketShape = Shape{Left: "[", Right: "]"}
	PlainShape   = Shape{Left: " ", Right: " "}
)

// ShapeByName maps the configured shape names onto shapes.
func ShapeByName(name string) (Shape, bool) {
	switch name {
	case "pill":
		return PillShape, true
	case "bracket":
		return BracketShape, true
	case "plain":
		return PlainShape, true
	}
	return Shape{}, false
}

// ChipStyle resolves the look of a single chip. Each accessor returns an
// observable value tied to the interaction state it was given.
type ChipStyle interface {
	Shape(enabled bool, state InteractionState) *Value[Shape]
	BorderWidth(enabled bool, state InteractionState) *Value[int]
	BorderColor(enabled bool, state InteractionState) *Value[lipgloss.TerminalColor]
	TextColor(enabled bool, state InteractionState) *Value[lipgloss.TerminalColor]
	CursorColor() *Value[lipgloss.TerminalColor]
	BackgroundColor(enabled bool, state InteractionState) *Value[lipgloss.TerminalColor]
}

// ChipStyleFuncs builds a ChipStyle out of plain resolver functions.
// A nil function resolves to the zero value.
type ChipStyleFuncs struct {
	ShapeFn           func(enabled bool, i Interaction) Shape
	BorderWidthFn     func(enabled bool, i Interaction) int
	BorderColorFn     func(enabled bool, i Interaction) lipgloss.TerminalColor
	TextColorFn       func(enabled bool, i Interaction) lipgloss.TerminalColor
	CursorColorFn     func() lipgloss.TerminalColor
	BackgroundColorFn func(enabled bool, i Interaction) lipgloss.TerminalColor
}

var _ ChipStyle = ChipStyleFuncs{}

func (f ChipStyleFuncs) Shape(enabled bool, state InteractionState) *Value[Shape] {
	return Observe(enabled, state, orZero(f.ShapeFn))
}

func (f ChipStyleFuncs) BorderWidth(enabled bool, state InteractionState) *Value[int] {
	return Observe(enabled, state, orZero(f.BorderWidthFn))
}

func (f ChipStyleFuncs) BorderColor(enabled bool, state InteractionState) *Value[lipgloss.TerminalColor] {
	return Observe(enabled, state, orNoColor(f.BorderColorFn))
}

func (f ChipStyleFuncs) TextColor(enabled bool, state InteractionState) *Value[lipgloss.TerminalColor] {
	return Observe(enabled, state, orNoColor(f.TextColorFn))
}

func (f ChipStyleFuncs) CursorColor() *Value[lipgloss.TerminalColor] {
	if f.CursorColorFn == nil {
		return Constant[lipgloss.TerminalColor](lipgloss.NoColor{})
	}
	return Constant(f.CursorColorFn())
}

func (f ChipStyleFuncs) BackgroundColor(enabled bool, state InteractionState) *Value[lipgloss.TerminalColor] {
	return Observe(enabled, state, orNoColor(f.BackgroundColorFn))
}

// WithShape returns a copy that always resolves to s.
func (f ChipStyleFuncs) WithShape(s Shape) ChipStyleFuncs {
	f.ShapeFn = func(bool, Interaction) Shape { return s }
	return f
}

func orZero[V comparable](fn func(bool, Interaction) V) func(bool, Interaction) V {
	if fn != nil {
		return fn
	}
	return func(bool, Interaction) V {
		var zero V
		return zero
	}
}

func orNoColor(fn func(bool, Interaction) lipgloss.TerminalColor) func(bool, Interaction) lipgloss.TerminalColor {
	if fn != nil {
		return fn
	}
	return func(bool, Interaction) lipgloss.TerminalColor { return lipgloss.NoColor{} }
}

// DefaultChipStyle resolves chips from a palette: filled Info pills that
// turn Secondary when focused, Primary when hovered and Warning while
// pressed. Disabled chips are dimmed.
func DefaultChipStyle(p theme.Palette) ChipStyleFuncs {
	return ChipStyleFuncs{
		ShapeFn: func(bool, Interaction) Shape { return PillShape },
		BorderWidthFn: func(enabled bool, i Interaction) int {
			if enabled && i.Has(Focused) {
				return 1
			}
			return 0
		},
		BorderColorFn: func(enabled bool, i Interaction) lipgloss.TerminalColor {
			switch {
			case !enabled:
				return p.BorderDim
			case i.Has(Focused):
				return p.BorderFocused
			}
			return p.BorderNormal
		},
		TextColorFn: func(enabled bool, i Interaction) lipgloss.TerminalColor {
			switch {
			case !enabled:
				return p.TextMuted
			case i.Has(Focused):
				return p.Text
			}
			return p.Background
		},
		CursorColorFn: func() lipgloss.TerminalColor { return p.Primary },
		BackgroundColorFn: func(enabled bool, i Interaction) lipgloss.TerminalColor {
			switch {
			case !enabled:
				return p.BackgroundDarker
			case i.Has(Pressed):
				return p.Warning
			case i.Has(Focused):
				return p.BackgroundSecondary
			case i.Has(Hovered):
				return p.Primary
			}
			return p.Info
		},
	}
}
