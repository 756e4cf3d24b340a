package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"chiptextfield/internal/style"
)

const ellipsis = "…"

// fieldLayout is one frame of the field. View draws it and mouse handling
// hit-tests against it, so both always agree on where chips are.
type fieldLayout struct {
	lines  []string
	zones  []chipZone
	width  int // outer width of the field
	height int // rows from the top of the label to the bottom border
}

// chipZone is the cells covered by a chip, relative to the field origin.
// closeX0 == closeX1 when the chip has no close glyph.
type chipZone struct {
	index            int
	y                int
	x0, x1           int
	closeX0, closeX1 int
}

func (z chipZone) onClose(x int) bool {
	return x >= z.closeX0 && x < z.closeX1
}

func (l fieldLayout) hit(x, y int) (chipZone, bool) {
	for _, z := range l.zones {
		if y == z.y && x >= z.x0 && x < z.x1 {
			return z, true
		}
	}
	return chipZone{}, false
}

func (l fieldLayout) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.width && y < l.height
}

// renderedChip is a chip string plus where its close glyph sits in it.
type renderedChip struct {
	view             string
	closeOff, closeW int
}

func (f ChipTextField[T]) labelRows() int {
	if f.label == "" {
		return 0
	}
	return 1
}

func (f ChipTextField[T]) leadingWidth() int {
	if f.leadingIcon == "" {
		return 0
	}
	return lipgloss.Width(f.leadingIcon) + 1
}

func (f ChipTextField[T]) trailingWidth() int {
	if f.trailingIcon == "" {
		return 0
	}
	return lipgloss.Width(f.trailingIcon) + 1
}

// contentWidth is the room left for chips and input inside the border, or 0
// when the field has no width and nothing wraps.
func (f ChipTextField[T]) contentWidth() int {
	if f.width <= 0 {
		return 0
	}
	w := f.width - 2 - 2*f.padX - f.leadingWidth() - f.trailingWidth()
	return max(w, 1)
}

func (f ChipTextField[T]) layout() fieldLayout {
	chips := f.state.Chips()
	elements := make([]string, 0, len(chips)+1)
	rendered := make([]renderedChip, 0, len(chips))
	for i, c := range chips {
		rc := f.renderChip(i, c)
		rendered = append(rendered, rc)
		elements = append(elements, rc.view)
	}
	if in := f.renderInput(); in != "" {
		elements = append(elements, in)
	}

	originX := 1 + f.padX + f.leadingWidth()
	originY := f.labelRows() + 1 + f.padY
	maxWidth := f.contentWidth()

	var l fieldLayout
	var lines [][]string
	var current []string
	currentWidth, row := 0, 0
	for i, elem := range elements {
		w := lipgloss.Width(elem)
		if maxWidth > 0 && w > maxWidth {
			elem, w = fitElement(elem, w, maxWidth, i >= len(rendered))
		}
		gap := 0
		if len(current) > 0 {
			gap = f.chipSpacing
		}
		if maxWidth > 0 && len(current) > 0 && currentWidth+gap+w > maxWidth {
			lines = append(lines, current)
			current, currentWidth, gap = nil, 0, 0
			row++
		}
		x := currentWidth + gap
		if i < len(rendered) {
			z := chipZone{index: i, y: originY + row, x0: originX + x, x1: originX + x + w}
			if rc := rendered[i]; rc.closeW > 0 && rc.closeOff+rc.closeW <= w {
				z.closeX0 = z.x0 + rc.closeOff
				z.closeX1 = z.closeX0 + rc.closeW
			}
			l.zones = append(l.zones, z)
		}
		current = append(current, elem)
		currentWidth = x + w
	}
	if len(current) > 0 || len(lines) == 0 {
		lines = append(lines, current)
	}

	sep := strings.Repeat(" ", f.chipSpacing)
	for _, line := range lines {
		l.lines = append(l.lines, strings.Join(line, sep))
	}

	l.width = f.width
	if l.width == 0 {
		widest := 0
		for _, line := range l.lines {
			widest = max(widest, lipgloss.Width(line))
		}
		l.width = 2 + 2*f.padX + f.leadingWidth() + widest + f.trailingWidth()
	}
	l.height = f.labelRows() + 2 + 2*f.padY + len(l.lines)
	return l
}

// fitElement cuts an element down to the content width so no row is wider
// than the border. Chips lose their tail; the input loses its head so the
// end of the text stays in view.
func fitElement(elem string, w, maxWidth int, input bool) (string, int) {
	if input {
		elem = ansi.TruncateLeft(elem, w-maxWidth+lipgloss.Width(ellipsis), ellipsis)
	} else {
		elem = ansi.Truncate(elem, maxWidth, ellipsis)
	}
	return elem, lipgloss.Width(elem)
}

// renderChip draws chip i between the end caps of its shape. The caps take
// the chip colour as foreground so they blend into the label background,
// or the border colour when the chip has a border.
func (f ChipTextField[T]) renderChip(i int, c T) renderedChip {
	state := style.Static(f.chipInteraction(i))
	in := state.Current()

	shape := f.chipStyle.Shape(f.enabled, state).Get()
	if f.shape != nil {
		shape = *f.shape
	}
	bg := f.chipStyle.BackgroundColor(f.enabled, state).Get()
	fg := f.chipStyle.TextColor(f.enabled, state).Get()
	capColor := bg
	if f.chipStyle.BorderWidth(f.enabled, state).Get() > 0 {
		capColor = f.chipStyle.BorderColor(f.enabled, state).Get()
	}

	label := c.Text()
	if f.maxChipWidth > 0 {
		label = ansi.Truncate(label, f.maxChipWidth, ellipsis)
	}
	if f.chipLeadingIcon != nil {
		if icon := f.chipLeadingIcon(c); icon != "" {
			label = icon + " " + label
		}
	}
	closeOff, closeW := 0, 0
	if f.chipTrailingIcon != nil && !f.chipsLocked() {
		if icon := f.chipTrailingIcon(c); icon != "" {
			label += " "
			closeOff = lipgloss.Width(shape.Left) + lipgloss.Width(label)
			closeW = lipgloss.Width(icon)
			label += icon
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(fg).Background(bg)
	if in.Has(style.Focused) || in.Has(style.Pressed) {
		labelStyle = labelStyle.Bold(true)
	}
	view := renderCap(shape.Left, capColor, bg) + labelStyle.Render(label) + renderCap(shape.Right, capColor, bg)
	return renderedChip{view: view, closeOff: closeOff, closeW: closeW}
}

// renderCap draws an end cap. Blank caps are painted as background so the
// plain shape still reads as one block.
func renderCap(s string, capColor, bg lipgloss.TerminalColor) string {
	if s == "" {
		return ""
	}
	if strings.TrimSpace(s) == "" {
		return lipgloss.NewStyle().Background(bg).Render(s)
	}
	return lipgloss.NewStyle().Foreground(capColor).Render(s)
}

// renderInput draws the text input. The placeholder only shows while the
// field holds neither chips nor text.
func (f ChipTextField[T]) renderInput() string {
	in := f.input
	if f.state.Len() > 0 {
		in.Placeholder = ""
	}
	if in.Value() == "" && in.Placeholder != "" {
		// textinput only draws the first placeholder rune without a width
		in.Width = lipgloss.Width(in.Placeholder)
	}
	if !f.enabled || !f.focused || f.InNavigationMode() {
		in.Blur()
	}
	in.TextStyle = lipgloss.NewStyle().Foreground(f.colors.TextColor(f.enabled))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(f.colors.PlaceholderColor(f.enabled))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(f.cursorColor())
	in.Cursor.TextStyle = in.TextStyle
	return in.View()
}

func (f ChipTextField[T]) cursorColor() lipgloss.TerminalColor {
	if f.isError {
		return f.colors.CursorColor(true)
	}
	return f.chipStyle.CursorColor().Get()
}

// View renders the label, the bordered field and the supporting text.
func (f ChipTextField[T]) View() string {
	l := f.layout()
	inter := f.interactions.Current()

	var b strings.Builder
	if f.label != "" {
		labelStyle := lipgloss.NewStyle().Foreground(f.colors.LabelColor(f.enabled, f.isError, inter))
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString("\n")
	}

	content := strings.Join(l.lines, "\n")
	if cw := f.contentWidth(); cw > 0 {
		content = lipgloss.NewStyle().Width(cw).Render(content)
	}

	iconStyle := lipgloss.NewStyle().Foreground(f.colors.IconColor(f.enabled, f.isError))
	parts := make([]string, 0, 3)
	if f.leadingIcon != "" {
		parts = append(parts, iconStyle.Render(f.leadingIcon+" "))
	}
	parts = append(parts, content)
	if f.trailingIcon != "" {
		parts = append(parts, iconStyle.Render(" "+f.trailingIcon))
	}

	box := lipgloss.NewStyle().
		Border(f.border).
		BorderForeground(f.colors.IndicatorColor(f.enabled, f.isError, inter)).
		Padding(f.padY, f.padX)
	b.WriteString(box.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...)))

	if f.supportingText != "" {
		color := f.colors.Label
		if f.isError {
			color = f.colors.ErrorLabel
		}
		text := f.supportingText
		if f.width > 0 {
			text = wordwrap.String(text, f.width)
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(text))
	}
	return b.String()
}
