package ui

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chiptextfield/internal/chip"
	"chiptextfield/internal/config"
	"chiptextfield/internal/debug"
	"chiptextfield/internal/style"
	"chiptextfield/internal/ui/theme"
)

var (
	fieldIDs atomic.Int32
	logger   = debug.Scope("field")
)

// CloseGlyph is the default trailing icon of a chip. Clicking it removes the
// chip.
const CloseGlyph = "×"

// ChipTextField is a text input that turns submitted text into chips shown
// inline before the cursor. Chips can be navigated, clicked and removed from
// the keyboard or with the mouse.
//
// The field is a value type like every Bubble Tea component: keep the result
// of Update and the builder methods. The chip list itself lives in a shared
// *chip.State, so hosts may hold on to it and mutate it directly.
type ChipTextField[T chip.Item] struct {
	id     int
	state  *chip.State[T]
	mirror *chip.Mirror
	submit chip.SubmitFunc[T]
	input  textinput.Model
	keys   FieldKeyMap

	// Configuration
	enabled          bool
	readOnly         bool
	readOnlyChips    bool
	readOnlyChipsSet bool
	isError          bool
	label            string
	placeholder      string
	supportingText   string
	leadingIcon      string
	trailingIcon     string
	chipLeadingIcon  func(T) string
	chipTrailingIcon func(T) string
	onChipClick      func(T)
	onChipLongClick  func(T)
	delimiters       []rune
	chipSpacing      int
	maxChipWidth     int
	width            int // total width including the border; 0 = no wrapping
	padX, padY       int
	chipStyle        style.ChipStyle
	shape            *style.Shape
	colors           style.FieldColors
	border           lipgloss.Border
	longPress        time.Duration
	interactions     *style.InteractionSource
	originX, originY int

	// State
	focused    bool
	navIndex   int // highlighted chip (-1 = input mode)
	hoverIndex int // chip under the pointer (-1 = none)
	press      pointerPress
}

// pointerPress tracks a left button held down on a chip.
type pointerPress struct {
	active  bool
	index   int
	onClose bool
	long    bool // the long click already fired
	seq     int
}

// New creates an uncontrolled field: it owns its text and hands every
// submission to onSubmit. Returning false rejects the text.
func New[T chip.Item](onSubmit func(text string) (T, bool)) ChipTextField[T] {
	return newField(chip.TextValue{}, nil, textSubmit(onSubmit))
}

// NewControlled creates a field whose text is owned by the caller. Edits
// are reported through onValueChange, once per text change; cursor moves
// are not. Push new text with SetValue.
func NewControlled[T chip.Item](value string, onValueChange func(string), onSubmit func(text string) (T, bool)) ChipTextField[T] {
	var onChange func(chip.TextValue)
	if onValueChange != nil {
		onChange = func(v chip.TextValue) { onValueChange(v.Text) }
	}
	return newField(chip.NewTextValue(value), onChange, textSubmit(onSubmit))
}

// NewControlledValue is NewControlled for callers that also own the cursor
// and composition state.
func NewControlledValue[T chip.Item](value chip.TextValue, onValueChange func(chip.TextValue), onSubmit chip.SubmitFunc[T]) ChipTextField[T] {
	return newField(value, onValueChange, onSubmit)
}

func textSubmit[T chip.Item](fn func(string) (T, bool)) chip.SubmitFunc[T] {
	if fn == nil {
		return nil
	}
	return func(v chip.TextValue) (T, bool) { return fn(v.Text) }
}

func newField[T chip.Item](initial chip.TextValue, onChange func(chip.TextValue), submit chip.SubmitFunc[T]) ChipTextField[T] {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(initial.Text)
	ti.SetCursor(initial.Selection.End)

	p := theme.Current()
	f := ChipTextField[T]{
		id:           int(fieldIDs.Add(1)),
		state:        chip.NewState[T](),
		mirror:       chip.NewMirror(initial, onChange),
		submit:       submit,
		input:        ti,
		keys:         DefaultFieldKeyMap(),
		enabled:      true,
		chipSpacing:  1,
		padX:         1,
		chipStyle:    style.DefaultChipStyle(p),
		colors:       style.DefaultFieldColors(p),
		border:       lipgloss.RoundedBorder(),
		longPress:    config.DefaultLongPress,
		interactions: style.NewInteractionSource(),
		navIndex:     -1,
		hoverIndex:   -1,
	}
	f.chipTrailingIcon = func(T) string { return CloseGlyph }
	f.state.SetValue(initial)
	return f
}

// WithState makes the field render and edit s. The current text of the
// field is kept.
func (f ChipTextField[T]) WithState(s *chip.State[T]) ChipTextField[T] {
	if s == nil {
		return f
	}
	s.SetValue(f.state.Value())
	f.state = s
	return f
}

// WithEnabled toggles the field. A disabled field ignores all input and
// drops focus.
func (f ChipTextField[T]) WithEnabled(enabled bool) ChipTextField[T] {
	f.enabled = enabled
	if !enabled {
		f.Blur()
	}
	return f
}

// WithReadOnly forbids editing the text. Chips stay navigable.
func (f ChipTextField[T]) WithReadOnly(readOnly bool) ChipTextField[T] {
	f.readOnly = readOnly
	return f
}

// WithReadOnlyChips forbids removing chips. It defaults to the read-only
// setting.
func (f ChipTextField[T]) WithReadOnlyChips(readOnly bool) ChipTextField[T] {
	f.readOnlyChips = readOnly
	f.readOnlyChipsSet = true
	return f
}

// WithError switches the field to its error colours.
func (f ChipTextField[T]) WithError(isError bool) ChipTextField[T] {
	f.isError = isError
	return f
}

// WithLabel sets the label shown above the field.
func (f ChipTextField[T]) WithLabel(label string) ChipTextField[T] {
	f.label = label
	return f
}

// WithPlaceholder sets the hint shown while there are no chips and no text.
func (f ChipTextField[T]) WithPlaceholder(s string) ChipTextField[T] {
	f.placeholder = s
	f.input.Placeholder = s
	return f
}

// WithSupportingText sets the line shown below the field.
func (f ChipTextField[T]) WithSupportingText(s string) ChipTextField[T] {
	f.supportingText = s
	return f
}

// WithLeadingIcon sets the icon drawn before the chips.
func (f ChipTextField[T]) WithLeadingIcon(icon string) ChipTextField[T] {
	f.leadingIcon = icon
	return f
}

// WithTrailingIcon sets the icon drawn at the end of the field.
func (f ChipTextField[T]) WithTrailingIcon(icon string) ChipTextField[T] {
	f.trailingIcon = icon
	return f
}

// WithChipSpacing sets the gap between chips in cells.
func (f ChipTextField[T]) WithChipSpacing(n int) ChipTextField[T] {
	if n >= 0 {
		f.chipSpacing = n
	}
	return f
}

// WithMaxChipWidth truncates chip labels longer than n cells. 0 disables it.
func (f ChipTextField[T]) WithMaxChipWidth(n int) ChipTextField[T] {
	if n >= 0 {
		f.maxChipWidth = n
	}
	return f
}

// WithChipLeadingIcon sets a per-chip icon drawn before the label.
func (f ChipTextField[T]) WithChipLeadingIcon(fn func(T) string) ChipTextField[T] {
	f.chipLeadingIcon = fn
	return f
}

// WithChipTrailingIcon replaces the close glyph. The trailing icon acts as
// the chip's close button; nil removes it.
func (f ChipTextField[T]) WithChipTrailingIcon(fn func(T) string) ChipTextField[T] {
	f.chipTrailingIcon = fn
	return f
}

// WithOnChipClick registers a callback for chip clicks.
func (f ChipTextField[T]) WithOnChipClick(fn func(T)) ChipTextField[T] {
	f.onChipClick = fn
	return f
}

// WithOnChipLongClick registers a callback for long clicks.
func (f ChipTextField[T]) WithOnChipLongClick(fn func(T)) ChipTextField[T] {
	f.onChipLongClick = fn
	return f
}

// WithChipStyle replaces the chip style resolver.
func (f ChipTextField[T]) WithChipStyle(s style.ChipStyle) ChipTextField[T] {
	if s != nil {
		f.chipStyle = s
	}
	return f
}

// WithShape overrides the chip end caps regardless of the chip style.
func (f ChipTextField[T]) WithShape(s style.Shape) ChipTextField[T] {
	f.shape = &s
	return f
}

// WithColors replaces the field colours.
func (f ChipTextField[T]) WithColors(c style.FieldColors) ChipTextField[T] {
	f.colors = c
	return f
}

// WithBorder sets the border drawn around the field.
func (f ChipTextField[T]) WithBorder(b lipgloss.Border) ChipTextField[T] {
	f.border = b
	return f
}

// WithPadding sets the vertical and horizontal padding inside the border.
func (f ChipTextField[T]) WithPadding(vertical, horizontal int) ChipTextField[T] {
	f.padY = max(vertical, 0)
	f.padX = max(horizontal, 0)
	return f
}

// WithWidth sets the total width of the field. Chips wrap inside it.
func (f ChipTextField[T]) WithWidth(w int) ChipTextField[T] {
	f.width = max(w, 0)
	return f
}

// WithKeyMap replaces the key bindings.
func (f ChipTextField[T]) WithKeyMap(k FieldKeyMap) ChipTextField[T] {
	f.keys = k
	return f
}

// WithInteractionSource shares s as the field's interaction state so the
// host can observe focus and hover.
func (f ChipTextField[T]) WithInteractionSource(s *style.InteractionSource) ChipTextField[T] {
	if s != nil {
		s.Emit(f.interactions.Current())
		f.interactions = s
	}
	return f
}

// WithDelimiters sets the runes that submit the text like Enter does.
func (f ChipTextField[T]) WithDelimiters(delims ...rune) ChipTextField[T] {
	f.delimiters = append([]rune(nil), delims...)
	return f
}

// WithLongPress sets how long a chip must be held for a long click.
func (f ChipTextField[T]) WithLongPress(d time.Duration) ChipTextField[T] {
	if d > 0 {
		f.longPress = d
	}
	return f
}

// WithOrigin sets the screen position of the field's top-left cell, used to
// map mouse events onto chips.
func (f ChipTextField[T]) WithOrigin(x, y int) ChipTextField[T] {
	f.SetOrigin(x, y)
	return f
}

// WithConfig applies the chip and field settings from the loaded
// configuration.
func (f ChipTextField[T]) WithConfig(c config.Field) ChipTextField[T] {
	f = f.WithChipSpacing(c.Spacing).
		WithMaxChipWidth(c.MaxChipWidth).
		WithWidth(c.Width).
		WithLongPress(c.LongPress).
		WithDelimiters(c.Delimiters...)
	if s, ok := style.ShapeByName(c.Shape); ok {
		f = f.WithShape(s)
	}
	return f
}

// Init implements tea.Model-like interface.
func (f ChipTextField[T]) Init() tea.Cmd {
	return nil
}

// SetOrigin updates the screen position of the field.
func (f *ChipTextField[T]) SetOrigin(x, y int) {
	f.originX, f.originY = x, y
}

// SetValue pushes owner text into the field. It never reports a change
// back through onValueChange.
func (f *ChipTextField[T]) SetValue(s string) {
	v, resynced := f.mirror.Reconcile(s)
	if resynced {
		logger.Logf("field %d: selection clamped to %q", f.id, s)
	}
	f.applyValue(v)
}

// SetTextValue is SetValue for owners of the full text value.
func (f *ChipTextField[T]) SetTextValue(v chip.TextValue) {
	v, _ = f.mirror.ReconcileValue(v)
	f.applyValue(v)
}

func (f *ChipTextField[T]) applyValue(v chip.TextValue) {
	if f.input.Value() != v.Text {
		f.input.SetValue(v.Text)
	}
	f.input.SetCursor(v.Selection.End)
	f.state.SetValue(v)
}

// SetError toggles the error colours.
func (f *ChipTextField[T]) SetError(isError bool) {
	f.isError = isError
}

// SetSupportingText replaces the line below the field.
func (f *ChipTextField[T]) SetSupportingText(s string) {
	f.supportingText = s
}

// SetEnabled toggles input handling.
func (f *ChipTextField[T]) SetEnabled(enabled bool) {
	*f = f.WithEnabled(enabled)
}

// SetChips replaces every chip.
func (f *ChipTextField[T]) SetChips(chips []T) {
	f.state.Clear()
	for _, c := range chips {
		f.state.Add(c)
	}
	f.exitNavigation()
	f.hoverIndex = -1
}

// RemoveChip removes c following the state's remove policy.
func (f *ChipTextField[T]) RemoveChip(c T) bool {
	removed := f.state.Remove(c)
	if removed {
		f.clampNavigation()
		f.hoverIndex = -1
	}
	return removed
}

// Focus focuses the text input. A disabled field cannot take focus.
func (f *ChipTextField[T]) Focus() tea.Cmd {
	if !f.enabled {
		return nil
	}
	f.focused = true
	f.interactions.Set(style.Focused, true)
	return f.input.Focus()
}

// Blur removes focus and leaves chip navigation.
func (f *ChipTextField[T]) Blur() {
	f.focused = false
	f.interactions.Set(style.Focused, false)
	f.input.Blur()
	f.exitNavigation()
	f.press = pointerPress{seq: f.press.seq}
}

// Focused returns whether the field has focus.
func (f ChipTextField[T]) Focused() bool {
	return f.focused
}

// State returns the chip state the field edits.
func (f ChipTextField[T]) State() *chip.State[T] {
	return f.state
}

// Chips returns a copy of the chips.
func (f ChipTextField[T]) Chips() []T {
	return f.state.Chips()
}

// ChipCount returns the number of chips.
func (f ChipTextField[T]) ChipCount() int {
	return f.state.Len()
}

// Value returns the text being composed.
func (f ChipTextField[T]) Value() string {
	return f.mirror.Value().Text
}

// TextValue returns the text being composed with its cursor state.
func (f ChipTextField[T]) TextValue() chip.TextValue {
	return f.mirror.Value()
}

// Interactions returns the field's interaction state.
func (f ChipTextField[T]) Interactions() style.InteractionState {
	return f.interactions
}

// InNavigationMode returns whether a chip is highlighted.
func (f ChipTextField[T]) InNavigationMode() bool {
	return f.navIndex >= 0
}

// HighlightedIndex returns the highlighted chip or -1.
func (f ChipTextField[T]) HighlightedIndex() int {
	return f.navIndex
}

// HighlightedChip returns the highlighted chip.
func (f ChipTextField[T]) HighlightedChip() (T, bool) {
	if f.navIndex < 0 {
		var zero T
		return zero, false
	}
	return f.state.At(f.navIndex)
}

// chipsLocked reports whether chips may not be removed.
func (f ChipTextField[T]) chipsLocked() bool {
	if f.readOnlyChipsSet {
		return f.readOnlyChips
	}
	return f.readOnly
}

// chipInteraction is the interaction snapshot of chip i.
func (f ChipTextField[T]) chipInteraction(i int) style.Interaction {
	in := style.Idle
	if f.navIndex == i {
		in = in.With(style.Focused)
	}
	if f.press.active && f.press.index == i && !f.press.onClose {
		in = in.With(style.Pressed)
	}
	if f.hoverIndex == i {
		in = in.With(style.Hovered)
	}
	return in
}

func (f *ChipTextField[T]) enterNavigation() bool {
	if f.state.Len() == 0 {
		return false
	}
	f.navIndex = f.state.Len() - 1
	return true
}

func (f *ChipTextField[T]) exitNavigation() {
	f.navIndex = -1
}

// clampNavigation keeps the highlight on a valid chip after removals.
func (f *ChipTextField[T]) clampNavigation() {
	if f.navIndex < 0 {
		return
	}
	if n := f.state.Len(); f.navIndex >= n {
		f.navIndex = n - 1
	}
}
