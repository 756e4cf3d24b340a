package ui

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"chiptextfield/internal/chip"
	"chiptextfield/internal/style"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// ID identifies the field in the messages it sends.
func (f ChipTextField[T]) ID() int {
	return f.id
}

// Update handles messages and returns the updated field.
func (f ChipTextField[T]) Update(msg tea.Msg) (ChipTextField[T], tea.Cmd) {
	switch msg := msg.(type) {
	case longPressMsg:
		if msg.field != f.id {
			return f, nil
		}
		return f.handleLongPress(msg)

	case tea.MouseMsg:
		if !f.enabled {
			return f, nil
		}
		return f.handleMouse(msg)

	case tea.KeyMsg:
		if !f.enabled || !f.focused {
			return f, nil
		}
		if f.InNavigationMode() {
			return f.handleNavigationKey(msg)
		}
		return f.handleInputKey(msg)
	}

	if !f.enabled {
		return f, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f ChipTextField[T]) handleInputKey(msg tea.KeyMsg) (ChipTextField[T], tea.Cmd) {
	switch {
	case msg.Paste:
		if f.readOnly {
			return f, nil
		}
		return f.handlePaste(string(msg.Runes))

	case key.Matches(msg, f.keys.Submit), f.isDelimiter(msg):
		return f.submitText()

	case key.Matches(msg, f.keys.EnterChips) && f.input.Value() == "":
		f.enterNavigation()
		return f, nil

	case key.Matches(msg, f.keys.ChipsLeft) && f.input.Position() == 0:
		if f.enterNavigation() {
			return f, nil
		}
	}

	if f.readOnly && !isCursorKey(msg) {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	changed := f.syncInput()
	return f, tea.Batch(cmd, changed)
}

// isDelimiter reports whether msg is a single configured separator rune.
func (f ChipTextField[T]) isDelimiter(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeySpace:
		return slices.Contains(f.delimiters, ' ')
	case tea.KeyRunes:
		return len(msg.Runes) == 1 && slices.Contains(f.delimiters, msg.Runes[0])
	}
	return false
}

func isCursorKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	}
	return false
}

// syncInput folds the text input's value into the chip state and the
// mirror. It returns a ValueChangedMsg command when the text moved.
func (f *ChipTextField[T]) syncInput() tea.Cmd {
	pos := f.input.Position()
	next := chip.TextValue{
		Text:      f.input.Value(),
		Selection: chip.Range{Start: pos, End: pos},
	}
	f.state.SetValue(next)
	if !f.mirror.SyncExternalValue(next) {
		return nil
	}
	return emit(ValueChangedMsg{ID: f.id, Value: next})
}

func (f ChipTextField[T]) submitText() (ChipTextField[T], tea.Cmd) {
	if f.readOnly {
		return f, nil
	}
	value := f.mirror.Value()
	c, ok := f.state.Submit(value, f.submit)
	if !ok {
		logger.Logf("field %d: rejected %q", f.id, value.Text)
		return f, nil
	}
	index := f.state.Len() - 1
	logger.Logf("field %d: added %q at %d", f.id, c.Text(), index)

	f.input.SetValue("")
	changed := f.syncInput()
	return f, tea.Batch(changed, emit(ChipAddedMsg[T]{ID: f.id, Chip: c, Index: index}))
}

// handlePaste submits every complete segment of a paste that contains
// delimiters or line breaks. Whatever follows the last separator stays in
// the input, along with any segment the submit func rejected.
func (f ChipTextField[T]) handlePaste(text string) (ChipTextField[T], tea.Cmd) {
	if !strings.ContainsFunc(text, f.splitsPaste) {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text), Paste: true})
		changed := f.syncInput()
		return f, tea.Batch(cmd, changed)
	}

	current := []rune(f.input.Value())
	pos := min(f.input.Position(), len(current))
	combined := string(current[:pos]) + text + string(current[pos:])

	segments := splitKeepEmpty(combined, f.splitsPaste)
	tail := segments[len(segments)-1]

	var kept []string
	var cmds []tea.Cmd
	for _, seg := range segments[:len(segments)-1] {
		if seg == "" {
			continue
		}
		c, ok := f.state.Submit(chip.NewTextValue(seg), f.submit)
		if !ok {
			kept = append(kept, seg)
			continue
		}
		cmds = append(cmds, emit(ChipAddedMsg[T]{ID: f.id, Chip: c, Index: f.state.Len() - 1}))
	}
	logger.Logf("field %d: paste added %d chips, kept %d segments", f.id, len(cmds), len(kept))

	// The input is single line, so without delimiters kept segments are
	// joined with a space.
	sep := " "
	if len(f.delimiters) > 0 {
		sep = string(f.delimiters[0])
	}
	f.input.SetValue(strings.Join(append(kept, tail), sep))
	f.input.CursorEnd()
	cmds = append(cmds, f.syncInput())
	return f, tea.Batch(cmds...)
}

func (f ChipTextField[T]) splitsPaste(r rune) bool {
	return r == '\n' || r == '\r' || slices.Contains(f.delimiters, r)
}

// splitKeepEmpty splits s around every rune matching sep. Unlike
// strings.FieldsFunc it keeps empty segments, so the result always has one
// more element than there are separators.
func splitKeepEmpty(s string, sep func(rune) bool) []string {
	var out []string
	start := 0
	for i, r := range s {
		if sep(r) {
			out = append(out, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(out, s[start:])
}

func (f ChipTextField[T]) handleNavigationKey(msg tea.KeyMsg) (ChipTextField[T], tea.Cmd) {
	switch {
	case key.Matches(msg, f.keys.PrevChip):
		// Stop at the first chip
		if f.navIndex > 0 {
			f.navIndex--
		}
		return f, nil

	case key.Matches(msg, f.keys.NextChip):
		if f.navIndex < f.state.Len()-1 {
			f.navIndex++
			return f, nil
		}
		return f.leaveNavigation(ChipNavExitRight, 0)

	case key.Matches(msg, f.keys.RemoveChip):
		if f.chipsLocked() {
			return f, nil
		}
		return f.removeAt(f.navIndex)

	case key.Matches(msg, f.keys.ClickChip):
		return f, f.clickChip(f.navIndex)

	case key.Matches(msg, f.keys.LongClickChip):
		return f, f.longClickChip(f.navIndex)

	case key.Matches(msg, f.keys.CopyChip):
		return f, f.copyChip(f.navIndex)

	case key.Matches(msg, f.keys.ExitChips):
		return f.leaveNavigation(ChipNavExitEscape, 0)

	case key.Matches(msg, f.keys.TabOut):
		return f.leaveNavigation(ChipNavExitTab, 0)

	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Paste:
		// Typing goes back to the input and keeps the character
		var exit, typed tea.Cmd
		f, exit = f.leaveNavigation(ChipNavExitTyping, msg.Runes[0])
		f, typed = f.handleInputKey(msg)
		return f, tea.Batch(exit, typed)
	}

	return f, nil
}

func (f ChipTextField[T]) leaveNavigation(reason ChipNavExitReason, char rune) (ChipTextField[T], tea.Cmd) {
	f.exitNavigation()
	return f, emit(ChipNavExitMsg{ID: f.id, Reason: reason, Character: char})
}

func (f ChipTextField[T]) removeAt(i int) (ChipTextField[T], tea.Cmd) {
	c, ok := f.state.RemoveAt(i)
	if !ok {
		return f, nil
	}
	logger.Logf("field %d: removed %q at %d", f.id, c.Text(), i)
	f.hoverIndex = -1

	cmds := []tea.Cmd{emit(ChipRemovedMsg[T]{ID: f.id, Chip: c, Index: i})}
	if f.InNavigationMode() {
		if i < f.navIndex {
			f.navIndex--
		}
		f.clampNavigation()
		if !f.InNavigationMode() {
			cmds = append(cmds, emit(ChipNavExitMsg{ID: f.id, Reason: ChipNavExitEmpty}))
		}
	}
	return f, tea.Batch(cmds...)
}

func (f ChipTextField[T]) clickChip(i int) tea.Cmd {
	c, ok := f.state.At(i)
	if !ok {
		return nil
	}
	if f.onChipClick != nil {
		f.onChipClick(c)
	}
	return emit(ChipClickedMsg[T]{ID: f.id, Chip: c, Index: i})
}

func (f ChipTextField[T]) longClickChip(i int) tea.Cmd {
	c, ok := f.state.At(i)
	if !ok {
		return nil
	}
	if f.onChipLongClick != nil {
		f.onChipLongClick(c)
	}
	return emit(ChipLongClickedMsg[T]{ID: f.id, Chip: c, Index: i})
}

func (f ChipTextField[T]) copyChip(i int) tea.Cmd {
	c, ok := f.state.At(i)
	if !ok {
		return nil
	}
	id, text := f.id, c.Text()
	return func() tea.Msg {
		err := writeClipboard(text)
		if err != nil {
			logger.Logf("field %d: copy failed: %v", id, err)
		}
		return ChipCopiedMsg{ID: id, Text: text, Err: err}
	}
}

func (f ChipTextField[T]) handleMouse(msg tea.MouseMsg) (ChipTextField[T], tea.Cmd) {
	x, y := msg.X-f.originX, msg.Y-f.originY
	l := f.layout()
	z, onChip := l.hit(x, y)
	onClose := onChip && z.onClose(x)

	switch msg.Action {
	case tea.MouseActionMotion:
		f.hoverIndex = -1
		if onChip {
			f.hoverIndex = z.index
		}
		f.interactions.Set(style.Hovered, l.contains(x, y))
		return f, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return f, nil
		}
		if !onChip {
			f.press = pointerPress{seq: f.press.seq}
			return f, nil
		}
		f.press = pointerPress{active: true, index: z.index, onClose: onClose, seq: f.press.seq + 1}
		if onClose {
			return f, nil
		}
		return f, scheduleLongPress(f.longPress, f.id, f.press.seq)

	case tea.MouseActionRelease:
		p := f.press
		f.press = pointerPress{seq: p.seq}
		if !p.active || !onChip || z.index != p.index || onClose != p.onClose {
			return f, nil
		}
		if p.onClose {
			if f.chipsLocked() {
				return f, nil
			}
			return f.removeAt(p.index)
		}
		if p.long {
			return f, nil
		}
		return f, f.clickChip(p.index)
	}

	return f, nil
}

func (f ChipTextField[T]) handleLongPress(msg longPressMsg) (ChipTextField[T], tea.Cmd) {
	if !f.press.active || f.press.seq != msg.seq || f.press.onClose || f.press.long {
		return f, nil
	}
	f.press.long = true
	return f, f.longClickChip(f.press.index)
}
