package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"chiptextfield/internal/chip"
)

// ChipNavExitReason indicates why chip navigation mode was exited.
type ChipNavExitReason int

const (
	// ChipNavExitRight - → pressed past the last chip.
	ChipNavExitRight ChipNavExitReason = iota
	// ChipNavExitEscape - Esc or ↓ pressed.
	ChipNavExitEscape
	// ChipNavExitTab - Tab pressed.
	ChipNavExitTab
	// ChipNavExitTyping - a character was typed (Character has the key).
	ChipNavExitTyping
	// ChipNavExitEmpty - the last chip was removed.
	ChipNavExitEmpty
)

func (r ChipNavExitReason) String() string {
	switch r {
	case ChipNavExitRight:
		return "right"
	case ChipNavExitEscape:
		return "escape"
	case ChipNavExitTab:
		return "tab"
	case ChipNavExitTyping:
		return "typing"
	case ChipNavExitEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Every message below carries the ID of the field that sent it so hosts
// with several fields can route them.

// ChipAddedMsg is sent after an input submission was accepted as a chip.
type ChipAddedMsg[T any] struct {
	ID    int
	Chip  T
	Index int
}

// ChipRemovedMsg is sent when a chip is removed from the keyboard or with
// its close glyph.
type ChipRemovedMsg[T any] struct {
	ID    int
	Chip  T
	Index int
}

// ChipClickedMsg is sent when a chip is clicked or activated with Enter.
type ChipClickedMsg[T any] struct {
	ID    int
	Chip  T
	Index int
}

// ChipLongClickedMsg is sent when a chip is held down or activated with the
// long click key.
type ChipLongClickedMsg[T any] struct {
	ID    int
	Chip  T
	Index int
}

// ValueChangedMsg is sent when the text being composed changes. Cursor
// moves alone never produce it.
type ValueChangedMsg struct {
	ID    int
	Value chip.TextValue
}

// ChipNavExitMsg signals the field left chip navigation.
type ChipNavExitMsg struct {
	ID        int
	Reason    ChipNavExitReason
	Character rune // For ChipNavExitTyping: the key that was pressed
}

// ChipCopiedMsg reports the result of copying a chip's text.
type ChipCopiedMsg struct {
	ID   int
	Text string
	Err  error
}

// longPressMsg fires when a pointer has been held on a chip long enough.
// seq ties it to a single press so stale timers are ignored.
type longPressMsg struct {
	field int
	seq   int
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func scheduleLongPress(d time.Duration, field, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return longPressMsg{field: field, seq: seq}
	})
}
