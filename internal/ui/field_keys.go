package ui

import "github.com/charmbracelet/bubbles/key"

// FieldKeyMap holds the key bindings of a ChipTextField. Bindings that only
// apply while a chip is highlighted are grouped under chip navigation.
type FieldKeyMap struct {
	// Text input
	Submit     key.Binding
	EnterChips key.Binding // backspace on an empty input
	ChipsLeft  key.Binding // left with the cursor at the start

	// Chip navigation
	PrevChip      key.Binding
	NextChip      key.Binding
	RemoveChip    key.Binding
	ClickChip     key.Binding
	LongClickChip key.Binding
	CopyChip      key.Binding
	ExitChips     key.Binding
	TabOut        key.Binding
}

// DefaultFieldKeyMap returns the default bindings.
func DefaultFieldKeyMap() FieldKeyMap {
	return FieldKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "Add chip"),
		),
		EnterChips: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "Select last chip"),
		),
		ChipsLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Select chips"),
		),
		PrevChip: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Previous chip"),
		),
		NextChip: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Next chip"),
		),
		RemoveChip: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "Remove chip"),
		),
		ClickChip: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "Open chip"),
		),
		LongClickChip: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Chip menu"),
		),
		CopyChip: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("^Y", "Copy chip"),
		),
		ExitChips: key.NewBinding(
			key.WithKeys("esc", "down"),
			key.WithHelp("Esc", "Back to input"),
		),
		TabOut: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥", "Leave chips"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k FieldKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.EnterChips, k.RemoveChip, k.CopyChip}
}

// FullHelp implements help.KeyMap.
func (k FieldKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.EnterChips, k.ChipsLeft},
		{k.PrevChip, k.NextChip, k.RemoveChip},
		{k.ClickChip, k.LongClickChip, k.CopyChip, k.ExitChips},
	}
}
