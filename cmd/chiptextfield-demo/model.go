package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chiptextfield/internal/chip"
	"chiptextfield/internal/config"
	"chiptextfield/internal/style"
	"chiptextfield/internal/ui"
	"chiptextfield/internal/ui/theme"
)

type fieldIndex int

const (
	tagsField fieldIndex = iota
	recipientsField
	pinnedField
	fieldCount
)

const (
	recipientsHint = "Name <address> or address, Enter to add"
	maxLogEntries  = 6
	headerHeight   = 2 // title and the blank line below it
)

// rejection records the last input the recipients submit func turned down.
// The submit func runs inside the field's Update, so it reports back
// through this shared pointer.
type rejection struct {
	text string
	err  error
}

type model struct {
	tags       ui.ChipTextField[chip.Label]
	recipients ui.ChipTextField[recipient]
	pinned     ui.ChipTextField[chip.Label]

	draft        string // recipient text, owned here
	rejected     *rejection
	recipientErr bool
	focus        fieldIndex

	settings config.Field
	palette  *paletteWatcher
	help     help.Model
	showHelp bool
	log      []string
	width    int
}

func newModel(settings config.Field) model {
	rejected := &rejection{}

	tags := ui.New(func(text string) (chip.Label, bool) {
		text = strings.TrimSpace(text)
		return chip.Label(text), text != ""
	}).
		WithConfig(settings).
		WithLabel("Tags").
		WithPlaceholder("Type a tag and press Enter").
		WithLeadingIcon("#")

	recipients := ui.NewControlled("", nil, func(text string) (recipient, bool) {
		r, err := parseRecipient(text)
		if err != nil {
			rejected.text, rejected.err = text, err
			return recipient{}, false
		}
		return r, true
	}).
		WithConfig(settings).
		WithLabel("To").
		WithPlaceholder("alice@example.com").
		WithLeadingIcon("@").
		WithSupportingText(recipientsHint).
		WithChipLeadingIcon(func(r recipient) string {
			if r.name == "" {
				return ""
			}
			return "✉"
		})

	pinned := ui.New[chip.Label](nil).
		WithConfig(settings).
		WithLabel("Pinned (read-only)").
		WithReadOnly(true).
		WithSupportingText("Click or press Enter on a chip to open it")
	pinned.SetChips([]chip.Label{"release", "blocker", "needs-review"})

	m := model{
		tags:       tags,
		recipients: recipients,
		pinned:     pinned,
		rejected:   rejected,
		settings:   settings,
		help:       help.New(),
		width:      settings.Width,
	}
	m.restyle()
	m.setFocus(tagsField)
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.palette.wait())
}

// restyle rebuilds every field's colours from the current palette.
func (m *model) restyle() {
	p := theme.Current()
	chipStyle := style.DefaultChipStyle(p)
	colors := style.DefaultFieldColors(p)

	pinnedStyle := chipStyle
	pinnedStyle.BackgroundColorFn = func(enabled bool, i style.Interaction) lipgloss.TerminalColor {
		if i.Has(style.Focused) || i.Has(style.Pressed) {
			return chipStyle.BackgroundColorFn(enabled, i)
		}
		return p.Accent
	}

	m.tags = m.tags.WithChipStyle(chipStyle).WithColors(colors)
	m.recipients = m.recipients.WithChipStyle(chipStyle).WithColors(colors)
	m.pinned = m.pinned.WithChipStyle(pinnedStyle).WithColors(colors)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if m.settings.Width == 0 {
			// unbounded fields never wrap
			return m, nil
		}
		m.width = min(msg.Width, max(m.settings.Width, 20))
		m.tags = m.tags.WithWidth(m.width)
		m.recipients = m.recipients.WithWidth(m.width)
		m.pinned = m.pinned.WithWidth(m.width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.focusedInNavigation() {
				return m, tea.Quit
			}
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		case "ctrl+t":
			name := theme.CycleTheme()
			m.restyle()
			m.addLog("Theme: " + name)
			return m, nil
		case "ctrl+s":
			if err := config.SaveTheme(theme.CurrentName()); err != nil {
				m.addLog("Save failed: " + err.Error())
			} else {
				m.addLog("Saved theme " + theme.CurrentName())
			}
			return m, nil
		case "tab":
			if !m.focusedInNavigation() {
				return m, m.moveFocus(1)
			}
		case "shift+tab":
			if !m.focusedInNavigation() {
				return m, m.moveFocus(-1)
			}
		}
		return m.updateFocused(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case paletteChangedMsg:
		if err := applyTheme(m.settings); err != nil {
			m.addLog("Palette reload failed: " + err.Error())
		} else {
			m.restyle()
			m.addLog("Reloaded " + m.settings.PaletteFile)
		}
		return m, m.palette.wait()

	case paletteWatchErrMsg:
		m.addLog("Palette watch: " + msg.err.Error())
		return m, m.palette.wait()

	case ui.ChipAddedMsg[chip.Label]:
		m.addLog(fmt.Sprintf("Added tag [%s] at %d", msg.Chip, msg.Index))
		return m, nil

	case ui.ChipAddedMsg[recipient]:
		m.clearRecipientError()
		m.addLog(fmt.Sprintf("Added recipient %s", msg.Chip))
		return m, nil

	case ui.ChipRemovedMsg[chip.Label]:
		m.addLog(fmt.Sprintf("Removed tag [%s]", msg.Chip))
		return m, nil

	case ui.ChipRemovedMsg[recipient]:
		m.addLog(fmt.Sprintf("Removed recipient %s", msg.Chip))
		return m, nil

	case ui.ChipClickedMsg[chip.Label]:
		m.addLog(fmt.Sprintf("Opened [%s]", msg.Chip))
		return m, nil

	case ui.ChipClickedMsg[recipient]:
		m.addLog(fmt.Sprintf("Opened %s", msg.Chip))
		return m, nil

	case ui.ChipLongClickedMsg[chip.Label]:
		m.addLog(fmt.Sprintf("Menu for [%s]", msg.Chip))
		return m, nil

	case ui.ChipLongClickedMsg[recipient]:
		m.addLog(fmt.Sprintf("Menu for %s", msg.Chip))
		return m, nil

	case ui.ChipCopiedMsg:
		if msg.Err != nil {
			m.addLog("Copy failed: " + msg.Err.Error())
		} else {
			m.addLog(fmt.Sprintf("Copied %q", msg.Text))
		}
		return m, nil

	case ui.ValueChangedMsg:
		if msg.ID == m.recipients.ID() {
			m.onDraftChange(msg.Value.Text)
		}
		return m, nil

	case ui.ChipNavExitMsg:
		if msg.Reason == ui.ChipNavExitTab {
			return m, m.moveFocus(1)
		}
		return m, nil
	}

	return m.broadcast(msg)
}

// onDraftChange keeps the owned recipient text. Leading blanks are dropped
// and pushed back, which the field takes without echoing a change.
func (m *model) onDraftChange(text string) {
	trimmed := strings.TrimLeft(text, " ")
	m.draft = trimmed
	if trimmed != text {
		m.recipients.SetValue(trimmed)
	}
	m.clearRecipientError()
}

func (m *model) clearRecipientError() {
	if !m.recipientErr {
		return
	}
	m.recipientErr = false
	m.recipients.SetError(false)
	m.recipients.SetSupportingText(recipientsHint)
}

func (m model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case tagsField:
		m.tags, cmd = m.tags.Update(msg)
	case recipientsField:
		m.recipients, cmd = m.recipients.Update(msg)
		if err := m.rejected.err; err != nil {
			m.rejected.err = nil
			m.recipientErr = true
			m.recipients.SetError(true)
			m.recipients.SetSupportingText(err.Error())
			m.addLog("Rejected " + m.rejected.text)
		}
	case pinnedField:
		m.pinned, cmd = m.pinned.Update(msg)
	}
	return m, cmd
}

// broadcast hands timers and other non-input messages to every field.
func (m model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds [3]tea.Cmd
	m.tags, cmds[0] = m.tags.Update(msg)
	m.recipients, cmds[1] = m.recipients.Update(msg)
	m.pinned, cmds[2] = m.pinned.Update(msg)
	return m, tea.Batch(cmds[:]...)
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.placeFields()
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if idx, ok := m.fieldAt(msg.Y); ok && idx != m.focus {
			cmd := m.setFocus(idx)
			next, fieldCmd := m.broadcast(msg)
			return next, tea.Batch(cmd, fieldCmd)
		}
	}
	return m.broadcast(msg)
}

// placeFields tells every field where View draws it so mouse events can be
// mapped onto chips.
func (m *model) placeFields() {
	y := headerHeight
	m.tags.SetOrigin(0, y)
	y += lipgloss.Height(m.tags.View()) + 1
	m.recipients.SetOrigin(0, y)
	y += lipgloss.Height(m.recipients.View()) + 1
	m.pinned.SetOrigin(0, y)
}

func (m model) fieldAt(y int) (fieldIndex, bool) {
	top := headerHeight
	for i, view := range []string{m.tags.View(), m.recipients.View(), m.pinned.View()} {
		h := lipgloss.Height(view)
		if y >= top && y < top+h {
			return fieldIndex(i), true
		}
		top += h + 1
	}
	return 0, false
}

func (m model) focusedInNavigation() bool {
	switch m.focus {
	case tagsField:
		return m.tags.InNavigationMode()
	case recipientsField:
		return m.recipients.InNavigationMode()
	case pinnedField:
		return m.pinned.InNavigationMode()
	}
	return false
}

func (m *model) moveFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta + int(fieldCount)) % int(fieldCount)
	return m.setFocus(fieldIndex(next))
}

func (m *model) setFocus(idx fieldIndex) tea.Cmd {
	m.tags.Blur()
	m.recipients.Blur()
	m.pinned.Blur()
	m.focus = idx
	switch idx {
	case tagsField:
		return m.tags.Focus()
	case recipientsField:
		return m.recipients.Focus()
	default:
		return m.pinned.Focus()
	}
}

func (m *model) addLog(entry string) {
	m.log = append(m.log, entry)
	if len(m.log) > maxLogEntries {
		m.log = m.log[1:]
	}
}

func (m model) keyMap() help.KeyMap {
	return ui.DefaultFieldKeyMap()
}

func (m model) View() string {
	p := theme.Current()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	mutedStyle := lipgloss.NewStyle().Foreground(p.TextMuted)

	var s strings.Builder
	s.WriteString(titleStyle.Render("Chip text field demo"))
	s.WriteString(mutedStyle.Render("  theme: " + theme.CurrentName()))
	s.WriteString("\n\n")

	s.WriteString(m.tags.View())
	s.WriteString("\n\n")
	s.WriteString(m.recipients.View())
	s.WriteString("\n\n")
	s.WriteString(m.pinned.View())
	s.WriteString("\n\n")

	if m.draft != "" {
		s.WriteString(mutedStyle.Render(fmt.Sprintf("recipient draft: %q", m.draft)))
		s.WriteString("\n")
	}
	for _, entry := range m.log {
		s.WriteString(mutedStyle.Render("• " + entry))
		s.WriteString("\n")
	}
	s.WriteString("\n")
	s.WriteString(m.help.View(m.keyMap()))

	if !m.showHelp {
		return s.String()
	}
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1).
		Render(renderHelp(max(m.width-4, 20)))
	return overlay(s.String(), panel, headerHeight)
}
