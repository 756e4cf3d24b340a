package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `## Chip text field

| Key | Action |
|-----|--------|
| **Enter** or **,** | Turn the text into a chip |
| **Backspace** on empty input | Select the last chip |
| **←** / **→** | Move between chips |
| **Backspace** / **Delete** | Remove the selected chip |
| **Enter** / **Space** | Click / long click the selected chip |
| **Ctrl+Y** | Copy the selected chip |
| **Tab** / **Shift+Tab** | Next / previous field |
| **Ctrl+T** | Cycle theme, **Ctrl+S** saves it |
| **F1** | Toggle this help |
| **Esc** / **Ctrl+C** | Quit |

Click a chip to open it, hold it for a long click and click **×** to remove it.
Pasting a comma separated list adds every entry at once.
`

// renderHelp renders the help panel as markdown, falling back to the raw
// text when glamour cannot render it.
func renderHelp(width int) string {
	if width <= 0 {
		width = 80
	}
	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.Trim(out, "\n")
}
