package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// frame composes the demo screen in a cell buffer so the help panel can
// float over the fields instead of pushing them down.
type frame struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func newFrame(width, height int) *frame {
	width, height = max(width, 1), max(height, 1)
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{})
	return &frame{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// draw prints block with its top left corner at x, y. Lines past the frame
// edge are cropped.
func (f *frame) draw(x, y int, block string) {
	for i, line := range strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n") {
		row := y + i
		if row >= f.height {
			return
		}
		if line == "" || row < 0 {
			continue
		}
		f.writer.PrintCropAt(max(x, 0), row, line, "")
	}
}

// center draws block in the middle of the frame, below top.
func (f *frame) center(block string, top int) {
	w, h := lipgloss.Size(block)
	x := (f.width - w) / 2
	y := top + max(f.height-top-h, 0)/2
	f.draw(x, y, block)
}

func (f *frame) render() string {
	out := cellbuf.Render(f.screen)
	_ = f.screen.Close()
	return strings.ReplaceAll(out, "\r\n", "\n")
}

// overlay floats panel over base, keeping the header visible.
func overlay(base, panel string, top int) string {
	w, h := lipgloss.Size(base)
	pw, ph := lipgloss.Size(panel)
	f := newFrame(max(w, pw), max(h, ph+top))
	f.draw(0, 0, base)
	f.center(panel, top)
	return f.render()
}
