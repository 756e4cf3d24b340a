package main

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// paletteChangedMsg is sent when the palette file was written.
type paletteChangedMsg struct{}

type paletteWatchErrMsg struct{ err error }

// paletteWatcher reports edits to the palette file so the demo can restyle
// without a restart. The parent directory is watched because editors often
// replace the file instead of writing it in place.
type paletteWatcher struct {
	fs   *fsnotify.Watcher
	path string
}

func newPaletteWatcher(path string) (*paletteWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		_ = fs.Close()
		return nil, err
	}
	return &paletteWatcher{fs: fs, path: abs}, nil
}

// wait blocks until the palette file changes. The model re-arms it after
// every message.
func (w *paletteWatcher) wait() tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Clean(event.Name) == w.path {
					return paletteChangedMsg{}
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return nil
				}
				return paletteWatchErrMsg{err: err}
			}
		}
	}
}

func (w *paletteWatcher) Close() error {
	if w == nil {
		return nil
	}
	return w.fs.Close()
}
