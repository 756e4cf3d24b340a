// Demo program for the ChipTextField component.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"chiptextfield/internal/config"
	"chiptextfield/internal/debug"
	apperrors "chiptextfield/internal/errors"
	"chiptextfield/internal/ui/theme"
)

const customThemeName = "custom"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, func(m tea.Model) programRunner {
		return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	}))
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(tea.Model) programRunner

// settings is everything the demo needs once flags, files and environment
// have been merged.
type settings struct {
	field    config.Field
	debug    bool
	debugLog string
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("chiptextfield-demo", pflag.ContinueOnError)
	flags.String(config.KeyTheme, theme.DefaultName, "Colour theme")
	flags.String(config.KeyPaletteFile, "", "TOML palette applied on top of the theme")
	flags.Int(config.KeyChipSpacing, 1, "Cells between chips")
	flags.String(config.KeyChipDelimiters, ",", "Characters that submit a chip like Enter")
	flags.Int(config.KeyChipMaxWidth, 24, "Truncate chip labels wider than this (0 disables)")
	flags.String(config.KeyChipShape, "pill", "Chip shape: pill, bracket or plain")
	flags.Int(config.KeyFieldWidth, 60, "Field width in cells")
	flags.Duration(config.KeyLongPress, config.DefaultLongPress, "Hold time for a long click")
	flags.Bool(config.KeyDebug, false, "Write a debug log")
	flags.String(config.KeyDebugLogPath, "", "Debug log path (default ~/.chiptextfield/debug.log)")
	return flags
}

func run(args []string, stderr io.Writer, factory programFactory) int {
	flags := newFlagSet()
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	s, err := loadSettings(flags)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := debug.InitAt(s.debug, s.debugLog); err != nil {
		fmt.Fprintf(stderr, "Warning: debug log disabled: %v\n", err)
	}
	defer debug.Close()

	if err := applyTheme(s.field); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	debug.Logf("starting demo with theme %s", theme.CurrentName())

	m := newModel(s.field)
	if s.field.PaletteFile != "" {
		w, err := newPaletteWatcher(s.field.PaletteFile)
		if err != nil {
			fmt.Fprintf(stderr, "Warning: palette reload disabled: %v\n", err)
		} else {
			defer w.Close()
			m.palette = w
		}
	}

	if err := runProgram(m, factory); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadSettings merges the parsed flags into the configuration and reads the
// typed settings back.
func loadSettings(flags *pflag.FlagSet) (settings, error) {
	if err := config.Initialize(); err != nil {
		return settings{}, err
	}
	if err := config.BindFlags(flags); err != nil {
		return settings{}, err
	}
	field, err := config.LoadField()
	if err != nil {
		return settings{}, err
	}
	return settings{
		field:    field,
		debug:    config.GetBool(config.KeyDebug),
		debugLog: config.GetString(config.KeyDebugLogPath),
	}, nil
}

// applyTheme selects the configured theme and layers the palette file on
// top of it when one is given.
func applyTheme(field config.Field) error {
	name := field.Theme
	if name == "" {
		name = theme.DefaultName
	}
	if err := theme.Select(name); err != nil {
		return err
	}
	if field.PaletteFile == "" {
		return nil
	}
	p, err := theme.LoadPaletteFile(field.PaletteFile, theme.Current())
	if err != nil {
		return err
	}
	theme.Register(customThemeName, p)
	if !theme.SetTheme(customThemeName) {
		return apperrors.New(apperrors.CodeUnknownTheme, "custom palette was not registered", nil)
	}
	return nil
}

func runProgram(m tea.Model, factory programFactory) error {
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(m)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
