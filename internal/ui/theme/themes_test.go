package theme

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"

	apperrors "chiptextfield/internal/errors"
)

// TestAllThemesRegistered verifies that all built-in palettes are registered.
func TestAllThemesRegistered(t *testing.T) {
	expected := []string{"catppuccin", "gruvbox", "monokai", "onedark", "tokyonight"}

	available := map[string]bool{}
	for _, name := range Available() {
		available[name] = true
	}
	for _, name := range expected {
		if !available[name] {
			t.Errorf("expected theme %q to be registered, but it was not found", name)
		}
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultName) })

	for _, name := range []string{"gruvbox", "onedark", "catppuccin"} {
		if !SetTheme(name) {
			t.Errorf("SetTheme(%q) returned false, expected true", name)
			continue
		}
		if CurrentName() != name {
			t.Errorf("CurrentName() = %q, expected %q", CurrentName(), name)
		}
		want, _ := Lookup(name)
		if Current() != want {
			t.Errorf("Current() does not match palette %q", name)
		}
	}
}

func TestSelectUnknownTheme(t *testing.T) {
	if SetTheme("nonexistent-theme") {
		t.Error("SetTheme(\"nonexistent-theme\") returned true, expected false")
	}
	err := Select("nonexistent-theme")
	if !apperrors.IsCode(err, apperrors.CodeUnknownTheme) {
		t.Fatalf("expected CodeUnknownTheme, got %v", err)
	}
}

// TestCycleTheme verifies that cycling visits every palette and wraps around.
func TestCycleTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultName) })
	SetTheme("catppuccin")

	seen := map[string]bool{CurrentName(): true}
	total := len(Available())
	for i := 0; i < total*2; i++ {
		seen[CycleTheme()] = true
	}
	if len(seen) != total {
		t.Errorf("expected to cycle through %d themes, saw %d", total, len(seen))
	}
	if got := CycleTheme(); got == "" {
		t.Error("CycleTheme returned empty name")
	}
}

// TestPaletteColorsNotEmpty verifies every palette fills every slot.
func TestPaletteColorsNotEmpty(t *testing.T) {
	for _, name := range Available() {
		p, _ := Lookup(name)
		v := reflect.ValueOf(p)
		for i := 0; i < v.NumField(); i++ {
			c := v.Field(i).Interface().(lipgloss.AdaptiveColor)
			if c.Dark == "" || c.Light == "" {
				t.Errorf("theme %q: %s is missing a Dark or Light value", name, v.Type().Field(i).Name)
			}
		}
	}
}

func TestAvailableSorted(t *testing.T) {
	available := Available()
	for i := 1; i < len(available); i++ {
		if available[i-1] > available[i] {
			t.Errorf("Available() not sorted: %q > %q at index %d", available[i-1], available[i], i-1)
		}
	}
}

func TestLoadPaletteFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("PartialOverride", func(t *testing.T) {
		path := filepath.Join(dir, "custom.toml")
		writePalette(t, path, `
[info]
light = "#000001"
dark = "#000002"

[text-muted]
light = "#aaaaaa"
dark = "#555555"
`)
		base, _ := Lookup(DefaultName)
		p, err := LoadPaletteFile(path, base)
		if err != nil {
			t.Fatalf("LoadPaletteFile returned error: %v", err)
		}
		if p.Info != (lipgloss.AdaptiveColor{Light: "#000001", Dark: "#000002"}) {
			t.Errorf("expected info override, got %+v", p.Info)
		}
		if p.TextMuted.Dark != "#555555" {
			t.Errorf("expected text-muted override, got %+v", p.TextMuted)
		}
		if p.Primary != base.Primary {
			t.Errorf("expected primary to keep base value, got %+v", p.Primary)
		}
	})

	t.Run("UnknownKeyRejected", func(t *testing.T) {
		path := filepath.Join(dir, "typo.toml")
		writePalette(t, path, `
[infoo]
dark = "#ffffff"
`)
		_, err := LoadPaletteFile(path, Palette{})
		if !apperrors.IsCode(err, apperrors.CodePaletteInvalid) {
			t.Fatalf("expected CodePaletteInvalid, got %v", err)
		}
	})

	t.Run("MalformedRejected", func(t *testing.T) {
		path := filepath.Join(dir, "broken.toml")
		writePalette(t, path, `[info`)
		_, err := LoadPaletteFile(path, Palette{})
		if !apperrors.IsCode(err, apperrors.CodePaletteInvalid) {
			t.Fatalf("expected CodePaletteInvalid, got %v", err)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadPaletteFile(filepath.Join(dir, "absent.toml"), Palette{})
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

func writePalette(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
