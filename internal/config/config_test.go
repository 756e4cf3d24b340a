package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/pflag"

	apperrors "chiptextfield/internal/errors"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "tokyonight" {
		t.Fatalf("expected default %s to be tokyonight, got %q", KeyTheme, got)
	}
	if got := GetInt(KeyChipSpacing); got != 1 {
		t.Fatalf("expected default %s to be 1, got %d", KeyChipSpacing, got)
	}
	if got := GetString(KeyChipDelimiters); got != "," {
		t.Fatalf("expected default %s to be \",\", got %q", KeyChipDelimiters, got)
	}
	if got := GetDuration(KeyLongPress); got != DefaultLongPress {
		t.Fatalf("expected default %s to be %v, got %v", KeyLongPress, DefaultLongPress, got)
	}
	if GetBool(KeyDebug) {
		t.Fatalf("expected default %s to be false", KeyDebug)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	nested := filepath.Join(projectDir, "sub", "dir")
	mustMkdir(t, nested)
	writeFile(t, filepath.Join(projectDir, ".chiptextfield", "config.yaml"), `
theme: gruvbox
chip:
  spacing: 2
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
theme: monokai
chip:
  spacing: 3
  delimiters: ",;"
`)

	if err := Initialize(WithWorkingDir(nested), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "gruvbox" {
		t.Fatalf("expected project config to win for %s, got %q", KeyTheme, got)
	}
	if got := GetInt(KeyChipSpacing); got != 2 {
		t.Fatalf("expected project spacing 2, got %d", got)
	}
	if got := GetString(KeyChipDelimiters); got != ",;" {
		t.Fatalf("expected user delimiters to survive the merge, got %q", got)
	}
}

func TestEnvironmentFlagsAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, ".chiptextfield", "config.yaml")
	writeFile(t, projectCfg, `
theme: gruvbox
field:
  width: 40
long-press: 300ms
`)

	t.Setenv("CTF_THEME", "onedark")
	t.Setenv("CTF_FIELD_WIDTH", "72")

	if err := Initialize(
		WithWorkingDir(tmp),
		WithProjectConfig(projectCfg),
		WithUserConfig(filepath.Join(tmp, "none.yaml")),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "onedark" {
		t.Fatalf("expected environment to override %s, got %q", KeyTheme, got)
	}
	if got := GetInt(KeyFieldWidth); got != 72 {
		t.Fatalf("expected env override for %s, got %d", KeyFieldWidth, got)
	}
	if got := GetDuration(KeyLongPress); got != 300*time.Millisecond {
		t.Fatalf("expected %s from project config, got %v", KeyLongPress, got)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyTheme, "", "")
	flags.Int(KeyFieldWidth, 0, "")
	if err := flags.Parse([]string{"--theme=catppuccin"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := BindFlags(flags); err != nil {
		t.Fatalf("BindFlags returned error: %v", err)
	}
	if got := GetString(KeyTheme); got != "catppuccin" {
		t.Fatalf("expected explicit flag to win for %s, got %q", KeyTheme, got)
	}
	if got := GetInt(KeyFieldWidth); got != 72 {
		t.Fatalf("expected unset flag to leave env value, got %d", got)
	}

	if err := ApplyOverrides(map[string]any{KeyTheme: "monokai"}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	if got := GetString(KeyTheme); got != "monokai" {
		t.Fatalf("expected override to set %s=monokai, got %q", KeyTheme, got)
	}
}

func TestLoadField(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cleanup := ResetForTesting(t)
		t.Cleanup(cleanup)

		f, err := LoadField()
		if err != nil {
			t.Fatalf("LoadField returned error: %v", err)
		}
		want := Field{
			Theme:        "tokyonight",
			Spacing:      1,
			Delimiters:   []rune{','},
			MaxChipWidth: 24,
			Shape:        "pill",
			Width:        60,
			LongPress:    DefaultLongPress,
		}
		if !reflect.DeepEqual(f, want) {
			t.Fatalf("expected %+v, got %+v", want, f)
		}
	})

	t.Run("InvalidShape", func(t *testing.T) {
		cleanup := ResetForTesting(t)
		t.Cleanup(cleanup)
		if err := Set(KeyChipShape, "hexagon"); err != nil {
			t.Fatalf("Set returned error: %v", err)
		}
		_, err := LoadField()
		if !apperrors.IsCode(err, apperrors.CodeInvalidOption) {
			t.Fatalf("expected CodeInvalidOption, got %v", err)
		}
	})

	t.Run("NegativeSpacing", func(t *testing.T) {
		cleanup := ResetForTesting(t)
		t.Cleanup(cleanup)
		_ = Set(KeyChipSpacing, -1)
		_, err := LoadField()
		if !apperrors.IsCode(err, apperrors.CodeInvalidOption) {
			t.Fatalf("expected CodeInvalidOption, got %v", err)
		}
	})

	t.Run("NegativeSizes", func(t *testing.T) {
		for _, key := range []string{KeyChipMaxWidth, KeyFieldWidth} {
			cleanup := ResetForTesting(t)
			_ = Set(key, -2)
			_, err := LoadField()
			cleanup()
			if !apperrors.IsCode(err, apperrors.CodeInvalidOption) {
				t.Errorf("expected CodeInvalidOption for %s, got %v", key, err)
			}
		}
	})

	t.Run("ZeroWidthDisablesWrapping", func(t *testing.T) {
		cleanup := ResetForTesting(t)
		t.Cleanup(cleanup)
		_ = Set(KeyFieldWidth, 0)
		_ = Set(KeyChipMaxWidth, 0)
		f, err := LoadField()
		if err != nil {
			t.Fatalf("LoadField returned error: %v", err)
		}
		if f.Width != 0 || f.MaxChipWidth != 0 {
			t.Fatalf("expected zero sizes kept, got width %d max %d", f.Width, f.MaxChipWidth)
		}
	})

	t.Run("NonPositiveLongPressFallsBack", func(t *testing.T) {
		cleanup := ResetForTesting(t)
		t.Cleanup(cleanup)
		_ = Set(KeyLongPress, "0s")
		f, err := LoadField()
		if err != nil {
			t.Fatalf("LoadField returned error: %v", err)
		}
		if f.LongPress != DefaultLongPress {
			t.Fatalf("expected fallback %v, got %v", DefaultLongPress, f.LongPress)
		}
	})
}

func TestMalformedConfigIsConfigurationError(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "theme: [unclosed\n")

	err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg))
	if !apperrors.IsCode(err, apperrors.CodeConfigurationError) {
		t.Fatalf("expected CodeConfigurationError, got %v", err)
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	userCfg := filepath.Join(tmp, "home", dirName, "config.yaml")
	userConfigPathOverride = userCfg

	if err := SaveTheme("catppuccin"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if string(data) != "theme: catppuccin\n" {
		t.Fatalf("unexpected saved config %q", string(data))
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
