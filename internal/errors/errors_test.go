package errors

import (
	"fmt"
	"io/fs"
	"testing"
)

func TestCodeOf(t *testing.T) {
	t.Run("WrappedStructuredError", func(t *testing.T) {
		err := fmt.Errorf("load: %w", New(CodeUnknownTheme, "unknown theme \"x\"", nil))
		if got := CodeOf(err); got != CodeUnknownTheme {
			t.Fatalf("expected %s, got %s", CodeUnknownTheme, got)
		}
		if !IsCode(err, CodeUnknownTheme) {
			t.Fatal("expected IsCode to match through wrapping")
		}
	})

	t.Run("PlainError", func(t *testing.T) {
		if got := CodeOf(fs.ErrNotExist); got != CodeUnknown {
			t.Fatalf("expected %s, got %s", CodeUnknown, got)
		}
	})

	t.Run("Nil", func(t *testing.T) {
		if got := CodeOf(nil); got != CodeUnknown {
			t.Fatalf("expected %s, got %s", CodeUnknown, got)
		}
	})
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  Error
		want string
	}{
		{"Message", New(CodeInvalidOption, "bad width", fs.ErrInvalid), "bad width"},
		{"WrappedOnly", New(CodeInvalidOption, "", fs.ErrInvalid), fs.ErrInvalid.Error()},
		{"CodeOnly", New(CodePaletteInvalid, "", nil), string(CodePaletteInvalid)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	err := New(CodeConfigurationError, "read config", fs.ErrPermission)
	if err.Unwrap() != fs.ErrPermission {
		t.Fatal("expected Unwrap to return wrapped error")
	}
}
