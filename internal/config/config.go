package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	apperrors "chiptextfield/internal/errors"
)

const (
	KeyTheme       = "theme"
	KeyPaletteFile = "palette-file"

	KeyChipSpacing    = "chip.spacing"
	KeyChipDelimiters = "chip.delimiters"
	KeyChipMaxWidth   = "chip.max-width"
	KeyChipShape      = "chip.shape"

	KeyFieldWidth = "field.width"
	KeyLongPress  = "long-press"

	KeyDebug        = "debug"
	KeyDebugLogPath = "debug-log"
)

const (
	// DefaultLongPress is how long a mouse button must stay down on a chip
	// before it counts as a long click.
	DefaultLongPress = 500 * time.Millisecond

	envPrefix = "CTF"
	dirName   = ".chiptextfield"
)

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error

	// userConfigPathOverride is used by tests to override the user config path.
	userConfigPathOverride string
)

// Initialize loads configuration using the precedence:
// defaults < user config < project config < environment < flags < overrides.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// BindFlags binds command line flags so that explicitly set flags win over
// files and environment. Flag names are the config keys.
func BindFlags(flags *pflag.FlagSet) error {
	v, err := getViper()
	if err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if err := v.BindPFlags(flags); err != nil {
		return apperrors.New(apperrors.CodeConfigurationError, "bind flags", err)
	}
	return nil
}

// ApplyOverrides injects values that must win over every other source.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	v, err := getViper()
	if err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	for k, val := range overrides {
		v.Set(k, val)
	}
	return nil
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool fetches a bool configuration value, initializing on demand.
func GetBool(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	return v.GetBool(key)
}

// GetInt fetches an integer configuration value, initializing on demand.
func GetInt(key string) int {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetInt(key)
}

// GetDuration fetches a duration configuration value, initializing on demand.
func GetDuration(key string) time.Duration {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set updates a configuration key at runtime, initializing on demand.
func Set(key string, value any) error {
	v, err := getViper()
	if err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	v.Set(key, value)
	return nil
}

// Field is the typed view of the settings that shape a chip text field.
type Field struct {
	Theme        string
	PaletteFile  string
	Spacing      int
	Delimiters   []rune
	MaxChipWidth int
	Shape        string
	Width        int
	LongPress    time.Duration
}

// LoadField reads the field settings. Negative sizes are rejected; a width
// or max chip width of 0 turns that limit off.
func LoadField() (Field, error) {
	if err := Initialize(); err != nil {
		return Field{}, err
	}
	f := Field{
		Theme:        strings.TrimSpace(GetString(KeyTheme)),
		PaletteFile:  strings.TrimSpace(GetString(KeyPaletteFile)),
		Spacing:      GetInt(KeyChipSpacing),
		Delimiters:   []rune(GetString(KeyChipDelimiters)),
		MaxChipWidth: GetInt(KeyChipMaxWidth),
		Shape:        strings.ToLower(strings.TrimSpace(GetString(KeyChipShape))),
		Width:        GetInt(KeyFieldWidth),
		LongPress:    GetDuration(KeyLongPress),
	}
	for _, opt := range []struct {
		key string
		val int
	}{
		{KeyChipSpacing, f.Spacing},
		{KeyChipMaxWidth, f.MaxChipWidth},
		{KeyFieldWidth, f.Width},
	} {
		if opt.val < 0 {
			return f, apperrors.New(apperrors.CodeInvalidOption,
				fmt.Sprintf("%s must not be negative, got %d", opt.key, opt.val), nil)
		}
	}
	switch f.Shape {
	case "pill", "bracket", "plain":
	default:
		return f, apperrors.New(apperrors.CodeInvalidOption,
			fmt.Sprintf("%s must be pill, bracket or plain, got %q", KeyChipShape, f.Shape), nil)
	}
	if f.LongPress <= 0 {
		f.LongPress = DefaultLongPress
	}
	return f, nil
}

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return apperrors.New(apperrors.CodeConfigurationError, fmt.Sprintf("load user config: %v", err), err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return apperrors.New(apperrors.CodeConfigurationError, fmt.Sprintf("load project config: %v", err), err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: Config loader intentionally reads user and project config files
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, dirName, "config.yaml"), nil
}

func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, dirName, "config.yaml")
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTheme, "tokyonight")
	v.SetDefault(KeyPaletteFile, "")
	v.SetDefault(KeyChipSpacing, 1)
	v.SetDefault(KeyChipDelimiters, ",")
	v.SetDefault(KeyChipMaxWidth, 24)
	v.SetDefault(KeyChipShape, "pill")
	v.SetDefault(KeyFieldWidth, 60)
	v.SetDefault(KeyLongPress, DefaultLongPress)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyDebugLogPath, "")
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, apperrors.New(apperrors.CodeConfigurationError, "configuration not initialized", nil)
	}
	return configInst, nil
}

// reset clears package state for tests.
func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
	userConfigPathOverride = ""
}

// ResetForTesting clears package state for tests in other packages.
// Returns a cleanup function that should be deferred.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml")))
	return reset
}

// SaveTheme persists the theme name to the appropriate config file.
// If a project config (.chiptextfield/config.yaml) exists it is updated,
// otherwise the user config is. The user config directory is created on
// demand; project config directories never are.
func SaveTheme(themeName string) error {
	targetPath, err := findWritableConfigPath()
	if err != nil {
		return fmt.Errorf("find config path: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(targetPath)
	_ = v.ReadInConfig() // missing file is fine

	v.Set(KeyTheme, themeName)

	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.WriteConfigAs(targetPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// findWritableConfigPath returns the project config path if one exists,
// otherwise the user config path.
func findWritableConfigPath() (string, error) {
	wd, err := os.Getwd()
	if err == nil {
		projectPath, err := findProjectConfig(wd)
		if err == nil && projectPath != "" {
			return projectPath, nil
		}
	}
	if userConfigPathOverride != "" {
		return userConfigPathOverride, nil
	}
	return defaultUserConfigPath()
}
