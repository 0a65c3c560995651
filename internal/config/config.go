package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/keycalc/internal/config/loader"
	"github.com/dshills/keycalc/internal/renderer/core"
	"github.com/dshills/keycalc/internal/renderer/keypad"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "KEYCALC_"

// Config is the decoded keycalc configuration.
type Config struct {
	Log   LogConfig
	Theme ThemeConfig

	// Keys maps key specs to actions and overrides the default keymap.
	// The action "none" unbinds a key.
	Keys map[string]string

	// Path is the file the configuration was read from, if any.
	Path string
}

// LogConfig controls the application log.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string

	// File receives log output. Empty means stderr, or nowhere while the
	// interactive screen is up.
	File string
}

// ThemeConfig holds theme colors as "#rrggbb" strings.
type ThemeConfig struct {
	Background string
	Foreground string
	Primary    string
	Secondary  string
	Tertiary   string
	Button     string
	Label      string
	Error      string
}

// themeFields lists theme settings in a fixed order.
var themeFields = []string{
	"background", "foreground", "primary", "secondary",
	"tertiary", "button", "label", "error",
}

var logLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Default returns the built-in configuration.
func Default() Config {
	cfg, err := decode(defaultConfig())
	if err != nil {
		panic("config: invalid defaults: " + err.Error())
	}
	return cfg
}

// DefaultPath returns $XDG_CONFIG_HOME/keycalc/config.toml, or the
// platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "keycalc", "config.toml")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	t := keypad.DefaultTheme()
	return map[string]any{
		"log": map[string]any{
			"level": "info",
			"file":  "",
		},
		"theme": map[string]any{
			"background": t.Background.ToHex(),
			"foreground": t.Foreground.ToHex(),
			"primary":    t.Primary.ToHex(),
			"secondary":  t.Secondary.ToHex(),
			"tertiary":   t.Tertiary.ToHex(),
			"button":     t.Button.ToHex(),
			"label":      t.Label.ToHex(),
			"error":      t.Error.ToHex(),
		},
		"keys": map[string]any{},
	}
}

// Options control where Load reads from.
type Options struct {
	// FS reads the config file. Defaults to the OS file system.
	FS loader.FileSystem

	// Env supplies environment overrides. Defaults to the process
	// environment with EnvPrefix.
	Env loader.Loader
}

// Load reads path (which may be empty or missing) and the environment,
// layers them over the defaults and validates the result.
func Load(path string) (Config, error) {
	return LoadWith(path, Options{})
}

// LoadWith is Load with explicit sources.
func LoadWith(path string, opts Options) (Config, error) {
	if opts.FS == nil {
		opts.FS = loader.DefaultFS()
	}
	if opts.Env == nil {
		opts.Env = loader.NewEnvLoader(EnvPrefix)
	}

	merged := defaultConfig()

	if path != "" {
		l, err := loader.ForPath(opts.FS, path)
		if err != nil {
			return Config{}, err
		}
		file, err := l.Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, file)
	}

	env, err := opts.Env.Load()
	if err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}
	merged = loader.DeepMerge(merged, env)

	cfg, err := decode(merged)
	if err != nil {
		return Config{}, err
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode converts a merged settings map into a Config.
func decode(m map[string]any) (Config, error) {
	var cfg Config
	var errs []error

	str := func(path string) string {
		s, err := getString(m, path)
		if err != nil {
			errs = append(errs, err)
		}
		return s
	}

	cfg.Log.Level = str("log.level")
	cfg.Log.File = str("log.file")

	cfg.Theme = ThemeConfig{
		Background: str("theme.background"),
		Foreground: str("theme.foreground"),
		Primary:    str("theme.primary"),
		Secondary:  str("theme.secondary"),
		Tertiary:   str("theme.tertiary"),
		Button:     str("theme.button"),
		Label:      str("theme.label"),
		Error:      str("theme.error"),
	}

	keys, err := getStringMap(m, "keys")
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Keys = keys

	return cfg, errors.Join(errs...)
}

// Validate checks the log level and theme colors.
func (c Config) Validate() error {
	var errs []error

	if !logLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "must be one of debug, info, warn, error",
			Value:   c.Log.Level,
		})
	}

	values := c.Theme.values()
	for i, name := range themeFields {
		if _, err := parseColor(values[i]); err != nil {
			errs = append(errs, &ValidationError{
				Path:    "theme." + name,
				Message: "not a color",
				Value:   values[i],
				Err:     err,
			})
		}
	}

	return errors.Join(errs...)
}

func (t ThemeConfig) values() []string {
	return []string{
		t.Background, t.Foreground, t.Primary, t.Secondary,
		t.Tertiary, t.Button, t.Label, t.Error,
	}
}

// Keypad converts the theme into renderer colors.
func (t ThemeConfig) Keypad() (keypad.Theme, error) {
	colors := make([]core.Color, len(themeFields))
	for i, v := range t.values() {
		c, err := parseColor(v)
		if err != nil {
			return keypad.Theme{}, fmt.Errorf("theme.%s: %w", themeFields[i], err)
		}
		colors[i] = c
	}
	return keypad.Theme{
		Background: colors[0],
		Foreground: colors[1],
		Primary:    colors[2],
		Secondary:  colors[3],
		Tertiary:   colors[4],
		Button:     colors[5],
		Label:      colors[6],
		Error:      colors[7],
	}, nil
}

func parseColor(s string) (core.Color, error) {
	if strings.EqualFold(s, "default") {
		return core.ColorDefault, nil
	}
	return core.ColorFromHex(s)
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	if path == "" {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = cm[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

func getString(m map[string]any, path string) (string, error) {
	v, ok := getPath(m, path)
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

func getStringMap(m map[string]any, path string) (map[string]string, error) {
	out := make(map[string]string)
	v, ok := getPath(m, path)
	if !ok {
		return out, nil
	}
	table, ok := v.(map[string]any)
	if !ok {
		return out, &TypeError{Path: path, Expected: "table", Actual: typeName(v)}
	}

	var errs []error
	for k, v := range table {
		s, ok := v.(string)
		if !ok {
			errs = append(errs, &TypeError{Path: path + "." + k, Expected: "string", Actual: typeName(v)})
			continue
		}
		out[k] = s
	}
	return out, errors.Join(errs...)
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
