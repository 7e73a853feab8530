// Package config handles configuration loading from TOML files and the
// environment: selection colors, key bindings, and word-motion characters.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// defaultWordChars matches the host terminal's usual word-selection set.
const defaultWordChars = "@-./_~?&=%+#"

// commonOptsEnv is a JSON blob the host terminal may export with shared
// options; its select_by_word_characters is the fallback when the config
// leaves the field empty.
const commonOptsEnv = "SNAG_COMMON_OPTS"

// Config is the root configuration structure.
type Config struct {
	// SelectionForeground and SelectionBackground are the highlight
	// colors for selected text, as #rrggbb hex.
	SelectionForeground string `toml:"selection_foreground"`
	SelectionBackground string `toml:"selection_background"`

	// SelectByWordCharacters lists extra word-constituent characters for
	// word motion. Empty means fall back to the environment, then to the
	// built-in default.
	SelectByWordCharacters string `toml:"select_by_word_characters"`

	// LogFile enables debug logging to the given path. Empty disables
	// logging entirely (the terminal is busy drawing the UI).
	LogFile string `toml:"log_file"`

	// Bindings maps a keystroke ("ctrl+shift+left") to an action string
	// ("select stream word left"). User entries override the defaults
	// per key; an empty action unbinds the key.
	Bindings map[string]string `toml:"bindings"`
}

// Default returns the built-in configuration: the stock colors and the
// full default keymap.
func Default() *Config {
	return &Config{
		SelectionForeground: "#FFFFFF",
		SelectionBackground: "#5294E2",
		Bindings:            defaultBindings(),
	}
}

// Load reads the TOML config at path over the defaults. An empty path
// means the default location, which may be absent; an explicit path must
// exist. A malformed file is a startup error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "snag.toml")
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil // defaults only
	}

	var user Config
	if _, err := toml.DecodeFile(path, &user); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.merge(&user)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge overlays user-set fields onto the defaults. Bindings merge per
// key; binding a key to "" removes it.
func (c *Config) merge(user *Config) {
	if user.SelectionForeground != "" {
		c.SelectionForeground = user.SelectionForeground
	}
	if user.SelectionBackground != "" {
		c.SelectionBackground = user.SelectionBackground
	}
	if user.SelectByWordCharacters != "" {
		c.SelectByWordCharacters = user.SelectByWordCharacters
	}
	if user.LogFile != "" {
		c.LogFile = user.LogFile
	}
	for key, action := range user.Bindings {
		if action == "" {
			delete(c.Bindings, key)
			continue
		}
		c.Bindings[key] = action
	}
}

// Validate returns an error if the configuration is invalid. Binding
// action strings are validated by the session's command parser, not here.
func (c *Config) Validate() error {
	var errs []error
	for name, value := range map[string]string{
		"selection_foreground": c.SelectionForeground,
		"selection_background": c.SelectionBackground,
	} {
		if !validHexColor(value) {
			errs = append(errs, fmt.Errorf("%s=%q must be a #rrggbb color", name, value))
		}
	}
	if len(c.Bindings) == 0 {
		errs = append(errs, errors.New("bindings: at least one binding must remain"))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// WordCharacters resolves the extra word-constituent characters: the
// config field, else the host terminal's exported common options, else
// the built-in default.
func (c *Config) WordCharacters() string {
	if c.SelectByWordCharacters != "" {
		return c.SelectByWordCharacters
	}
	if blob := os.Getenv(commonOptsEnv); blob != "" {
		var common struct {
			SelectByWordCharacters string `json:"select_by_word_characters"`
		}
		if err := json.Unmarshal([]byte(blob), &common); err == nil && common.SelectByWordCharacters != "" {
			return common.SelectByWordCharacters
		}
	}
	return defaultWordChars
}

// configDir returns the snag config directory (~/.config/snag).
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "snag"), nil
}
