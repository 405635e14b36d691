package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GlobalConfig holds user preferences. Browsing state (filters, selection,
// contacted marks) is never written here.
type GlobalConfig struct {
	// Dataset is the default record source used when --dataset is not given.
	// Empty means the embedded dataset.
	Dataset string `json:"dataset,omitempty"`

	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set ("unicode", "ascii").
	Glyphs string `json:"glyphs,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.jobfinder).
	if v := strings.TrimSpace(os.Getenv("JOBFINDER_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".jobfinder"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *GlobalConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

var configKeys = map[string]func(cfg *GlobalConfig, v string) error{
	"dataset": func(cfg *GlobalConfig, v string) error {
		cfg.Dataset = v
		return nil
	},
	"glyphs": func(cfg *GlobalConfig, v string) error {
		switch v {
		case "", "unicode", "ascii":
		default:
			return fmt.Errorf("invalid glyphs %q (want unicode|ascii)", v)
		}
		if cfg.TUI == nil {
			cfg.TUI = &TUIConfig{}
		}
		cfg.TUI.Glyphs = v
		return nil
	},
}

// ConfigKeys lists the keys accepted by Set.
func ConfigKeys() []string {
	out := make([]string, 0, len(configKeys))
	for k := range configKeys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Set assigns a single preference by key. An empty value resets it.
func (cfg *GlobalConfig) Set(key, value string) error {
	set, ok := configKeys[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(ConfigKeys(), ", "))
	}
	return set(cfg, strings.TrimSpace(value))
}

// Glyphs returns the configured glyph set name, or "".
func (cfg *GlobalConfig) Glyphs() string {
	if cfg == nil || cfg.TUI == nil {
		return ""
	}
	return cfg.TUI.Glyphs
}
