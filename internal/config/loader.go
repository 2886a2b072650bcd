package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadChase loads the maze chase configuration.
// Search order: customPath -> ~/.arcade/configs/chase.yaml -> ./configs/chase.yaml -> embedded default.
// Files only need to name the values they override; everything else keeps its default.
// A broken custom file is an error; broken lookup-path files are skipped with a warning.
func LoadChase(customPath string, logger *log.Logger) (ChaseConfig, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChaseConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseChase(data)
		if err != nil {
			return ChaseConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		logger.Debug("loaded config", "path", customPath)
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("chase.yaml"),
		filepath.Join("configs", "chase.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := ParseChase(data)
		if err != nil {
			logger.Warn("ignoring config file", "path", path, "error", err)
			continue
		}
		logger.Debug("loaded config", "path", path)
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseChase(defaultChaseYAML)
	if err != nil {
		logger.Warn("embedded defaults unusable, using built-in values", "error", err)
		return DefaultChaseConfig(), nil
	}
	return cfg, nil
}

// ParseChase decodes YAML on top of the built-in defaults and validates the result.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func ParseChase(data []byte) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return ChaseConfig{}, fmt.Errorf("failed to parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return ChaseConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration back to YAML.
func Marshal(cfg ChaseConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyChasePreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the pickup target based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Pickups.Count = max(1, cfg.Pickups.Count-4)
	case DifficultyHard:
		cfg.Pickups.Count += 5
	}
}
