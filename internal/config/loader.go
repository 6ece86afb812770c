package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHexcat loads Hex Cat configuration.
// Search order: customPath -> ~/.hexcat/configs/hexcat.yaml -> ./configs/hexcat.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadHexcat(customPath string) (HexcatConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HexcatConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseHexcat(data)
		if err != nil {
			return HexcatConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hexcat.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseHexcat(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "hexcat.yaml")); err == nil {
		if cfg, err := parseHexcat(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseHexcat(defaultHexcatYAML)
	if err != nil {
		return DefaultHexcatConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseHexcat decodes YAML on top of the defaults and validates the result.
func parseHexcat(data []byte) (HexcatConfig, error) {
	cfg := DefaultHexcatConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WriteYAML saves the configuration to path, creating parent directories.
func (c HexcatConfig) WriteYAML(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes c as YAML.
func (c HexcatConfig) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	return enc.Close()
}

// UserConfigPath is where LoadHexcat looks for the per-user config.
// Empty when the home directory is unknown.
func UserConfigPath() string {
	return userConfigPath("hexcat.yaml")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexcat", "configs", filename)
}
