package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"system-errors/pkg/syserr"
)

// Supported output formats.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
	OutputJSON  = "json"
)

// CLIConfig holds settings read from the environment at startup.
type CLIConfig struct {
	Output  string
	NoColor bool
}

// DefaultCLIConfig is populated from SYSTEM_ERRORS_* environment variables.
var DefaultCLIConfig = loadCLIConfigFromEnv()

func loadCLIConfigFromEnv() CLIConfig {
	cfg := CLIConfig{
		Output: strings.TrimSpace(os.Getenv("SYSTEM_ERRORS_OUTPUT")),
	}
	if v := os.Getenv("SYSTEM_ERRORS_NO_COLOR"); v != "" && v != "0" && !strings.EqualFold(v, "false") {
		cfg.NoColor = true
	}
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return cfg
}

// FileConfig is the on-disk CLI configuration.
type FileConfig struct {
	Output string `yaml:"output,omitempty"`
	Color  *bool  `yaml:"color,omitempty"`
}

// Settings is the resolved configuration a command runs with.
type Settings struct {
	Output string
	Color  bool
}

func cliConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".system-errors", "config.yaml"), nil
}

func loadFileConfig() (*FileConfig, error) {
	path, err := cliConfigPath()
	if err != nil {
		return nil, nil
	}
	// #nosec G304 -- path is scoped to the user's config directory.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrReadConfigFailed, path, syserr.FromError(err))
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnmarshalConfigFailed, path, err)
	}
	return &cfg, nil
}

// resolveSettings returns the effective settings using precedence:
// CLI flags > environment variables (SYSTEM_ERRORS_*) > config file > defaults.
func resolveSettings(flagOutput string) (Settings, error) {
	settings := Settings{Output: OutputTable, Color: true}

	fileCfg, err := loadFileConfig()
	if err != nil {
		return Settings{}, err
	}
	if fileCfg != nil {
		if fileCfg.Output != "" {
			settings.Output = fileCfg.Output
		}
		if fileCfg.Color != nil {
			settings.Color = *fileCfg.Color
		}
	}

	if DefaultCLIConfig.Output != "" {
		settings.Output = DefaultCLIConfig.Output
	}
	if DefaultCLIConfig.NoColor {
		settings.Color = false
	}

	if flagOutput != "" {
		settings.Output = flagOutput
	}

	settings.Output = strings.ToLower(settings.Output)
	switch settings.Output {
	case OutputTable, OutputYAML, OutputJSON:
	default:
		return Settings{}, fmt.Errorf("%w: %q (use table, yaml or json)", ErrUnsupportedOutput, settings.Output)
	}
	return settings, nil
}
