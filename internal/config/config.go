// Package config handles intersect configuration loading and management.
package config

// Config holds all settings for the intersect command.
type Config struct {
	Scene   SceneConfig   `yaml:"scene"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SceneConfig selects the scene description to probe.
type SceneConfig struct {
	Path string `yaml:"path"` // YAML scene description; empty uses the built-in scene
}

// Output formats accepted in OutputConfig.Format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// OutputConfig controls how probe results are printed.
type OutputConfig struct {
	Format    string `yaml:"format"`    // "text" or "yaml"
	Precision int    `yaml:"precision"` // Decimal places for t in text output
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Path: "",
		},
		Output: OutputConfig{
			Format:    FormatText,
			Precision: 6,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
