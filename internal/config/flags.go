package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagScene   = flag.String("scene", "", "Path to a YAML scene description (default: built-in scene)")
	flagFormat  = flag.String("format", "", "Output format: 'text' or 'yaml'")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile = flag.String("log-file", "", "Also write logs to this rotating file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
