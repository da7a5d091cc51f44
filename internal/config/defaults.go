package config

const (
	defaultConfigPath  = "~/.config/vttclean/config.toml"
	projectConfigName  = "vttclean.toml"
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
	defaultStatsFormat = "table"
	defaultColorMode   = "auto"
)

// LogLevelEnv overrides logging.level when set.
const LogLevelEnv = "VTTCLEAN_LOG_LEVEL"

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			StatsFormat: defaultStatsFormat,
			Color:       defaultColorMode,
		},
	}
}
