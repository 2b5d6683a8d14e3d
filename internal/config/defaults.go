package config

const (
	defaultConfigPath   = "~/.config/wordfreq/config.toml"
	projectConfigName   = "wordfreq.toml"
	defaultSort         = "desc"
	defaultOutputFormat = "text"
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"

	// Unlimited marks an absent top limit in resolved settings.
	Unlimited = -1
)

// Default returns a Config populated with repository defaults. The [defaults]
// table is left empty so every option falls through to built-in values.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
