package config

const (
	defaultDataDir        = "~/.local/share/haikufind"
	defaultLogDir         = "~/.local/share/haikufind/logs"
	defaultCSVPath        = "lyrics.csv"
	defaultEndpoint       = "https://api.x.com/2/tweets"
	defaultRequestTimeout = 10
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Scanner: Scanner{
			CSVPath: defaultCSVPath,
		},
		Publisher: Publisher{
			Endpoint:       defaultEndpoint,
			RequestTimeout: defaultRequestTimeout,
			Attribution:    true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
