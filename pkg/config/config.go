package config

// this holds the resolved configuration values from CLI
var (
	CatalogFile string // path to a custom vehicle/track catalog (YAML)
	LogLevel    string // sets the log level (zap log level values)
	LogFormat   string // text vs json
	LogFilter   string // zapfilter rules applied to the logger
)
