package config

import "time"

// Default configuration values.
const (
	defaultServiceName  = "media-extractor"
	defaultServicePort  = 8000
	defaultVersion      = "0.1.0"
	defaultLoggingLevel = "info"
	defaultLoggingFmt   = "json"

	defaultBinPath   = "yt-dlp"
	defaultCookieDir = "."
	defaultTimeoutS  = 90

	// defaultUserAgent is presented both to yt-dlp and to the sites we
	// request session cookies from. A desktop Chrome UA keeps platforms
	// from serving bot-gated responses.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Config holds the application configuration.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Extractor ExtractorConfig `yaml:"extractor"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"EXTRACTOR_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"      yaml:"debug"`
}

// ExtractorConfig holds metadata engine and credential configuration.
type ExtractorConfig struct {
	BinPath   string        `env:"YTDLP_PATH"       yaml:"bin_path"`
	UserAgent string        `env:"EXTRACTOR_UA"     yaml:"user_agent"`
	CookieDir string        `env:"COOKIE_DIR"       yaml:"cookie_dir"`
	Timeout   time.Duration `env:"EXTRACT_TIMEOUT"  yaml:"timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return loadWithDefaults[Config](path, setDefaults)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setExtractorDefaults(&cfg.Extractor)
	setLoggingDefaults(&cfg.Logging)
}

// setServiceDefaults applies default values to ServiceConfig.
func setServiceDefaults(svc *ServiceConfig) {
	if svc.Name == "" {
		svc.Name = defaultServiceName
	}
	if svc.Version == "" {
		svc.Version = defaultVersion
	}
	if svc.Port == 0 {
		svc.Port = defaultServicePort
	}
}

// setExtractorDefaults applies default values to ExtractorConfig.
func setExtractorDefaults(ext *ExtractorConfig) {
	if ext.BinPath == "" {
		ext.BinPath = defaultBinPath
	}
	if ext.UserAgent == "" {
		ext.UserAgent = defaultUserAgent
	}
	if ext.CookieDir == "" {
		ext.CookieDir = defaultCookieDir
	}
	if ext.Timeout == 0 {
		ext.Timeout = defaultTimeoutS * time.Second
	}
}

// setLoggingDefaults applies default values to LoggingConfig.
func setLoggingDefaults(log *LoggingConfig) {
	if log.Level == "" {
		log.Level = defaultLoggingLevel
	}
	if log.Format == "" {
		log.Format = defaultLoggingFmt
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validatePort("service.port", c.Service.Port); err != nil {
		return err
	}
	if c.Extractor.BinPath == "" {
		return &ValidationError{Field: "extractor.bin_path", Message: "is required"}
	}
	if c.Extractor.Timeout <= 0 {
		return &ValidationError{Field: "extractor.timeout", Message: "must be positive"}
	}
	if err := validateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return validateLogFormat(c.Logging.Format)
}
