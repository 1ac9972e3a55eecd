package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/f1-analytics/internal/db"
	"github.com/sells-group/f1-analytics/internal/loader"
)

// Data sources.
const (
	SourceCSV      = "csv"
	SourceXLSX     = "xlsx"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Config holds the full application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Stats  StatsConfig  `yaml:"stats" mapstructure:"stats"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// DataConfig selects where the five relations are read from.
type DataConfig struct {
	Source      string           `yaml:"source" mapstructure:"source"`
	Dir         string           `yaml:"dir" mapstructure:"dir"`
	Encoding    string           `yaml:"encoding" mapstructure:"encoding"`
	Delimiter   string           `yaml:"delimiter" mapstructure:"delimiter"`
	Files       loader.FileNames `yaml:"files" mapstructure:"files"`
	Workbook    string           `yaml:"workbook" mapstructure:"workbook"`
	DatabaseURL string           `yaml:"database_url" mapstructure:"database_url"`
	Pool        db.PoolConfig    `yaml:"pool" mapstructure:"pool"`
}

// StatsConfig tunes the aggregations.
type StatsConfig struct {
	Weight     float64 `yaml:"weight" mapstructure:"weight"`
	TopN       int     `yaml:"top_n" mapstructure:"top_n"`
	MaxDrivers int     `yaml:"max_drivers" mapstructure:"max_drivers"`
}

// ServerConfig configures the JSON API.
type ServerConfig struct {
	Port        int      `yaml:"port" mapstructure:"port"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	RateLimit   float64  `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst   int      `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("F1")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	files := loader.DefaultFileNames()
	v.SetDefault("data.source", SourceCSV)
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.encoding", "utf-8")
	v.SetDefault("data.delimiter", ",")
	v.SetDefault("data.files.results", files.Results)
	v.SetDefault("data.files.drivers", files.Drivers)
	v.SetDefault("data.files.races", files.Races)
	v.SetDefault("data.files.constructors", files.Constructors)
	v.SetDefault("data.files.champions", files.Champions)
	v.SetDefault("data.workbook", "data/f1.xlsx")
	v.SetDefault("data.pool.max_conns", 4)
	v.SetDefault("data.pool.min_conns", 1)
	v.SetDefault("data.pool.connect_attempts", 3)
	v.SetDefault("stats.weight", 10.0)
	v.SetDefault("stats.top_n", 30)
	v.SetDefault("stats.max_drivers", 5)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command mode depends on. Mode is "query"
// for the read-only commands and "serve" for the API server.
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "query":
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be > 0 and <= 65535")
		}
		if c.Server.RateLimit < 0 {
			errs = append(errs, "server.rate_limit must be >= 0")
		}
		if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
			errs = append(errs, "server.rate_burst must be >= 1 when rate_limit is set")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	switch c.Data.Source {
	case SourceCSV:
		if c.Data.Dir == "" {
			errs = append(errs, "data.dir is required for the csv source")
		}
		if len([]rune(c.Data.Delimiter)) != 1 {
			errs = append(errs, "data.delimiter must be a single character")
		}
	case SourceXLSX:
		if c.Data.Workbook == "" {
			errs = append(errs, "data.workbook is required for the xlsx source")
		}
	case SourceSQLite, SourcePostgres:
		if c.Data.DatabaseURL == "" {
			errs = append(errs, "data.database_url is required for the "+c.Data.Source+" source")
		}
	default:
		errs = append(errs, "data.source must be one of csv, xlsx, sqlite, postgres")
	}

	if c.Stats.Weight < 0 {
		errs = append(errs, "stats.weight must be >= 0")
	}
	if c.Stats.TopN < 0 {
		errs = append(errs, "stats.top_n must be >= 0")
	}
	if c.Stats.MaxDrivers < 1 {
		errs = append(errs, "stats.max_drivers must be >= 1")
	}

	if len(errs) > 0 {
		return eris.New("config validation: " + strings.Join(errs, "; "))
	}
	return nil
}

// DelimiterRune returns the configured CSV delimiter, falling back to a comma.
func (d DataConfig) DelimiterRune() rune {
	r := []rune(d.Delimiter)
	if len(r) != 1 {
		return ','
	}
	return r[0]
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
