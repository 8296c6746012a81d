package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the complete configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Minio    MinioConfig    `toml:"minio"`
	Logging  LoggingConfig  `toml:"logging"`
	Jobs     JobsConfig     `toml:"jobs"`
}

// ServerConfig contains HTTP listener settings
type ServerConfig struct {
	Port            int      `toml:"port"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	EnableSwagger   bool     `toml:"enable_swagger"`
}

// DatabaseConfig contains PostgreSQL pool settings
type DatabaseConfig struct {
	URL             string   `toml:"url"`
	MaxConns        int32    `toml:"max_conns"`
	MinConns        int32    `toml:"min_conns"`
	MaxConnLifetime Duration `toml:"max_conn_lifetime"`
}

// RedisConfig contains list cache settings. An empty address disables the cache.
type RedisConfig struct {
	Addr     string   `toml:"addr"`
	Password string   `toml:"password"`
	DB       int      `toml:"db"`
	ListTTL  Duration `toml:"list_ttl"`
}

// MinioConfig contains import archive settings. An empty endpoint disables archiving.
type MinioConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Bucket    string `toml:"bucket"`
	UseSSL    bool   `toml:"use_ssl"`
}

// LoggingConfig selects the slog level and handler
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// JobsConfig contains background check intervals
type JobsConfig struct {
	Enabled                bool     `toml:"enabled"`
	LowStockInterval       Duration `toml:"low_stock_interval"`
	DueMaintenanceInterval Duration `toml:"due_maintenance_interval"`
}

// Duration decodes TOML strings such as "30m"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when neither file nor environment set a value
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: Duration{10 * time.Second},
			EnableSwagger:   true,
		},
		Database: DatabaseConfig{
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: Duration{time.Hour},
		},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			ListTTL: Duration{5 * time.Minute},
		},
		Minio: MinioConfig{
			Bucket: "mainthub-imports",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Jobs: JobsConfig{
			Enabled:                true,
			LowStockInterval:       Duration{30 * time.Minute},
			DueMaintenanceInterval: Duration{time.Hour},
		},
	}
}

// Load applies defaults, then the TOML file (when filename is not empty),
// then environment overrides, and validates the result.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename != "" {
		if _, err := toml.DecodeFile(filename, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}
	integer := func(name string, dst *int) error {
		if v, ok := lookup(name); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", name, v, err)
			}
			*dst = n
		}
		return nil
	}
	boolean := func(name string, dst *bool) error {
		if v, ok := lookup(name); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", name, v, err)
			}
			*dst = b
		}
		return nil
	}

	str("DATABASE_URL", &c.Database.URL)
	str("REDIS_ADDR", &c.Redis.Addr)
	str("REDIS_PASSWORD", &c.Redis.Password)
	str("MINIO_ENDPOINT", &c.Minio.Endpoint)
	str("MINIO_ACCESS_KEY", &c.Minio.AccessKey)
	str("MINIO_SECRET_KEY", &c.Minio.SecretKey)
	str("MINIO_BUCKET", &c.Minio.Bucket)
	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)

	if err := integer("PORT", &c.Server.Port); err != nil {
		return err
	}
	if err := integer("REDIS_DB", &c.Redis.DB); err != nil {
		return err
	}
	if err := boolean("MINIO_USE_SSL", &c.Minio.UseSSL); err != nil {
		return err
	}
	return boolean("JOBS_ENABLED", &c.Jobs.Enabled)
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Database.URL) == "" {
		errs = append(errs, errors.New("database url is required (DATABASE_URL)"))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port %d out of range", c.Server.Port))
	}
	if c.Database.MaxConns <= 0 {
		errs = append(errs, errors.New("database max_conns must be positive"))
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, errors.New("database min_conns must be between 0 and max_conns"))
	}
	if c.Redis.Addr != "" && c.Redis.ListTTL.Duration <= 0 {
		errs = append(errs, errors.New("redis list_ttl must be positive"))
	}
	if c.Minio.Endpoint != "" && c.Minio.Bucket == "" {
		errs = append(errs, errors.New("minio bucket is required when an endpoint is set"))
	}
	if c.Jobs.Enabled && (c.Jobs.LowStockInterval.Duration <= 0 || c.Jobs.DueMaintenanceInterval.Duration <= 0) {
		errs = append(errs, errors.New("job intervals must be positive"))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format %q must be text or json", c.Logging.Format))
	}

	return errors.Join(errs...)
}
