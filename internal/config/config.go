package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "TEMPMON"

type Config struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	Source          string        `mapstructure:"source"`
	SnapshotPolicy  string        `mapstructure:"snapshot_policy"`
	ThermalZonePath string        `mapstructure:"thermal_zone_path"`
	ProbeTimeout    time.Duration `mapstructure:"probe_timeout"`

	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	MetricsEnabled     bool     `mapstructure:"metrics_enabled"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", "0.0.0.0:5000")
	v.SetDefault("source", "shell")
	v.SetDefault("snapshot_policy", "atomic")
	v.SetDefault("thermal_zone_path", "/sys/class/thermal/thermal_zone0/temp")
	v.SetDefault("probe_timeout", 2*time.Second)
	v.SetDefault("read_timeout", 5*time.Second)
	v.SetDefault("write_timeout", 10*time.Second)
	v.SetDefault("idle_timeout", 60*time.Second)
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("cors_allowed_origins", []string{"*"})
}

// Load reads an optional .env file, an optional config.yaml from the given
// paths, then TEMPMON_* environment variables, in increasing precedence.
func Load(paths ...string) (*Config, error) {
	// a missing .env is the common case
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(paths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.ListenAddr == "" {
		errs = append(errs, errors.New("listen_addr is empty"))
	}
	switch c.Source {
	case "shell", "gopsutil", "auto":
	default:
		errs = append(errs, fmt.Errorf("source %q: want shell, gopsutil or auto", c.Source))
	}
	switch c.SnapshotPolicy {
	case "atomic", "per-field":
	default:
		errs = append(errs, fmt.Errorf("snapshot_policy %q: want atomic or per-field", c.SnapshotPolicy))
	}
	for name, d := range map[string]time.Duration{
		"probe_timeout":    c.ProbeTimeout,
		"read_timeout":     c.ReadTimeout,
		"write_timeout":    c.WriteTimeout,
		"idle_timeout":     c.IdleTimeout,
		"shutdown_timeout": c.ShutdownTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}
	return errors.Join(errs...)
}
