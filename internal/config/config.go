package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port               string `yaml:"port"`
		Mode               string `yaml:"mode"` // gin mode: debug, release, test
		ShutdownTimeout    string `yaml:"shutdown_timeout"`
		ExposeErrorDetails *bool  `yaml:"expose_error_details"`
	} `yaml:"server"`
	Database struct {
		Host              string `yaml:"host"`
		Port              string `yaml:"port"`
		User              string `yaml:"user"`
		Password          string `yaml:"password"`
		Name              string `yaml:"name"`
		MaxOpenConns      int    `yaml:"max_open_conns"`
		MaxIdleConns      int    `yaml:"max_idle_conns"`
		ConnMaxLifetime   string `yaml:"conn_max_lifetime"`
		QueryTimeout      string `yaml:"query_timeout"`
		BootstrapFailFast *bool  `yaml:"bootstrap_fail_fast"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret  string `yaml:"jwt_secret"`
		TokenTTL   string `yaml:"token_ttl"`
		BcryptCost int    `yaml:"bcrypt_cost"`
	} `yaml:"auth"`
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
	Seed struct {
		Cargos []string `yaml:"cargos"`
	} `yaml:"seed"`
}

var databaseNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// LoadConfig reads configuration from the specified YAML file, then applies
// variables from an optional .env file and the process environment.
// A missing config file is not an error: environment-only deployments are supported.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if configPath != "" {
		file, err := os.Open(configPath)
		switch {
		case err == nil:
			defer file.Close()
			decoder := yaml.NewDecoder(file)
			if err := decoder.Decode(config); err != nil {
				return nil, fmt.Errorf("failed to decode config file: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
	}

	// .env is optional; variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() error {
	overrideString(&c.Database.Host, "DB_HOST")
	overrideString(&c.Database.Port, "DB_PORT")
	overrideString(&c.Database.User, "DB_USER")
	overrideString(&c.Database.Password, "DB_PASSWORD")
	overrideString(&c.Database.Name, "DB_NAME")
	overrideString(&c.Auth.JWTSecret, "JWT_SECRET")
	overrideString(&c.Auth.TokenTTL, "JWT_EXPIRES_IN")
	overrideString(&c.Server.Port, "PORT")
	overrideString(&c.Log.Level, "LOG_LEVEL")

	if v, ok := os.LookupEnv("BOOTSTRAP_FAIL_FAST"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for BOOTSTRAP_FAIL_FAST: %w", err)
		}
		c.Database.BootstrapFailFast = &b
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "3000"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}
	if c.Server.ExposeErrorDetails == nil {
		expose := true
		c.Server.ExposeErrorDetails = &expose
	}
	if c.Database.Port == "" {
		c.Database.Port = "3306"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == "" {
		c.Database.ConnMaxLifetime = "1h"
	}
	if c.Database.QueryTimeout == "" {
		c.Database.QueryTimeout = "5s"
	}
	if c.Database.BootstrapFailFast == nil {
		failFast := true
		c.Database.BootstrapFailFast = &failFast
	}
	if c.Auth.TokenTTL == "" {
		c.Auth.TokenTTL = "1h"
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret (JWT_SECRET) is required")
	}
	if c.Database.Host == "" {
		return errors.New("database.host (DB_HOST) is required")
	}
	if c.Database.Name == "" {
		return errors.New("database.name (DB_NAME) is required")
	}
	if !databaseNameRe.MatchString(c.Database.Name) {
		return fmt.Errorf("database.name %q must match %s", c.Database.Name, databaseNameRe)
	}
	for field, value := range map[string]string{
		"server.shutdown_timeout":    c.Server.ShutdownTimeout,
		"database.conn_max_lifetime": c.Database.ConnMaxLifetime,
		"database.query_timeout":     c.Database.QueryTimeout,
		"auth.token_ttl":             c.Auth.TokenTTL,
	} {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %w", field, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", field)
		}
	}
	return nil
}

// Durations below are checked by Validate, so parse errors cannot happen on a loaded Config.

func (c *Config) ShutdownTimeout() time.Duration { return mustDuration(c.Server.ShutdownTimeout) }
func (c *Config) ConnMaxLifetime() time.Duration { return mustDuration(c.Database.ConnMaxLifetime) }
func (c *Config) QueryTimeout() time.Duration    { return mustDuration(c.Database.QueryTimeout) }
func (c *Config) TokenTTL() time.Duration        { return mustDuration(c.Auth.TokenTTL) }

func (c *Config) BootstrapFailFast() bool {
	return c.Database.BootstrapFailFast == nil || *c.Database.BootstrapFailFast
}

func (c *Config) ExposeErrorDetails() bool {
	return c.Server.ExposeErrorDetails == nil || *c.Server.ExposeErrorDetails
}

// String returns a representation of the config with secrets masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s@%s:%s/%s, Port: %s, Auth: *** (masked) ***}",
		c.Database.User, c.Database.Host, c.Database.Port, c.Database.Name, c.Server.Port)
}

func mustDuration(v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}

func overrideString(dst *string, key string) {
	if value, exists := os.LookupEnv(key); exists {
		*dst = value
	}
}
