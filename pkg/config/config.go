package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/feedintake/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL used in links to requests"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedintake.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Intake IntakeConfig `yaml:"intake" json:"intake" jsonschema:"description=Intake form configuration"`
}

// IntakeConfig holds intake form settings
type IntakeConfig struct {
	RequiredFields []string `yaml:"required_fields" json:"required_fields" jsonschema:"description=Fields that must be filled in to submit a request (column names)"`
	RecentLimit    int      `yaml:"recent_limit" json:"recent_limit" jsonschema:"default=10,minimum=1,description=Number of previous requests shown in the sidebar"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults set, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:feedintake.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if len(c.Intake.RequiredFields) == 0 {
		for _, f := range domain.DefaultRequiredFields {
			c.Intake.RequiredFields = append(c.Intake.RequiredFields, string(f))
		}
	}
	if c.Intake.RecentLimit == 0 {
		c.Intake.RecentLimit = 10
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Intake.RecentLimit < 1 {
		return fmt.Errorf("intake.recent_limit must be at least 1")
	}
	if _, err := cfg.RequiredFields(); err != nil {
		return fmt.Errorf("intake.required_fields: %w", err)
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns external base URL of the web UI, without trailing slash
func (c *Config) GetBaseURL() string {
	return strings.TrimSuffix(c.Server.BaseURL, "/")
}

// GetIntakeConfig returns intake form configuration
func (c *Config) GetIntakeConfig() IntakeConfig {
	return c.Intake
}

// RequiredFields returns parsed list of fields required on submit
func (c *Config) RequiredFields() ([]domain.Field, error) {
	res := make([]domain.Field, 0, len(c.Intake.RequiredFields))
	for _, name := range c.Intake.RequiredFields {
		f, err := domain.ParseField(name)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, nil
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
