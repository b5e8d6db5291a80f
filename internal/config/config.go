package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a medload run.
type Config struct {
	DSN       string
	FilePath  string
	LogFormat string // "text" or "json"

	SkipReport            bool
	FoldCancerHistoryCase bool // lower() comparison in the cancer-history query

	Conn ConnOptions
}

// ConnOptions is the recognized connection option set for the backing store.
// It is only consulted when no explicit DSN is given.
type ConnOptions struct {
	Driver   string `yaml:"driver"`
	Server   string `yaml:"server"`
	Database string `yaml:"database"`
	AuthMode string `yaml:"auth_mode"` // "trust" or "password"
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Conn   ConnOptions `yaml:",inline"`
	Report struct {
		FoldCancerHistoryCase bool `yaml:"fold_cancer_history_case"`
	} `yaml:"report"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Conn = yc.Conn
	if yc.Report.FoldCancerHistoryCase {
		c.FoldCancerHistoryCase = true
	}
	return nil
}

// ResolveDSN returns the connection string: an explicit --dsn/DATABASE_URL
// wins, otherwise one is assembled from the recognized connection options.
func (c *Config) ResolveDSN() (string, error) {
	if c.DSN != "" {
		return c.DSN, nil
	}
	return c.Conn.buildDSN()
}

func (o *ConnOptions) buildDSN() (string, error) {
	switch o.Driver {
	case "", "postgres", "pgx":
	default:
		return "", fmt.Errorf("unsupported driver %q (only postgres is supported)", o.Driver)
	}
	if o.Server == "" || o.Database == "" {
		return "", fmt.Errorf("--dsn or DATABASE_URL is required (or set server and database in the config file)")
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   o.Server,
		Path:   "/" + o.Database,
	}
	switch o.AuthMode {
	case "", "trust":
		if o.User != "" {
			u.User = url.User(o.User)
		}
	case "password":
		if o.User == "" || o.Password == "" {
			return "", fmt.Errorf("auth_mode password requires user and password")
		}
		u.User = url.UserPassword(o.User, o.Password)
	default:
		return "", fmt.Errorf("unknown auth_mode %q (want trust or password)", o.AuthMode)
	}
	return u.String(), nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithDSN checks both the file and that a usable DSN can be resolved.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := c.ResolveDSN()
	return err
}
