// internal/config/config.go
//
// This package handles configuration and the .billdesk directory structure.
// Every project that runs billdesk gets a .billdesk/ folder holding its
// config file and session logs.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// BilldeskDir is the name of the dot-directory we create next to where
	// billdesk is launched.
	BilldeskDir = ".billdesk"

	defaultBaseURL  = "http://localhost:8000/api/inventory"
	defaultCurrency = "₹"

	// EnvBaseURL overrides api.base_url when set. Loaded from the
	// environment (or a .env file) at startup.
	EnvBaseURL = "BILLDESK_API_URL"
)

const defaultConfigYAML = `# billdesk configuration
version: 1

api:
  # Root of the inventory/billing backend. Can be overridden with the
  # BILLDESK_API_URL environment variable.
  base_url: http://localhost:8000/api/inventory

billing:
  # Symbol shown before amounts in the composer and on share messages.
  currency_symbol: "₹"
`

// APIConfig points the client at the backend.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// BillingConfig captures presentation preferences for the composer.
type BillingConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// ProjectConfig models .billdesk/config.yaml.
type ProjectConfig struct {
	Version int           `yaml:"version"`
	API     APIConfig     `yaml:"api"`
	Billing BillingConfig `yaml:"billing"`
}

// Config holds the runtime configuration for billdesk.
type Config struct {
	// ProjectDir is the directory where the user ran `billdesk` from.
	ProjectDir string

	// BilldeskProjectDir is ProjectDir/.billdesk.
	BilldeskProjectDir string

	Project ProjectConfig
}

// InitBilldeskDir creates the .billdesk directory structure in the given
// project directory and seeds a default config file on first run.
func InitBilldeskDir(projectDir string) error {
	billdeskDir := filepath.Join(projectDir, BilldeskDir)
	if err := os.MkdirAll(filepath.Join(billdeskDir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureConfigFile(filepath.Join(billdeskDir, "config.yaml"))
}

// NewConfig creates a Config populated from .billdesk/config.yaml, falling
// back to defaults when the file is absent.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:         projectDir,
		BilldeskProjectDir: filepath.Join(projectDir, BilldeskDir),
		Project:            defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	if override := strings.TrimSpace(os.Getenv(EnvBaseURL)); override != "" {
		cfg.Project.API.BaseURL = override
	}
	cfg.Project.normalize()
	if err := cfg.Project.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ConfigPath returns the on-disk location for the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.BilldeskProjectDir, "config.yaml")
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.BilldeskProjectDir, "logs")
}

// APIBaseURL returns the backend root the client should talk to.
func (c *Config) APIBaseURL() string {
	return c.Project.API.BaseURL
}

// CurrencySymbol returns the symbol rendered before amounts.
func (c *Config) CurrencySymbol() string {
	return c.Project.Billing.CurrencySymbol
}

func (c *Config) loadProjectConfig() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		API:     APIConfig{BaseURL: defaultBaseURL},
		Billing: BillingConfig{CurrencySymbol: defaultCurrency},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.API.BaseURL) == "" {
		pc.API.BaseURL = defaultBaseURL
	}
	if strings.TrimSpace(pc.Billing.CurrencySymbol) == "" {
		pc.Billing.CurrencySymbol = defaultCurrency
	}
}

func (pc *ProjectConfig) normalize() {
	pc.API.BaseURL = strings.TrimRight(strings.TrimSpace(pc.API.BaseURL), "/")
	pc.Billing.CurrencySymbol = strings.TrimSpace(pc.Billing.CurrencySymbol)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	parsed, err := url.Parse(pc.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("api.base_url must be an http or https URL")
	}
	if parsed.Host == "" {
		return fmt.Errorf("api.base_url is missing a host")
	}
	return nil
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
