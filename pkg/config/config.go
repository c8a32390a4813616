package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// defaultDomain is used when no allow-list is configured, it forces the
// operator to set real domains before generated addresses make sense
const defaultDomain = "yourdomain.com"

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Telegram struct {
		Token   string   `yaml:"token" json:"token" jsonschema:"description=Bot token from BotFather, supports ${BOT_TOKEN} expansion"`
		Secret  string   `yaml:"secret" json:"secret" jsonschema:"description=Shared secret for the webhook ?secret= query parameter, optional"`
		Domains []string `yaml:"domains" json:"domains" jsonschema:"description=Allowed domains for generated addresses, ordered"`
	} `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram bot configuration"`
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

	// validate configuration
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

// Default returns a configuration with defaults only, for env-driven runs
// without a config file.
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
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate domains
	for _, d := range cfg.Telegram.Domains {
		d = strings.TrimSpace(d)
		if d == "" {
			return fmt.Errorf("telegram.domains must not contain empty entries")
		}
		if strings.ContainsAny(d, "@ ") {
			return fmt.Errorf("telegram.domains entry %q is not a valid domain", d)
		}
	}

	return nil
}

// GetServerConfig returns server listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// BotToken returns the telegram bot token
func (c *Config) BotToken() string { return c.Telegram.Token }

// WebhookSecret returns the shared webhook secret, empty means no check
func (c *Config) WebhookSecret() string { return c.Telegram.Secret }

// Domains returns the domain allow-list in configured order, trimmed of
// whitespace and empty entries. An empty list is substituted with a single
// safe default so the list is never empty.
func (c *Config) Domains() []string {
	res := make([]string, 0, len(c.Telegram.Domains))
	for _, d := range c.Telegram.Domains {
		if d = strings.TrimSpace(d); d != "" {
			res = append(res, d)
		}
	}
	if len(res) == 0 {
		return []string{defaultDomain}
	}
	return res
}

// SetDomainsFromList replaces the allow-list from a comma-separated string,
// used by the ALLOWED_DOMAINS override. Empty input leaves the list as is.
func (c *Config) SetDomainsFromList(raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	var domains []string
	for _, d := range strings.Split(raw, ",") {
		if d = strings.TrimSpace(d); d != "" {
			domains = append(domains, d)
		}
	}
	c.Telegram.Domains = domains
}
