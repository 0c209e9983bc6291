// Package config loads the iocscope service configuration
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mcuadros/go-defaults"
)

const (
	// envPrefix is the prefix for environment variable overrides
	envPrefix = "IOCSCOPE_"
	// delim is the koanf key path delimiter
	delim = "."
)

// Config holds the service configuration
type Config struct {
	// Server contains the HTTP server settings
	Server Server `json:"server" koanf:"server"`
	// Lookup contains the link planning settings
	Lookup Lookup `json:"lookup" koanf:"lookup"`
	// Slack contains the indicator sharing settings
	Slack Slack `json:"slack" koanf:"slack"`
}

// Server holds the HTTP server settings
type Server struct {
	// Listen is the address the API binds to
	Listen string `json:"listen" koanf:"listen" default:":8080"`
	// ReadTimeout bounds reading a request
	ReadTimeout time.Duration `json:"read_timeout" koanf:"read_timeout" default:"15s"`
	// WriteTimeout bounds writing a response
	WriteTimeout time.Duration `json:"write_timeout" koanf:"write_timeout" default:"15s"`
	// ShutdownGracePeriod is how long in-flight requests get on shutdown
	ShutdownGracePeriod time.Duration `json:"shutdown_grace_period" koanf:"shutdown_grace_period" default:"10s"`
	// MaxBodySize is the request body limit in bytes
	MaxBodySize int64 `json:"max_body_size" koanf:"max_body_size" default:"102400"`
	// Debug enables debug logging
	Debug bool `json:"debug" koanf:"debug" default:"false"`
	// Pretty enables human readable logging
	Pretty bool `json:"pretty" koanf:"pretty" default:"false"`
}

// Lookup holds the link planning settings
type Lookup struct {
	// Stagger is the delay between links in an open-all schedule
	Stagger time.Duration `json:"stagger" koanf:"stagger" default:"100ms"`
	// IncludeHostInfo adds public suffix details to lookup reports
	IncludeHostInfo bool `json:"include_host_info" koanf:"include_host_info" default:"true"`
}

// Slack holds the indicator sharing settings
type Slack struct {
	// WebhookURL is the incoming webhook; sharing is disabled when empty
	WebhookURL string `json:"webhook_url" koanf:"webhook_url" sensitive:"true"`
	// Username overrides the bot name on shared messages
	Username string `json:"username" koanf:"username" default:"iocscope"`
	// RequestTimeout bounds a webhook request
	RequestTimeout time.Duration `json:"request_timeout" koanf:"request_timeout" default:"10s"`
	// MaxLinks is the number of lookup links included in a shared message
	MaxLinks int `json:"max_links" koanf:"max_links" default:"5"`
}

// Default returns a configuration populated from the struct defaults
func Default() *Config {
	cfg := &Config{}
	defaults.SetDefaults(cfg)

	return cfg
}

// Load builds the configuration from defaults, the YAML file at path (when it
// exists) and IOCSCOPE_ environment variables, in that order of precedence
func Load(path *string) (*Config, error) {
	k := koanf.New(delim)

	if path != nil && fileExists(*path) {
		if err := k.Load(file.Provider(*path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigLoad, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, delim, envKey), nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigLoad, err)
	}

	cfg := Default()

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnmarshal, err)
	}

	return cfg, nil
}

// envKey maps IOCSCOPE_SERVER_READ_TIMEOUT to server.read_timeout; the first
// segment names the section, the remainder the field
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))

	return strings.Replace(key, "_", delim, 1)
}

// fileExists reports whether path names a readable regular file
func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
