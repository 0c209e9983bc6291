package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Listen != ":8080" {
		t.Errorf("expected default listen :8080, got %s", cfg.Server.Listen)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected default read timeout 15s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 15*time.Second {
		t.Errorf("expected default write timeout 15s, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ShutdownGracePeriod != 10*time.Second {
		t.Errorf("expected default shutdown grace period 10s, got %v", cfg.Server.ShutdownGracePeriod)
	}
	if cfg.Server.MaxBodySize != 100*1024 {
		t.Errorf("expected default max body size 102400, got %d", cfg.Server.MaxBodySize)
	}
	if cfg.Lookup.Stagger != 100*time.Millisecond {
		t.Errorf("expected default stagger 100ms, got %v", cfg.Lookup.Stagger)
	}
	if !cfg.Lookup.IncludeHostInfo {
		t.Error("expected host info enabled by default")
	}
	if cfg.Slack.WebhookURL != "" {
		t.Errorf("expected no default webhook, got %s", cfg.Slack.WebhookURL)
	}
	if cfg.Slack.MaxLinks != 5 {
		t.Errorf("expected default max links 5, got %d", cfg.Slack.MaxLinks)
	}
	if cfg.Slack.RequestTimeout != 10*time.Second {
		t.Errorf("expected default slack timeout 10s, got %v", cfg.Slack.RequestTimeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := Load(&path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Listen != ":8080" {
		t.Errorf("expected defaults when file is missing, got listen %s", cfg.Server.Listen)
	}
}

func TestLoadNilPath(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Lookup.Stagger != 100*time.Millisecond {
		t.Errorf("expected default stagger, got %v", cfg.Lookup.Stagger)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  listen: ":9090"
  read_timeout: 45s
  max_body_size: 2048
lookup:
  stagger: 250ms
  include_host_info: false
slack:
  webhook_url: https://hooks.slack.com/services/T/B/x
  max_links: 3
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(&path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Listen != ":9090" {
		t.Errorf("expected listen :9090, got %s", cfg.Server.Listen)
	}
	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("expected read timeout 45s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 15*time.Second {
		t.Errorf("expected default write timeout to survive, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Server.MaxBodySize != 2048 {
		t.Errorf("expected max body size 2048, got %d", cfg.Server.MaxBodySize)
	}
	if cfg.Lookup.Stagger != 250*time.Millisecond {
		t.Errorf("expected stagger 250ms, got %v", cfg.Lookup.Stagger)
	}
	if cfg.Lookup.IncludeHostInfo {
		t.Error("expected host info disabled")
	}
	if cfg.Slack.WebhookURL != "https://hooks.slack.com/services/T/B/x" {
		t.Errorf("unexpected webhook url %s", cfg.Slack.WebhookURL)
	}
	if cfg.Slack.MaxLinks != 3 {
		t.Errorf("expected max links 3, got %d", cfg.Slack.MaxLinks)
	}
	if cfg.Slack.Username != "iocscope" {
		t.Errorf("expected default username, got %s", cfg.Slack.Username)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  listen: \":9090\"\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("IOCSCOPE_SERVER_LISTEN", ":7070")
	t.Setenv("IOCSCOPE_SERVER_SHUTDOWN_GRACE_PERIOD", "3s")
	t.Setenv("IOCSCOPE_LOOKUP_INCLUDE_HOST_INFO", "false")
	t.Setenv("IOCSCOPE_SLACK_MAX_LINKS", "8")

	cfg, err := Load(&path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Listen != ":7070" {
		t.Errorf("expected env listen :7070, got %s", cfg.Server.Listen)
	}
	if cfg.Server.ShutdownGracePeriod != 3*time.Second {
		t.Errorf("expected shutdown grace period 3s, got %v", cfg.Server.ShutdownGracePeriod)
	}
	if cfg.Lookup.IncludeHostInfo {
		t.Error("expected host info disabled from env")
	}
	if cfg.Slack.MaxLinks != 8 {
		t.Errorf("expected max links 8, got %d", cfg.Slack.MaxLinks)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unterminated"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(&path)
	if !errors.Is(err, ErrConfigLoad) {
		t.Errorf("expected ErrConfigLoad, got %v", err)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("IOCSCOPE_SERVER_READ_TIMEOUT", "invalid")

	_, err := Load(nil)
	if !errors.Is(err, ErrConfigUnmarshal) {
		t.Errorf("expected ErrConfigUnmarshal for invalid duration, got %v", err)
	}
}

func TestEnvKey(t *testing.T) {
	testCases := map[string]string{
		"IOCSCOPE_SERVER_READ_TIMEOUT": "server.read_timeout",
		"IOCSCOPE_SLACK_WEBHOOK_URL":   "slack.webhook_url",
		"IOCSCOPE_DEBUG":               "debug",
	}

	for in, want := range testCases {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q): expected %q, got %q", in, want, got)
		}
	}
}
