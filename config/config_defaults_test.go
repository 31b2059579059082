package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_Dispatch(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Dispatch.Mode != "inline" {
		t.Errorf("expected inline mode, got %q", cfg.Dispatch.Mode)
	}
	if cfg.Dispatch.MaxRetries != 2 {
		t.Errorf("expected 2 retries (3 attempts total), got %d", cfg.Dispatch.MaxRetries)
	}
	if cfg.Dispatch.RetryDelay != time.Second {
		t.Errorf("expected 1s retry delay, got %v", cfg.Dispatch.RetryDelay)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Dispatch: &DispatchConfig{
			Mode:       "queue",
			MaxRetries: 1,
			RetryDelay: 5 * time.Second,
		},
	}
	applyDefaults(cfg)

	if cfg.Dispatch.Mode != "queue" || cfg.Dispatch.MaxRetries != 1 || cfg.Dispatch.RetryDelay != 5*time.Second {
		t.Errorf("explicit dispatch settings were overwritten: %+v", cfg.Dispatch)
	}
}
