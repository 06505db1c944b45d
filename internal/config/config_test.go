package config

import "testing"

func TestLoadArgsFlagsWin(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"--token", "flag-token", "--groups", "work, infra"},
		[]string{"SLACKDECK_TOKEN=env-token"},
	)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Token != "flag-token" {
		t.Fatalf("token = %q", cfg.App.Token)
	}
	if len(cfg.App.Groups) != 2 || cfg.App.Groups[0] != "work" || cfg.App.Groups[1] != "infra" {
		t.Fatalf("groups = %v", cfg.App.Groups)
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"SLACKDECK_TOKEN=env-token",
		"SLACKDECK_TRACE=true",
		"SLACKDECK_LOG_FILE=/tmp/deck.log",
	})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Token != "env-token" {
		t.Fatalf("token = %q", cfg.App.Token)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("trace should be enabled")
	}
	if cfg.Logging.FilePath != "/tmp/deck.log" {
		t.Fatalf("log file = %q", cfg.Logging.FilePath)
	}
}

func TestValidateRequiresToken(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error without token")
	}
	cfg.App.Token = "tok"
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
