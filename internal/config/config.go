package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/slackdeck/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envToken     = "SLACKDECK_TOKEN"
	envPrefsFile = "SLACKDECK_PREFS_FILE"
	envGroups    = "SLACKDECK_GROUPS"
	envTrace     = "SLACKDECK_TRACE"
	envLogFile   = "SLACKDECK_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("slackdeck", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	token := fs.String("token", envOrDefault(env, envToken, ""), "API token for the messaging service")
	prefsFile := fs.String("prefs-file", envOrDefault(env, envPrefsFile, defaultPrefsPath()), "path to the preferences file")
	groups := fs.String("groups", envOrDefault(env, envGroups, ""), "comma-separated custom section names")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Token:     *token,
			PrefsPath: *prefsFile,
			Groups:    splitGroups(*groups),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"prefsFile": *prefsFile,
			"groups":    *groups,
			"trace":     fmt.Sprintf("%t", *trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// MustLoad parses configuration and exits on malformed flags.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks settings that Load cannot reject on its own.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Token) == "" {
		return fmt.Errorf("an API token is required (set --token or %s)", envToken)
	}
	return nil
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "slackdeck-prefs.yaml"
	}
	return filepath.Join(dir, "slackdeck", "prefs.yaml")
}

func splitGroups(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
