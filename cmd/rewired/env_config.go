package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shauncritzer/memoir/internal/config"
)

// envPrefix marks variables owned by this tool.
const envPrefix = "REWIRED_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	DatabaseURL string        // DATABASE_URL: lesson database
	ConfigPath  string        // REWIRED_CONFIG: config file name or path
	OutputDir   string        // REWIRED_OUTPUT_DIR: base output directory
	Renderer    string        // REWIRED_RENDERER: rod or chromedp
	Timeout     time.Duration // REWIRED_TIMEOUT: relief rendering timeout
	LogMode     string        // REWIRED_LOG_MODE: dev or prod
	Workers     int           // REWIRED_WORKERS: concurrent workbooks
}

// knownEnvVars lists valid REWIRED_* environment variables.
var knownEnvVars = map[string]bool{
	"REWIRED_CONFIG":     true,
	"REWIRED_OUTPUT_DIR": true,
	"REWIRED_RENDERER":   true,
	"REWIRED_TIMEOUT":    true,
	"REWIRED_LOG_MODE":   true,
	"REWIRED_WORKERS":    true,
}

// loadEnvConfig reads configuration through getenv.
// Unparsable timeout and worker values are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		DatabaseURL: getenv("DATABASE_URL"),
		ConfigPath:  getenv("REWIRED_CONFIG"),
		OutputDir:   getenv("REWIRED_OUTPUT_DIR"),
		Renderer:    getenv("REWIRED_RENDERER"),
		LogMode:     getenv("REWIRED_LOG_MODE"),
	}

	if timeout := getenv("REWIRED_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("REWIRED_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for every unrecognized REWIRED_*
// variable in environ.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overwrites config file values with the variables that are
// set. Flags are applied afterwards by each command, giving
// flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.DatabaseURL != "" {
		cfg.Database.URL = env.DatabaseURL
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Renderer != "" {
		cfg.Template.Renderer = env.Renderer
	}
	if env.Timeout > 0 {
		cfg.Template.Timeout = env.Timeout.String()
	}
	if env.LogMode != "" {
		cfg.Log.Mode = env.LogMode
	}
	if env.Workers > 0 {
		cfg.Workbook.Workers = env.Workers
	}
}
