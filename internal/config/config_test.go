package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Output.Dir != DefaultOutputDir {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, DefaultOutputDir)
	}
	if cfg.Template.Renderer != "rod" {
		t.Errorf("Template.Renderer = %q, want %q", cfg.Template.Renderer, "rod")
	}
	if cfg.Database.ProductID != "7-day-reset" {
		t.Errorf("Database.ProductID = %q, want %q", cfg.Database.ProductID, "7-day-reset")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_OutputPaths(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Output.Dir = "build"

	if got, want := cfg.WorkbookOutputDir(), filepath.Join("build", "workbooks"); got != want {
		t.Errorf("WorkbookOutputDir() = %q, want %q", got, want)
	}
	if got, want := cfg.ToolkitOutputPath(), filepath.Join("build", "recovery-toolkit.pdf"); got != want {
		t.Errorf("ToolkitOutputPath() = %q, want %q", got, want)
	}
	if got, want := cfg.ReliefOutputPath(), filepath.Join("build", "rewired-relief-toolkit.pdf"); got != want {
		t.Errorf("ReliefOutputPath() = %q, want %q", got, want)
	}

	cfg.Output.WorkbookDir = "/srv/wb"
	cfg.Output.ToolkitPath = "/srv/toolkit.pdf"
	cfg.Output.ReliefPath = "/srv/relief.pdf"
	if cfg.WorkbookOutputDir() != "/srv/wb" || cfg.ToolkitOutputPath() != "/srv/toolkit.pdf" || cfg.ReliefOutputPath() != "/srv/relief.pdf" {
		t.Error("explicit output paths not honored")
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty", value: "", maxLength: 10, wantErr: false},
		{name: "at limit", value: strings.Repeat("a", 10), maxLength: 10, wantErr: false},
		{name: "over limit", value: strings.Repeat("a", 11), maxLength: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("field", tt.value, tt.maxLength)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "chromedp", mutate: func(c *Config) { c.Template.Renderer = "chromedp" }},
		{name: "unknown renderer", mutate: func(c *Config) { c.Template.Renderer = "weasyprint" }, wantErr: ErrInvalidValue},
		{name: "bad timeout", mutate: func(c *Config) { c.Template.Timeout = "soon" }, wantErr: ErrInvalidValue},
		{name: "negative timeout", mutate: func(c *Config) { c.Template.Timeout = "-5s" }, wantErr: ErrInvalidValue},
		{name: "too many workers", mutate: func(c *Config) { c.Workbook.Workers = 99 }, wantErr: ErrInvalidValue},
		{name: "negative workers", mutate: func(c *Config) { c.Workbook.Workers = -1 }, wantErr: ErrInvalidValue},
		{name: "unknown log mode", mutate: func(c *Config) { c.Log.Mode = "loud" }, wantErr: ErrInvalidValue},
		{name: "long header", mutate: func(c *Config) { c.Workbook.Header = strings.Repeat("x", MaxHeaderLength+1) }, wantErr: ErrFieldTooLong},
		{name: "long product", mutate: func(c *Config) { c.Database.ProductID = strings.Repeat("x", MaxProductIDLength+1) }, wantErr: ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_TimeoutDuration(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Template.Timeout = "45s"
	d, err := cfg.TimeoutDuration()
	if err != nil || d != 45*time.Second {
		t.Errorf("TimeoutDuration() = %v, %v; want 45s", d, err)
	}

	cfg.Template.Timeout = ""
	d, err = cfg.TimeoutDuration()
	if err != nil || d != 30*time.Second {
		t.Errorf("TimeoutDuration() = %v, %v; want 30s default", d, err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config over defaults", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `output:
  dir: "/tmp/rewired"
workbook:
  header: "Custom Header"
template:
  renderer: chromedp
  timeout: 1m
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Dir != "/tmp/rewired" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "/tmp/rewired")
		}
		if cfg.Workbook.Header != "Custom Header" {
			t.Errorf("Workbook.Header = %q, want %q", cfg.Workbook.Header, "Custom Header")
		}
		if cfg.Template.Renderer != "chromedp" {
			t.Errorf("Template.Renderer = %q, want %q", cfg.Template.Renderer, "chromedp")
		}
		if cfg.Database.ProductID != "7-day-reset" {
			t.Errorf("Database.ProductID = %q, want default kept", cfg.Database.ProductID)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("output: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unknown.yaml")
		if err := os.WriteFile(configPath, []byte("outptu:\n  dir: x\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(configPath, []byte("log:\n  mode: loud\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("name resolves from current directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		if err := os.WriteFile("local.yml", []byte("output:\n  dir: here\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig("local")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Dir != "here" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "here")
		}
	})

	t.Run("unknown name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, err := LoadConfig("missing-config-name")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "missing-config-name.yaml") {
			t.Errorf("error %q does not list tried paths", err)
		}
	})
}
