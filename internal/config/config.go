package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shauncritzer/memoir"
	"github.com/shauncritzer/memoir/internal/course"
	"github.com/shauncritzer/memoir/internal/fileutil"
	"github.com/shauncritzer/memoir/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxHeaderLength    = 200
	MaxURLLength       = 2048
	MaxProductIDLength = 64
)

// AppDir is the directory name under the user config directory.
const AppDir = "rewired"

// Default output names, relative to Output.Dir.
const (
	DefaultOutputDir   = "output"
	DefaultWorkbookDir = "workbooks"
	DefaultToolkitFile = "recovery-toolkit.pdf"
	DefaultReliefFile  = "rewired-relief-toolkit.pdf"
)

// Config holds all configuration for the generators and the seeder.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Workbook WorkbookConfig `yaml:"workbook"`
	Template TemplateConfig `yaml:"template"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// OutputConfig defines where generated PDFs are written.
type OutputConfig struct {
	Dir         string `yaml:"dir"`         // Base directory
	WorkbookDir string `yaml:"workbookDir"` // Empty = <dir>/workbooks
	ToolkitPath string `yaml:"toolkitPath"` // Empty = <dir>/recovery-toolkit.pdf
	ReliefPath  string `yaml:"reliefPath"`  // Empty = <dir>/rewired-relief-toolkit.pdf
}

// WorkbookConfig defines workbook generation options.
type WorkbookConfig struct {
	Header  string `yaml:"header"`  // Overrides the header printed on every page
	Workers int    `yaml:"workers"` // 0 = auto
}

// TemplateConfig defines the HTML template flow.
type TemplateConfig struct {
	Path     string `yaml:"path"`     // Template file; empty = built-in
	Assets   string `yaml:"assets"`   // Directory overriding built-in template and stylesheet
	Renderer string `yaml:"renderer"` // "rod" or "chromedp"
	Timeout  string `yaml:"timeout"`  // Go duration, e.g. "45s"
}

// DatabaseConfig defines the seeder target.
type DatabaseConfig struct {
	URL       string `yaml:"url"` // Usually left empty in favor of DATABASE_URL
	ProductID string `yaml:"productId"`
}

// LogConfig defines logging options.
type LogConfig struct {
	Mode string `yaml:"mode"` // "dev" or "prod"
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Output:   OutputConfig{Dir: DefaultOutputDir},
		Template: TemplateConfig{Renderer: memoir.BackendRod, Timeout: memoir.DefaultTimeout.String()},
		Database: DatabaseConfig{ProductID: course.ProductID},
		Log:      LogConfig{Mode: "dev"},
	}
}

// WorkbookOutputDir returns the workbook directory, derived from Output.Dir if unset.
func (c *Config) WorkbookOutputDir() string {
	if c.Output.WorkbookDir != "" {
		return c.Output.WorkbookDir
	}
	return filepath.Join(c.Output.Dir, DefaultWorkbookDir)
}

// ToolkitOutputPath returns the toolkit PDF path, derived from Output.Dir if unset.
func (c *Config) ToolkitOutputPath() string {
	if c.Output.ToolkitPath != "" {
		return c.Output.ToolkitPath
	}
	return filepath.Join(c.Output.Dir, DefaultToolkitFile)
}

// ReliefOutputPath returns the relief toolkit PDF path, derived from Output.Dir if unset.
func (c *Config) ReliefOutputPath() string {
	if c.Output.ReliefPath != "" {
		return c.Output.ReliefPath
	}
	return filepath.Join(c.Output.Dir, DefaultReliefFile)
}

// TimeoutDuration parses Template.Timeout. Empty means memoir.DefaultTimeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Template.Timeout == "" {
		return memoir.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Template.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: template.timeout: %v", ErrInvalidValue, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: template.timeout must be positive, got %s", ErrInvalidValue, d)
	}
	return d, nil
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	paths := []struct {
		name, value string
	}{
		{"output.dir", c.Output.Dir},
		{"output.workbookDir", c.Output.WorkbookDir},
		{"output.toolkitPath", c.Output.ToolkitPath},
		{"output.reliefPath", c.Output.ReliefPath},
		{"template.path", c.Template.Path},
		{"template.assets", c.Template.Assets},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("workbook.header", c.Workbook.Header, MaxHeaderLength); err != nil {
		return err
	}
	if err := validateFieldLength("database.url", c.Database.URL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("database.productId", c.Database.ProductID, MaxProductIDLength); err != nil {
		return err
	}

	if c.Workbook.Workers < 0 || c.Workbook.Workers > memoir.MaxWorkers {
		return fmt.Errorf("%w: workbook.workers must be between 0 and %d, got %d", ErrInvalidValue, memoir.MaxWorkers, c.Workbook.Workers)
	}

	switch strings.ToLower(c.Template.Renderer) {
	case "", memoir.BackendRod, memoir.BackendChromedp:
	default:
		return fmt.Errorf("%w: template.renderer %q (must be %s or %s)", ErrInvalidValue, c.Template.Renderer, memoir.BackendRod, memoir.BackendChromedp)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Mode) {
	case "", "dev", "development", "prod", "production":
	default:
		return fmt.Errorf("%w: log.mode %q (must be dev or prod)", ErrInvalidValue, c.Log.Mode)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name on top of
// DefaultConfig. If nameOrPath contains a path separator, it's treated as a
// file path. Otherwise, it's searched as a name in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigParse, yamlutil.Describe(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the files LoadConfig tries for a config name, in order:
// current directory then <user config dir>/rewired/, each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
