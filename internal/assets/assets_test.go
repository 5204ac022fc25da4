package assets

// Notes:
// - EmbeddedLoader: we check the built-in template carries the three
//   placeholders the template builder fills, and the stylesheet defines the
//   box classes used by content fragments.
// - FilesystemLoader/AssetResolver: we test override, fallback, and that
//   validation errors are not masked by the fallback.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Helpers
// ---------------------------------------------------------------------------

func writeAsset(t *testing.T, base, dir, file, content string) {
	t.Helper()
	path := filepath.Join(base, dir)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): %v", path, err)
	}
	if err := os.WriteFile(filepath.Join(path, file), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): %v", file, err)
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	tmpl, err := NewEmbeddedLoader().LoadTemplate(DefaultName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DefaultName, err)
	}
	for _, want := range []string{"{{.Title}}", "{{.Subtitle}}", "{{.Content}}", "{{.Stylesheet}}"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("template missing %s", want)
		}
	}
}

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	css, err := NewEmbeddedLoader().LoadStyle(DefaultName)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", DefaultName, err)
	}
	for _, class := range []string{".section-box", ".exercise-box", ".tip-box", ".highlight-box", ".checklist", ".page-break", ".lead"} {
		if !strings.Contains(css, class) {
			t.Errorf("stylesheet missing %s", class)
		}
	}
}

func TestEmbeddedLoader_Errors(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	if _, err := loader.LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(missing) error = %v, want ErrTemplateNotFound", err)
	}
	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadTemplate("../rewired"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTemplate(../rewired) error = %v, want ErrInvalidAssetName", err)
	}
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		if _, err := NewFilesystemLoader(t.TempDir()); err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewFilesystemLoader(""); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeAsset(t, dir, ".", "file.txt", "x")
		_, err := NewFilesystemLoader(filepath.Join(dir, "file.txt"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "templates", "custom.html", "<h1>{{.Title}}</h1>")
	writeAsset(t, dir, "styles", "custom.css", "body{}")

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	got, err := loader.LoadTemplate("custom")
	if err != nil || got != "<h1>{{.Title}}</h1>" {
		t.Errorf("LoadTemplate(custom) = %q, %v", got, err)
	}
	got, err = loader.LoadStyle("custom")
	if err != nil || got != "body{}" {
		t.Errorf("LoadStyle(custom) = %q, %v", got, err)
	}
	if _, err := loader.LoadTemplate("other"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(other) error = %v, want ErrTemplateNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// TestAssetResolver
// ---------------------------------------------------------------------------

func TestAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if _, err := r.LoadTemplate(DefaultName); err != nil {
			t.Errorf("LoadTemplate() error = %v", err)
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeAsset(t, dir, "styles", DefaultName+".css", "/* custom */")

		r, err := NewAssetResolver(dir)
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		css, err := r.LoadStyle(DefaultName)
		if err != nil || css != "/* custom */" {
			t.Errorf("LoadStyle() = %q, %v, want custom copy", css, err)
		}

		// Template not overridden: falls back to the embedded copy.
		tmpl, err := r.LoadTemplate(DefaultName)
		if err != nil || !strings.Contains(tmpl, "{{.Content}}") {
			t.Errorf("LoadTemplate() = %q, %v, want embedded copy", tmpl, err)
		}
	})

	t.Run("validation errors are not masked", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if _, err := r.LoadStyle("a/b"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle(a/b) error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}
