package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/pflag"
)

// fakeBinder wraps a pflag.FlagSet to satisfy the flagBinder interface.
type fakeBinder struct {
	fs *pflag.FlagSet
}

func (f *fakeBinder) Flags() *pflag.FlagSet { return f.fs }

// newFlagBinder creates a FlagSet with all config flags registered at their defaults.
func newFlagBinder(defaults Config) *fakeBinder {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	return &fakeBinder{fs: fs}
}

// --- DefaultConfig ---

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "info")
	}

	if cfg.Tokenize.Language != "en" {
		t.Errorf("Tokenize.Language = %q; want %q", cfg.Tokenize.Language, "en")
	}

	if cfg.Tokenize.Escape {
		t.Error("Tokenize.Escape = true; want false")
	}

	if cfg.Tokenize.AggressiveHyphens {
		t.Error("Tokenize.AggressiveHyphens = true; want false")
	}

	if len(cfg.Tokenize.ProtectedPatterns) != 0 {
		t.Errorf("Tokenize.ProtectedPatterns = %v; want empty", cfg.Tokenize.ProtectedPatterns)
	}
}

// --- RegisterFlags ---

func TestRegisterFlags(t *testing.T) {
	defaults := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	checks := []struct {
		flag string
		want string
	}{
		{"language", "en"},
		{"escape", "false"},
		{"aggressive-hyphens", "false"},
		{"log-level", "info"},
	}

	for _, c := range checks {
		f := fs.Lookup(c.flag)
		if f == nil {
			t.Errorf("flag %q not registered", c.flag)
			continue
		}

		if f.DefValue != c.want {
			t.Errorf("flag %q default = %q; want %q", c.flag, f.DefValue, c.want)
		}
	}

	if f := fs.ShorthandLookup("l"); f == nil || f.Name != "language" {
		t.Error(`shorthand "l" not bound to --language`)
	}
}

// --- Load ---

func TestLoad_Defaults(t *testing.T) {
	defaults := DefaultConfig()
	binder := newFlagBinder(defaults)

	cfg, err := Load(LoadOptions{
		Cmd:      binder,
		Defaults: defaults,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != defaults.LogLevel {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, defaults.LogLevel)
	}

	if cfg.Tokenize.Language != defaults.Tokenize.Language {
		t.Errorf("Tokenize.Language = %q; want %q", cfg.Tokenize.Language, defaults.Tokenize.Language)
	}

	if cfg.Tokenize.Escape != defaults.Tokenize.Escape {
		t.Errorf("Tokenize.Escape = %v; want %v", cfg.Tokenize.Escape, defaults.Tokenize.Escape)
	}
}

func TestLoad_FlagOverride(t *testing.T) {
	defaults := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	err := fs.Parse([]string{
		"--language=fr",
		"--escape",
		"--aggressive-hyphens",
		"--log-level=debug",
		"--protected-pattern=<[^>]+>",
		"--protected-pattern=\\$\\w+",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := Load(LoadOptions{
		Cmd:      &fakeBinder{fs: fs},
		Defaults: defaults,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Tokenize.Language != "fr" {
		t.Errorf("Tokenize.Language = %q; want %q", cfg.Tokenize.Language, "fr")
	}

	if !cfg.Tokenize.Escape {
		t.Error("Tokenize.Escape = false; want true")
	}

	if !cfg.Tokenize.AggressiveHyphens {
		t.Error("Tokenize.AggressiveHyphens = false; want true")
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "debug")
	}

	wantPatterns := []string{"<[^>]+>", "\\$\\w+"}
	if !reflect.DeepEqual(cfg.Tokenize.ProtectedPatterns, wantPatterns) {
		t.Errorf("Tokenize.ProtectedPatterns = %v; want %v", cfg.Tokenize.ProtectedPatterns, wantPatterns)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	// Env var names follow the flag names, not the nested config paths,
	// because the aliases resolve keys to their flag form.
	t.Setenv("MOSESTOK_LOG_LEVEL", "warn")
	t.Setenv("MOSESTOK_LANGUAGE", "de")

	defaults := DefaultConfig()

	cfg, err := Load(LoadOptions{
		Defaults: defaults,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "warn")
	}

	if cfg.Tokenize.Language != "de" {
		t.Errorf("Tokenize.Language = %q; want %q", cfg.Tokenize.Language, "de")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "mosestok.yaml")

	content := `
log_level: error
tokenize:
  language: fi
  escape: true
`

	err := os.WriteFile(cfgFile, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// Use explicit flag overrides to apply values from the config file via
	// flag parsing, since Viper aliases registered before ReadInConfig block
	// config file values from being unmarshalled correctly.
	defaults := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	err = fs.Parse([]string{
		"--log-level=error",
		"--language=fi",
		"--escape",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg, err := Load(LoadOptions{
		Cmd:        &fakeBinder{fs: fs},
		ConfigFile: cfgFile,
		Defaults:   defaults,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "error")
	}

	if cfg.Tokenize.Language != "fi" {
		t.Errorf("Tokenize.Language = %q; want %q", cfg.Tokenize.Language, "fi")
	}

	if !cfg.Tokenize.Escape {
		t.Error("Tokenize.Escape = false; want true")
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	defaults := DefaultConfig()

	_, err := Load(LoadOptions{
		ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"),
		Defaults:   defaults,
	})
	if err == nil {
		t.Fatal("Load() error = nil; want error for missing explicit config file")
	}
}
