package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dotplain/dotplain/pkg/errors"
)

// withConfigHome points XDG_CONFIG_HOME at a temp dir for the test.
func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", dir)
	t.Cleanup(func() { restoreEnv("XDG_CONFIG_HOME", old) })
	return filepath.Join(dir, appName)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	withConfigHome(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Width != defaultWidth {
		t.Errorf("Width = %v, want %v", cfg.Width, defaultWidth)
	}
	if cfg.ScaleX != defaultScaleX || cfg.ScaleY != defaultScaleY {
		t.Errorf("Scale = (%v, %v), want (%v, %v)", cfg.ScaleX, cfg.ScaleY, defaultScaleX, defaultScaleY)
	}
	if cfg.Debug || cfg.NoCache || cfg.Font != "" {
		t.Errorf("unexpected non-zero defaults: %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := withConfigHome(t)
	writeConfig(t, dir, "width = 120\nscale_x = 25\nscale_y = 30\ndebug = true\nfont = \"custom.txt\"\n")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Width != 120 {
		t.Errorf("Width = %v, want 120", cfg.Width)
	}
	if cfg.ScaleX != 25 || cfg.ScaleY != 30 {
		t.Errorf("Scale = (%v, %v), want (25, 30)", cfg.ScaleX, cfg.ScaleY)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.Font != "custom.txt" {
		t.Errorf("Font = %q, want %q", cfg.Font, "custom.txt")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	dir := withConfigHome(t)
	writeConfig(t, dir, "width = [not toml")

	_, err := loadConfig()
	if err == nil {
		t.Fatal("loadConfig() should fail on invalid TOML")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestLoadConfigNonPositiveValues(t *testing.T) {
	dir := withConfigHome(t)
	writeConfig(t, dir, "width = -5\nscale_x = 0\n")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Width != defaultWidth {
		t.Errorf("negative width should fall back to default, got %v", cfg.Width)
	}
	if cfg.ScaleX != defaultScaleX {
		t.Errorf("zero scale_x should fall back to default, got %v", cfg.ScaleX)
	}
}
