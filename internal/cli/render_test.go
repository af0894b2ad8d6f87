package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/dotplain/dotplain/pkg/errors"
	"github.com/dotplain/dotplain/pkg/glyph"
)

func TestInferFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"graph.dot", formatDOT},
		{"graph.gv", formatDOT},
		{"graph.plain", formatPlain},
		{"graph.txt", formatPlain},
		{"-", formatDOT},
		{"noext", formatDOT},
	}
	for _, tt := range tests {
		if got := inferFormat(tt.input); got != tt.want {
			t.Errorf("inferFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"", formatDOT, formatPlain} {
		if err := validateFormat(f); err != nil {
			t.Errorf("validateFormat(%q) = %v, want nil", f, err)
		}
	}
	err := validateFormat("svg")
	if err == nil {
		t.Fatal("validateFormat(\"svg\") should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "missing.dot"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadFontDefault(t *testing.T) {
	table, hash, err := loadFont("")
	if err != nil {
		t.Fatalf("loadFont(\"\") error: %v", err)
	}
	if table == nil {
		t.Fatal("loadFont(\"\") returned nil table")
	}
	if hash != "" {
		t.Errorf("embedded font hash = %q, want empty", hash)
	}
}

func TestLoadFontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.txt")
	// Trailing newline is tolerated so hand-edited tables survive editors.
	data := glyph.Default().Serialize() + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	table, hash, err := loadFont(path)
	if err != nil {
		t.Fatalf("loadFont() error: %v", err)
	}
	if table == nil {
		t.Fatal("loadFont() returned nil table")
	}
	if hash == "" {
		t.Error("external font should produce a non-empty hash")
	}
}

func TestLoadFontMissing(t *testing.T) {
	_, _, err := loadFont(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadFontCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	if err := os.WriteFile(path, []byte("too short"), 0644); err != nil {
		t.Fatal(err)
	}
	_, _, err := loadFont(path)
	if !errors.Is(err, errors.ErrCodeInvalidTable) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidTable)
	}
}

// TestRenderCommandPlainFile runs the render command end to end on a
// plain-format input, writing to a file.
func TestRenderCommandPlainFile(t *testing.T) {
	withConfigHome(t)

	oldCache := os.Getenv("XDG_CACHE_HOME")
	os.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Cleanup(func() { restoreEnv("XDG_CACHE_HOME", oldCache) })

	dir := t.TempDir()
	input := filepath.Join(dir, "graph.plain")
	doc := strings.Join([]string{
		"graph 1 4 3",
		"node a 1 2 1 0.5 a solid box black white",
		"node b 3 1 1 0.5 b solid box black white",
		"edge a b 2 1 2 3 1 solid black",
		"stop",
	}, "\n")
	if err := os.WriteFile(input, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "graph.txt")

	c := New(os.Stderr, log.WarnLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"render", input, "-o", output, "--no-cache"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	out, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("render produced no output")
	}
	if !strings.Contains(string(out), "a") || !strings.Contains(string(out), "b") {
		t.Errorf("node labels missing from output:\n%s", out)
	}
}

func TestWriteOutputStdoutStaysClean(t *testing.T) {
	// Writing to a file emits status lines; this only checks the file path.
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := writeOutput(path, []byte("art\n"), 2, 1, false); err != nil {
		t.Fatalf("writeOutput() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "art\n" {
		t.Errorf("output file = %q, want %q", data, "art\n")
	}
}
