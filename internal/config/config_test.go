package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveMode(t *testing.T) {
	if _, err := ResolveMode(true, true); err == nil {
		t.Error("count + files-with-matches should be rejected")
	}

	mode, err := ResolveMode(true, false)
	if err != nil || mode != ModeCount {
		t.Errorf("ResolveMode(count) = %v, %v", mode, err)
	}
	mode, err = ResolveMode(false, true)
	if err != nil || mode != ModeFilenamesOnly {
		t.Errorf("ResolveMode(files-with-matches) = %v, %v", mode, err)
	}
	mode, err = ResolveMode(false, false)
	if err != nil || mode != ModeNormal {
		t.Errorf("ResolveMode(neither) = %v, %v", mode, err)
	}
}

func TestValidateRejectsLineNumbersOutsideNormalMode(t *testing.T) {
	for _, mode := range []OutputMode{ModeCount, ModeFilenamesOnly} {
		cfg := Config{Pattern: "x", Mode: mode, LineNumbers: true}
		if err := cfg.Validate(); err == nil {
			t.Errorf("mode %v with line numbers should be rejected", mode)
		}
	}

	cfg := Config{Pattern: "x", Mode: ModeNormal, LineNumbers: true}
	if err := cfg.Validate(); err != nil {
		t.Errorf("normal mode with line numbers: %v", err)
	}
}

func TestParseColorMode(t *testing.T) {
	for _, s := range []string{"auto", "always", "never"} {
		if _, err := ParseColorMode(s); err != nil {
			t.Errorf("ParseColorMode(%q): %v", s, err)
		}
	}
	if _, err := ParseColorMode("rainbow"); err == nil {
		t.Error("invalid color mode should be rejected")
	}
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ggrep.yaml")
	if err := os.WriteFile(path, []byte("color: always\nline_numbers: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GGREP_CONFIG", path)

	d, err := LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	if d.Color != "always" || !d.LineNumbers {
		t.Errorf("defaults = %+v, want color=always line_numbers=true", d)
	}
}

func TestLoadDefaultsUnset(t *testing.T) {
	t.Setenv("GGREP_CONFIG", "")
	d, err := LoadDefaults()
	if err != nil || d != nil {
		t.Errorf("LoadDefaults with unset env = %v, %v, want nil, nil", d, err)
	}
}

func TestLoadDefaultsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ggrep.yaml")
	if err := os.WriteFile(path, []byte("color: sometimes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GGREP_CONFIG", path)

	if _, err := LoadDefaults(); err == nil {
		t.Error("invalid color in defaults file should be rejected")
	}
}
