package config

import "fmt"

// OutputMode selects one of the mutually exclusive rendering paths.
type OutputMode int

const (
	ModeNormal OutputMode = iota
	ModeCount
	ModeFilenamesOnly
)

// ColorMode controls when matched spans are highlighted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// ResolveMode folds the two output-mode flags into a single variant, so an
// invalid combination cannot be represented downstream.
func ResolveMode(count, filesWithMatches bool) (OutputMode, error) {
	switch {
	case count && filesWithMatches:
		return ModeNormal, fmt.Errorf("-c/--count and -l/--files-with-matches are mutually exclusive")
	case count:
		return ModeCount, nil
	case filesWithMatches:
		return ModeFilenamesOnly, nil
	}
	return ModeNormal, nil
}

// Config describes one search run. It is assembled once from the command
// line and never mutated afterwards.
type Config struct {
	Pattern     string
	Files       []string
	IgnoreCase  bool
	WholeWords  bool
	Invert      bool
	Mode        OutputMode
	LineNumbers bool
	Color       ColorMode
}

func (c Config) Validate() error {
	if c.LineNumbers && c.Mode != ModeNormal {
		return fmt.Errorf("-n/--line-number cannot be combined with -c or -l")
	}
	return nil
}
