package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/altin/ggrep/internal/config"
	"github.com/altin/ggrep/internal/logger"
	"github.com/altin/ggrep/internal/scan"
	"github.com/altin/ggrep/internal/search"
	"github.com/altin/ggrep/internal/ui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	var (
		lineNumbers = flag.Bool("n", false, "prefix each match with its 1-based line number")
		ignoreCase  = flag.Bool("i", false, "ignore case in pattern and input")
		invert      = flag.Bool("v", false, "select non-matching lines")
		count       = flag.Bool("c", false, "print per-file match counts instead of matches")
		filesOnly   = flag.Bool("l", false, "print only names of files containing a match")
		wholeWords  = flag.Bool("w", false, "match only whole words")
		colorWhen   = flag.String("color", "auto", "highlight matches: auto, always or never")
		debugMode   = flag.Bool("debug", false, "log scan diagnostics to stderr")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.BoolVar(lineNumbers, "line-number", false, "prefix each match with its 1-based line number")
	flag.BoolVar(ignoreCase, "ignore-case", false, "ignore case in pattern and input")
	flag.BoolVar(invert, "invert-match", false, "select non-matching lines")
	flag.BoolVar(count, "count", false, "print per-file match counts instead of matches")
	flag.BoolVar(filesOnly, "files-with-matches", false, "print only names of files containing a match")
	flag.BoolVar(wholeWords, "word-regexp", false, "match only whole words")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ggrep [OPTIONS] PATTERN [FILE...]\n\nOptions:\n")
		flag.PrintDefaults()
	}

	if err := flag.CommandLine.Parse(expandArgs(os.Args[1:])); err != nil {
		os.Exit(2)
	}

	if *showVersion {
		fmt.Println("ggrep", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: pattern is required")
		flag.Usage()
		os.Exit(1)
	}

	defaults, err := config.LoadDefaults()
	if err != nil {
		fatal(err)
	}
	if defaults != nil {
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if defaults.Color != "" && !set["color"] {
			*colorWhen = defaults.Color
		}
		if defaults.LineNumbers && !set["n"] && !set["line-number"] {
			*lineNumbers = true
		}
	}

	mode, err := config.ResolveMode(*count, *filesOnly)
	if err != nil {
		fatal(err)
	}
	colorMode, err := config.ParseColorMode(*colorWhen)
	if err != nil {
		fatal(err)
	}

	cfg := config.Config{
		Pattern:     args[0],
		Files:       args[1:],
		IgnoreCase:  *ignoreCase,
		WholeWords:  *wholeWords,
		Invert:      *invert,
		Mode:        mode,
		LineNumbers: *lineNumbers,
		Color:       colorMode,
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	matcher, err := search.Compile(cfg.Pattern, cfg.IgnoreCase, cfg.WholeWords)
	if err != nil {
		fatal(err)
	}

	log, err := logger.New(*debugMode)
	if err != nil {
		fatal(err)
	}
	defer log.Sync()

	highlight := cfg.Mode == config.ModeNormal && shouldColor(cfg.Color)
	if highlight {
		// Keep escape sequences when --color=always pipes into a file.
		lipgloss.SetColorProfile(termenv.ANSI)
	}

	scanner := scan.New(cfg, matcher, highlight, os.Stdout, os.Stderr, log)
	// Per-file read failures are already reported on stderr and do not
	// affect the exit code.
	scanner.Run()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, ui.StyleError.Render("Error: "+err.Error()))
	os.Exit(1)
}

func shouldColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

// expandArgs splits bundles of known boolean short flags ("-inv") into
// separate arguments so the flag package can parse them. Anything else,
// including patterns that happen to start with a dash, passes through
// untouched.
func expandArgs(args []string) []string {
	shorts := map[rune]bool{'n': true, 'i': true, 'v': true, 'c': true, 'l': true, 'w': true}

	var out []string
	for _, a := range args {
		if !strings.HasPrefix(a, "-") || strings.HasPrefix(a, "--") || len(a) <= 2 {
			out = append(out, a)
			continue
		}
		bundle := true
		for _, r := range a[1:] {
			if !shorts[r] {
				bundle = false
				break
			}
		}
		if !bundle {
			out = append(out, a)
			continue
		}
		for _, r := range a[1:] {
			out = append(out, "-"+string(r))
		}
	}
	return out
}
