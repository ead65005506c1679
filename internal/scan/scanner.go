package scan

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/altin/ggrep/internal/config"
	"github.com/altin/ggrep/internal/search"
	"github.com/altin/ggrep/internal/ui"
)

var errInvalidUTF8 = errors.New("invalid UTF-8 data")

// Scanner walks the input files in order and renders matches according to
// the configured output mode. The config and matcher are shared read-only
// across the whole run; the scanner itself holds no per-file state between
// files.
type Scanner struct {
	cfg       config.Config
	matcher   *search.Matcher
	highlight bool
	out       io.Writer
	errOut    io.Writer
	log       *zap.Logger
}

func New(cfg config.Config, m *search.Matcher, highlight bool, out, errOut io.Writer, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{
		cfg:       cfg,
		matcher:   m,
		highlight: highlight,
		out:       out,
		errOut:    errOut,
		log:       log,
	}
}

// Run processes every configured file sequentially. A file that cannot be
// read is reported on the error stream as "path: reason" and does not stop
// the remaining files. The return value is the number of failed files;
// callers decide what, if anything, that means for the exit code.
func (s *Scanner) Run() int {
	showFilename := len(s.cfg.Files) > 1
	failed := 0
	for _, path := range s.cfg.Files {
		if err := s.scanFile(path, showFilename); err != nil {
			fmt.Fprintf(s.errOut, "%s: %v\n", path, err)
			failed++
		}
	}
	return failed
}

func (s *Scanner) scanFile(path string, showFilename bool) error {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		// The path is prepended by the caller, so report the bare
		// cause rather than the full PathError.
		var perr *fs.PathError
		if errors.As(err, &perr) {
			return perr.Err
		}
		return err
	}
	if !utf8.Valid(data) {
		return errInvalidUTF8
	}

	lines := splitLines(string(data))
	tally := 0
	for i, line := range lines {
		if !s.matcher.Decide(line, s.cfg.Invert) {
			continue
		}
		tally++

		switch s.cfg.Mode {
		case config.ModeFilenamesOnly:
			// One match is enough; the rest of the file is never
			// evaluated.
			fmt.Fprintln(s.out, path)
			s.log.Debug("file matched",
				zap.String("path", path),
				zap.Int("line", i+1),
				zap.Duration("took", time.Since(start)))
			return nil
		case config.ModeCount:
		default:
			s.printMatch(path, i, line, showFilename)
		}
	}

	if s.cfg.Mode == config.ModeCount {
		if showFilename {
			fmt.Fprintf(s.out, "%s:%d\n", path, tally)
		} else {
			fmt.Fprintln(s.out, tally)
		}
	}

	s.log.Debug("scanned file",
		zap.String("path", path),
		zap.Int("lines", len(lines)),
		zap.Int("matches", tally),
		zap.Duration("took", time.Since(start)))
	return nil
}

// printMatch renders one matching line in normal mode. Filenames are shown
// only on multi-file runs; line numbers are 1-based.
func (s *Scanner) printMatch(path string, index int, line string, showFilename bool) {
	var prefix string
	switch {
	case showFilename && s.cfg.LineNumbers:
		prefix = fmt.Sprintf("%s:%d:", path, index+1)
	case showFilename:
		prefix = path + ":"
	case s.cfg.LineNumbers:
		prefix = fmt.Sprintf("%d:", index+1)
	}

	if s.highlight && !s.cfg.Invert {
		line = ui.Highlight(line, s.matcher)
	}
	fmt.Fprintf(s.out, "%s%s\n", prefix, line)
}

// splitLines splits file content on newlines without inventing an empty
// final line for content that ends in a newline. Windows line endings are
// handled by trimming the trailing carriage return.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
