package leaderboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// FileStore persists the leaderboard as a text file of "<name> <score>"
// lines.
type FileStore struct {
	path   string
	logger *log.Logger
}

// OpenFile creates a store backed by path. The file is created on the
// first Save; a missing file loads as an empty leaderboard.
func OpenFile(path string, logger *log.Logger) (*FileStore, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot expand home directory: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: expanded, logger: logger}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads all parseable entries. Parsing stops at the first malformed
// line and the entries read before it are returned without an error.
func (s *FileStore) Load() ([]Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot open %s: %w", s.path, err)
	}
	defer f.Close()

	entries, line, err := Parse(f)
	if err != nil {
		var perr *ParseError
		if !errors.As(err, &perr) {
			return entries, fmt.Errorf("leaderboard: cannot read %s: %w", s.path, err)
		}
		s.logger.Warn("leaderboard file truncated at malformed line",
			"path", s.path, "line", line, "kept", len(entries), "error", err)
	}
	return entries, nil
}

// Save overwrites the file with entries, one per line.
// The data goes to a temporary file first so a crash cannot leave a
// half-written leaderboard behind.
func (s *FileStore) Save(entries []Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("leaderboard: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".leaderboard-*")
	if err != nil {
		return fmt.Errorf("leaderboard: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Format(tmp, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("leaderboard: cannot write entries: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("leaderboard: cannot flush entries: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("leaderboard: cannot replace %s: %w", s.path, err)
	}

	s.logger.Debug("leaderboard saved", "path", s.path, "entries", len(entries))
	return nil
}

// ParseError reports a malformed leaderboard line.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: malformed entry %q", e.Line, e.Text)
}

// Parse reads "<name> <score>" lines until EOF or the first malformed
// line. Blank lines are skipped. It returns the entries read so far, the
// 1-based number of the last line examined, and a *ParseError or read error.
func Parse(r io.Reader) ([]Entry, int, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return entries, line, &ParseError{Line: line, Text: text}
		}
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			return entries, line, &ParseError{Line: line, Text: text}
		}
		entries = append(entries, Entry{Name: fields[0], Score: score})
	}

	return entries, line, scanner.Err()
}

// Format writes entries in the file format.
func Format(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s %d\n", e.Name, e.Score); err != nil {
			return err
		}
	}
	return bw.Flush()
}

var _ Store = (*FileStore)(nil)
