package leaderboard

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "leaderboard.txt")
	store, err := OpenFile(path, nil)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	b := NewBoard(DefaultSize, nil)
	b.Add("ABC", 120)
	b.Add("XYZ", 300)
	b.Add("GOP", -4)
	b.Add("HEY", 120)

	if err := store.Save(b.Entries()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	reloaded := NewBoard(DefaultSize, loaded)

	want := b.Entries()
	got := reloaded.Entries()
	if len(got) != len(want) {
		t.Fatalf("round trip returned %d entries, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store, _ := OpenFile(filepath.Join(t.TempDir(), "none.txt"), nil)

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() of a missing file failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}

func TestFileStoreTruncatesAtMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.txt")
	data := "AAA 50\n\nBBB 70\nCCC notanumber\nDDD 90\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	store, _ := OpenFile(path, log.New(&logs))

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("malformed file should not be an error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected the 2 entries before the bad line, got %v", entries)
	}
	if entries[1] != (Entry{"BBB", 70}) {
		t.Errorf("unexpected entry %+v", entries[1])
	}
	if !strings.Contains(logs.String(), "malformed") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.txt")
	store, _ := OpenFile(path, nil)

	if err := store.Save([]Entry{{"AAA", 1}, {"BBB", 2}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save([]Entry{{"CCC", 3}}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "CCC 3\n" {
		t.Errorf("file = %q, expected a full overwrite", string(data))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kept  int
		line  int
	}{
		{"too many fields", "AAA 1\nB B 2\n", 1, 2},
		{"missing score", "AAA\n", 0, 1},
		{"float score", "AAA 1.5\n", 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries, line, err := Parse(strings.NewReader(tc.input))

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if len(entries) != tc.kept {
				t.Errorf("kept %d entries, expected %d", len(entries), tc.kept)
			}
			if line != tc.line || perr.Line != tc.line {
				t.Errorf("line = %d (err %d), expected %d", line, perr.Line, tc.line)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Format(&buf, []Entry{{"ABC", 10}, {"DEF", -3}}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "ABC 10\nDEF -3\n" {
		t.Errorf("Format() = %q", buf.String())
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(Entry{"AAA", 1})
	entries, _ := s.Load()
	entries[0].Score = 50

	again, _ := s.Load()
	if again[0].Score != 1 {
		t.Error("Load() should return a copy")
	}

	s.Save([]Entry{{"BBB", 2}})
	if s.Saves() != 1 {
		t.Errorf("Saves() = %d, expected 1", s.Saves())
	}
}
