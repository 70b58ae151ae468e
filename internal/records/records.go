// Package records persists the best move count per level. The on-disk format
// is one line per level, "<level> - <best | NOT SET>", rewritten in full on
// every save.
package records

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// NotSet is the sentinel for a level that has never been completed.
// It compares as infinity when a new result comes in.
const NotSet = "NOT SET"

// notSet is the internal marker value for NotSet entries.
const notSet = -1

// ParseError describes a malformed records file.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("records: line %d: %s", e.Line, e.Msg)
}

// Table maps level numbers to their best move counts. A level can be present
// with no record yet, which keeps it selectable in the level menu.
type Table struct {
	best map[int]int
}

// New returns a table with level 1 unlocked and no record set.
func New() *Table {
	return &Table{best: map[int]int{1: notSet}}
}

// Parse reads the "<level> - <best | NOT SET>" lines into a table.
func Parse(data string) (*Table, error) {
	t := &Table{best: make(map[int]int)}

	for i, raw := range strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, " - ", 2)
		if len(parts) != 2 {
			return nil, &ParseError{Line: i + 1, Msg: fmt.Sprintf("bad record %q", line)}
		}

		level, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || level < 1 {
			return nil, &ParseError{Line: i + 1, Msg: fmt.Sprintf("bad level %q", parts[0])}
		}

		value := strings.TrimSpace(parts[1])
		if value == NotSet {
			t.best[level] = notSet
			continue
		}
		moves, err := strconv.Atoi(value)
		if err != nil || moves < 0 {
			return nil, &ParseError{Line: i + 1, Msg: fmt.Sprintf("bad move count %q", value)}
		}
		t.best[level] = moves
	}

	if len(t.best) == 0 {
		t.best[1] = notSet
	}
	return t, nil
}

// Load reads the table from path. A missing file yields a fresh table with
// level 1 unlocked; any other read error or a malformed file is returned.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("records: reading %s: %w", path, err)
	}
	return Parse(string(data))
}

// Best returns the stored best move count for a level. The second result is
// false when the level has no record yet (or is unknown entirely).
func (t *Table) Best(level int) (int, bool) {
	moves, ok := t.best[level]
	if !ok || moves == notSet {
		return 0, false
	}
	return moves, true
}

// Known reports whether the level has an entry, with or without a record.
func (t *Table) Known(level int) bool {
	_, ok := t.best[level]
	return ok
}

// Levels returns the known level numbers in ascending order.
func (t *Table) Levels() []int {
	out := make([]int, 0, len(t.best))
	for level := range t.best {
		out = append(out, level)
	}
	sort.Ints(out)
	return out
}

// Update records a completed run: the stored best only improves (NOT SET
// counts as infinity), and the next level's entry is created so it becomes
// selectable.
func (t *Table) Update(level, moves int) {
	current, ok := t.best[level]
	if !ok || current == notSet || current > moves {
		t.best[level] = moves
	}
	if _, ok := t.best[level+1]; !ok {
		t.best[level+1] = notSet
	}
}

// String renders the table in its on-disk format.
func (t *Table) String() string {
	var sb strings.Builder
	for _, level := range t.Levels() {
		value := NotSet
		if moves, ok := t.Best(level); ok {
			value = strconv.Itoa(moves)
		}
		fmt.Fprintf(&sb, "%d - %s\n", level, value)
	}
	return sb.String()
}

// Save rewrites the whole table to path, creating parent directories.
func (t *Table) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("records: creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(t.String()), 0o644); err != nil {
		return fmt.Errorf("records: writing %s: %w", path, err)
	}
	return nil
}
