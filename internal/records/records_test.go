package records

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	table, err := Parse("1 - 12\n2 - NOT SET\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	best, ok := table.Best(1)
	if !ok || best != 12 {
		t.Errorf("Best(1) = %d, %v; want 12, true", best, ok)
	}
	if _, ok := table.Best(2); ok {
		t.Error("Best(2) should report no record")
	}
	if !table.Known(2) {
		t.Error("level 2 should still be known")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing separator", "1 12\n"},
		{"bad level", "zero - 12\n"},
		{"bad moves", "1 - twelve\n"},
		{"negative moves", "1 - -3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) err = %v; want *ParseError", tt.data, err)
			}
		})
	}
}

func TestParseEmptyUnlocksFirstLevel(t *testing.T) {
	table, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !table.Known(1) {
		t.Error("fresh table should know level 1")
	}
	if _, ok := table.Best(1); ok {
		t.Error("fresh table should have no record for level 1")
	}
}

func TestLoadMissingFile(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := table.Levels(); len(got) != 1 || got[0] != 1 {
		t.Errorf("Levels() = %v; want [1]", got)
	}
}

func TestUpdateKeepsMinimum(t *testing.T) {
	table := New()

	table.Update(1, 12)
	if best, _ := table.Best(1); best != 12 {
		t.Errorf("after first win Best(1) = %d; want 12", best)
	}

	table.Update(1, 15)
	if best, _ := table.Best(1); best != 12 {
		t.Errorf("worse run overwrote record: Best(1) = %d; want 12", best)
	}

	table.Update(1, 8)
	if best, _ := table.Best(1); best != 8 {
		t.Errorf("better run ignored: Best(1) = %d; want 8", best)
	}
}

func TestUpdateUnlocksNextLevel(t *testing.T) {
	table := New()
	table.Update(1, 10)

	if !table.Known(2) {
		t.Fatal("completing level 1 should unlock level 2")
	}
	if _, ok := table.Best(2); ok {
		t.Error("level 2 should be unlocked without a record")
	}

	// Completing level 1 again must not reset an existing level-2 record.
	table.Update(2, 20)
	table.Update(1, 9)
	if best, _ := table.Best(2); best != 20 {
		t.Errorf("Best(2) = %d; want 20", best)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records", "records.txt")

	table := New()
	table.Update(1, 12)
	table.Update(2, 31)
	if err := table.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "1 - 12\n2 - 31\n3 - NOT SET\n"
	if string(data) != want {
		t.Errorf("file = %q; want %q", data, want)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.String() != table.String() {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", loaded, table)
	}
}
