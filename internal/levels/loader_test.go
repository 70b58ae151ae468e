package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/obhlivoj/parking-panic/internal/game"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()
	if len(catalog) == 0 {
		t.Fatal("embedded catalog is empty")
	}

	for _, level := range catalog {
		if err := level.Validate(); err != nil {
			t.Errorf("embedded level %d invalid: %v", level.Number, err)
		}
	}
}

func TestDefaultCatalogOccupancy(t *testing.T) {
	// For every shipped level the occupied cells equal the sum of the car
	// lengths, so no two cars share a cell.
	for _, level := range Default() {
		board := level.NewBoard()

		want := 0
		for _, car := range board.Cars() {
			want += car.Length
		}

		got := 0
		for y := 1; y <= game.GridSize; y++ {
			for x := 1; x <= game.GridSize; x++ {
				if board.At(x, y) != game.EmptyMarker {
					got++
				}
			}
		}
		if got != want {
			t.Errorf("level %d: %d occupied cells, want %d", level.Number, got, want)
		}
	}
}

func TestLoaderExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.txt")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := Loader{Path: path}.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(catalog) != 2 {
		t.Errorf("got %d levels, want 2", len(catalog))
	}
}

func TestLoaderExplicitPathMissing(t *testing.T) {
	if _, err := (Loader{Path: "/nonexistent/levels.txt"}).Load(); err == nil {
		t.Error("Load should fail for an explicit missing path")
	}
}

func TestLoaderMergesYAMLDir(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "levels.txt")
	if err := os.WriteFile(catalogPath, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	// A YAML file replaces level 2 and adds level 5.
	levelsDir := filepath.Join(dir, "levels")
	if err := os.MkdirAll(levelsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	replace := "id: 2\nname: Replaced\ncars:\n  - H132\n  - V413\n"
	extra := "id: 5\nname: Extra\ncars:\n  - H232\n  - V112\n"
	if err := os.WriteFile(filepath.Join(levelsDir, "two.yaml"), []byte(replace), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(levelsDir, "five.yml"), []byte(extra), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := Loader{Path: catalogPath, Dir: levelsDir}.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(catalog) != 3 {
		t.Fatalf("got %d levels, want 3", len(catalog))
	}

	two, ok := ByNumber(catalog, 2)
	if !ok || two.Name != "Replaced" {
		t.Errorf("level 2 = %+v, want the YAML replacement", two)
	}
	if _, ok := ByNumber(catalog, 5); !ok {
		t.Error("merged level 5 missing")
	}
}

func TestYAMLLevelRoundTrip(t *testing.T) {
	level, ok := ByNumber(Default(), 1)
	if !ok {
		t.Fatal("level 1 missing from the default catalog")
	}
	level.Name = "Warmup"

	data, err := MarshalYAMLLevel(level)
	if err != nil {
		t.Fatalf("MarshalYAMLLevel failed: %v", err)
	}
	back, err := ParseYAMLLevel(data)
	if err != nil {
		t.Fatalf("ParseYAMLLevel failed: %v", err)
	}

	if back.Number != level.Number || back.Name != level.Name {
		t.Errorf("round trip header = %d/%q, want %d/%q", back.Number, back.Name, level.Number, level.Name)
	}
	if len(back.Cars) != len(level.Cars) {
		t.Fatalf("round trip cars = %d, want %d", len(back.Cars), len(level.Cars))
	}
	for i := range level.Cars {
		if back.Cars[i] != level.Cars[i] {
			t.Errorf("car %d = %+v, want %+v", i, back.Cars[i], level.Cars[i])
		}
	}
}
