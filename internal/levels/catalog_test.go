package levels

import (
	"errors"
	"reflect"
	"testing"

	"github.com/obhlivoj/parking-panic/internal/game"
)

const sampleCatalog = `2
2
H132
V413
3
H232
V112
H253
`

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog(sampleCatalog)
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}

	if len(catalog) != 2 {
		t.Fatalf("got %d levels, want 2", len(catalog))
	}
	if len(catalog[0].Cars) != 2 || len(catalog[1].Cars) != 3 {
		t.Errorf("car counts = %d/%d, want 2/3", len(catalog[0].Cars), len(catalog[1].Cars))
	}

	want := game.CarSpec{Orientation: game.Horizontal, X: 1, Y: 3, Length: 2}
	if catalog[0].Cars[0] != want {
		t.Errorf("level 1 target = %+v, want %+v", catalog[0].Cars[0], want)
	}
}

func TestParseCatalogCountMismatch(t *testing.T) {
	// Header promises two levels but only one is present.
	truncated := `2
2
H132
V413
`
	_, err := ParseCatalog(truncated)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseCatalog = %v, want *ParseError", err)
	}
}

func TestParseCatalogBadDescriptor(t *testing.T) {
	tests := []string{
		"1\n1\nX132\n", // bad orientation
		"1\n1\nH932\n", // x out of range
		"1\n1\nH134\n", // bad length
		"1\n1\nH13\n",  // too short
	}

	for _, data := range tests {
		if _, err := ParseCatalog(data); err == nil {
			t.Errorf("ParseCatalog(%q) accepted a bad descriptor", data)
		}
	}
}

func TestDescriptorRoundTrip(t *testing.T) {
	for _, d := range []string{"H132", "V413", "H253", "V632"} {
		spec, err := ParseDescriptor(d)
		if err != nil {
			t.Fatalf("ParseDescriptor(%q) failed: %v", d, err)
		}
		if got := FormatDescriptor(spec); got != d {
			t.Errorf("round trip %q -> %q", d, got)
		}
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	// Serializing and reparsing reproduces identical car initial states.
	catalog, err := ParseCatalog(sampleCatalog)
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}

	reparsed, err := ParseCatalog(FormatCatalog(catalog))
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if !reflect.DeepEqual(catalog, reparsed) {
		t.Errorf("round trip differs:\n%+v\n%+v", catalog, reparsed)
	}

	for i := range catalog {
		orig := catalog[i].NewBoard()
		back := reparsed[i].NewBoard()
		if orig.GridString() != back.GridString() {
			t.Errorf("level %d boards differ after round trip", catalog[i].Number)
		}
	}
}

func TestValidateRejectsOverlap(t *testing.T) {
	level := Level{
		Number: 1,
		Cars: []game.CarSpec{
			{Orientation: game.Horizontal, X: 1, Y: 3, Length: 2},
			{Orientation: game.Vertical, X: 2, Y: 2, Length: 2}, // covers (2,3)
		},
	}
	if err := level.Validate(); err == nil {
		t.Error("Validate accepted overlapping cars")
	}
}

func TestValidateRejectsVerticalTarget(t *testing.T) {
	level := Level{
		Number: 1,
		Cars: []game.CarSpec{
			{Orientation: game.Vertical, X: 1, Y: 3, Length: 2},
		},
	}
	if err := level.Validate(); err == nil {
		t.Error("Validate accepted a vertical target car")
	}
}

func TestValidateRejectsOffRowTarget(t *testing.T) {
	level := Level{
		Number: 1,
		Cars: []game.CarSpec{
			{Orientation: game.Horizontal, X: 1, Y: 2, Length: 2},
		},
	}
	if err := level.Validate(); err == nil {
		t.Error("Validate accepted a target car off the exit row")
	}
}
