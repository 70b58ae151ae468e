// Package levels loads Parking Panic level definitions. The canonical source
// is a plain-text catalog (a header count, then per level a car count and that
// many descriptor lines); individual levels can also be provided as YAML files
// dropped into a directory.
package levels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/obhlivoj/parking-panic/internal/game"
)

// Level is one catalog entry: an ordered list of car placements.
// Cars[0] is the target car and is always horizontal.
type Level struct {
	Number int
	Name   string // optional, only set by the YAML format
	Cars   []game.CarSpec
}

// NewEngine builds a fresh engine for this level.
func (l Level) NewEngine() *game.Engine {
	return game.NewEngine(l.Number, l.Cars)
}

// NewBoard builds a fresh board for this level.
func (l Level) NewBoard() *game.Board {
	return game.NewBoardFromSpecs(l.Cars)
}

// Descriptors returns the level's car descriptor strings.
func (l Level) Descriptors() []string {
	out := make([]string, len(l.Cars))
	for i, spec := range l.Cars {
		out[i] = FormatDescriptor(spec)
	}
	return out
}

// Validate checks the structural invariants: 1 to 26 cars, every car within
// the lot, the target horizontal on the exit row, and no two cars overlapping.
func (l Level) Validate() error {
	if len(l.Cars) == 0 {
		return fmt.Errorf("level %d: no cars", l.Number)
	}
	if len(l.Cars) > 26 {
		return fmt.Errorf("level %d: %d cars, at most 26 supported", l.Number, len(l.Cars))
	}
	if l.Cars[0].Orientation != game.Horizontal {
		return fmt.Errorf("level %d: target car must be horizontal", l.Number)
	}
	if l.Cars[0].Y != game.ExitY {
		return fmt.Errorf("level %d: target car must sit on row %d", l.Number, game.ExitY)
	}

	seen := make(map[game.Cell]int)
	for i, spec := range l.Cars {
		car := game.NewCar(byte('A'+i), spec)
		for _, cell := range car.Cells {
			if cell.X < 1 || cell.X > game.GridSize || cell.Y < 1 || cell.Y > game.GridSize {
				return fmt.Errorf("level %d: car %c leaves the lot at (%d,%d)",
					l.Number, car.Name, cell.X, cell.Y)
			}
			if prev, ok := seen[cell]; ok {
				return fmt.Errorf("level %d: cars %c and %c overlap at (%d,%d)",
					l.Number, byte('A'+prev), car.Name, cell.X, cell.Y)
			}
			seen[cell] = i
		}
	}
	return nil
}

// ParseError describes a malformed level file.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("levels: line %d: %s", e.Line, e.Msg)
}

// ParseDescriptor parses a car descriptor "<H|V><x><y><length>" with
// 1-indexed single-digit coordinates.
func ParseDescriptor(s string) (game.CarSpec, error) {
	if len(s) != 4 {
		return game.CarSpec{}, fmt.Errorf("descriptor %q: want 4 characters", s)
	}

	var spec game.CarSpec
	switch s[0] {
	case 'H':
		spec.Orientation = game.Horizontal
	case 'V':
		spec.Orientation = game.Vertical
	default:
		return game.CarSpec{}, fmt.Errorf("descriptor %q: orientation must be H or V", s)
	}

	for i, dst := range []*int{&spec.X, &spec.Y, &spec.Length} {
		n, err := strconv.Atoi(s[i+1 : i+2])
		if err != nil {
			return game.CarSpec{}, fmt.Errorf("descriptor %q: %w", s, err)
		}
		*dst = n
	}

	if spec.X < 1 || spec.X > game.GridSize || spec.Y < 1 || spec.Y > game.GridSize {
		return game.CarSpec{}, fmt.Errorf("descriptor %q: start cell out of range", s)
	}
	if spec.Length < 2 || spec.Length > 3 {
		return game.CarSpec{}, fmt.Errorf("descriptor %q: length must be 2 or 3", s)
	}
	return spec, nil
}

// FormatDescriptor renders a car spec back into its descriptor string.
func FormatDescriptor(spec game.CarSpec) string {
	return fmt.Sprintf("%s%d%d%d", spec.Orientation, spec.X, spec.Y, spec.Length)
}

// ParseCatalog parses the text catalog format: the first line is the level
// count; each level is a car count line followed by that many descriptor
// lines. A count that disagrees with the available lines is a ParseError.
func ParseCatalog(data string) ([]Level, error) {
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")

	pos := 0
	next := func() (string, bool) {
		for pos < len(lines) {
			line := strings.TrimSpace(lines[pos])
			pos++
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		return nil, &ParseError{Line: 1, Msg: "empty catalog"}
	}
	count, err := strconv.Atoi(header)
	if err != nil || count < 1 {
		return nil, &ParseError{Line: 1, Msg: fmt.Sprintf("bad level count %q", header)}
	}

	catalog := make([]Level, 0, count)
	for n := 1; n <= count; n++ {
		line, ok := next()
		if !ok {
			return nil, &ParseError{Line: pos, Msg: fmt.Sprintf("missing car count for level %d", n)}
		}
		cars, err := strconv.Atoi(line)
		if err != nil || cars < 1 {
			return nil, &ParseError{Line: pos, Msg: fmt.Sprintf("bad car count %q", line)}
		}

		level := Level{Number: n, Cars: make([]game.CarSpec, 0, cars)}
		for i := 0; i < cars; i++ {
			line, ok := next()
			if !ok {
				return nil, &ParseError{Line: pos, Msg: fmt.Sprintf("level %d: %d descriptors, want %d", n, i, cars)}
			}
			spec, err := ParseDescriptor(line)
			if err != nil {
				return nil, &ParseError{Line: pos, Msg: err.Error()}
			}
			level.Cars = append(level.Cars, spec)
		}

		if err := level.Validate(); err != nil {
			return nil, &ParseError{Line: pos, Msg: err.Error()}
		}
		catalog = append(catalog, level)
	}

	return catalog, nil
}

// FormatCatalog renders levels back into the text catalog format.
// FormatCatalog and ParseCatalog round-trip.
func FormatCatalog(catalog []Level) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", len(catalog))
	for _, level := range catalog {
		fmt.Fprintf(&sb, "%d\n", len(level.Cars))
		for _, d := range level.Descriptors() {
			sb.WriteString(d)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
