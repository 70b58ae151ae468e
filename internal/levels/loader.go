package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader resolves where level data comes from.
// Search order: explicit Path -> ~/.parking/levels.txt -> ./data/levels.txt ->
// embedded default catalog. Extra YAML levels from Dir are merged on top,
// replacing catalog levels with the same number.
type Loader struct {
	Path string // explicit catalog file, optional
	Dir  string // directory of YAML level files, optional
}

// Load returns the resolved level list sorted by level number.
func (l Loader) Load() ([]Level, error) {
	catalog, err := l.loadCatalog()
	if err != nil {
		return nil, err
	}

	if l.Dir != "" {
		merged, err := mergeDir(catalog, l.Dir)
		if err != nil {
			return nil, err
		}
		catalog = merged
	}

	sort.Slice(catalog, func(i, j int) bool {
		return catalog[i].Number < catalog[j].Number
	})
	return catalog, nil
}

func (l Loader) loadCatalog() ([]Level, error) {
	if l.Path != "" {
		data, err := os.ReadFile(l.Path)
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", l.Path, err)
		}
		return ParseCatalog(string(data))
	}

	if userPath := userLevelsPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if catalog, err := ParseCatalog(string(data)); err == nil {
				return catalog, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("data", "levels.txt")); err == nil {
		if catalog, err := ParseCatalog(string(data)); err == nil {
			return catalog, nil
		}
	}

	return Default(), nil
}

// mergeDir loads every .yaml/.yml file under dir and merges the levels into
// the catalog by number. Unreadable or invalid files are skipped.
func mergeDir(catalog []Level, dir string) ([]Level, error) {
	byNumber := make(map[int]Level, len(catalog))
	for _, level := range catalog {
		byNumber[level.Number] = level
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		level, err := ParseYAMLLevel(data)
		if err != nil {
			return nil
		}
		byNumber[level.Number] = level
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", dir, err)
	}

	merged := make([]Level, 0, len(byNumber))
	for _, level := range byNumber {
		merged = append(merged, level)
	}
	return merged, nil
}

// userLevelsPath returns the per-user catalog path, or empty if the home
// directory is unavailable.
func userLevelsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".parking", "levels.txt")
}

// ByNumber finds a level in the list.
func ByNumber(catalog []Level, number int) (Level, bool) {
	for _, level := range catalog {
		if level.Number == number {
			return level, true
		}
	}
	return Level{}, false
}
