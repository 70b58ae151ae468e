package levels

import (
	_ "embed"
)

//go:embed defaults/levels.txt
var defaultCatalog string

// Default returns the embedded level catalog. The embedded data is validated
// at build time by the package tests, so a parse failure here is a bug.
func Default() []Level {
	catalog, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return catalog
}
