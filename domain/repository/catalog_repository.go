package repository

// CatalogEntry is one row of the static timezone catalog
type CatalogEntry struct {
	Name      string
	IANAZone  string
	FlagGlyph string
}

// CatalogRepository exposes the static, read-only timezone catalog supplied
// at startup. Implementations never mutate the data after construction.
type CatalogRepository interface {
	// All returns every catalog entry in catalog order
	All() []CatalogEntry
}
