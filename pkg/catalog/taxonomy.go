package catalog

// Brand holds the site branding metadata shown by the presentation layer.
type Brand struct {
	Title   string `json:"title" yaml:"title"`
	Tagline string `json:"tagline" yaml:"tagline"`
}

// Taxonomy is the ordered list of valid category labels plus the site
// brand. Category order is the display order and is preserved as entered.
type Taxonomy struct {
	Categories []string `json:"categories" yaml:"categories"`
	Brand      Brand    `json:"brand" yaml:"brand"`
}

// HasCategory reports whether name is a known category. Matching is
// case-sensitive and exact.
func (tx Taxonomy) HasCategory(name string) bool {
	for _, c := range tx.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// copy returns a deep copy of the taxonomy.
func (tx Taxonomy) copy() Taxonomy {
	out := tx
	out.Categories = copyStrings(tx.Categories)
	return out
}
