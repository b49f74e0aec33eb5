package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects the ordering of query results.
type SortMode string

// String returns the string representation of a SortMode.
func (m SortMode) String() string {
	return string(m)
}

// Sort modes.
const (
	SortTrending SortMode = "trending" // Descending trending score
	SortNewest   SortMode = "newest"   // Descending updated_at
	SortName     SortMode = "name"     // Ascending name, locale-aware
)

// Valid reports whether m is a known sort mode.
func (m SortMode) Valid() bool {
	switch m {
	case SortTrending, SortNewest, SortName:
		return true
	}
	return false
}

// QueryParams are the filter and ordering inputs for Query. Empty Search,
// Pricing, and Category mean no filtering on that axis.
type QueryParams struct {
	Search   string
	Pricing  Pricing
	Category string
	Sort     SortMode
}

// nameCollator orders tool names the way a directory listing would,
// rather than by raw byte comparison.
var nameCollator = collate.New(language.English, collate.Loose)

// Query filters and orders tools: case-insensitive substring search over
// the tool's searchable text, exact pricing match, category membership,
// then a stable sort by the requested mode. A sort mode outside the
// known set, including the zero value, leaves the filtered tools in
// input order; callers taking untrusted input gate on SortMode.Valid.
// Query is a pure function over its inputs; the input slice is never
// mutated and identical inputs yield identical output ordering.
func Query(tools []Tool, params QueryParams) []Tool {
	result := make([]Tool, 0, len(tools))

	needle := strings.ToLower(params.Search)
	for _, tool := range tools {
		if needle != "" && !strings.Contains(searchText(tool), needle) {
			continue
		}
		if params.Pricing != "" && tool.Pricing != params.Pricing {
			continue
		}
		if params.Category != "" && !tool.HasCategory(params.Category) {
			continue
		}
		result = append(result, tool)
	}

	switch params.Sort {
	case SortTrending:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Trending > result[j].Trending
		})
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].UpdatedAt.After(result[j].UpdatedAt)
		})
	case SortName:
		sort.SliceStable(result, func(i, j int) bool {
			return nameCollator.CompareString(result[i].Name, result[j].Name) < 0
		})
	}

	return result
}

// searchText is the lowercased concatenation a search needle is matched
// against: name, short, both descriptions, tags, and categories.
func searchText(tool Tool) string {
	parts := []string{
		tool.Name,
		tool.Short,
		tool.DescriptionEN,
		tool.DescriptionFA,
		strings.Join(tool.Tags, " "),
		strings.Join(tool.Categories, " "),
	}
	return strings.ToLower(strings.Join(parts, " "))
}
