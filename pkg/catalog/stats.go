package catalog

// Stats is the derived read-only summary shown in the directory header.
type Stats struct {
	Total      int `json:"total" yaml:"total"`           // Count of all tools
	Categories int `json:"categories" yaml:"categories"` // Distinct categories referenced by tools
	Free       int `json:"free" yaml:"free"`             // Tools with free pricing
}

// ComputeStats summarizes a tool list. Pure and O(n); recomputed on
// demand rather than cached.
func ComputeStats(tools []Tool) Stats {
	distinct := make(map[string]struct{})
	stats := Stats{Total: len(tools)}

	for _, tool := range tools {
		for _, c := range tool.Categories {
			distinct[c] = struct{}{}
		}
		if tool.Pricing == PricingFree {
			stats.Free++
		}
	}

	stats.Categories = len(distinct)
	return stats
}
