// Package catalog provides the core catalog system for the wikiai AI-tool
// directory: the Tool entity model, the repository that owns the live tool
// set and taxonomy, the submission moderation queue, and the pure query and
// stats functions consumed by the presentation layer.
//
// All state is owned by a single in-process repository behind a narrow
// mutation API. Every accepted mutation is written through a store slot;
// the in-memory state remains the source of truth when a save fails.
package catalog

import (
	"regexp"
	"strings"

	"github.com/agentstation/utc"
	"github.com/google/uuid"
)

// Pricing classifies how a tool is paid for.
type Pricing string

// String returns the string representation of a Pricing.
func (p Pricing) String() string {
	return string(p)
}

// Pricing tiers. The enumeration is closed; anything else fails validation.
const (
	PricingFree      Pricing = "free"
	PricingLimited   Pricing = "limited"
	PricingUnlimited Pricing = "unlimited"
)

// Valid reports whether p is one of the known pricing tiers.
func (p Pricing) Valid() bool {
	switch p {
	case PricingFree, PricingLimited, PricingUnlimited:
		return true
	}
	return false
}

// Tool represents a single catalog entry describing one external AI product
// or service.
type Tool struct {
	// Core identity
	ID   string `json:"id" yaml:"id"`     // Opaque unique identifier, immutable after creation
	Name string `json:"name" yaml:"name"` // Display name (must not be empty)
	Slug string `json:"slug" yaml:"slug"` // URL-safe identifier, unique across the catalog

	// References
	URL  string `json:"url" yaml:"url"`   // Link to the tool itself
	Logo string `json:"logo" yaml:"logo"` // Link to a logo image

	// Descriptions
	Short         string `json:"short" yaml:"short"`                   // One-line summary for cards
	DescriptionEN string `json:"description_en" yaml:"description_en"` // Long description, English
	DescriptionFA string `json:"description_fa" yaml:"description_fa"` // Long description, Persian (stored as plain text)

	// Classification
	Categories  []string `json:"categories" yaml:"categories"`                       // Must reference taxonomy categories
	Pricing     Pricing  `json:"pricing" yaml:"pricing"`                             // One of free, limited, unlimited
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`               // Free-form, no integrity constraint
	Features    []string `json:"features,omitempty" yaml:"features,omitempty"`       // Ordered display list of short strings
	LangSupport []string `json:"lang_support,omitempty" yaml:"lang_support,omitempty"` // Supported language codes

	// Ordering
	Trending int `json:"trending" yaml:"trending"` // Score used only for sorting

	// Timestamps for record keeping
	CreatedAt utc.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt utc.Time `json:"updated_at" yaml:"updated_at"` // Advances on every mutating edit
}

// HasCategory reports whether the tool references the given category.
func (t Tool) HasCategory(category string) bool {
	for _, c := range t.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// copy returns a deep copy of the tool so callers cannot mutate the
// repository's stored slices through returned values.
func (t Tool) copy() Tool {
	out := t
	out.Categories = copyStrings(t.Categories)
	out.Tags = copyStrings(t.Tags)
	out.Features = copyStrings(t.Features)
	out.LangSupport = copyStrings(t.LangSupport)
	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// slugPattern is the canonical charset for public tool identifiers:
// lowercase alphanumerics and single hyphens between runs.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// nonSlugRun matches character runs that Slugify collapses to a hyphen.
var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a display name: lowercase, runs of
// anything outside [a-z0-9] collapse to a hyphen, leading and trailing
// hyphens are trimmed.
func Slugify(name string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// ValidSlug reports whether s matches the canonical slug charset.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// NewID returns a fresh opaque tool identifier.
func NewID() string {
	return uuid.NewString()
}
