package catalog

import (
	"sync"

	"github.com/agentstation/utc"

	"github.com/wikiai/wikiai/pkg/errors"
	"github.com/wikiai/wikiai/pkg/logging"
	"github.com/wikiai/wikiai/pkg/store"
)

// Repository owns the live tool set and the taxonomy. All mutations go
// through its methods, are fully applied or fully rejected, and write
// through to the backing store on success.
type Repository struct {
	store store.Store
	tools *Tools

	mu       sync.RWMutex // guards taxonomy
	taxonomy Taxonomy
}

// NewRepository creates a repository backed by s, loading the persisted
// tool set and taxonomy. Missing or unreadable slots fall back to the
// seed dataset and default taxonomy; a corrupt blob is logged, never a
// hard failure.
func NewRepository(s store.Store) *Repository {
	repo := &Repository{
		store: s,
		tools: NewTools(),
	}

	tools, err := store.Load[[]Tool](s, ToolsKey)
	if err != nil {
		logging.Debug().Err(err).Str("key", ToolsKey).Msg("Tools slot unreadable, seeding catalog")
		tools = SeedTools()
	}
	for _, tool := range tools {
		if addErr := repo.tools.Add(tool); addErr != nil {
			logging.Warn().Err(addErr).Str("id", tool.ID).Msg("Skipping persisted tool with conflicting identity")
		}
	}

	taxonomy, err := store.Load[Taxonomy](s, ConfigKey)
	if err != nil {
		logging.Debug().Err(err).Str("key", ConfigKey).Msg("Config slot unreadable, using default taxonomy")
		taxonomy = DefaultTaxonomy()
	}
	repo.taxonomy = taxonomy

	return repo
}

// Create validates a draft and inserts it into the live tool set. The id
// is assigned when absent, the slug is derived from the name when absent,
// and timestamps are stamped for fresh drafts. Every violated field is
// reported together in a single ValidationError; nothing is committed on
// any failure.
func (r *Repository) Create(draft Tool) (Tool, error) {
	tool := draft.copy()
	if tool.ID == "" {
		tool.ID = NewID()
	}
	if tool.Slug == "" {
		tool.Slug = Slugify(tool.Name)
	}

	now := utc.Now()
	if tool.CreatedAt.IsZero() {
		tool.CreatedAt = now
	}
	if tool.UpdatedAt.IsZero() {
		tool.UpdatedAt = now
	}

	r.mu.RLock()
	taxonomy := r.taxonomy
	r.mu.RUnlock()

	verr := errors.NewValidationError("tool")
	checkName(verr, tool.Name)
	checkURL(verr, tool.URL)
	checkSlug(verr, tool.Slug)
	checkPricing(verr, tool.Pricing)
	checkCategories(verr, tool.Categories, taxonomy)
	if err := verr.OrNil(); err != nil {
		return Tool{}, err
	}

	if err := r.tools.Add(tool); err != nil {
		return Tool{}, err
	}
	r.persistTools()
	return tool, nil
}

// ToolPatch carries the fields an update may touch. Nil fields are left
// unchanged. ID and Slug are immutable through this path.
type ToolPatch struct {
	Name          *string
	URL           *string
	Logo          *string
	Short         *string
	DescriptionEN *string
	DescriptionFA *string
	Categories    *[]string
	Pricing       *Pricing
	Tags          *[]string
	Features      *[]string
	LangSupport   *[]string
	Trending      *int
}

// Update applies a patch to an existing tool. Touched fields are
// re-validated exactly as in Create; untouched fields are left alone, so
// a tool carrying a dangling category reference stays editable as long
// as the patch does not touch its categories. UpdatedAt advances on
// every accepted update.
func (r *Repository) Update(id string, patch ToolPatch) (Tool, error) {
	tool, ok := r.tools.Get(id)
	if !ok {
		return Tool{}, errors.NewNotFoundError("tool", id)
	}

	r.mu.RLock()
	taxonomy := r.taxonomy
	r.mu.RUnlock()

	verr := errors.NewValidationError("tool")
	if patch.Name != nil {
		checkName(verr, *patch.Name)
	}
	if patch.URL != nil {
		checkURL(verr, *patch.URL)
	}
	if patch.Pricing != nil {
		checkPricing(verr, *patch.Pricing)
	}
	if patch.Categories != nil {
		checkCategories(verr, *patch.Categories, taxonomy)
	}
	if err := verr.OrNil(); err != nil {
		return Tool{}, err
	}

	if patch.Name != nil {
		tool.Name = *patch.Name
	}
	if patch.URL != nil {
		tool.URL = *patch.URL
	}
	if patch.Logo != nil {
		tool.Logo = *patch.Logo
	}
	if patch.Short != nil {
		tool.Short = *patch.Short
	}
	if patch.DescriptionEN != nil {
		tool.DescriptionEN = *patch.DescriptionEN
	}
	if patch.DescriptionFA != nil {
		tool.DescriptionFA = *patch.DescriptionFA
	}
	if patch.Categories != nil {
		tool.Categories = copyStrings(*patch.Categories)
	}
	if patch.Pricing != nil {
		tool.Pricing = *patch.Pricing
	}
	if patch.Tags != nil {
		tool.Tags = copyStrings(*patch.Tags)
	}
	if patch.Features != nil {
		tool.Features = copyStrings(*patch.Features)
	}
	if patch.LangSupport != nil {
		tool.LangSupport = copyStrings(*patch.LangSupport)
	}
	if patch.Trending != nil {
		tool.Trending = *patch.Trending
	}
	tool.UpdatedAt = utc.Now()

	if err := r.tools.Replace(tool); err != nil {
		return Tool{}, err
	}
	r.persistTools()
	return tool, nil
}

// Delete removes a tool by id. Deleting an absent id is an error; the
// operation is not idempotent.
func (r *Repository) Delete(id string) error {
	if err := r.tools.Delete(id); err != nil {
		return err
	}
	r.persistTools()
	return nil
}

// Tool returns a tool by id.
func (r *Repository) Tool(id string) (Tool, error) {
	tool, ok := r.tools.Get(id)
	if !ok {
		return Tool{}, errors.NewNotFoundError("tool", id)
	}
	return tool, nil
}

// ToolBySlug returns a tool by slug.
func (r *Repository) ToolBySlug(slug string) (Tool, error) {
	tool, ok := r.tools.GetBySlug(slug)
	if !ok {
		return Tool{}, errors.NewNotFoundError("tool", slug)
	}
	return tool, nil
}

// List returns all tools in insertion order. Callers re-sort through the
// query engine.
func (r *Repository) List() []Tool {
	return r.tools.List()
}

// AddCategory appends a category to the taxonomy, preserving insertion
// order. Duplicate names conflict; matching is case-sensitive and exact.
func (r *Repository) AddCategory(name string) error {
	verr := errors.NewValidationError("category")
	if name == "" {
		verr.Add("name", name, "must not be empty")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	r.mu.Lock()
	if r.taxonomy.HasCategory(name) {
		r.mu.Unlock()
		return errors.NewConflictError("category", "name", name)
	}
	r.taxonomy.Categories = append(r.taxonomy.Categories, name)
	r.mu.Unlock()

	r.persistTaxonomy()
	return nil
}

// RemoveCategory removes a category from the taxonomy. Removal does not
// cascade: tools already referencing the category keep the dangling
// reference. This is documented product behavior, not repair debt.
func (r *Repository) RemoveCategory(name string) error {
	r.mu.Lock()
	found := false
	for i, c := range r.taxonomy.Categories {
		if c == name {
			r.taxonomy.Categories = append(r.taxonomy.Categories[:i], r.taxonomy.Categories[i+1:]...)
			found = true
			break
		}
	}
	r.mu.Unlock()

	if !found {
		return errors.NewNotFoundError("category", name)
	}
	r.persistTaxonomy()
	return nil
}

// SetBrand unconditionally replaces the site branding.
func (r *Repository) SetBrand(title, tagline string) {
	r.mu.Lock()
	r.taxonomy.Brand = Brand{Title: title, Tagline: tagline}
	r.mu.Unlock()

	r.persistTaxonomy()
}

// Taxonomy returns a copy of the current taxonomy.
func (r *Repository) Taxonomy() Taxonomy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.taxonomy.copy()
}

// Categories returns the current category list in display order.
func (r *Repository) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyStrings(r.taxonomy.Categories)
}

// Brand returns the current site branding.
func (r *Repository) Brand() Brand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.taxonomy.Brand
}

// persistTools writes the tool slot through the store. Failures are
// logged and swallowed; in-memory state stays authoritative until the
// next successful save.
func (r *Repository) persistTools() {
	if err := store.Save(r.store, ToolsKey, r.tools.List()); err != nil {
		logging.Warn().Err(err).Str("key", ToolsKey).Msg("Failed to persist tools")
	}
}

func (r *Repository) persistTaxonomy() {
	if err := store.Save(r.store, ConfigKey, r.Taxonomy()); err != nil {
		logging.Warn().Err(err).Str("key", ConfigKey).Msg("Failed to persist taxonomy")
	}
}

// Field checks shared by Create, Update, import, and approval.

func checkName(verr *errors.ValidationError, name string) {
	if name == "" {
		verr.Add("name", name, "must not be empty")
	}
}

func checkURL(verr *errors.ValidationError, url string) {
	if url == "" {
		verr.Add("url", url, "must not be empty")
	}
}

func checkSlug(verr *errors.ValidationError, slug string) {
	if !ValidSlug(slug) {
		verr.Add("slug", slug, "must be lowercase alphanumerics and hyphens")
	}
}

func checkPricing(verr *errors.ValidationError, pricing Pricing) {
	if !pricing.Valid() {
		verr.Add("pricing", pricing.String(), "must be one of free, limited, unlimited")
	}
}

func checkCategories(verr *errors.ValidationError, categories []string, taxonomy Taxonomy) {
	for _, c := range categories {
		if !taxonomy.HasCategory(c) {
			verr.Add("categories", c, "unknown category")
		}
	}
}
