package catalog

import (
	"sync"

	"github.com/wikiai/wikiai/pkg/errors"
)

// Tools is a concurrent safe, insertion-ordered collection of tools,
// indexed by both id and slug.
type Tools struct {
	mu     sync.RWMutex
	order  []string // ids in insertion order
	byID   map[string]*Tool
	bySlug map[string]string // slug -> id
}

// NewTools creates an empty Tools collection.
func NewTools() *Tools {
	return &Tools{
		byID:   make(map[string]*Tool),
		bySlug: make(map[string]string),
	}
}

// Get returns a tool by id and whether it exists.
func (ts *Tools) Get(id string) (Tool, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	tool, ok := ts.byID[id]
	if !ok {
		return Tool{}, false
	}
	return tool.copy(), true
}

// GetBySlug returns a tool by slug and whether it exists.
func (ts *Tools) GetBySlug(slug string) (Tool, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	id, ok := ts.bySlug[slug]
	if !ok {
		return Tool{}, false
	}
	return ts.byID[id].copy(), true
}

// Add inserts a tool, returning a ConflictError when its id or slug is
// already taken. Both indexes are checked before anything is applied.
func (ts *Tools) Add(tool Tool) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.byID[tool.ID]; exists {
		return errors.NewConflictError("tool", "id", tool.ID)
	}
	if _, exists := ts.bySlug[tool.Slug]; exists {
		return errors.NewConflictError("tool", "slug", tool.Slug)
	}

	stored := tool.copy()
	ts.byID[tool.ID] = &stored
	ts.bySlug[tool.Slug] = tool.ID
	ts.order = append(ts.order, tool.ID)
	return nil
}

// Replace swaps the stored tool for tool.ID, preserving insertion order.
// The id and slug of the stored tool must already match.
func (ts *Tools) Replace(tool Tool) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.byID[tool.ID]; !exists {
		return errors.NewNotFoundError("tool", tool.ID)
	}

	stored := tool.copy()
	ts.byID[tool.ID] = &stored
	return nil
}

// Delete removes a tool by id. Deleting an absent id is an error.
func (ts *Tools) Delete(id string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	tool, exists := ts.byID[id]
	if !exists {
		return errors.NewNotFoundError("tool", id)
	}

	delete(ts.byID, id)
	delete(ts.bySlug, tool.Slug)
	for i, oid := range ts.order {
		if oid == id {
			ts.order = append(ts.order[:i], ts.order[i+1:]...)
			break
		}
	}
	return nil
}

// SlugTaken checks if a slug is already in use.
func (ts *Tools) SlugTaken(slug string) bool {
	ts.mu.RLock()
	_, taken := ts.bySlug[slug]
	ts.mu.RUnlock()
	return taken
}

// Len returns the number of tools.
func (ts *Tools) Len() int {
	ts.mu.RLock()
	length := len(ts.order)
	ts.mu.RUnlock()
	return length
}

// List returns copies of all tools in insertion order.
func (ts *Tools) List() []Tool {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	tools := make([]Tool, 0, len(ts.order))
	for _, id := range ts.order {
		tools = append(tools, ts.byID[id].copy())
	}
	return tools
}
