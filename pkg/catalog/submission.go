package catalog

import (
	"sync"

	"github.com/agentstation/utc"

	"github.com/wikiai/wikiai/pkg/errors"
	"github.com/wikiai/wikiai/pkg/logging"
	"github.com/wikiai/wikiai/pkg/store"
)

// Submission is a user-proposed tool awaiting moderation. The draft is
// deliberately unvalidated against the taxonomy at submission time: a
// submission may reference categories that do not exist yet. Full
// validation runs at approval.
type Submission struct {
	ID        string   `json:"id" yaml:"id"`
	Draft     Tool     `json:"draft" yaml:"draft"`
	CreatedAt utc.Time `json:"created_at" yaml:"created_at"`
}

// Queue owns the pending submissions and their moderation lifecycle.
// A submission is either pending, or gone: approval copies the draft
// into the live tool set and rejection hard-deletes it. There is no
// record of decided submissions and no way to re-open one.
type Queue struct {
	store store.Store
	repo  *Repository

	mu      sync.RWMutex
	pending []Submission
}

// NewQueue creates a queue backed by s, approving into repo. Missing or
// unreadable slots fall back to an empty queue.
func NewQueue(s store.Store, repo *Repository) *Queue {
	q := &Queue{
		store: s,
		repo:  repo,
	}

	pending, err := store.Load[[]Submission](s, SubmissionsKey)
	if err != nil {
		logging.Debug().Err(err).Str("key", SubmissionsKey).Msg("Submissions slot unreadable, starting empty")
		pending = nil
	}
	q.pending = pending

	return q
}

// Submit enqueues a draft for moderation. Only the name and url must be
// non-empty; slug uniqueness and category existence are deferred to
// approval time.
func (q *Queue) Submit(draft Tool) (Submission, error) {
	verr := errors.NewValidationError("submission")
	checkName(verr, draft.Name)
	checkURL(verr, draft.URL)
	if err := verr.OrNil(); err != nil {
		return Submission{}, err
	}

	sub := Submission{
		ID:        NewID(),
		Draft:     draft.copy(),
		CreatedAt: utc.Now(),
	}

	q.mu.Lock()
	q.pending = append(q.pending, sub)
	q.mu.Unlock()

	q.persist()
	return sub, nil
}

// Approve promotes a pending submission into the live tool set, running
// the full repository create validation against the draft. Approval is
// atomic: on validation or conflict failure the submission stays pending
// and the error is returned unchanged. Absent and already decided
// submissions are indistinguishable and report not found.
func (q *Queue) Approve(id string) (Tool, error) {
	q.mu.Lock()
	idx := q.indexLocked(id)
	if idx < 0 {
		q.mu.Unlock()
		return Tool{}, errors.NewNotFoundError("submission", id)
	}
	draft := q.pending[idx].Draft
	q.mu.Unlock()

	tool, err := q.repo.Create(draft)
	if err != nil {
		return Tool{}, err
	}

	q.mu.Lock()
	// Re-resolve the index; the create above may have been interleaved
	// with another queue mutation.
	if idx = q.indexLocked(id); idx >= 0 {
		q.pending = append(q.pending[:idx], q.pending[idx+1:]...)
	}
	q.mu.Unlock()

	q.persist()
	return tool, nil
}

// Reject removes a pending submission with no residual record.
func (q *Queue) Reject(id string) error {
	q.mu.Lock()
	idx := q.indexLocked(id)
	if idx < 0 {
		q.mu.Unlock()
		return errors.NewNotFoundError("submission", id)
	}
	q.pending = append(q.pending[:idx], q.pending[idx+1:]...)
	q.mu.Unlock()

	q.persist()
	return nil
}

// List returns the pending submissions in submission order.
func (q *Queue) List() []Submission {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]Submission, len(q.pending))
	for i, sub := range q.pending {
		out[i] = sub
		out[i].Draft = sub.Draft.copy()
	}
	return out
}

// Len returns the number of pending submissions.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.pending)
}

func (q *Queue) indexLocked(id string) int {
	for i, sub := range q.pending {
		if sub.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the submissions slot. Approval touches the tools slot
// and this one without a cross-slot transaction; the narrow window where
// one slot persists before the other is accepted for single-process use.
func (q *Queue) persist() {
	if err := store.Save(q.store, SubmissionsKey, q.List()); err != nil {
		logging.Warn().Err(err).Str("key", SubmissionsKey).Msg("Failed to persist submissions")
	}
}
