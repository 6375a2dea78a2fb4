package repositories

import (
	"errors"
	"sync"
	"time"

	"github.com/alimgiray/mistakelog/internal/models"
)

var (
	// ErrMistakeNotFound is returned when no mistake exists for a given ID
	ErrMistakeNotFound = errors.New("mistake not found")
	// ErrMistakeExists is returned on create when the ID is already taken
	ErrMistakeExists = errors.New("mistake with this ID already exists")
)

// MistakeRepository is an in-memory store for mistakes. All data lives for
// the lifetime of the process; mutations are serialized by a write lock and
// reads return value snapshots.
type MistakeRepository struct {
	mu       sync.RWMutex
	mistakes map[string]*models.Mistake
}

func NewMistakeRepository() *MistakeRepository {
	return &MistakeRepository{
		mistakes: make(map[string]*models.Mistake),
	}
}

// Create inserts a new mistake, failing if its ID is already present
func (r *MistakeRepository) Create(mistake *models.Mistake) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.mistakes[mistake.ID]; exists {
		return ErrMistakeExists
	}

	stored := *mistake
	r.mistakes[mistake.ID] = &stored
	return nil
}

// GetByID retrieves a snapshot of a mistake by ID
func (r *MistakeRepository) GetByID(id string) (*models.Mistake, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mistake, exists := r.mistakes[id]
	if !exists {
		return nil, ErrMistakeNotFound
	}

	snapshot := *mistake
	return &snapshot, nil
}

// List returns snapshots of all mistakes matching the filter, in no
// particular order
func (r *MistakeRepository) List(filter *models.MistakeFilter) []*models.Mistake {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*models.Mistake, 0, len(r.mistakes))
	for _, mistake := range r.mistakes {
		if mistake.Matches(filter) {
			snapshot := *mistake
			results = append(results, &snapshot)
		}
	}
	return results
}

// Update applies a partial update under the write lock so concurrent
// patches cannot interleave. UpdatedAt is refreshed even when no field
// changed; ID and CreatedAt are never touched.
func (r *MistakeRepository) Update(id string, req *models.UpdateMistakeRequest) (*models.Mistake, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mistake, exists := r.mistakes[id]
	if !exists {
		return nil, ErrMistakeNotFound
	}

	mistake.Apply(req)
	mistake.UpdatedAt = time.Now().UTC()

	snapshot := *mistake
	return &snapshot, nil
}

// Delete removes a mistake by ID
func (r *MistakeRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.mistakes[id]; !exists {
		return ErrMistakeNotFound
	}

	delete(r.mistakes, id)
	return nil
}

// Count returns the number of stored mistakes
func (r *MistakeRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.mistakes)
}
