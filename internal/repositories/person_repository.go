package repositories

import (
	"errors"
	"sync"
	"time"

	"github.com/alimgiray/mistakelog/internal/models"
)

var (
	// ErrPersonNotFound is returned when no person exists for a given ID
	ErrPersonNotFound = errors.New("person not found")
	// ErrPersonExists is returned on create when the ID is already taken.
	// Person IDs are server-generated, so this is a defect if it ever fires.
	ErrPersonExists = errors.New("person with this ID already exists")
)

// PersonRepository is an in-memory store for persons. Mutations are
// serialized by a write lock; reads return deep snapshots so callers never
// alias the stored embedded mistakes slice.
type PersonRepository struct {
	mu      sync.RWMutex
	persons map[string]*models.Person
}

func NewPersonRepository() *PersonRepository {
	return &PersonRepository{
		persons: make(map[string]*models.Person),
	}
}

// Create inserts a new person, failing if its ID is already present
func (r *PersonRepository) Create(person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.persons[person.ID]; exists {
		return ErrPersonExists
	}

	r.persons[person.ID] = person.Clone()
	return nil
}

// GetByID retrieves a snapshot of a person by ID
func (r *PersonRepository) GetByID(id string) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	person, exists := r.persons[id]
	if !exists {
		return nil, ErrPersonNotFound
	}

	return person.Clone(), nil
}

// List returns snapshots of all persons matching the filter, in no
// particular order
func (r *PersonRepository) List(filter *models.PersonFilter) []*models.Person {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*models.Person, 0, len(r.persons))
	for _, person := range r.persons {
		if person.Matches(filter) {
			results = append(results, person.Clone())
		}
	}
	return results
}

// Update applies a partial update under the write lock. A non-nil mistakes
// slice in the request replaces the embedded collection atomically.
func (r *PersonRepository) Update(id string, req *models.UpdatePersonRequest) (*models.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	person, exists := r.persons[id]
	if !exists {
		return nil, ErrPersonNotFound
	}

	person.Apply(req)
	person.UpdatedAt = time.Now().UTC()

	return person.Clone(), nil
}

// Delete removes a person by ID
func (r *PersonRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.persons[id]; !exists {
		return ErrPersonNotFound
	}

	delete(r.persons, id)
	return nil
}

// Count returns the number of stored persons
func (r *PersonRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.persons)
}
