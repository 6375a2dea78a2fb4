package services

import (
	"errors"

	"github.com/alimgiray/mistakelog/internal/models"
	"github.com/alimgiray/mistakelog/internal/repositories"
	"github.com/google/uuid"
)

type PersonService struct {
	personRepo *repositories.PersonRepository
}

func NewPersonService(personRepo *repositories.PersonRepository) *PersonService {
	return &PersonService{
		personRepo: personRepo,
	}
}

// CreatePerson stores a new person. The person ID is always generated
// server-side; embedded entry IDs are validated when supplied and generated
// when absent.
func (s *PersonService) CreatePerson(req *models.CreatePersonRequest) (*models.Person, error) {
	if err := normalizeEntryIDs(req.Mistakes); err != nil {
		return nil, err
	}

	person := models.NewPerson(req)
	if err := s.personRepo.Create(person); err != nil {
		return nil, err
	}

	return person, nil
}

// ListPersons returns all persons matching the filter
func (s *PersonService) ListPersons(filter *models.PersonFilter) []*models.Person {
	return s.personRepo.List(filter)
}

// GetPersonByID retrieves a person by ID
func (s *PersonService) GetPersonByID(id string) (*models.Person, error) {
	canonical, err := canonicalID(id, "person")
	if err != nil {
		return nil, err
	}
	return s.personRepo.GetByID(canonical)
}

// UpdatePerson applies a partial update to a person. A supplied mistakes
// list replaces the embedded collection as a whole.
func (s *PersonService) UpdatePerson(id string, req *models.UpdatePersonRequest) (*models.Person, error) {
	canonical, err := canonicalID(id, "person")
	if err != nil {
		return nil, err
	}
	if req.Mistakes != nil {
		if err := normalizeEntryIDs(*req.Mistakes); err != nil {
			return nil, err
		}
	}
	return s.personRepo.Update(canonical, req)
}

// DeletePerson removes a person by ID
func (s *PersonService) DeletePerson(id string) error {
	canonical, err := canonicalID(id, "person")
	if err != nil {
		return err
	}
	return s.personRepo.Delete(canonical)
}

// normalizeEntryIDs validates supplied embedded entry IDs and rewrites them
// in canonical UUID form. Empty IDs are left for the model factory to fill.
func normalizeEntryIDs(entries []models.MistakeEntry) error {
	for i := range entries {
		if entries[i].ID == "" {
			continue
		}
		parsed, err := uuid.Parse(entries[i].ID)
		if err != nil {
			return errors.New("invalid mistake entry ID format")
		}
		entries[i].ID = parsed.String()
	}
	return nil
}
