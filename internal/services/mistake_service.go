package services

import (
	"errors"

	"github.com/alimgiray/mistakelog/internal/models"
	"github.com/alimgiray/mistakelog/internal/repositories"
	"github.com/google/uuid"
)

type MistakeService struct {
	mistakeRepo *repositories.MistakeRepository
}

func NewMistakeService(mistakeRepo *repositories.MistakeRepository) *MistakeService {
	return &MistakeService{
		mistakeRepo: mistakeRepo,
	}
}

// CreateMistake stores a new mistake. A client-supplied ID must be a valid
// UUID and is normalized to its canonical lowercase form; without one a
// fresh UUID is generated.
func (s *MistakeService) CreateMistake(req *models.CreateMistakeRequest) (*models.Mistake, error) {
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, errors.New("invalid mistake ID format")
		}
		req.ID = parsed.String()
	}

	mistake := models.NewMistake(req)
	if err := s.mistakeRepo.Create(mistake); err != nil {
		return nil, err
	}

	return mistake, nil
}

// ListMistakes returns all mistakes matching the filter
func (s *MistakeService) ListMistakes(filter *models.MistakeFilter) []*models.Mistake {
	return s.mistakeRepo.List(filter)
}

// GetMistakeByID retrieves a mistake by its ID
func (s *MistakeService) GetMistakeByID(id string) (*models.Mistake, error) {
	canonical, err := canonicalID(id, "mistake")
	if err != nil {
		return nil, err
	}
	return s.mistakeRepo.GetByID(canonical)
}

// UpdateMistake applies a partial update to a mistake
func (s *MistakeService) UpdateMistake(id string, req *models.UpdateMistakeRequest) (*models.Mistake, error) {
	canonical, err := canonicalID(id, "mistake")
	if err != nil {
		return nil, err
	}
	return s.mistakeRepo.Update(canonical, req)
}

// DeleteMistake removes a mistake by its ID
func (s *MistakeService) DeleteMistake(id string) error {
	canonical, err := canonicalID(id, "mistake")
	if err != nil {
		return err
	}
	return s.mistakeRepo.Delete(canonical)
}

// canonicalID validates a path ID and returns its canonical UUID form
func canonicalID(id, resource string) (string, error) {
	if id == "" {
		return "", errors.New(resource + " ID is required")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", errors.New("invalid " + resource + " ID format")
	}
	return parsed.String(), nil
}
