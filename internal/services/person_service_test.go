package services

import (
	"testing"

	"github.com/alimgiray/mistakelog/internal/models"
	"github.com/alimgiray/mistakelog/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func newPersonRequest() *models.CreatePersonRequest {
	return &models.CreatePersonRequest{
		FirstName: "Ada",
		LastName:  "Smith",
		Email:     "ada@example.com",
	}
}

func entryWithID(id string) models.MistakeEntry {
	return models.MistakeEntry{
		ID:            id,
		Subject:       "lsat",
		KeyConcept:    "Logical Reasoning",
		Prompt:        "Which one of the following is assumed?",
		CorrectAnswer: "C",
		WrongAnswer:   "D",
		Reflection:    "Misread the conclusion.",
	}
}

func TestPersonServiceCreate(t *testing.T) {
	t.Run("ID is always server-generated", func(t *testing.T) {
		service := NewPersonService(repositories.NewPersonRepository())

		person, err := service.CreatePerson(newPersonRequest())

		assert.NoError(t, err)
		assert.Len(t, person.ID, 36)
	})

	t.Run("Normalizes embedded entry IDs", func(t *testing.T) {
		service := NewPersonService(repositories.NewPersonRepository())
		req := newPersonRequest()
		req.Mistakes = []models.MistakeEntry{entryWithID("550E8400-E29B-41D4-A716-446655440000")}

		person, err := service.CreatePerson(req)

		assert.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", person.Mistakes[0].ID)
	})

	t.Run("Rejects malformed embedded entry ID", func(t *testing.T) {
		service := NewPersonService(repositories.NewPersonRepository())
		req := newPersonRequest()
		req.Mistakes = []models.MistakeEntry{entryWithID("not-a-uuid")}

		_, err := service.CreatePerson(req)
		assert.Error(t, err)
	})
}

func TestPersonServiceUpdate(t *testing.T) {
	t.Run("Validates entry IDs in a replacement list", func(t *testing.T) {
		service := NewPersonService(repositories.NewPersonRepository())
		person, err := service.CreatePerson(newPersonRequest())
		assert.NoError(t, err)

		bad := []models.MistakeEntry{entryWithID("not-a-uuid")}
		_, err = service.UpdatePerson(person.ID, &models.UpdatePersonRequest{Mistakes: &bad})
		assert.Error(t, err)

		// The failed update must not have touched the record
		stored, err := service.GetPersonByID(person.ID)
		assert.NoError(t, err)
		assert.Empty(t, stored.Mistakes)
	})

	t.Run("Missing person returns not found", func(t *testing.T) {
		service := NewPersonService(repositories.NewPersonRepository())

		_, err := service.UpdatePerson("99999999-9999-4999-8999-999999999999", &models.UpdatePersonRequest{})
		assert.ErrorIs(t, err, repositories.ErrPersonNotFound)
	})

	t.Run("Malformed path ID is rejected before the store is consulted", func(t *testing.T) {
		service := NewPersonService(repositories.NewPersonRepository())

		_, err := service.UpdatePerson("abc", &models.UpdatePersonRequest{})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repositories.ErrPersonNotFound)
	})
}
