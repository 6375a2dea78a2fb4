package models

import (
	"time"

	"github.com/google/uuid"
)

// Mistake represents a single recorded wrong-answer reflection
type Mistake struct {
	ID            string    `json:"id"`
	Subject       string    `json:"subject"`
	KeyConcept    string    `json:"key_concept"`
	Prompt        string    `json:"prompt"`
	CorrectAnswer string    `json:"correct_answer"`
	WrongAnswer   string    `json:"wrong_answer"`
	Reflection    string    `json:"reflection"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateMistakeRequest is the payload for creating a mistake.
// The ID is optional; one is generated when the client does not supply it.
type CreateMistakeRequest struct {
	ID            string `json:"id"`
	Subject       string `json:"subject" binding:"required"`
	KeyConcept    string `json:"key_concept" binding:"required"`
	Prompt        string `json:"prompt" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required"`
	WrongAnswer   string `json:"wrong_answer" binding:"required"`
	Reflection    string `json:"reflection" binding:"required"`
}

// UpdateMistakeRequest is a partial update; only non-nil fields are applied
type UpdateMistakeRequest struct {
	Subject       *string `json:"subject"`
	KeyConcept    *string `json:"key_concept"`
	Prompt        *string `json:"prompt"`
	CorrectAnswer *string `json:"correct_answer"`
	WrongAnswer   *string `json:"wrong_answer"`
	Reflection    *string `json:"reflection"`
}

// MistakeFilter holds optional exact-match constraints for listing mistakes.
// A nil field imposes no constraint.
type MistakeFilter struct {
	Subject       *string
	KeyConcept    *string
	Prompt        *string
	CorrectAnswer *string
	WrongAnswer   *string
	Reflection    *string
}

// NewMistake creates a new Mistake from a create request, generating an ID
// when the request does not carry one and stamping both timestamps
func NewMistake(req *CreateMistakeRequest) *Mistake {
	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	now := time.Now().UTC()
	return &Mistake{
		ID:            id,
		Subject:       req.Subject,
		KeyConcept:    req.KeyConcept,
		Prompt:        req.Prompt,
		CorrectAnswer: req.CorrectAnswer,
		WrongAnswer:   req.WrongAnswer,
		Reflection:    req.Reflection,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Apply overwrites the fields present in the partial update request.
// ID and CreatedAt are immutable; UpdatedAt is refreshed by the repository.
func (m *Mistake) Apply(req *UpdateMistakeRequest) {
	if req.Subject != nil {
		m.Subject = *req.Subject
	}
	if req.KeyConcept != nil {
		m.KeyConcept = *req.KeyConcept
	}
	if req.Prompt != nil {
		m.Prompt = *req.Prompt
	}
	if req.CorrectAnswer != nil {
		m.CorrectAnswer = *req.CorrectAnswer
	}
	if req.WrongAnswer != nil {
		m.WrongAnswer = *req.WrongAnswer
	}
	if req.Reflection != nil {
		m.Reflection = *req.Reflection
	}
}

// Matches reports whether the mistake satisfies every supplied filter field.
// Comparison is exact and case-sensitive.
func (m *Mistake) Matches(f *MistakeFilter) bool {
	if f == nil {
		return true
	}
	if f.Subject != nil && m.Subject != *f.Subject {
		return false
	}
	if f.KeyConcept != nil && m.KeyConcept != *f.KeyConcept {
		return false
	}
	if f.Prompt != nil && m.Prompt != *f.Prompt {
		return false
	}
	if f.CorrectAnswer != nil && m.CorrectAnswer != *f.CorrectAnswer {
		return false
	}
	if f.WrongAnswer != nil && m.WrongAnswer != *f.WrongAnswer {
		return false
	}
	if f.Reflection != nil && m.Reflection != *f.Reflection {
		return false
	}
	return true
}
