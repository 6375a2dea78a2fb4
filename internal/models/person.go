package models

import (
	"time"

	"github.com/google/uuid"
)

// GradeLevel represents an educational stage tag
type GradeLevel string

const (
	GradeK5        GradeLevel = "K-5"
	GradeMiddle    GradeLevel = "6-8"
	GradeHigh      GradeLevel = "9-12"
	GradeUndergrad GradeLevel = "Undergrad"
	GradeGraduate  GradeLevel = "Graduate"
	GradeAdult     GradeLevel = "Adult"
	GradeOther     GradeLevel = "Other"
)

// IsValid checks whether the grade level belongs to the fixed value set
func (g GradeLevel) IsValid() bool {
	switch g {
	case GradeK5, GradeMiddle, GradeHigh, GradeUndergrad, GradeGraduate, GradeAdult, GradeOther:
		return true
	}
	return false
}

// MistakeEntry is a mistake-shaped value embedded in a Person record.
// It is a denormalized copy, never a reference into the mistake store;
// its ID may collide with an entry there.
type MistakeEntry struct {
	ID            string  `json:"id"`
	Subject       string  `json:"subject" binding:"required"`
	KeyConcept    string  `json:"key_concept" binding:"required"`
	Prompt        string  `json:"prompt" binding:"required"`
	CorrectAnswer string  `json:"correct_answer" binding:"required"`
	WrongAnswer   string  `json:"wrong_answer" binding:"required"`
	Reflection    string  `json:"reflection" binding:"required"`
	GradeLevel    *string `json:"grade_level" binding:"omitempty,oneof=K-5 6-8 9-12 Undergrad Graduate Adult Other"`
}

// Person represents a learner profile
type Person struct {
	ID         string         `json:"id"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Email      string         `json:"email"`
	BirthDate  *string        `json:"birth_date"`
	GradeLevel *string        `json:"grade_level"`
	Mistakes   []MistakeEntry `json:"mistakes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// CreatePersonRequest is the payload for creating a person.
// The person ID is always server-generated, never taken from the client.
type CreatePersonRequest struct {
	FirstName  string         `json:"first_name" binding:"required"`
	LastName   string         `json:"last_name" binding:"required"`
	Email      string         `json:"email" binding:"required,email"`
	BirthDate  *string        `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	GradeLevel *string        `json:"grade_level" binding:"omitempty,oneof=K-5 6-8 9-12 Undergrad Graduate Adult Other"`
	Mistakes   []MistakeEntry `json:"mistakes" binding:"omitempty,dive"`
}

// UpdatePersonRequest is a partial update; only non-nil fields are applied.
// A non-nil Mistakes slice replaces the embedded collection as a whole.
type UpdatePersonRequest struct {
	FirstName  *string         `json:"first_name"`
	LastName   *string         `json:"last_name"`
	Email      *string         `json:"email" binding:"omitempty,email"`
	BirthDate  *string         `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	GradeLevel *string         `json:"grade_level" binding:"omitempty,oneof=K-5 6-8 9-12 Undergrad Graduate Adult Other"`
	Mistakes   *[]MistakeEntry `json:"mistakes" binding:"omitempty,dive"`
}

// PersonFilter holds optional exact-match constraints for listing persons.
// GradeLevel and Subject are existential: they match when at least one
// embedded mistake entry carries that exact value.
type PersonFilter struct {
	FirstName  *string
	LastName   *string
	Email      *string
	BirthDate  *string
	GradeLevel *string
	Subject    *string
}

// NewPerson creates a new Person with a generated UUID and stamped
// timestamps. Embedded entries without an ID get one generated; an omitted
// mistakes list defaults to an empty slice.
func NewPerson(req *CreatePersonRequest) *Person {
	mistakes := make([]MistakeEntry, 0, len(req.Mistakes))
	for _, entry := range req.Mistakes {
		if entry.ID == "" {
			entry.ID = uuid.New().String()
		}
		mistakes = append(mistakes, entry)
	}

	now := time.Now().UTC()
	return &Person{
		ID:         uuid.New().String(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		BirthDate:  req.BirthDate,
		GradeLevel: req.GradeLevel,
		Mistakes:   mistakes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Apply overwrites the fields present in the partial update request.
// ID and CreatedAt are immutable; UpdatedAt is refreshed by the repository.
func (p *Person) Apply(req *UpdatePersonRequest) {
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.BirthDate != nil {
		p.BirthDate = req.BirthDate
	}
	if req.GradeLevel != nil {
		p.GradeLevel = req.GradeLevel
	}
	if req.Mistakes != nil {
		mistakes := make([]MistakeEntry, 0, len(*req.Mistakes))
		for _, entry := range *req.Mistakes {
			if entry.ID == "" {
				entry.ID = uuid.New().String()
			}
			mistakes = append(mistakes, entry)
		}
		p.Mistakes = mistakes
	}
}

// Matches reports whether the person satisfies every supplied filter field
func (p *Person) Matches(f *PersonFilter) bool {
	if f == nil {
		return true
	}
	if f.FirstName != nil && p.FirstName != *f.FirstName {
		return false
	}
	if f.LastName != nil && p.LastName != *f.LastName {
		return false
	}
	if f.Email != nil && p.Email != *f.Email {
		return false
	}
	if f.BirthDate != nil && (p.BirthDate == nil || *p.BirthDate != *f.BirthDate) {
		return false
	}
	if f.GradeLevel != nil && !p.HasMistakeWithGradeLevel(*f.GradeLevel) {
		return false
	}
	if f.Subject != nil && !p.HasMistakeWithSubject(*f.Subject) {
		return false
	}
	return true
}

// HasMistakeWithSubject checks if at least one embedded entry has the subject
func (p *Person) HasMistakeWithSubject(subject string) bool {
	for _, entry := range p.Mistakes {
		if entry.Subject == subject {
			return true
		}
	}
	return false
}

// HasMistakeWithGradeLevel checks if at least one embedded entry has the grade level
func (p *Person) HasMistakeWithGradeLevel(gradeLevel string) bool {
	for _, entry := range p.Mistakes {
		if entry.GradeLevel != nil && *entry.GradeLevel == gradeLevel {
			return true
		}
	}
	return false
}

// Clone returns a value snapshot of the person, with its own copy of the
// embedded mistakes slice
func (p *Person) Clone() *Person {
	clone := *p
	clone.Mistakes = make([]MistakeEntry, len(p.Mistakes))
	copy(clone.Mistakes, p.Mistakes)
	return &clone
}
