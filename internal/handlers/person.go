package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/mistakelog/internal/models"
	"github.com/alimgiray/mistakelog/internal/repositories"
	"github.com/alimgiray/mistakelog/internal/services"
	"github.com/alimgiray/mistakelog/pkg/logger"
	"github.com/gin-gonic/gin"
)

type PersonHandler struct {
	personService *services.PersonService
}

func NewPersonHandler(personService *services.PersonService) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// CreatePerson handles POST /persons
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req models.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, err := h.personService.CreatePerson(&req)
	if err != nil {
		c.JSON(personErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.WithField("person_id", person.ID).Info("person created")
	c.JSON(http.StatusCreated, person)
}

// ListPersons handles GET /persons. Besides the person-level filters,
// grade_level and subject match against the embedded mistake entries:
// a person is included when at least one entry carries that exact value.
func (h *PersonHandler) ListPersons(c *gin.Context) {
	filter := &models.PersonFilter{
		FirstName:  queryValue(c, "first_name"),
		LastName:   queryValue(c, "last_name"),
		Email:      queryValue(c, "email"),
		BirthDate:  queryValue(c, "birth_date"),
		GradeLevel: queryValue(c, "grade_level"),
		Subject:    queryValue(c, "subject"),
	}

	c.JSON(http.StatusOK, h.personService.ListPersons(filter))
}

// GetPerson handles GET /persons/:id
func (h *PersonHandler) GetPerson(c *gin.Context) {
	person, err := h.personService.GetPersonByID(c.Param("id"))
	if err != nil {
		c.JSON(personErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, person)
}

// UpdatePerson handles PATCH /persons/:id
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	var req models.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, err := h.personService.UpdatePerson(c.Param("id"), &req)
	if err != nil {
		c.JSON(personErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.WithField("person_id", person.ID).Info("person updated")
	c.JSON(http.StatusOK, person)
}

// DeletePerson handles DELETE /persons/:id
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	if err := h.personService.DeletePerson(c.Param("id")); err != nil {
		c.JSON(personErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.WithField("person_id", c.Param("id")).Info("person deleted")
	c.Status(http.StatusNoContent)
}

func personErrorStatus(err error) int {
	if errors.Is(err, repositories.ErrPersonNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
