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

type MistakeHandler struct {
	mistakeService *services.MistakeService
}

func NewMistakeHandler(mistakeService *services.MistakeService) *MistakeHandler {
	return &MistakeHandler{
		mistakeService: mistakeService,
	}
}

// CreateMistake handles POST /mistakes
func (h *MistakeHandler) CreateMistake(c *gin.Context) {
	var req models.CreateMistakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mistake, err := h.mistakeService.CreateMistake(&req)
	if err != nil {
		c.JSON(mistakeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.WithField("mistake_id", mistake.ID).Info("mistake created")
	c.JSON(http.StatusCreated, mistake)
}

// ListMistakes handles GET /mistakes with optional exact-match query filters
func (h *MistakeHandler) ListMistakes(c *gin.Context) {
	filter := &models.MistakeFilter{
		Subject:       queryValue(c, "subject"),
		KeyConcept:    queryValue(c, "key_concept"),
		Prompt:        queryValue(c, "prompt"),
		CorrectAnswer: queryValue(c, "correct_answer"),
		WrongAnswer:   queryValue(c, "wrong_answer"),
		Reflection:    queryValue(c, "reflection"),
	}

	c.JSON(http.StatusOK, h.mistakeService.ListMistakes(filter))
}

// GetMistake handles GET /mistakes/:id
func (h *MistakeHandler) GetMistake(c *gin.Context) {
	mistake, err := h.mistakeService.GetMistakeByID(c.Param("id"))
	if err != nil {
		c.JSON(mistakeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mistake)
}

// UpdateMistake handles PATCH /mistakes/:id
func (h *MistakeHandler) UpdateMistake(c *gin.Context) {
	var req models.UpdateMistakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mistake, err := h.mistakeService.UpdateMistake(c.Param("id"), &req)
	if err != nil {
		c.JSON(mistakeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.WithField("mistake_id", mistake.ID).Info("mistake updated")
	c.JSON(http.StatusOK, mistake)
}

// DeleteMistake handles DELETE /mistakes/:id
func (h *MistakeHandler) DeleteMistake(c *gin.Context) {
	if err := h.mistakeService.DeleteMistake(c.Param("id")); err != nil {
		c.JSON(mistakeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.WithField("mistake_id", c.Param("id")).Info("mistake deleted")
	c.Status(http.StatusNoContent)
}

// mistakeErrorStatus maps service errors to HTTP statuses: absent records
// are 404, everything else (duplicate ID, validation) is client error
func mistakeErrorStatus(err error) int {
	if errors.Is(err, repositories.ErrMistakeNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// queryValue distinguishes an absent query parameter (no constraint) from
// one supplied with an empty value (a filter for the empty string)
func queryValue(c *gin.Context, name string) *string {
	if value, ok := c.GetQuery(name); ok {
		return &value
	}
	return nil
}
