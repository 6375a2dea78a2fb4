package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/alimgiray/mistakelog/internal/repositories"
	"github.com/alimgiray/mistakelog/internal/services"
	"github.com/gin-gonic/gin"
)

// newTestRouter builds a router with fresh in-memory stores, mirroring the
// route table registered in cmd/server
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	homeHandler := NewHomeHandler()
	healthHandler := NewHealthHandler(services.NewHealthService())
	mistakeHandler := NewMistakeHandler(services.NewMistakeService(repositories.NewMistakeRepository()))
	personHandler := NewPersonHandler(services.NewPersonService(repositories.NewPersonRepository()))

	router := gin.New()
	router.GET("/", homeHandler.Index)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/health/:path_echo", healthHandler.HealthCheck)

	mistakes := router.Group("/mistakes")
	{
		mistakes.POST("", mistakeHandler.CreateMistake)
		mistakes.GET("", mistakeHandler.ListMistakes)
		mistakes.GET("/:id", mistakeHandler.GetMistake)
		mistakes.PATCH("/:id", mistakeHandler.UpdateMistake)
		mistakes.DELETE("/:id", mistakeHandler.DeleteMistake)
	}

	persons := router.Group("/persons")
	{
		persons.POST("", personHandler.CreatePerson)
		persons.GET("", personHandler.ListPersons)
		persons.GET("/:id", personHandler.GetPerson)
		persons.PATCH("/:id", personHandler.UpdatePerson)
		persons.DELETE("/:id", personHandler.DeletePerson)
	}

	return router
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func mistakeBody(subject string) map[string]any {
	return map[string]any{
		"subject":        subject,
		"key_concept":    "Logical Reasoning",
		"prompt":         "Which one of the following is assumed?",
		"correct_answer": "C",
		"wrong_answer":   "D",
		"reflection":     "Misread the conclusion.",
	}
}

func personBody(firstName string) map[string]any {
	return map[string]any{
		"first_name": firstName,
		"last_name":  "Smith",
		"email":      firstName + "@example.com",
	}
}
