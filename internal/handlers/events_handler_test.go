package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tropicacao/leads-api/internal/handlers"
)

func setupEventsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/events", handlers.NewEventsHandler().ReceiveEvent)
	return router
}

func TestReceiveEvent_Accepted(t *testing.T) {
	w := postJSON(setupEventsRouter(), "/api/v1/events", `{
		"event": "form_view",
		"locale": "fr",
		"properties": {"formType": "quote"}
	}`)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestReceiveEvent_MissingEventName(t *testing.T) {
	w := postJSON(setupEventsRouter(), "/api/v1/events", `{"locale": "fr"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceiveEvent_MalformedBody(t *testing.T) {
	w := postJSON(setupEventsRouter(), "/api/v1/events", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
