package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tropicacao/leads-api/pkg/logger"
	"github.com/tropicacao/leads-api/pkg/metrics"
	"go.uber.org/zap"
)

// EventsHandler receives lightweight analytics events from the marketing
// site (form views, CTA clicks). Events are logged and counted, never stored.
type EventsHandler struct{}

type analyticsEvent struct {
	Event      string         `json:"event" binding:"required,max=100"`
	Locale     string         `json:"locale"`
	Properties map[string]any `json:"properties"`
}

func NewEventsHandler() *EventsHandler {
	return &EventsHandler{}
}

// ReceiveEvent handles POST /api/v1/events.
func (h *EventsHandler) ReceiveEvent(c *gin.Context) {
	var evt analyticsEvent
	if err := c.ShouldBindJSON(&evt); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	metrics.AnalyticsEvents.WithLabelValues(evt.Event).Inc()
	logger.Info("Analytics event received",
		zap.String("event", evt.Event),
		zap.String("locale", evt.Locale),
		zap.Any("properties", evt.Properties),
		zap.String("client_ip", c.ClientIP()))

	c.JSON(http.StatusAccepted, gin.H{"success": true})
}
