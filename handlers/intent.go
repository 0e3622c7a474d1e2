package handlers

import (
	"net/http"

	"voyago/services/booking"
	"voyago/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntentHandler turns free-form text into a seeded booking session.
type IntentHandler struct {
	Intents intelligence.IntentService
	Booking booking.BookingFlowService
}

func NewIntentHandler(intents intelligence.IntentService, bookingSvc booking.BookingFlowService) *IntentHandler {
	return &IntentHandler{Intents: intents, Booking: bookingSvc}
}

// Resolve parses the traveler's request and starts a session seeded with
// the extracted criteria.
func (h *IntentHandler) Resolve(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		TravelerID string `json:"travelerId"`
		Text       string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.TravelerID == "" || input.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "travelerId and text are required"})
		return
	}

	intent, err := h.Intents.ResolveIntent(c.Request.Context(), input.TravelerID, input.Text)
	if err != nil {
		logger.Warn("Intent resolution failed", zap.String("text", input.Text), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not understand the booking request"})
		return
	}

	session, err := h.Booking.StartSession(c.Request.Context(), input.TravelerID, intent.Vertical, intent)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"intent": intent, "session": session})
}
