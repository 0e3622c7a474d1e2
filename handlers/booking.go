package handlers

import (
	"errors"
	"net/http"

	"voyago/models"
	"voyago/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking workflow over HTTP. Every response
// that mutates the session echoes the updated session back so clients can
// render from a single source of truth.
type BookingHandler struct {
	Svc booking.BookingFlowService
}

func NewBookingHandler(svc booking.BookingFlowService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// respondBookingError maps engine errors onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	logger := getLogger(c)

	var (
		validationErr *booking.ValidationError
		flowErr       *booking.FlowError
		fetchErr      *booking.FetchError
		commitErr     *booking.CommitError
	)
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validationErr.Fields})
	case errors.As(err, &flowErr):
		c.JSON(http.StatusConflict, gin.H{"error": flowErr.Message, "code": flowErr.Code})
	case errors.As(err, &fetchErr):
		logger.Error("Inventory search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "search failed, please retry", "details": fetchErr.Message})
	case errors.As(err, &commitErr):
		logger.Error("Order commit failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "booking could not be completed, your details are retained", "details": commitErr.Message})
	default:
		logger.Error("Unexpected booking engine error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// StartSession creates a new booking session, optionally seeded from a
// resolved trip intent.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		TravelerID string             `json:"travelerId"`
		Vertical   models.Vertical    `json:"vertical"`
		Intent     *models.TripIntent `json:"intent,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.TravelerID == "" || !input.Vertical.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "travelerId and a known vertical are required"})
		return
	}

	session, err := h.Svc.StartSession(c.Request.Context(), input.TravelerID, input.Vertical, input.Intent)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the current session state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Search runs an inventory search with the submitted criteria.
func (h *BookingHandler) Search(c *gin.Context) {
	var criteria models.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.Search(c.Request.Context(), c.Param("sessionID"), criteria)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ModifySearch returns the session to the search form without discarding
// the in-flight criteria.
func (h *BookingHandler) ModifySearch(c *gin.Context) {
	session, err := h.Svc.ModifySearch(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectItem picks a result and advances to attendee capture.
func (h *BookingHandler) SelectItem(c *gin.Context) {
	var input struct {
		ItemID string `json:"itemId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required"})
		return
	}

	session, err := h.Svc.SelectItem(c.Request.Context(), c.Param("sessionID"), input.ItemID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AddAttendee appends an attendee during capture.
func (h *BookingHandler) AddAttendee(c *gin.Context) {
	var attendee models.Attendee
	if err := c.ShouldBindJSON(&attendee); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.AddAttendee(c.Request.Context(), c.Param("sessionID"), attendee)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateAttendee replaces an attendee's details during capture.
func (h *BookingHandler) UpdateAttendee(c *gin.Context) {
	var attendee models.Attendee
	if err := c.ShouldBindJSON(&attendee); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.UpdateAttendee(c.Request.Context(), c.Param("sessionID"), c.Param("attendeeID"), attendee)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// RemoveAttendee deletes an attendee during capture.
func (h *BookingHandler) RemoveAttendee(c *gin.Context) {
	session, err := h.Svc.RemoveAttendee(c.Request.Context(), c.Param("sessionID"), c.Param("attendeeID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitAttendees validates the attendee roster and advances to
// confirmation.
func (h *BookingHandler) SubmitAttendees(c *gin.Context) {
	session, err := h.Svc.SubmitAttendees(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Confirm commits the booking, creating the order.
func (h *BookingHandler) Confirm(c *gin.Context) {
	session, err := h.Svc.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Back steps the session one screen back without losing captured data.
func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Reset starts a fresh booking in the same session after success.
func (h *BookingHandler) Reset(c *gin.Context) {
	session, err := h.Svc.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Issuance renders the travel documents for a completed booking.
func (h *BookingHandler) Issuance(c *gin.Context) {
	pack, err := h.Svc.Issuance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, pack)
}

// CancelSession deletes the session outright.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
