package booking

import (
	"context"
	"strconv"
	"time"

	"voyago/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a new booking session for one vertical. Without an
// intent the session opens on a pre-filled search form; with one it is
// seeded and a single automatic search is issued.
func (s *DefaultBookingFlowService) StartSession(ctx context.Context, travelerID string, vertical models.Vertical, intent *models.TripIntent) (*models.BookingSession, error) {
	if !vertical.Valid() {
		return nil, newFlowError("unknownVertical", "unknown vertical %q", vertical)
	}

	now := time.Now()
	session := &models.BookingSession{
		ID:         uuid.New().String(),
		TravelerID: travelerID,
		Vertical:   vertical,
		Step:       models.StepSearch,
		View:       models.ViewSearch,
		Criteria:   defaultCriteria(vertical),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("booking session started",
		zap.String("session", session.ID),
		zap.String("vertical", string(vertical)),
		zap.Bool("seeded", intent != nil),
	)

	if intent == nil {
		return session, nil
	}
	return s.Seed(ctx, session.ID, intent)
}

// Seed applies a deep-link context to a session. Seeding is keyed on the
// context's identity: a session already seeded from the same ContextID is
// returned untouched, so re-delivery of one deep link never issues a
// duplicate search.
func (s *DefaultBookingFlowService) Seed(ctx context.Context, sessionID string, intent *models.TripIntent) (*models.BookingSession, error) {
	if intent == nil || intent.ContextID == "" {
		return nil, newFlowError("emptyContext", "seed requires a context with an identity")
	}

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.SeededContextID == intent.ContextID {
		s.Logger.Debug("seed skipped, context already applied",
			zap.String("session", sessionID),
			zap.String("context", intent.ContextID),
		)
		return session, nil
	}

	criteria := defaultCriteria(session.Vertical)
	mergeIntentParams(&criteria, intent.Params)

	// The context is consumed even when its parameters fail validation;
	// the traveler lands on the pre-filled form instead.
	session.Criteria = criteria
	session.SeededContextID = intent.ContextID
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	return s.Search(ctx, sessionID, criteria)
}

// defaultCriteria returns a complete criteria record for a blank session:
// today's date and the vertical's default route.
func defaultCriteria(vertical models.Vertical) models.SearchCriteria {
	profile := profileFor(vertical)
	today := time.Now()
	criteria := models.SearchCriteria{
		Origin:      profile.DefaultOrigin,
		Destination: profile.DefaultDest,
		Date:        today.Format(models.DateLayout),
		Guests:      1,
	}
	if profile.NeedsDateTo {
		criteria.DateTo = today.AddDate(0, 0, 2).Format(models.DateLayout)
	}
	return criteria
}

func mergeIntentParams(criteria *models.SearchCriteria, params map[string]string) {
	if v, ok := params["origin"]; ok && v != "" {
		criteria.Origin = v
	}
	if v, ok := params["destination"]; ok && v != "" {
		criteria.Destination = v
	}
	if v, ok := params["date"]; ok && v != "" {
		criteria.Date = v
	}
	if v, ok := params["dateTo"]; ok && v != "" {
		criteria.DateTo = v
	}
	if v, ok := params["guests"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.Guests = n
		}
	}
}
