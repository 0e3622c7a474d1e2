package booking

import (
	"context"

	"voyago/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetSession returns the current session state.
func (s *DefaultBookingFlowService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// SelectItem commits the traveler to one result and enters attendee
// capture. The selection and the step change are applied together; there
// is no state where the session is capturing without a selected item.
func (s *DefaultBookingFlowService) SelectItem(ctx context.Context, sessionID, itemID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepResults {
		return session, newFlowError("illegalTransition", "cannot select an item while in step %q", session.Step)
	}

	var selected *models.Item
	for i := range session.Results {
		if session.Results[i].ID == itemID {
			selected = &session.Results[i]
			break
		}
	}
	if selected == nil {
		return session, newFlowError("unknownItem", "item %q is not in the current results", itemID)
	}

	item := *selected
	session.SelectedItem = &item
	session.Step = models.StepCapture
	price := derivePrice(session.Vertical, item, session.Criteria, len(session.Attendees))
	session.Price = &price
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("item selected",
		zap.String("session", sessionID),
		zap.String("item", itemID),
	)
	return session, nil
}

// AddAttendee appends an attendee record. Legal only during capture.
func (s *DefaultBookingFlowService) AddAttendee(ctx context.Context, sessionID string, attendee models.Attendee) (*models.BookingSession, error) {
	return s.editAttendees(ctx, sessionID, func(session *models.BookingSession) error {
		attendee.ID = uuid.New().String()
		session.Attendees = append(session.Attendees, attendee)
		return nil
	})
}

// UpdateAttendee replaces an attendee's fields, keeping its identity.
func (s *DefaultBookingFlowService) UpdateAttendee(ctx context.Context, sessionID, attendeeID string, attendee models.Attendee) (*models.BookingSession, error) {
	return s.editAttendees(ctx, sessionID, func(session *models.BookingSession) error {
		for i := range session.Attendees {
			if session.Attendees[i].ID == attendeeID {
				attendee.ID = attendeeID
				session.Attendees[i] = attendee
				return nil
			}
		}
		return newFlowError("unknownAttendee", "attendee %q is not in this session", attendeeID)
	})
}

// RemoveAttendee drops one attendee from the list.
func (s *DefaultBookingFlowService) RemoveAttendee(ctx context.Context, sessionID, attendeeID string) (*models.BookingSession, error) {
	return s.editAttendees(ctx, sessionID, func(session *models.BookingSession) error {
		for i := range session.Attendees {
			if session.Attendees[i].ID == attendeeID {
				session.Attendees = append(session.Attendees[:i], session.Attendees[i+1:]...)
				return nil
			}
		}
		return newFlowError("unknownAttendee", "attendee %q is not in this session", attendeeID)
	})
}

// editAttendees applies one mutation to the attendee list and recomputes
// the derived price. The list is only mutable during capture.
func (s *DefaultBookingFlowService) editAttendees(ctx context.Context, sessionID string, edit func(*models.BookingSession) error) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepCapture {
		return session, newFlowError("illegalTransition", "attendees can only be edited during capture, not %q", session.Step)
	}
	if err := edit(session); err != nil {
		return session, err
	}
	price := derivePrice(session.Vertical, *session.SelectedItem, session.Criteria, len(session.Attendees))
	session.Price = &price
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitAttendees advances capture to confirmation, gated by attendee
// validation. A rejected submission keeps the session in capture and
// reports every missing field.
func (s *DefaultBookingFlowService) SubmitAttendees(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepCapture {
		return session, newFlowError("illegalTransition", "cannot submit attendees while in step %q", session.Step)
	}
	if err := validateAttendees(session.Vertical, session.Attendees); err != nil {
		return session, err
	}

	session.Step = models.StepConfirmation
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back steps the session one screen backwards without destroying captured
// data: confirmation keeps the attendee list, capture keeps the results.
func (s *DefaultBookingFlowService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepConfirmation:
		session.Step = models.StepCapture
	case models.StepCapture:
		session.Step = models.StepResults
		session.SelectedItem = nil
		session.Price = nil
	default:
		return session, newFlowError("illegalTransition", "cannot go back from step %q", session.Step)
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Reset starts a new booking after a completed one. Everything captured
// for the finished purchase is cleared; the criteria stay pre-filled.
func (s *DefaultBookingFlowService) Reset(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSuccess {
		return session, newFlowError("illegalTransition", "reset is only available after a completed booking, not %q", session.Step)
	}

	session.Step = models.StepSearch
	session.View = models.ViewSearch
	session.FetchGeneration++ // a late fetch from the old flow is void
	session.Fetching = false
	session.Results = nil
	session.SelectedItem = nil
	session.Attendees = nil
	session.Price = nil
	session.Order = nil
	session.Committing = false
	session.LastCommitError = ""
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("booking session reset", zap.String("session", sessionID))
	return session, nil
}

// CancelSession discards the session outright. Late fetch or commit
// resolutions against a cancelled session find nothing to apply to.
func (s *DefaultBookingFlowService) CancelSession(ctx context.Context, sessionID string) error {
	if _, err := s.Store.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, sessionID)
}
