package booking

import (
	"context"

	"voyago/models"

	"go.uber.org/zap"
)

// Confirm performs exactly one create-order call for this invocation.
// While a commit is outstanding the session refuses another; on failure
// the session stays at confirmation with every captured field intact so
// the commit can be retried without re-entering attendee data. Success is
// the only path to the terminal step.
func (s *DefaultBookingFlowService) Confirm(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmation {
		return session, newFlowError("illegalTransition", "cannot confirm while in step %q", session.Step)
	}
	if session.Committing {
		return session, newFlowError("commitOutstanding", "a commit is already in progress for this session")
	}

	session.Committing = true
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	order, commitErr := s.Orders.CreateOrder(ctx, models.OrderRequest{
		SessionID:  session.ID,
		TravelerID: session.TravelerID,
		Vertical:   session.Vertical,
		Item:       *session.SelectedItem,
		Attendees:  session.Attendees,
		Price:      *session.Price,
	})

	// The session may have been cancelled while the call was outstanding;
	// a late outcome is then ignored rather than applied.
	session, err = s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmation {
		// The outstanding commit is us, so the guard can be released.
		if session.Committing {
			session.Committing = false
			if err := s.Store.Save(ctx, session); err != nil {
				return nil, err
			}
		}
		s.Logger.Warn("commit outcome dropped, session moved on",
			zap.String("session", sessionID),
			zap.String("step", string(session.Step)),
		)
		return session, nil
	}

	if commitErr != nil {
		session.Committing = false
		session.LastCommitError = commitErr.Error()
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		s.Logger.Warn("order commit failed",
			zap.String("session", sessionID),
			zap.Error(commitErr),
		)
		return session, &CommitError{Message: "order creation failed", Cause: commitErr}
	}

	session.Order = order
	session.Step = models.StepSuccess
	session.Committing = false
	session.LastCommitError = ""
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("order committed",
		zap.String("session", sessionID),
		zap.String("order", order.ID),
		zap.String("confirmation", order.ConfirmationCode),
	)

	if s.Dispatcher != nil {
		if err := s.Dispatcher.Dispatch(ctx, order.ID); err != nil {
			s.Logger.Warn("issuance dispatch failed",
				zap.String("order", order.ID),
				zap.Error(err),
			)
		}
	}

	return session, nil
}
