package booking

import (
	"context"

	"voyago/models"

	"go.uber.org/zap"
)

// Search validates criteria and fetches a fresh result set. The previous
// results are discarded up front and the session's fetch generation is
// bumped, so a response resolving after a newer search has been issued is
// detected as stale and dropped instead of overwriting current results.
func (s *DefaultBookingFlowService) Search(ctx context.Context, sessionID string, criteria models.SearchCriteria) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSearch && session.Step != models.StepResults {
		return session, newFlowError("illegalTransition", "cannot search while in step %q", session.Step)
	}

	// Rejection happens before any inventory call is made.
	if err := validateCriteria(session.Vertical, &criteria); err != nil {
		return session, err
	}

	session.Criteria = criteria
	session.FetchGeneration++
	generation := session.FetchGeneration
	session.Fetching = true
	session.Results = nil
	session.SelectedItem = nil
	session.Price = nil
	session.Step = models.StepResults
	session.View = models.ViewResults
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	items, searchErr := s.Inventory.SearchItems(ctx, session.Vertical, criteria)

	// The session may have been cancelled or re-searched while the
	// request was in flight; a late resolution must not be applied.
	session, err = s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.FetchGeneration != generation {
		s.Logger.Debug("stale search response dropped",
			zap.String("session", sessionID),
			zap.Uint64("resolved", generation),
			zap.Uint64("current", session.FetchGeneration),
		)
		return session, nil
	}

	if searchErr != nil {
		session.Fetching = false
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		s.Logger.Warn("inventory search failed",
			zap.String("session", sessionID),
			zap.Error(searchErr),
		)
		return session, &FetchError{Message: "inventory search failed", Cause: searchErr}
	}

	session.Results = items
	session.Fetching = false
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("search resolved",
		zap.String("session", sessionID),
		zap.Int("results", len(items)),
	)
	return session, nil
}

// ModifySearch returns the session to the search form. Results and any
// selection are cleared; the criteria stay so the form remains pre-filled.
func (s *DefaultBookingFlowService) ModifySearch(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepResults {
		return session, newFlowError("illegalTransition", "modify search is only available from results, not %q", session.Step)
	}

	session.FetchGeneration++ // invalidates any in-flight fetch
	session.Fetching = false
	session.Results = nil
	session.SelectedItem = nil
	session.Price = nil
	session.Step = models.StepSearch
	session.View = models.ViewSearch
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
