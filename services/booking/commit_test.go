package booking

import (
	"context"
	"errors"
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmCreatesOrderAndDispatchesIssuance(t *testing.T) {
	ord := &stubOrders{}
	svc, dispatcher := newTestService(nil, ord)
	session := capturedFlight(t, svc)

	session, err := svc.Confirm(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StepSuccess, session.Step)
	require.NotNil(t, session.Order)
	assert.False(t, session.Committing)
	assert.Empty(t, session.LastCommitError)
	assert.Equal(t, 1, ord.callCount())
	assert.Equal(t, []string{session.Order.ID}, dispatcher.dispatched())
}

// A failed commit keeps every captured field so the traveler can retry
// without re-entering anything.
func TestConfirmRetryWithoutLoss(t *testing.T) {
	ctx := context.Background()
	ord := &stubOrders{}
	ord.fn = func(call int, req models.OrderRequest) (*models.Order, error) {
		if call == 1 {
			return nil, errors.New("card declined")
		}
		return orderFromRequest(req), nil
	}
	svc, _ := newTestService(nil, ord)
	session := capturedFlight(t, svc)

	session, err := svc.Confirm(ctx, session.ID)
	var commitErr *CommitError
	require.ErrorAs(t, err, &commitErr)

	assert.Equal(t, models.StepConfirmation, session.Step)
	assert.False(t, session.Committing)
	assert.Contains(t, session.LastCommitError, "card declined")
	assert.Len(t, session.Attendees, 2)
	require.NotNil(t, session.SelectedItem)
	assert.Nil(t, session.Order)

	session, err = svc.Confirm(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSuccess, session.Step)
	assert.Empty(t, session.LastCommitError)
	assert.Equal(t, 2, ord.callCount())
}

// While one commit is outstanding the session refuses another, so a
// double-click cannot create two orders.
func TestConfirmRefusesOverlappingCommit(t *testing.T) {
	ctx := context.Background()
	ord := &stubOrders{}
	svc, _ := newTestService(nil, ord)
	session := capturedFlight(t, svc)
	sessionID := session.ID

	ord.fn = func(call int, req models.OrderRequest) (*models.Order, error) {
		require.Equal(t, 1, call)
		_, err := svc.Confirm(ctx, sessionID)
		var flowErr *FlowError
		require.ErrorAs(t, err, &flowErr)
		require.Equal(t, "commitOutstanding", flowErr.Code)
		return orderFromRequest(req), nil
	}

	session, err := svc.Confirm(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSuccess, session.Step)
	assert.Equal(t, 1, ord.callCount())
}

// An outcome resolving after the session has moved on is dropped rather
// than applied.
func TestConfirmOutcomeDroppedWhenSessionMovedOn(t *testing.T) {
	ctx := context.Background()
	ord := &stubOrders{}
	svc, dispatcher := newTestService(nil, ord)
	session := capturedFlight(t, svc)
	sessionID := session.ID

	ord.fn = func(call int, req models.OrderRequest) (*models.Order, error) {
		// The traveler navigates back while the commit is in flight.
		_, err := svc.Back(ctx, sessionID)
		require.NoError(t, err)
		return orderFromRequest(req), nil
	}

	session, err := svc.Confirm(ctx, sessionID)
	require.NoError(t, err)

	assert.Equal(t, models.StepCapture, session.Step)
	assert.Nil(t, session.Order)
	assert.False(t, session.Committing)
	assert.Empty(t, dispatcher.dispatched())
}

func TestConfirmIllegalBeforeConfirmation(t *testing.T) {
	svc, _ := newTestService(nil, nil)
	session := searchedFlight(t, svc)

	_, err := svc.Confirm(context.Background(), session.ID)
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, "illegalTransition", flowErr.Code)
}

func TestConfirmAgainstCancelledSession(t *testing.T) {
	ctx := context.Background()
	ord := &stubOrders{}
	svc, _ := newTestService(nil, ord)
	session := capturedFlight(t, svc)
	sessionID := session.ID

	ord.fn = func(call int, req models.OrderRequest) (*models.Order, error) {
		require.NoError(t, svc.CancelSession(ctx, sessionID))
		return orderFromRequest(req), nil
	}

	_, err := svc.Confirm(ctx, sessionID)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}
