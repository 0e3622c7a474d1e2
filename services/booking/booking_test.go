package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"voyago/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubInventory counts calls and routes each one through fn, which makes
// re-entrant scenarios (a second search issued while the first is still
// resolving) possible to script.
type stubInventory struct {
	mu    sync.Mutex
	calls int
	fn    func(call int, criteria models.SearchCriteria) ([]models.Item, error)
}

func (s *stubInventory) SearchItems(ctx context.Context, vertical models.Vertical, criteria models.SearchCriteria) ([]models.Item, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	fn := s.fn
	s.mu.Unlock()
	if fn == nil {
		return flightItems(), nil
	}
	return fn(call, criteria)
}

func (s *stubInventory) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubOrders struct {
	mu    sync.Mutex
	calls int
	fn    func(call int, req models.OrderRequest) (*models.Order, error)
}

func (s *stubOrders) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	fn := s.fn
	s.mu.Unlock()
	if fn == nil {
		return orderFromRequest(req), nil
	}
	return fn(call, req)
}

func (s *stubOrders) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func orderFromRequest(req models.OrderRequest) *models.Order {
	return &models.Order{
		ID:               uuid.New().String(),
		SessionID:        req.SessionID,
		TravelerID:       req.TravelerID,
		Vertical:         req.Vertical,
		Item:             req.Item,
		Attendees:        req.Attendees,
		Price:            req.Price,
		ConfirmationCode: "AB12CD34",
		SeatAssignments:  []string{"12A", "12B"},
		Status:           "confirmed",
	}
}

type stubDispatcher struct {
	mu  sync.Mutex
	ids []string
}

func (d *stubDispatcher) Dispatch(ctx context.Context, orderID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids = append(d.ids, orderID)
	return nil
}

func (d *stubDispatcher) dispatched() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.ids...)
}

func newTestService(inv *stubInventory, ord *stubOrders) (*DefaultBookingFlowService, *stubDispatcher) {
	if inv == nil {
		inv = &stubInventory{}
	}
	if ord == nil {
		ord = &stubOrders{}
	}
	dispatcher := &stubDispatcher{}
	svc := NewBookingFlowService(NewMemorySessionStore(), inv, ord, dispatcher, zap.NewNop())
	return svc, dispatcher
}

func flightItems() []models.Item {
	items := make([]models.Item, 3)
	for i := range items {
		items[i] = models.Item{
			ID:          fmt.Sprintf("FL-%d", i+1),
			Vertical:    models.VerticalFlight,
			Title:       fmt.Sprintf("VG20%d New York → London", i+1),
			Operator:    "Voyago Air",
			Origin:      "New York",
			Destination: "London",
			Date:        "2026-10-01",
			UnitPrice:   int64(25000 * (i + 1)),
			Currency:    "usd",
			Capacity:    180,
		}
	}
	return items
}

func flightCriteria() models.SearchCriteria {
	return models.SearchCriteria{
		Origin:      "New York",
		Destination: "London",
		Date:        "2026-10-01",
		Guests:      2,
	}
}

func passenger(name string) models.Attendee {
	return models.Attendee{
		FullName:    name,
		DateOfBirth: "1990-05-04",
		Document:    "P1234567",
	}
}

// startFlight opens a fresh unseeded flight session.
func startFlight(t *testing.T, svc *DefaultBookingFlowService) *models.BookingSession {
	t.Helper()
	session, err := svc.StartSession(context.Background(), "trav-1", models.VerticalFlight, nil)
	require.NoError(t, err)
	return session
}

// searchedFlight drives a session to the results step with three items.
func searchedFlight(t *testing.T, svc *DefaultBookingFlowService) *models.BookingSession {
	t.Helper()
	session := startFlight(t, svc)
	session, err := svc.Search(context.Background(), session.ID, flightCriteria())
	require.NoError(t, err)
	require.Equal(t, models.StepResults, session.Step)
	require.Len(t, session.Results, 3)
	return session
}

// capturedFlight drives a session to confirmation with two passengers.
func capturedFlight(t *testing.T, svc *DefaultBookingFlowService) *models.BookingSession {
	t.Helper()
	ctx := context.Background()
	session := searchedFlight(t, svc)

	session, err := svc.SelectItem(ctx, session.ID, "FL-2")
	require.NoError(t, err)
	_, err = svc.AddAttendee(ctx, session.ID, passenger("Ada Lovelace"))
	require.NoError(t, err)
	_, err = svc.AddAttendee(ctx, session.ID, passenger("Alan Turing"))
	require.NoError(t, err)

	session, err = svc.SubmitAttendees(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, models.StepConfirmation, session.Step)
	return session
}
