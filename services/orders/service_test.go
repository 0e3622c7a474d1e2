package orders

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memOrderRepo struct {
	created    []models.Order
	failCreate bool
}

func (r *memOrderRepo) Create(ctx context.Context, order models.Order) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.created = append(r.created, order)
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	for i := range r.created {
		if r.created[i].ID == id {
			return &r.created[i], nil
		}
	}
	return nil, fmt.Errorf("order %s not found", id)
}

func (r *memOrderRepo) GetByTravelerID(ctx context.Context, travelerID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.created {
		if o.TravelerID == travelerID {
			out = append(out, o)
		}
	}
	return out, nil
}

type stubPayments struct {
	intents    int
	cancelled  []string
	failCreate bool
}

func (p *stubPayments) CreateIntent(ctx context.Context, amount int64, currency, description string, metadata map[string]string) (string, error) {
	if p.failCreate {
		return "", errors.New("card declined")
	}
	p.intents++
	return fmt.Sprintf("pi_%d", p.intents), nil
}

func (p *stubPayments) CancelIntent(ctx context.Context, intentID string) error {
	p.cancelled = append(p.cancelled, intentID)
	return nil
}

func flightRequest() models.OrderRequest {
	return models.OrderRequest{
		SessionID:  "sess-1",
		TravelerID: "trav-1",
		Vertical:   models.VerticalFlight,
		Item:       models.Item{ID: "FL-2", Title: "VG202", UnitPrice: 50000, Currency: "usd"},
		Attendees: []models.Attendee{
			{ID: "a1", FullName: "Ada Lovelace"},
			{ID: "a2", FullName: "Alan Turing"},
		},
		Price: models.DerivedPrice{Amount: 100000, Currency: "usd", PerUnit: 50000, Units: 2},
	}
}

func TestCreateOrderHappyPath(t *testing.T) {
	repo := &memOrderRepo{}
	payments := &stubPayments{}
	svc := NewDefaultOrderService(repo, payments, zap.NewNop())

	order, err := svc.CreateOrder(context.Background(), flightRequest())
	require.NoError(t, err)

	assert.Equal(t, "confirmed", order.Status)
	assert.Len(t, order.ConfirmationCode, 8)
	assert.Equal(t, "pi_1", order.PaymentIntentID)
	assert.Equal(t, []string{"12A", "12B"}, order.SeatAssignments)
	require.Len(t, repo.created, 1)
	assert.Empty(t, payments.cancelled)
}

func TestCreateOrderPaymentFailureCreatesNothing(t *testing.T) {
	repo := &memOrderRepo{}
	payments := &stubPayments{failCreate: true}
	svc := NewDefaultOrderService(repo, payments, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), flightRequest())
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

// If the order record cannot be persisted, the payment intent is voided
// so the failure leaves no visible side effects.
func TestCreateOrderPersistFailureVoidsIntent(t *testing.T) {
	repo := &memOrderRepo{failCreate: true}
	payments := &stubPayments{}
	svc := NewDefaultOrderService(repo, payments, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), flightRequest())
	require.Error(t, err)
	assert.Equal(t, []string{"pi_1"}, payments.cancelled)
}

func TestCreateOrderRejectsEmptyAttendees(t *testing.T) {
	payments := &stubPayments{}
	svc := NewDefaultOrderService(&memOrderRepo{}, payments, zap.NewNop())

	req := flightRequest()
	req.Attendees = nil
	_, err := svc.CreateOrder(context.Background(), req)
	require.Error(t, err)
	assert.Zero(t, payments.intents, "no payment attempted for an invalid request")
}

func TestCreateOrderNoSeatsOutsideFlights(t *testing.T) {
	svc := NewDefaultOrderService(&memOrderRepo{}, &stubPayments{}, zap.NewNop())

	req := flightRequest()
	req.Vertical = models.VerticalHotel
	order, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, order.SeatAssignments)
}

func TestAssignSeatsWrapsRows(t *testing.T) {
	seats := assignSeats(8)
	assert.Equal(t, []string{"12A", "12B", "12C", "12D", "12E", "12F", "13A", "13B"}, seats)
}
