package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	ordersRepo "voyago/database/repository/orders"
	"voyago/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the create-order collaborator for the booking engine. The
// call is atomic from the caller's perspective: either a complete order
// comes back or an error does, with no partially visible order.
type Service interface {
	CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

// DefaultOrderService implements Service: payment intent first, then the
// order record. If persisting fails the intent is voided so nothing
// half-finished remains visible.
type DefaultOrderService struct {
	Repo     ordersRepo.OrderRepository
	Payments PaymentClient
	Logger   *zap.Logger
}

func NewDefaultOrderService(repo ordersRepo.OrderRepository, payments PaymentClient, logger *zap.Logger) *DefaultOrderService {
	return &DefaultOrderService{Repo: repo, Payments: payments, Logger: logger}
}

func (s *DefaultOrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if len(req.Attendees) == 0 {
		return nil, fmt.Errorf("order requires at least one attendee")
	}
	if req.Price.Amount <= 0 {
		return nil, fmt.Errorf("order price must be positive, got %d", req.Price.Amount)
	}

	description := fmt.Sprintf("%s booking: %s", req.Vertical, req.Item.Title)
	intentID, err := s.Payments.CreateIntent(ctx, req.Price.Amount, req.Price.Currency, description, map[string]string{
		"sessionId":  req.SessionID,
		"travelerId": req.TravelerID,
		"itemId":     req.Item.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order := models.Order{
		ID:               uuid.New().String(),
		SessionID:        req.SessionID,
		TravelerID:       req.TravelerID,
		Vertical:         req.Vertical,
		Item:             req.Item,
		Attendees:        req.Attendees,
		Price:            req.Price,
		ConfirmationCode: confirmationCode(),
		PaymentIntentID:  intentID,
		Status:           "confirmed",
		CreatedAt:        time.Now(),
	}
	if req.Vertical == models.VerticalFlight {
		order.SeatAssignments = assignSeats(len(req.Attendees))
	}

	if err := s.Repo.Create(ctx, order); err != nil {
		// Void the intent so the failure leaves no side effects.
		if cancelErr := s.Payments.CancelIntent(ctx, intentID); cancelErr != nil {
			s.Logger.Error("failed to void payment intent after persist failure",
				zap.String("intent", intentID),
				zap.Error(cancelErr),
			)
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.Logger.Info("order created",
		zap.String("order", order.ID),
		zap.String("confirmation", order.ConfirmationCode),
		zap.Int("attendees", len(order.Attendees)),
	)
	return &order, nil
}

func (s *DefaultOrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.Repo.GetByID(ctx, id)
}

func confirmationCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}

var seatLetters = []string{"A", "B", "C", "D", "E", "F"}

// assignSeats hands out consecutive seats starting at row 12.
func assignSeats(count int) []string {
	seats := make([]string, 0, count)
	for i := 0; i < count; i++ {
		row := 12 + i/len(seatLetters)
		seats = append(seats, fmt.Sprintf("%d%s", row, seatLetters[i%len(seatLetters)]))
	}
	return seats
}
