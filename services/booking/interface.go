package booking

import (
	"context"

	"voyago/models"

	"go.uber.org/zap"
)

// InventoryService is the external search collaborator. It must fail with
// a descriptive error rather than returning an empty list ambiguously.
type InventoryService interface {
	SearchItems(ctx context.Context, vertical models.Vertical, criteria models.SearchCriteria) ([]models.Item, error)
}

// OrderService is the external create-order collaborator. A call either
// yields a complete order or fails with no side effects visible to the
// session.
type OrderService interface {
	CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error)
}

// IssuanceDispatcher hands a completed order off for document delivery.
// Dispatch failures never fail the commit.
type IssuanceDispatcher interface {
	Dispatch(ctx context.Context, orderID string) error
}

// BookingFlowService drives the multi-step booking workflow shared by the
// flight, tour, hotel, and car verticals.
type BookingFlowService interface {
	StartSession(ctx context.Context, travelerID string, vertical models.Vertical, intent *models.TripIntent) (*models.BookingSession, error)
	Seed(ctx context.Context, sessionID string, intent *models.TripIntent) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)

	Search(ctx context.Context, sessionID string, criteria models.SearchCriteria) (*models.BookingSession, error)
	ModifySearch(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectItem(ctx context.Context, sessionID, itemID string) (*models.BookingSession, error)

	AddAttendee(ctx context.Context, sessionID string, attendee models.Attendee) (*models.BookingSession, error)
	UpdateAttendee(ctx context.Context, sessionID, attendeeID string, attendee models.Attendee) (*models.BookingSession, error)
	RemoveAttendee(ctx context.Context, sessionID, attendeeID string) (*models.BookingSession, error)
	SubmitAttendees(ctx context.Context, sessionID string) (*models.BookingSession, error)

	Confirm(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Reset(ctx context.Context, sessionID string) (*models.BookingSession, error)
	CancelSession(ctx context.Context, sessionID string) error

	Issuance(ctx context.Context, sessionID string) (*models.IssuancePack, error)
}

// DefaultBookingFlowService implements BookingFlowService.
type DefaultBookingFlowService struct {
	Store      SessionStore
	Inventory  InventoryService
	Orders     OrderService
	Dispatcher IssuanceDispatcher
	Logger     *zap.Logger
}

func NewBookingFlowService(store SessionStore, inventory InventoryService, orders OrderService, dispatcher IssuanceDispatcher, logger *zap.Logger) *DefaultBookingFlowService {
	return &DefaultBookingFlowService{
		Store:      store,
		Inventory:  inventory,
		Orders:     orders,
		Dispatcher: dispatcher,
		Logger:     logger,
	}
}
