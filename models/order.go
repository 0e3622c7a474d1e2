package models

import "time"

// Order is the immutable terminal artifact of a successful commit. It is
// created once by the order service and never mutated afterwards.
type Order struct {
	ID               string       `bson:"id" json:"id"`
	SessionID        string       `bson:"session_id" json:"sessionId"`
	TravelerID       string       `bson:"traveler_id" json:"travelerId"`
	Vertical         Vertical     `bson:"vertical" json:"vertical"`
	Item             Item         `bson:"item" json:"item"`
	Attendees        []Attendee   `bson:"attendees" json:"attendees"`
	Price            DerivedPrice `bson:"price" json:"price"`
	ConfirmationCode string       `bson:"confirmation_code" json:"confirmationCode"`
	SeatAssignments  []string     `bson:"seat_assignments,omitempty" json:"seatAssignments,omitempty"`
	PaymentIntentID  string       `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	Status           string       `bson:"status" json:"status"` // e.g. "confirmed"
	CreatedAt        time.Time    `bson:"created_at" json:"createdAt"`
}

// OrderRequest carries everything the order service needs for one
// create-order call.
type OrderRequest struct {
	SessionID  string       `json:"sessionId"`
	TravelerID string       `json:"travelerId"`
	Vertical   Vertical     `json:"vertical"`
	Item       Item         `json:"item"`
	Attendees  []Attendee   `json:"attendees"`
	Price      DerivedPrice `json:"price"`
}
