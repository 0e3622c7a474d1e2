package booking

import (
	"context"
	"fmt"

	"voyago/models"
)

// Issuance renders display records from the session's terminal order: one
// document per attendee plus a summary. It is a pure read; the order is
// already trusted.
func (s *DefaultBookingFlowService) Issuance(ctx context.Context, sessionID string) (*models.IssuancePack, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSuccess || session.Order == nil {
		return nil, newFlowError("noOrder", "issuance requires a completed booking")
	}
	pack := PresentIssuance(session.Order)
	return &pack, nil
}

// PresentIssuance builds the issuance pack for a completed order.
func PresentIssuance(order *models.Order) models.IssuancePack {
	profile := profileFor(order.Vertical)

	docs := make([]models.IssuanceDocument, 0, len(order.Attendees))
	for i, a := range order.Attendees {
		doc := models.IssuanceDocument{
			OrderID:      order.ID,
			Kind:         profile.DocumentKind,
			AttendeeName: a.FullName,
			Reference:    fmt.Sprintf("%s-%s-%d", order.ConfirmationCode, order.Item.ID, i+1),
		}
		if i < len(order.SeatAssignments) {
			doc.Seat = order.SeatAssignments[i]
		}
		docs = append(docs, doc)
	}

	return models.IssuancePack{
		Summary: models.IssuanceSummary{
			OrderID:          order.ID,
			ConfirmationCode: order.ConfirmationCode,
			ItemTitle:        order.Item.Title,
			Date:             order.Item.Date,
			Attendees:        len(order.Attendees),
			Price:            order.Price,
		},
		Documents: docs,
	}
}
