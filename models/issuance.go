package models

// IssuanceDocument is one travel document rendered from a completed order:
// a boarding pass per passenger, a voucher per guest, or a rental
// agreement per driver. Reference is the opaque scannable payload.
type IssuanceDocument struct {
	OrderID      string `json:"orderId"`
	Kind         string `json:"kind"` // "boarding_pass", "voucher", "rental_agreement"
	AttendeeName string `json:"attendeeName"`
	Seat         string `json:"seat,omitempty"`
	Reference    string `json:"reference"`
}

// IssuanceSummary is the single per-order summary record.
type IssuanceSummary struct {
	OrderID          string       `json:"orderId"`
	ConfirmationCode string       `json:"confirmationCode"`
	ItemTitle        string       `json:"itemTitle"`
	Date             string       `json:"date"`
	Attendees        int          `json:"attendees"`
	Price            DerivedPrice `json:"price"`
}

// IssuancePack bundles the summary with one document per attendee.
type IssuancePack struct {
	Summary   IssuanceSummary    `json:"summary"`
	Documents []IssuanceDocument `json:"documents"`
}
