package models

// Attendee is a passenger, guest, or driver captured before confirmation.
// Required identity fields vary per vertical: flights require a passport
// number and date of birth, cars a licence number and date of birth,
// tours and hotels a contact email.
type Attendee struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth,omitempty"` // "YYYY-MM-DD"
	Email       string `json:"email,omitempty"`
	Document    string `json:"document,omitempty"` // passport or licence number
}

// DerivedPrice is the total computed from the selected item and the
// attendee list. It is always recomputed, never edited directly.
type DerivedPrice struct {
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
	PerUnit  int64  `json:"perUnit"`
	Units    int    `json:"units"` // attendees, or nights×rooms, or rental days
}
