package models

import "time"

// Step enumerates the states of the booking workflow machine.
type Step string

const (
	StepSearch       Step = "search"
	StepResults      Step = "results"
	StepCapture      Step = "capture"
	StepConfirmation Step = "confirmation"
	StepSuccess      Step = "success"
)

// ViewState governs which top-level screen is shown before an item is
// selected.
type ViewState string

const (
	ViewSearch  ViewState = "search"
	ViewResults ViewState = "results"
)

// BookingSession is the aggregate root for one in-progress purchase.
// It is mutated only through the booking flow service's transition
// operations; no other component edits these fields directly.
type BookingSession struct {
	ID         string    `json:"id"`
	TravelerID string    `json:"travelerId"`
	Vertical   Vertical  `json:"vertical"`
	Step       Step      `json:"step"`
	View       ViewState `json:"view"`

	Criteria SearchCriteria `json:"criteria"`

	// SeededContextID records the identity of the deep-link context this
	// session was last seeded from, so the same context instance never
	// triggers a second automatic search.
	SeededContextID string `json:"seededContextId,omitempty"`

	// FetchGeneration increases on every issued search; a resolved search
	// may only populate Results while its generation is still current.
	FetchGeneration uint64 `json:"fetchGeneration"`
	Fetching        bool   `json:"fetching"`

	Results      []Item        `json:"results,omitempty"`
	SelectedItem *Item         `json:"selectedItem,omitempty"`
	Attendees    []Attendee    `json:"attendees,omitempty"`
	Price        *DerivedPrice `json:"price,omitempty"`
	Order        *Order        `json:"order,omitempty"`

	// Committing guards against overlapping confirm calls on one session.
	Committing      bool   `json:"committing"`
	LastCommitError string `json:"lastCommitError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
