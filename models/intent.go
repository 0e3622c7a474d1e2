package models

// TripIntent is the structured result of resolving free-form text into a
// booking context: which vertical to enter and the criteria fields the
// traveler already supplied. ContextID identifies one resolution event;
// seeding is keyed on it so re-delivery of the same intent is a no-op.
type TripIntent struct {
	ContextID string            `json:"contextId"`
	Vertical  Vertical          `json:"vertical"`
	Params    map[string]string `json:"params,omitempty"` // origin, destination, date, dateTo, guests
}
