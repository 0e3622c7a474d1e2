package models

// SearchCriteria is the normalized search input for a booking session.
// Which fields are required depends on the vertical: flights need origin,
// destination and date; hotels and cars need a destination plus a date
// range; tours need a destination and date.
type SearchCriteria struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination"`
	Date        string `json:"date"`             // "YYYY-MM-DD"
	DateTo      string `json:"dateTo,omitempty"` // checkout / drop-off date
	Guests      int    `json:"guests"`
}

// DateLayout is the calendar format used across criteria and items.
const DateLayout = "2006-01-02"
