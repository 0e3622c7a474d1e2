package models

// Vertical identifies which purchase flow a booking session belongs to.
type Vertical string

const (
	VerticalFlight Vertical = "flight"
	VerticalTour   Vertical = "tour"
	VerticalHotel  Vertical = "hotel"
	VerticalCar    Vertical = "car"
)

// KnownVerticals lists every vertical the booking engine serves.
var KnownVerticals = []Vertical{VerticalFlight, VerticalTour, VerticalHotel, VerticalCar}

// Valid reports whether v is one of the served verticals.
func (v Vertical) Valid() bool {
	switch v {
	case VerticalFlight, VerticalTour, VerticalHotel, VerticalCar:
		return true
	}
	return false
}
