package models

// Item is a single bookable candidate returned by an inventory search:
// a flight, a tour departure, a hotel room, or a rental car.
type Item struct {
	ID          string   `bson:"id" json:"id"`
	Vertical    Vertical `bson:"vertical" json:"vertical"`
	Title       string   `bson:"title" json:"title"`             // e.g. "VG204 New York → London"
	Operator    string   `bson:"operator" json:"operator"`       // airline, tour operator, hotel, rental company
	Origin      string   `bson:"origin,omitempty" json:"origin,omitempty"`
	Destination string   `bson:"destination" json:"destination"`
	Date        string   `bson:"date" json:"date"`               // "YYYY-MM-DD"
	UnitPrice   int64    `bson:"unit_price" json:"unitPrice"`    // minor currency units
	Currency    string   `bson:"currency" json:"currency"`
	Capacity    int      `bson:"capacity" json:"capacity"`       // seats / places / rooms / vehicles left
}
