package booking

import "voyago/models"

// verticalProfile captures how one purchase flow varies from the shared
// workflow core: which criteria fields must be present, which identity
// fields every attendee needs, and what the issued document is called.
type verticalProfile struct {
	NeedsOrigin    bool
	NeedsDateTo    bool
	AttendeeFields []string // beyond FullName: "dateOfBirth", "email", "document"
	AttendeeTerm   string   // "passenger", "participant", "guest", "driver"
	DocumentKind   string
	DefaultOrigin  string
	DefaultDest    string
}

var verticalProfiles = map[models.Vertical]verticalProfile{
	models.VerticalFlight: {
		NeedsOrigin:    true,
		AttendeeFields: []string{"dateOfBirth", "document"},
		AttendeeTerm:   "passenger",
		DocumentKind:   "boarding_pass",
		DefaultOrigin:  "New York",
		DefaultDest:    "London",
	},
	models.VerticalTour: {
		AttendeeFields: []string{"email"},
		AttendeeTerm:   "participant",
		DocumentKind:   "voucher",
		DefaultDest:    "Rome",
	},
	models.VerticalHotel: {
		NeedsDateTo:    true,
		AttendeeFields: []string{"email"},
		AttendeeTerm:   "guest",
		DocumentKind:   "voucher",
		DefaultDest:    "Paris",
	},
	models.VerticalCar: {
		NeedsDateTo:    true,
		AttendeeFields: []string{"dateOfBirth", "document"},
		AttendeeTerm:   "driver",
		DocumentKind:   "rental_agreement",
		DefaultDest:    "Los Angeles",
	},
}

func profileFor(v models.Vertical) verticalProfile {
	return verticalProfiles[v]
}
