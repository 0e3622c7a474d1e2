package booking

import (
	"fmt"
	"strings"
	"time"

	"voyago/models"
)

// validateCriteria normalizes and checks search input for one vertical.
// All-or-nothing: any failing field rejects the whole submission.
func validateCriteria(vertical models.Vertical, c *models.SearchCriteria) error {
	profile := profileFor(vertical)
	fields := map[string]string{}

	c.Origin = strings.TrimSpace(c.Origin)
	c.Destination = strings.TrimSpace(c.Destination)
	c.Date = strings.TrimSpace(c.Date)
	c.DateTo = strings.TrimSpace(c.DateTo)

	if profile.NeedsOrigin && c.Origin == "" {
		fields["origin"] = "origin is required"
	}
	if c.Destination == "" {
		fields["destination"] = "destination is required"
	}
	if profile.NeedsOrigin && c.Origin != "" && c.Destination != "" &&
		strings.EqualFold(c.Origin, c.Destination) {
		fields["destination"] = "origin and destination must differ"
	}

	var from time.Time
	if c.Date == "" {
		fields["date"] = "date is required"
	} else {
		var err error
		from, err = time.Parse(models.DateLayout, c.Date)
		if err != nil {
			fields["date"] = fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", c.Date)
		}
	}

	if profile.NeedsDateTo {
		if c.DateTo == "" {
			fields["dateTo"] = "end date is required"
		} else if to, err := time.Parse(models.DateLayout, c.DateTo); err != nil {
			fields["dateTo"] = fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", c.DateTo)
		} else if !from.IsZero() && !to.After(from) {
			fields["dateTo"] = "end date must be after start date"
		}
	}

	if c.Guests <= 0 {
		fields["guests"] = "guests must be a positive integer"
	}

	if len(fields) > 0 {
		return newValidationError(fields)
	}
	return nil
}

// validateAttendees checks the captured list before the session may leave
// the capture step: at least one attendee, every required identity field
// populated. Rejections name every missing field.
func validateAttendees(vertical models.Vertical, attendees []models.Attendee) error {
	profile := profileFor(vertical)

	if len(attendees) == 0 {
		return newValidationError(map[string]string{
			"attendees": fmt.Sprintf("at least one %s is required", profile.AttendeeTerm),
		})
	}

	fields := map[string]string{}
	for i, a := range attendees {
		if strings.TrimSpace(a.FullName) == "" {
			fields[attendeeField(i, "fullName")] = "full name is required"
		}
		for _, f := range profile.AttendeeFields {
			switch f {
			case "dateOfBirth":
				if strings.TrimSpace(a.DateOfBirth) == "" {
					fields[attendeeField(i, "dateOfBirth")] = "date of birth is required"
				} else if _, err := time.Parse(models.DateLayout, a.DateOfBirth); err != nil {
					fields[attendeeField(i, "dateOfBirth")] = "invalid date, expected YYYY-MM-DD"
				}
			case "email":
				if !strings.Contains(a.Email, "@") {
					fields[attendeeField(i, "email")] = "a valid email is required"
				}
			case "document":
				if strings.TrimSpace(a.Document) == "" {
					fields[attendeeField(i, "document")] = "identity document number is required"
				}
			}
		}
	}

	if len(fields) > 0 {
		return newValidationError(fields)
	}
	return nil
}

func attendeeField(i int, name string) string {
	return fmt.Sprintf("attendees[%d].%s", i, name)
}
