package booking

import (
	"time"

	"voyago/models"
)

// Additional drivers on a rental add a flat share of the daily rate.
const extraDriverRate = 0.10

// derivePrice computes the session total from the selected item and the
// attendee list cardinality. Flights and tours price per attendee; hotels
// price per night per room (two guests share a room); cars price per
// rental day with a surcharge per additional driver.
func derivePrice(vertical models.Vertical, item models.Item, criteria models.SearchCriteria, attendees int) models.DerivedPrice {
	price := models.DerivedPrice{
		Currency: item.Currency,
		PerUnit:  item.UnitPrice,
	}

	switch vertical {
	case models.VerticalHotel:
		nights := daySpan(criteria.Date, criteria.DateTo)
		rooms := (attendees + 1) / 2
		price.Units = nights * rooms
		price.Amount = item.UnitPrice * int64(price.Units)
	case models.VerticalCar:
		days := daySpan(criteria.Date, criteria.DateTo)
		price.Units = days
		price.Amount = item.UnitPrice * int64(days)
		if attendees > 1 {
			surcharge := float64(item.UnitPrice) * extraDriverRate * float64(attendees-1) * float64(days)
			price.Amount += int64(surcharge)
		}
	default: // flight, tour: per attendee
		price.Units = attendees
		price.Amount = item.UnitPrice * int64(attendees)
	}

	return price
}

// daySpan returns the whole days between two YYYY-MM-DD dates, never less
// than one. Criteria are validated before pricing, so parse failures only
// occur on empty optional fields.
func daySpan(from, to string) int {
	start, err1 := time.Parse(models.DateLayout, from)
	end, err2 := time.Parse(models.DateLayout, to)
	if err1 != nil || err2 != nil {
		return 1
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
