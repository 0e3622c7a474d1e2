package booking

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
)

func TestDerivePriceFlightPerPassenger(t *testing.T) {
	item := models.Item{UnitPrice: 25000, Currency: "usd"}
	criteria := models.SearchCriteria{Date: "2026-10-01"}

	price := derivePrice(models.VerticalFlight, item, criteria, 3)
	assert.Equal(t, int64(75000), price.Amount)
	assert.Equal(t, 3, price.Units)
	assert.Equal(t, "usd", price.Currency)
}

func TestDerivePriceHotelNightsTimesRooms(t *testing.T) {
	item := models.Item{UnitPrice: 12000, Currency: "eur"}
	criteria := models.SearchCriteria{Date: "2026-10-01", DateTo: "2026-10-03"} // 2 nights

	// Three guests share two rooms.
	price := derivePrice(models.VerticalHotel, item, criteria, 3)
	assert.Equal(t, 4, price.Units) // 2 nights × 2 rooms
	assert.Equal(t, int64(48000), price.Amount)

	// A couple fits in one room.
	price = derivePrice(models.VerticalHotel, item, criteria, 2)
	assert.Equal(t, 2, price.Units)
	assert.Equal(t, int64(24000), price.Amount)
}

func TestDerivePriceCarExtraDriverSurcharge(t *testing.T) {
	item := models.Item{UnitPrice: 10000, Currency: "usd"}
	criteria := models.SearchCriteria{Date: "2026-10-01", DateTo: "2026-10-04"} // 3 days

	price := derivePrice(models.VerticalCar, item, criteria, 1)
	assert.Equal(t, int64(30000), price.Amount)
	assert.Equal(t, 3, price.Units)

	// One extra driver adds 10% of the daily rate per day.
	price = derivePrice(models.VerticalCar, item, criteria, 2)
	assert.Equal(t, int64(33000), price.Amount)
}

func TestDaySpanNeverBelowOne(t *testing.T) {
	assert.Equal(t, 1, daySpan("2026-10-01", "2026-10-01"))
	assert.Equal(t, 1, daySpan("2026-10-01", ""))
	assert.Equal(t, 3, daySpan("2026-10-01", "2026-10-04"))
}
