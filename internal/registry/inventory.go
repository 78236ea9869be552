package registry

import (
	"errors"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
)

// errInventory wraps inventory validation failures so New has a
// single error construction path.
func errInventory(msg string) error { return errors.New("registry: " + msg) }

// DefaultInventory returns the hotel's fixed room list: two
// singles, two doubles and two suites.  Rates are flat per night,
// in cents.
func DefaultInventory() []model.Room {
	return []model.Room{
		{Number: 1, Category: model.CategorySingle, NightlyRateCents: 25000},
		{Number: 2, Category: model.CategorySingle, NightlyRateCents: 25000},
		{Number: 3, Category: model.CategoryDouble, NightlyRateCents: 35000},
		{Number: 4, Category: model.CategoryDouble, NightlyRateCents: 35000},
		{Number: 5, Category: model.CategorySuite, NightlyRateCents: 55000},
		{Number: 6, Category: model.CategorySuite, NightlyRateCents: 55000},
	}
}
