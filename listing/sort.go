package listing

import (
	"sort"

	"github.com/pavich5/AutoMK/models"
)

// SortCars returns a new slice ordered by the given key. The input is
// never modified. The sort is stable: equal-key cars keep their
// relative order, so repeated sorts are reproducible.
func SortCars(cars []models.Car, key models.SortOption) []models.Car {
	out := make([]models.Car, len(cars))
	copy(out, cars)

	var less func(a, b models.Car) bool
	switch key {
	case models.SortOldest:
		less = func(a, b models.Car) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case models.SortPriceLow:
		less = func(a, b models.Car) bool { return a.Price < b.Price }
	case models.SortPriceHigh:
		less = func(a, b models.Car) bool { return a.Price > b.Price }
	case models.SortMileageLow:
		less = func(a, b models.Car) bool { return a.Mileage < b.Mileage }
	case models.SortMileageHigh:
		less = func(a, b models.Car) bool { return a.Mileage > b.Mileage }
	case models.SortYearNew:
		less = func(a, b models.Car) bool { return a.Year > b.Year }
	case models.SortYearOld:
		less = func(a, b models.Car) bool { return a.Year < b.Year }
	default: // newest
		less = func(a, b models.Car) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
