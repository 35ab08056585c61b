// Package listing implements the filter/sort/compare view engine: pure
// data-in/data-out functions the HTTP layer calls on every relevant
// state change. Nothing in here touches the catalog or a session.
package listing

import (
	"strings"

	"github.com/pavich5/AutoMK/models"
)

// Matches evaluates every populated field of the filter spec as an
// AND-combined conjunction. A car matches only if all populated
// constraints pass; an absent field is unconstrained.
func Matches(car models.Car, f models.CarFilters) bool {
	if !inSet(f.Brands, car.Brand) {
		return false
	}
	if !inSet(f.Models, car.Model) {
		return false
	}
	if !inSet(f.Locations, car.Location) {
		return false
	}
	if !inSet(f.FuelTypes, car.Fuel) {
		return false
	}
	if !inSet(f.Transmissions, car.Transmission) {
		return false
	}
	if !inSet(f.BodyTypes, car.BodyType) {
		return false
	}
	if !inRange(f.PriceFrom, f.PriceTo, car.Price) {
		return false
	}
	if !inRange(f.YearFrom, f.YearTo, car.Year) {
		return false
	}
	if !inRange(f.MileageFrom, f.MileageTo, car.Mileage) {
		return false
	}
	if f.FirstOwner && !car.FirstOwner {
		return false
	}
	if f.AccidentFree && !car.AccidentFree {
		return false
	}
	// every required tag must be present; extra car tags are fine
	for _, tag := range f.Equipment {
		if !contains(car.Equipment, tag) {
			return false
		}
	}
	if f.Query != "" && !matchesQuery(car, f.Query) {
		return false
	}
	return true
}

// inSet passes when the spec's set is empty or the value is a member.
func inSet[T ~string](set []T, v T) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// inRange is inclusive on both ends; a nil bound is absent.
func inRange(from, to *int, v int) bool {
	if from != nil && v < *from {
		return false
	}
	if to != nil && v > *to {
		return false
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// matchesQuery does a case-insensitive substring match against the
// brand, model and description of a listing.
func matchesQuery(car models.Car, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(car.Brand), q) ||
		strings.Contains(strings.ToLower(car.Model), q) ||
		strings.Contains(strings.ToLower(car.Description), q)
}

// Filter returns the cars matching f, preserving input order.
func Filter(cars []models.Car, f models.CarFilters) []models.Car {
	out := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if Matches(car, f) {
			out = append(out, car)
		}
	}
	return out
}
