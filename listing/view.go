package listing

import (
	"strings"

	"github.com/pavich5/AutoMK/models"
)

// View materializes the listing page: filter the catalog snapshot, then
// sort. Deterministic for equal inputs, so recomputing on every state
// change is safe.
func View(cars []models.Car, f models.CarFilters, key models.SortOption) []models.Car {
	return SortCars(Filter(cars, f), key)
}

// SeedFromQuery merges navigation query parameters into the filter
// spec. The merge is additive: a brand arriving via the URL joins any
// brands the user picks later instead of replacing them, and an
// existing free-text query is never clobbered.
func SeedFromQuery(f models.CarFilters, brand, q string) models.CarFilters {
	brand = strings.TrimSpace(brand)
	if brand != "" && !contains(f.Brands, brand) {
		f.Brands = append(f.Brands, brand)
	}
	if q = strings.TrimSpace(q); q != "" && f.Query == "" {
		f.Query = q
	}
	return f
}

// ActiveFilterCount counts the populated fields of a spec: non-empty
// sets, present range bounds, flags set to true, a non-empty query.
func ActiveFilterCount(f models.CarFilters) int {
	n := 0
	for _, l := range []int{
		len(f.Brands), len(f.Models), len(f.Locations),
		len(f.FuelTypes), len(f.Transmissions), len(f.BodyTypes),
		len(f.Equipment),
	} {
		if l > 0 {
			n++
		}
	}
	for _, p := range []*int{f.PriceFrom, f.PriceTo, f.YearFrom, f.YearTo, f.MileageFrom, f.MileageTo} {
		if p != nil {
			n++
		}
	}
	if f.FirstOwner {
		n++
	}
	if f.AccidentFree {
		n++
	}
	if f.Query != "" {
		n++
	}
	return n
}
