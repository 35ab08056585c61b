package models

// CarFilters is the sparse set of user-chosen constraints narrowing the
// catalog. Every field is independently optional: nil/empty means
// unconstrained. Populated fields are AND-combined by the listing engine.
type CarFilters struct {
	Brands        []string           `json:"brands,omitempty"`
	Models        []string           `json:"models,omitempty"`
	Locations     []string           `json:"locations,omitempty"`
	FuelTypes     []FuelType         `json:"fuelTypes,omitempty"`
	Transmissions []TransmissionType `json:"transmissions,omitempty"`
	BodyTypes     []BodyType         `json:"bodyTypes,omitempty"`
	Equipment     []string           `json:"equipment,omitempty"`
	PriceFrom     *int               `json:"priceFrom,omitempty"`
	PriceTo       *int               `json:"priceTo,omitempty"`
	YearFrom      *int               `json:"yearFrom,omitempty"`
	YearTo        *int               `json:"yearTo,omitempty"`
	MileageFrom   *int               `json:"mileageFrom,omitempty"`
	MileageTo     *int               `json:"mileageTo,omitempty"`
	FirstOwner    bool               `json:"firstOwner,omitempty"`
	AccidentFree  bool               `json:"accidentFree,omitempty"`
	Query         string             `json:"q,omitempty"`
}

// SortOption is the chosen total-ordering rule applied to a filtered view.
type SortOption string

const (
	SortNewest      SortOption = "newest"
	SortOldest      SortOption = "oldest"
	SortPriceLow    SortOption = "price_low"
	SortPriceHigh   SortOption = "price_high"
	SortMileageLow  SortOption = "mileage_low"
	SortMileageHigh SortOption = "mileage_high"
	SortYearNew     SortOption = "year_new"
	SortYearOld     SortOption = "year_old"
)

// DefaultSort is applied when a session has not picked anything yet.
const DefaultSort = SortNewest

// ValidSort reports whether s is one of the eight known sort keys.
func ValidSort(s SortOption) bool {
	switch s {
	case SortNewest, SortOldest, SortPriceLow, SortPriceHigh,
		SortMileageLow, SortMileageHigh, SortYearNew, SortYearOld:
		return true
	}
	return false
}

// FilterMetadata represents everything the filters panel needs to render:
// the fixed vocabularies plus bounds derived from the live catalog.
type FilterMetadata struct {
	Brands        []string           `json:"brands"`
	Cities        []string           `json:"cities"`
	FuelTypes     []FuelType         `json:"fuelTypes"`
	Transmissions []TransmissionType `json:"transmissions"`
	BodyTypes     []BodyType         `json:"bodyTypes"`
	Drives        []DriveType        `json:"drives"`
	Equipment     []string           `json:"equipment"`
	PriceRange    *RangeData         `json:"priceRange"`
	YearRange     *RangeData         `json:"yearRange"`
	Total         int                `json:"total"`
}

// RangeData represents the minimum and maximum of a numeric listing field.
type RangeData struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
