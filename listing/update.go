package listing

import (
	"encoding/json"
	"fmt"

	"github.com/pavich5/AutoMK/models"
)

// ErrUnknownFilterField is returned by ApplyUpdate for a field key
// outside the known filter vocabulary.
var ErrUnknownFilterField = fmt.Errorf("listing: unknown filter field")

// filterFields maps each known filter field to a typed decoder. The
// table is resolved once at init, so the generic single-field updater
// the panel drives never does untyped lookups. A JSON null clears the
// field back to unconstrained.
var filterFields = map[string]func(*models.CarFilters, json.RawMessage) error{
	"brands":        func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.Brands) },
	"models":        func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.Models) },
	"locations":     func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.Locations) },
	"fuelTypes":     func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.FuelTypes) },
	"transmissions": func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.Transmissions) },
	"bodyTypes":     func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.BodyTypes) },
	"equipment":     func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.Equipment) },
	"priceFrom":     func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.PriceFrom) },
	"priceTo":       func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.PriceTo) },
	"yearFrom":      func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.YearFrom) },
	"yearTo":        func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.YearTo) },
	"mileageFrom":   func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.MileageFrom) },
	"mileageTo":     func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.MileageTo) },
	"firstOwner":    func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.FirstOwner) },
	"accidentFree":  func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.AccidentFree) },
	"q":             func(f *models.CarFilters, raw json.RawMessage) error { return json.Unmarshal(raw, &f.Query) },
}

// ApplyUpdate sets one filter field from its JSON value. Every field is
// independently optional, so a partial update can never leave the spec
// in an invalid state.
func ApplyUpdate(f *models.CarFilters, field string, raw json.RawMessage) error {
	apply, ok := filterFields[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFilterField, field)
	}
	if err := apply(f, raw); err != nil {
		return fmt.Errorf("filter field %q: %w", field, err)
	}
	return nil
}

// FilterFieldNames lists the known field keys, for error payloads.
func FilterFieldNames() []string {
	names := make([]string, 0, len(filterFields))
	for name := range filterFields {
		names = append(names, name)
	}
	return names
}
