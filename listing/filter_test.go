package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavich5/AutoMK/models"
)

func intp(v int) *int { return &v }

func fleet() []models.Car {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Car{
		{
			ID: "golf", Brand: "Volkswagen", Model: "Golf", Year: 2019, Price: 850000,
			Mileage: 95000, Fuel: models.FuelDiesel, Transmission: models.TransmissionManual,
			BodyType: models.BodyHatchback, Location: "Skopje", FirstOwner: true, AccidentFree: true,
			Equipment: []string{"air_conditioning", "navigation", "parking_sensors"},
			CreatedAt: base,
		},
		{
			ID: "passat", Brand: "Volkswagen", Model: "Passat", Year: 2016, Price: 720000,
			Mileage: 180000, Fuel: models.FuelDiesel, Transmission: models.TransmissionAutomatic,
			BodyType: models.BodyWagon, Location: "Bitola", AccidentFree: true,
			Equipment: []string{"air_conditioning"},
			CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID: "yaris", Brand: "Toyota", Model: "Yaris", Year: 2021, Price: 980000,
			Mileage: 30000, Fuel: models.FuelHybrid, Transmission: models.TransmissionAutomatic,
			BodyType: models.BodyHatchback, Location: "Skopje", FirstOwner: true,
			Equipment: []string{"air_conditioning", "rear_camera", "navigation"},
			Description: "City hybrid, one owner",
			CreatedAt:   base.Add(48 * time.Hour),
		},
	}
}

func TestEmptySpecMatchesEverything(t *testing.T) {
	cars := fleet()
	got := Filter(cars, models.CarFilters{})
	assert.Equal(t, cars, got)
}

func TestBrandSetMembership(t *testing.T) {
	got := Filter(fleet(), models.CarFilters{Brands: []string{"Toyota"}})
	require.Len(t, got, 1)
	assert.Equal(t, "yaris", got[0].ID)

	got = Filter(fleet(), models.CarFilters{Brands: []string{"Toyota", "Volkswagen"}})
	assert.Len(t, got, 3)
}

func TestRangeBoundsAreInclusive(t *testing.T) {
	f := models.CarFilters{PriceFrom: intp(720000), PriceTo: intp(850000)}
	got := Filter(fleet(), f)
	require.Len(t, got, 2)
	assert.Equal(t, "golf", got[0].ID)
	assert.Equal(t, "passat", got[1].ID)

	// lower bound alone
	got = Filter(fleet(), models.CarFilters{YearFrom: intp(2019)})
	assert.Len(t, got, 2)

	// upper bound alone
	got = Filter(fleet(), models.CarFilters{MileageTo: intp(95000)})
	assert.Len(t, got, 2)
}

func TestFlagsConstrainOnlyWhenTrue(t *testing.T) {
	got := Filter(fleet(), models.CarFilters{FirstOwner: true})
	assert.Len(t, got, 2)

	got = Filter(fleet(), models.CarFilters{FirstOwner: true, AccidentFree: true})
	require.Len(t, got, 1)
	assert.Equal(t, "golf", got[0].ID)

	// false means unconstrained, not "must be false"
	got = Filter(fleet(), models.CarFilters{FirstOwner: false})
	assert.Len(t, got, 3)
}

func TestEquipmentRequiresSuperset(t *testing.T) {
	got := Filter(fleet(), models.CarFilters{Equipment: []string{"navigation"}})
	assert.Len(t, got, 2)

	got = Filter(fleet(), models.CarFilters{Equipment: []string{"navigation", "rear_camera"}})
	require.Len(t, got, 1)
	assert.Equal(t, "yaris", got[0].ID)

	got = Filter(fleet(), models.CarFilters{Equipment: []string{"massage_seats"}})
	assert.Empty(t, got)
}

func TestConstraintsAreConjunctive(t *testing.T) {
	f := models.CarFilters{
		Brands:    []string{"Volkswagen"},
		FuelTypes: []models.FuelType{models.FuelDiesel},
		Locations: []string{"Skopje"},
	}
	got := Filter(fleet(), f)
	require.Len(t, got, 1)
	assert.Equal(t, "golf", got[0].ID)
}

func TestQueryMatchesBrandModelDescription(t *testing.T) {
	got := Filter(fleet(), models.CarFilters{Query: "toyota"})
	require.Len(t, got, 1)
	assert.Equal(t, "yaris", got[0].ID)

	got = Filter(fleet(), models.CarFilters{Query: "one owner"})
	require.Len(t, got, 1)
	assert.Equal(t, "yaris", got[0].ID)

	got = Filter(fleet(), models.CarFilters{Query: "golf"})
	require.Len(t, got, 1)
	assert.Equal(t, "golf", got[0].ID)
}

// Every returned car satisfies the spec; every excluded car violates it.
func TestFilterPartitionsInput(t *testing.T) {
	cars := fleet()
	f := models.CarFilters{
		Transmissions: []models.TransmissionType{models.TransmissionAutomatic},
		PriceTo:       intp(900000),
	}

	kept := Filter(cars, f)
	keptIDs := make(map[string]bool)
	for _, car := range kept {
		assert.True(t, Matches(car, f))
		keptIDs[car.ID] = true
	}
	for _, car := range cars {
		if !keptIDs[car.ID] {
			assert.False(t, Matches(car, f))
		}
	}
}
