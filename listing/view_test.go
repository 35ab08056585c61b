package listing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavich5/AutoMK/models"
)

func TestViewFiltersThenSorts(t *testing.T) {
	cars := fleet()
	f := models.CarFilters{Brands: []string{"Volkswagen"}}

	got := View(cars, f, models.SortPriceLow)
	require.Len(t, got, 2)
	assert.Equal(t, "passat", got[0].ID)
	assert.Equal(t, "golf", got[1].ID)
}

func TestViewIsDeterministic(t *testing.T) {
	cars := fleet()
	f := models.CarFilters{FuelTypes: []models.FuelType{models.FuelDiesel}}

	a := View(cars, f, models.SortNewest)
	b := View(cars, f, models.SortNewest)
	assert.Equal(t, a, b)
}

func TestSeedFromQueryIsAdditive(t *testing.T) {
	f := models.CarFilters{}
	f = SeedFromQuery(f, "Toyota", "")
	assert.Equal(t, []string{"Toyota"}, f.Brands)

	// a later user choice joins the seeded brand instead of replacing it
	f.FuelTypes = []models.FuelType{models.FuelDiesel}
	got := Filter(fleet(), f)
	for _, car := range got {
		assert.Equal(t, "Toyota", car.Brand)
		assert.Equal(t, models.FuelDiesel, car.Fuel)
	}

	// seeding the same brand twice does not duplicate it
	f = SeedFromQuery(f, "Toyota", "")
	assert.Equal(t, []string{"Toyota"}, f.Brands)

	// a blank seed is ignored
	f = SeedFromQuery(f, "  ", "")
	assert.Equal(t, []string{"Toyota"}, f.Brands)
}

func TestSeedFromQueryKeepsExistingQuery(t *testing.T) {
	f := models.CarFilters{Query: "hybrid"}
	f = SeedFromQuery(f, "", "diesel")
	assert.Equal(t, "hybrid", f.Query)

	f = models.CarFilters{}
	f = SeedFromQuery(f, "", "diesel")
	assert.Equal(t, "diesel", f.Query)
}

func TestActiveFilterCount(t *testing.T) {
	assert.Equal(t, 0, ActiveFilterCount(models.CarFilters{}))

	f := models.CarFilters{
		Brands:     []string{"Toyota"},
		PriceFrom:  intp(100000),
		PriceTo:    intp(900000),
		FirstOwner: true,
		Query:      "golf",
	}
	assert.Equal(t, 5, ActiveFilterCount(f))

	// empty arrays and false flags do not count
	f = models.CarFilters{Brands: []string{}, AccidentFree: false}
	assert.Equal(t, 0, ActiveFilterCount(f))
}

func TestApplyUpdateTypedDispatch(t *testing.T) {
	var f models.CarFilters

	require.NoError(t, ApplyUpdate(&f, "brands", json.RawMessage(`["Toyota","Opel"]`)))
	assert.Equal(t, []string{"Toyota", "Opel"}, f.Brands)

	require.NoError(t, ApplyUpdate(&f, "priceFrom", json.RawMessage(`250000`)))
	require.NotNil(t, f.PriceFrom)
	assert.Equal(t, 250000, *f.PriceFrom)

	require.NoError(t, ApplyUpdate(&f, "firstOwner", json.RawMessage(`true`)))
	assert.True(t, f.FirstOwner)

	require.NoError(t, ApplyUpdate(&f, "fuelTypes", json.RawMessage(`["diesel"]`)))
	assert.Equal(t, []models.FuelType{models.FuelDiesel}, f.FuelTypes)

	// null clears a bound back to unconstrained
	require.NoError(t, ApplyUpdate(&f, "priceFrom", json.RawMessage(`null`)))
	assert.Nil(t, f.PriceFrom)
}

func TestApplyUpdateRejectsUnknownField(t *testing.T) {
	var f models.CarFilters
	err := ApplyUpdate(&f, "horsepower", json.RawMessage(`123`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFilterField)
}

func TestApplyUpdateRejectsWrongType(t *testing.T) {
	var f models.CarFilters
	err := ApplyUpdate(&f, "priceFrom", json.RawMessage(`"cheap"`))
	assert.Error(t, err)
}
