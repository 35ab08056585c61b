package submission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavich5/AutoMK/data"
	"github.com/pavich5/AutoMK/models"
)

var submitTime = time.Date(2024, 5, 20, 10, 30, 0, 0, time.UTC)

func TestBuildDefaultsEverything(t *testing.T) {
	car := Build(models.ListingForm{}, submitTime)

	assert.NotEmpty(t, car.ID)
	assert.Equal(t, "Unknown", car.Brand)
	assert.Equal(t, "Model", car.Model)
	assert.Equal(t, 2024, car.Year)
	assert.Equal(t, 0, car.Price)
	assert.Equal(t, 0, car.PriceEur)
	assert.Equal(t, 0, car.Mileage)
	assert.Equal(t, models.FuelPetrol, car.Fuel)
	assert.Equal(t, models.TransmissionManual, car.Transmission)
	assert.Equal(t, models.DriveFWD, car.Drive)
	assert.Equal(t, models.BodySedan, car.BodyType)
	assert.Equal(t, models.EmissionEuro6, car.Emission)
	assert.Equal(t, models.ConditionUsed, car.Condition)
	assert.Equal(t, "black", car.Color)
	assert.Equal(t, 4, car.Doors)
	assert.Equal(t, 5, car.Seats)
	assert.Equal(t, "Skopje", car.Location)
	assert.Equal(t, []string{data.PlaceholderImage}, car.Images)
	assert.Equal(t, "", car.Description)
	assert.Equal(t, []string{}, car.Equipment)
	assert.Equal(t, models.Seller{Name: "Private Seller", Phone: "", Type: models.SellerPrivate}, car.Seller)
	assert.False(t, car.Featured)
	assert.Equal(t, submitTime, car.CreatedAt)
}

func TestBuildPriceOnlyForm(t *testing.T) {
	car := Build(models.ListingForm{Price: "615000"}, submitTime)

	assert.Equal(t, 615000, car.Price)
	assert.Equal(t, 10000, car.PriceEur) // 615000 / 61.5
	assert.Equal(t, "Unknown", car.Brand)
	assert.Equal(t, []string{data.PlaceholderImage}, car.Images)
}

func TestPriceEurRounds(t *testing.T) {
	car := Build(models.ListingForm{Price: "610000"}, submitTime)
	assert.Equal(t, 9919, car.PriceEur) // 610000/61.5 = 9918.699...

	car = Build(models.ListingForm{Price: "0"}, submitTime)
	assert.Equal(t, 0, car.PriceEur)
}

func TestBuildKeepsUserValues(t *testing.T) {
	form := models.ListingForm{
		Brand:        "Mazda",
		Model:        "6",
		Year:         "2019",
		Price:        "890000",
		Mileage:      "74000",
		Fuel:         "diesel",
		Transmission: "automatic",
		BodyType:     "wagon",
		EngineSize:   "2.2",
		Power:        "184",
		Location:     "Ohrid",
		Description:  "Top spec.",
		Phone:        "+389 70 123 456",
		Equipment:    []string{"navigation", "leather_seats"},
		Images:       []string{"data:image/jpeg;base64,abc"},
	}

	car := Build(form, submitTime)
	assert.Equal(t, "Mazda", car.Brand)
	assert.Equal(t, "6", car.Model)
	assert.Equal(t, 2019, car.Year)
	assert.Equal(t, 890000, car.Price)
	assert.Equal(t, 14472, car.PriceEur)
	assert.Equal(t, 74000, car.Mileage)
	assert.Equal(t, models.FuelDiesel, car.Fuel)
	assert.Equal(t, models.TransmissionAutomatic, car.Transmission)
	assert.Equal(t, models.BodyWagon, car.BodyType)
	assert.Equal(t, 2.2, car.EngineSize)
	assert.Equal(t, 184, car.Power)
	assert.Equal(t, "Ohrid", car.Location)
	assert.Equal(t, "Top spec.", car.Description)
	assert.Equal(t, "+389 70 123 456", car.Seller.Phone)
	assert.Equal(t, []string{"navigation", "leather_seats"}, car.Equipment)
	assert.Equal(t, []string{"data:image/jpeg;base64,abc"}, car.Images)
}

func TestUnparsableNumbersFallBack(t *testing.T) {
	form := models.ListingForm{Year: "soon", Price: "cheap", Mileage: "-"}
	car := Build(form, submitTime)

	assert.Equal(t, 2024, car.Year)
	assert.Equal(t, 0, car.Price)
	assert.Equal(t, 0, car.Mileage)
}

func TestBuildAssignsFreshIDs(t *testing.T) {
	a := Build(models.ListingForm{}, submitTime)
	b := Build(models.ListingForm{}, submitTime)
	require.NotEqual(t, a.ID, b.ID)
}
