// Package submission turns the sell wizard's accumulated answers into a
// complete listing. It never fails on user input: blank or unparsable
// fields fall back to defaults so publishing is never blocked.
package submission

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pavich5/AutoMK/data"
	"github.com/pavich5/AutoMK/models"
)

// MKDPerEUR is the fixed denar/euro rate used to derive the secondary
// price. Not a live rate on purpose.
const MKDPerEUR = 61.5

// Build constructs a complete listing from the form, defaulting every
// missing field independently. The identifier comes from uuid, the
// creation timestamp from now.
func Build(form models.ListingForm, now time.Time) models.Car {
	price := atoiOr(form.Price, 0)
	mileage := atoiOr(form.Mileage, 0)
	year := atoiOr(form.Year, now.Year())
	engineSize := parseFloatOr(form.EngineSize, 0)
	power := atoiOr(form.Power, 0)

	priceEur := 0
	if price > 0 {
		priceEur = int(math.Round(float64(price) / MKDPerEUR))
	}

	images := form.Images
	if len(images) == 0 {
		images = []string{data.PlaceholderImage}
	}
	equipment := form.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	return models.Car{
		ID:           uuid.NewString(),
		Brand:        stringOr(form.Brand, "Unknown"),
		Model:        stringOr(form.Model, "Model"),
		Year:         year,
		Price:        price,
		PriceEur:     priceEur,
		Mileage:      mileage,
		Fuel:         models.FuelType(stringOr(form.Fuel, string(models.FuelPetrol))),
		Transmission: models.TransmissionType(stringOr(form.Transmission, string(models.TransmissionManual))),
		Drive:        models.DriveFWD, // not user-editable in this flow
		BodyType:     models.BodyType(stringOr(form.BodyType, string(models.BodySedan))),
		EngineSize:   engineSize,
		Power:        power,
		Emission:     models.EmissionEuro6,
		Condition:    models.ConditionUsed,
		Color:        "black",
		Doors:        4,
		Seats:        5,
		Location:     stringOr(form.Location, "Skopje"),
		Images:       images,
		Description:  form.Description,
		Equipment:    equipment,
		Seller: models.Seller{
			Name:  "Private Seller",
			Phone: form.Phone,
			Type:  models.SellerPrivate,
		},
		Featured:  false,
		CreatedAt: now,
	}
}

func stringOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func atoiOr(v string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func parseFloatOr(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}
