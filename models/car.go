package models

import "time"

// ═══════════════════════════════════════════════════════════
// Enumerated values
// ═══════════════════════════════════════════════════════════
//
// All enums travel as stable string keys; the front end resolves
// display strings through its own localization layer.

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"
	FuelLPG      FuelType = "lpg"
)

type TransmissionType string

const (
	TransmissionManual        TransmissionType = "manual"
	TransmissionAutomatic     TransmissionType = "automatic"
	TransmissionSemiAutomatic TransmissionType = "semi_automatic"
)

type DriveType string

const (
	DriveFWD DriveType = "fwd"
	DriveRWD DriveType = "rwd"
	DriveAWD DriveType = "awd"
)

type BodyType string

const (
	BodySedan       BodyType = "sedan"
	BodySUV         BodyType = "suv"
	BodyHatchback   BodyType = "hatchback"
	BodyCoupe       BodyType = "coupe"
	BodyWagon       BodyType = "wagon"
	BodyVan         BodyType = "van"
	BodyConvertible BodyType = "convertible"
	BodyPickup      BodyType = "pickup"
)

type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

type EmissionStandard string

const (
	EmissionEuro3 EmissionStandard = "euro3"
	EmissionEuro4 EmissionStandard = "euro4"
	EmissionEuro5 EmissionStandard = "euro5"
	EmissionEuro6 EmissionStandard = "euro6"
)

type SellerType string

const (
	SellerPrivate SellerType = "private"
	SellerDealer  SellerType = "dealer"
)

// FuelTypes lists every valid fuel key (used by filter metadata).
func FuelTypes() []FuelType {
	return []FuelType{FuelPetrol, FuelDiesel, FuelHybrid, FuelElectric, FuelLPG}
}

func TransmissionTypes() []TransmissionType {
	return []TransmissionType{TransmissionManual, TransmissionAutomatic, TransmissionSemiAutomatic}
}

func DriveTypes() []DriveType {
	return []DriveType{DriveFWD, DriveRWD, DriveAWD}
}

func BodyTypes() []BodyType {
	return []BodyType{BodySedan, BodySUV, BodyHatchback, BodyCoupe, BodyWagon, BodyVan, BodyConvertible, BodyPickup}
}

// ═══════════════════════════════════════════════════════════
// Car listing
// ═══════════════════════════════════════════════════════════

// Seller holds the contact info attached to a listing.
type Seller struct {
	Name  string     `json:"name"`
	Phone string     `json:"phone"`
	Type  SellerType `json:"type"`
}

// Car is a single marketplace listing. Listings are immutable once
// created; edits are out of scope, so there is no update path. Prices
// are whole MKD denars, PriceEur is derived once at creation time from
// the fixed exchange rate (submission.MKDPerEUR).
type Car struct {
	ID           string           `json:"id"`
	Brand        string           `json:"brand"`
	Model        string           `json:"model"`
	Year         int              `json:"year"`
	Price        int              `json:"price"`
	PriceEur     int              `json:"priceEur"`
	Mileage      int              `json:"mileage"`
	Fuel         FuelType         `json:"fuel"`
	Transmission TransmissionType `json:"transmission"`
	Drive        DriveType        `json:"drive"`
	BodyType     BodyType         `json:"bodyType"`
	EngineSize   float64          `json:"engineSize"`
	Power        int              `json:"power"`
	Emission     EmissionStandard `json:"emission"`
	Condition    Condition        `json:"condition"`
	FirstOwner   bool             `json:"firstOwner"`
	AccidentFree bool             `json:"accidentFree"`
	ServiceBook  bool             `json:"serviceBook"`
	Imported     bool             `json:"imported"`
	Color        string           `json:"color"`
	Doors        int              `json:"doors"`
	Seats        int              `json:"seats"`
	Location     string           `json:"location"`
	Images       []string         `json:"images"`
	Description  string           `json:"description"`
	Equipment    []string         `json:"equipment"`
	Seller       Seller           `json:"seller"`
	Featured     bool             `json:"featured"`
	CreatedAt    time.Time        `json:"createdAt"`
}
