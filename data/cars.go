// Package data holds the fixed marketplace vocabularies and the seed
// catalog the service boots with.
package data

import (
	"time"

	"github.com/pavich5/AutoMK/models"
)

// PlaceholderImage backs listings submitted without photos, so every
// reachable listing always has at least one image.
const PlaceholderImage = "https://images.unsplash.com/photo-1503736334956-4c8f8e92946d?w=800"

// Brands is the brand vocabulary offered by the filters panel and the
// sell wizard.
var Brands = []string{
	"Audi", "BMW", "Citroën", "Dacia", "Fiat", "Ford", "Honda", "Hyundai",
	"Kia", "Mazda", "Mercedes-Benz", "Nissan", "Opel", "Peugeot", "Renault",
	"Seat", "Škoda", "Tesla", "Toyota", "Volkswagen", "Volvo",
}

// Cities is the location vocabulary.
var Cities = []string{
	"Skopje", "Bitola", "Kumanovo", "Prilep", "Tetovo", "Veles",
	"Ohrid", "Gostivar", "Štip", "Strumica",
}

// EquipmentOptions is the controlled equipment-tag vocabulary. Values
// are stable keys the front end localizes.
var EquipmentOptions = []string{
	"air_conditioning", "alloy_wheels", "bluetooth", "cruise_control",
	"electric_windows", "heated_seats", "keyless_entry", "leather_seats",
	"led_lights", "navigation", "parking_sensors", "rear_camera",
	"sunroof", "xenon_lights",
}

// SeedCars returns the boot catalog in ascending creation order, ready
// to be prepended one by one so the newest listing ends up first.
func SeedCars() []models.Car {
	day := func(d int) time.Time {
		return time.Date(2024, 4, d, 9, 0, 0, 0, time.UTC)
	}

	return []models.Car{
		{
			ID: "seed-astra-2014", Brand: "Opel", Model: "Astra", Year: 2014,
			Price: 430000, PriceEur: 6992, Mileage: 198000,
			Fuel: models.FuelDiesel, Transmission: models.TransmissionManual,
			Drive: models.DriveFWD, BodyType: models.BodyHatchback,
			EngineSize: 1.7, Power: 110, Emission: models.EmissionEuro5,
			Condition: models.ConditionUsed, AccidentFree: true, Imported: true,
			Color: "gray", Doors: 4, Seats: 5, Location: "Kumanovo",
			Images:      []string{"https://images.unsplash.com/photo-1590362891991-f776e747a588?w=800"},
			Description: "Well maintained, recently serviced, new tires.",
			Equipment:   []string{"air_conditioning", "electric_windows", "bluetooth"},
			Seller:      models.Seller{Name: "Dragan", Phone: "+389 70 111 222", Type: models.SellerPrivate},
			CreatedAt:   day(1),
		},
		{
			ID: "seed-megane-2016", Brand: "Renault", Model: "Megane", Year: 2016,
			Price: 540000, PriceEur: 8780, Mileage: 156000,
			Fuel: models.FuelDiesel, Transmission: models.TransmissionManual,
			Drive: models.DriveFWD, BodyType: models.BodyWagon,
			EngineSize: 1.5, Power: 110, Emission: models.EmissionEuro6,
			Condition: models.ConditionUsed, ServiceBook: true, AccidentFree: true,
			Color: "red", Doors: 4, Seats: 5, Location: "Bitola",
			Images:      []string{"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800"},
			Description: "Wagon with full service history.",
			Equipment:   []string{"air_conditioning", "cruise_control", "parking_sensors"},
			Seller:      models.Seller{Name: "Auto Centar Pela", Phone: "+389 47 222 333", Type: models.SellerDealer},
			CreatedAt:   day(3),
		},
		{
			ID: "seed-golf7-2017", Brand: "Volkswagen", Model: "Golf 7", Year: 2017,
			Price: 850000, PriceEur: 13821, Mileage: 132000,
			Fuel: models.FuelDiesel, Transmission: models.TransmissionManual,
			Drive: models.DriveFWD, BodyType: models.BodyHatchback,
			EngineSize: 1.6, Power: 115, Emission: models.EmissionEuro6,
			Condition: models.ConditionUsed, FirstOwner: true, AccidentFree: true, ServiceBook: true,
			Color: "white", Doors: 4, Seats: 5, Location: "Skopje",
			Images: []string{
				"https://images.unsplash.com/photo-1471444928139-48c5bf5173f8?w=800",
				"https://images.unsplash.com/photo-1489824904134-891ab64532f1?w=800",
			},
			Description: "First owner, bought new in Skopje, garage kept.",
			Equipment:   []string{"air_conditioning", "navigation", "parking_sensors", "alloy_wheels"},
			Seller:      models.Seller{Name: "Marko", Phone: "+389 70 333 444", Type: models.SellerPrivate},
			Featured:    true,
			CreatedAt:   day(6),
		},
		{
			ID: "seed-passat-2018", Brand: "Volkswagen", Model: "Passat B8", Year: 2018,
			Price: 1180000, PriceEur: 19187, Mileage: 145000,
			Fuel: models.FuelDiesel, Transmission: models.TransmissionAutomatic,
			Drive: models.DriveFWD, BodyType: models.BodySedan,
			EngineSize: 2.0, Power: 150, Emission: models.EmissionEuro6,
			Condition: models.ConditionUsed, AccidentFree: true, ServiceBook: true, Imported: true,
			Color: "black", Doors: 4, Seats: 5, Location: "Tetovo",
			Images:      []string{"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800"},
			Description: "DSG automatic, imported from Germany with papers.",
			Equipment:   []string{"air_conditioning", "navigation", "leather_seats", "heated_seats", "led_lights"},
			Seller:      models.Seller{Name: "Auto Import MK", Phone: "+389 44 555 666", Type: models.SellerDealer},
			Featured:    true,
			CreatedAt:   day(10),
		},
		{
			ID: "seed-clio-2019", Brand: "Renault", Model: "Clio", Year: 2019,
			Price: 620000, PriceEur: 10081, Mileage: 87000,
			Fuel: models.FuelPetrol, Transmission: models.TransmissionManual,
			Drive: models.DriveFWD, BodyType: models.BodyHatchback,
			EngineSize: 0.9, Power: 90, Emission: models.EmissionEuro6,
			Condition: models.ConditionUsed, FirstOwner: true,
			Color: "orange", Doors: 4, Seats: 5, Location: "Ohrid",
			Images:      []string{"https://images.unsplash.com/photo-1502877338535-766e1452684a?w=800"},
			Description: "City car, low consumption, first owner.",
			Equipment:   []string{"air_conditioning", "bluetooth", "keyless_entry"},
			Seller:      models.Seller{Name: "Elena", Phone: "+389 71 777 888", Type: models.SellerPrivate},
			CreatedAt:   day(14),
		},
		{
			ID: "seed-tucson-2020", Brand: "Hyundai", Model: "Tucson", Year: 2020,
			Price: 1660000, PriceEur: 26992, Mileage: 68000,
			Fuel: models.FuelHybrid, Transmission: models.TransmissionAutomatic,
			Drive: models.DriveAWD, BodyType: models.BodySUV,
			EngineSize: 1.6, Power: 230, Emission: models.EmissionEuro6,
			Condition: models.ConditionUsed, FirstOwner: true, AccidentFree: true, ServiceBook: true,
			Color: "blue", Doors: 4, Seats: 5, Location: "Skopje",
			Images:      []string{"https://images.unsplash.com/photo-1617469767053-d3b523a0b982?w=800"},
			Description: "Hybrid SUV under factory warranty.",
			Equipment: []string{
				"air_conditioning", "navigation", "rear_camera", "heated_seats",
				"cruise_control", "led_lights", "alloy_wheels",
			},
			Seller:    models.Seller{Name: "Hyundai Skopje", Phone: "+389 2 300 400", Type: models.SellerDealer},
			Featured:  true,
			CreatedAt: day(18),
		},
		{
			ID: "seed-octavia-2021", Brand: "Škoda", Model: "Octavia", Year: 2021,
			Price: 1420000, PriceEur: 23089, Mileage: 54000,
			Fuel: models.FuelDiesel, Transmission: models.TransmissionAutomatic,
			Drive: models.DriveFWD, BodyType: models.BodyWagon,
			EngineSize: 2.0, Power: 150, Emission: models.EmissionEuro6,
			Condition: models.ConditionUsed, FirstOwner: true, AccidentFree: true, ServiceBook: true,
			Color: "silver", Doors: 4, Seats: 5, Location: "Veles",
			Images:      []string{"https://images.unsplash.com/photo-1549927681-0b673b8243ab?w=800"},
			Description: "Company car with full dealer history.",
			Equipment:   []string{"air_conditioning", "navigation", "parking_sensors", "cruise_control", "keyless_entry"},
			Seller:      models.Seller{Name: "Fleet Sales DOO", Phone: "+389 43 111 000", Type: models.SellerDealer},
			CreatedAt:   day(22),
		},
		{
			ID: "seed-model3-2022", Brand: "Tesla", Model: "Model 3", Year: 2022,
			Price: 2450000, PriceEur: 39837, Mileage: 31000,
			Fuel: models.FuelElectric, Transmission: models.TransmissionAutomatic,
			Drive: models.DriveRWD, BodyType: models.BodySedan,
			EngineSize: 0, Power: 283, Emission: models.EmissionEuro6,
			Condition: models.ConditionUsed, FirstOwner: true, AccidentFree: true,
			Color: "white", Doors: 4, Seats: 5, Location: "Skopje",
			Images:      []string{"https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=800"},
			Description: "Long range, free supercharging transferred.",
			Equipment: []string{
				"navigation", "rear_camera", "heated_seats", "keyless_entry",
				"led_lights", "cruise_control",
			},
			Seller:    models.Seller{Name: "Viktor", Phone: "+389 78 900 100", Type: models.SellerPrivate},
			CreatedAt: day(25),
		},
	}
}
