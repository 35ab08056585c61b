// Package compare builds the spec-by-spec comparison matrix for up to
// three listings.
package compare

import (
	"strconv"

	"github.com/pavich5/AutoMK/models"
)

type direction int

const (
	bestNone direction = iota
	bestMin
	bestMax
)

// rowSpec describes one comparison row: a stable key, a typed value
// extractor, and — for rows with a well-defined "better" direction — a
// numeric extractor plus that direction. No untyped field access.
type rowSpec struct {
	key    string
	value  func(models.Car) string
	number func(models.Car) float64
	best   direction
}

// rows is the fixed row order of the comparison table.
var rows = []rowSpec{
	{key: "brand", value: func(c models.Car) string { return c.Brand }},
	{key: "model", value: func(c models.Car) string { return c.Model }},
	{
		key:    "year",
		value:  func(c models.Car) string { return strconv.Itoa(c.Year) },
		number: func(c models.Car) float64 { return float64(c.Year) },
		best:   bestMax,
	},
	{
		key:    "price",
		value:  func(c models.Car) string { return strconv.Itoa(c.Price) },
		number: func(c models.Car) float64 { return float64(c.Price) },
		best:   bestMin,
	},
	{
		key:    "mileage",
		value:  func(c models.Car) string { return strconv.Itoa(c.Mileage) },
		number: func(c models.Car) float64 { return float64(c.Mileage) },
		best:   bestMin,
	},
	{key: "fuel", value: func(c models.Car) string { return string(c.Fuel) }},
	{key: "transmission", value: func(c models.Car) string { return string(c.Transmission) }},
	{key: "bodyType", value: func(c models.Car) string { return string(c.BodyType) }},
	{key: "engineSize", value: func(c models.Car) string { return strconv.FormatFloat(c.EngineSize, 'f', -1, 64) }},
	{
		key:    "power",
		value:  func(c models.Car) string { return strconv.Itoa(c.Power) },
		number: func(c models.Car) float64 { return float64(c.Power) },
		best:   bestMax,
	},
	{key: "drive", value: func(c models.Car) string { return string(c.Drive) }},
	{key: "doors", value: func(c models.Car) string { return strconv.Itoa(c.Doors) }},
	{key: "seats", value: func(c models.Car) string { return strconv.Itoa(c.Seats) }},
	{key: "color", value: func(c models.Car) string { return c.Color }},
}

// BuildTable builds the comparison matrix. Column order follows the
// input order, which the caller derives from the compare selection's
// insertion order. An empty input yields the explicit empty state.
func BuildTable(cars []models.Car) models.ComparisonTable {
	if len(cars) == 0 {
		return models.ComparisonTable{Empty: true}
	}

	table := models.ComparisonTable{
		Columns: make([]models.CompareColumn, len(cars)),
		Rows:    make([]models.CompareRow, 0, len(rows)),
	}
	for i, car := range cars {
		col := models.CompareColumn{ID: car.ID, Brand: car.Brand, Model: car.Model, Price: car.Price}
		if len(car.Images) > 0 {
			col.Image = car.Images[0]
		}
		table.Columns[i] = col
	}

	for _, spec := range rows {
		row := models.CompareRow{Key: spec.key, Cells: make([]models.CompareCell, len(cars))}

		var target float64
		if spec.best != bestNone {
			target = spec.number(cars[0])
			for _, car := range cars[1:] {
				n := spec.number(car)
				if (spec.best == bestMin && n < target) || (spec.best == bestMax && n > target) {
					target = n
				}
			}
		}

		for i, car := range cars {
			cell := models.CompareCell{Value: spec.value(car)}
			if spec.best != bestNone && spec.number(car) == target {
				cell.Best = true
			}
			row.Cells[i] = cell
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
