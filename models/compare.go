package models

// ComparisonTable is the spec-by-spec matrix for the compare page.
// Columns follow the compare selection's insertion order, rows come in a
// fixed order decided by the compare package. When the selection is
// empty the table carries Empty=true and nothing else: the front end
// renders its dedicated empty state, this is not an error.
type ComparisonTable struct {
	Empty   bool            `json:"empty"`
	Columns []CompareColumn `json:"columns,omitempty"`
	Rows    []CompareRow    `json:"rows,omitempty"`
}

// CompareColumn is the header cell for one compared car.
type CompareColumn struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

// CompareRow is one spec row across all compared cars. Key is the stable
// field key the front end localizes.
type CompareRow struct {
	Key   string        `json:"key"`
	Cells []CompareCell `json:"cells"`
}

// CompareCell holds the raw value for one car in one row. Best marks the
// per-row highlight (lowest price/mileage, highest year/power).
type CompareCell struct {
	Value string `json:"value"`
	Best  bool   `json:"best,omitempty"`
}
