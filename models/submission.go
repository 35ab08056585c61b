package models

// ListingForm carries the accumulated answers of the multi-step sell
// wizard. The wizard never blocks "next" on empty fields, so every
// field may arrive blank; the submission builder defaults instead of
// rejecting. Numeric fields stay strings here on purpose: blank or
// unparsable input falls through to the default.
type ListingForm struct {
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         string   `json:"year"`
	Price        string   `json:"price"`
	Mileage      string   `json:"mileage"`
	Fuel         string   `json:"fuel"`
	Transmission string   `json:"transmission"`
	BodyType     string   `json:"bodyType"`
	EngineSize   string   `json:"engineSize"`
	Power        string   `json:"power"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Phone        string   `json:"phone"`
	Equipment    []string `json:"equipment"`
	Images       []string `json:"images"`
}
