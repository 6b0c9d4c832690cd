package api

type CalculateRequest struct {
	Quantity      *int     `json:"quantity"`
	UnitPrice     *float64 `json:"unit_price"`
	TaxPercentage *float64 `json:"tax_percentage"`
	Profile       string   `json:"profile"`
}

type OrderSummary struct {
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Subtotal      float64 `json:"subtotal"`
	TaxPercentage float64 `json:"tax_percentage"`
	TaxAmount     float64 `json:"tax_amount"`
	FinalPrice    float64 `json:"final_price"`
}

type TaxProfile struct {
	Name          string  `json:"name"`
	TaxPercentage float64 `json:"tax_percentage"`
	Description   string  `json:"description,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}
