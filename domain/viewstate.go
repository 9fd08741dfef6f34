package domain

// ViewState is the caller-observable state of a mounted chart. Crosshair
// fields are nil whenever the pointer is not over a valid data point.
type ViewState struct {
	HasData       bool     `json:"hasData"`
	CrosshairTime *string  `json:"crosshairTime"`
	CrosshairX    *float64 `json:"crosshairX"`
}
