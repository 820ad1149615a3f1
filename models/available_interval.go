package models

// TimeInterval is a half-open [Start, End) range in minutes from midnight.
type TimeInterval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Duration returns the interval length in minutes.
func (i TimeInterval) Duration() int {
	return i.End - i.Start
}

// PricingResult is the priced outcome of a booking interval.
type PricingResult struct {
	Cost   float64 `json:"cost"`
	Detail string  `json:"detail"`
}

// AvailabilityResult is the answer to an availability check.
type AvailabilityResult struct {
	Available      bool   `json:"available"`
	Message        string `json:"message"`
	SpotsRemaining *int   `json:"spotsRemaining,omitempty"`
}
