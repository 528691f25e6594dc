package model

// Vehicle describes a rally car. Handling and Acceleration are dimensionless
// ratings, intended to be roughly on a 0-1 scale. Values are not clamped,
// out of range ratings simply propagate into the lap time formula.
type Vehicle struct {
	Name         string  `json:"name" yaml:"name"`
	Speed        float64 `json:"speed" yaml:"speed"` // base top speed in km/h
	Handling     float64 `json:"handling" yaml:"handling"`
	Acceleration float64 `json:"acceleration" yaml:"acceleration"`
}

// PerformanceModifier combines handling and acceleration into a single
// factor used to scale the base speed.
func (v Vehicle) PerformanceModifier() float64 {
	return (v.Handling + v.Acceleration) / 2
}
