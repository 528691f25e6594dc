package model

// Weather describes the weather condition during a race.
type Weather struct {
	Condition string `json:"condition" yaml:"condition"`
}

var weatherEffect = map[string]float64{
	"clear": 1.0,
	"rain":  0.8,
	"storm": 0.7,
}

// TractionModifier returns the traction modifier for the condition.
// Unknown conditions are neutral (1.0), same policy as Track.TerrainModifier.
func (w Weather) TractionModifier() float64 {
	if m, ok := weatherEffect[w.Condition]; ok {
		return m
	}
	return 1.0
}
