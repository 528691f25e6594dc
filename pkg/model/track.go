package model

// Track describes a rally stage. Only the number of obstacles matters for
// the simulation, their names are informational.
type Track struct {
	Name      string   `json:"name" yaml:"name"`
	Terrain   string   `json:"terrain" yaml:"terrain"`
	LengthKm  float64  `json:"lengthKm" yaml:"lengthKm"`
	Obstacles []string `json:"obstacles" yaml:"obstacles"`
}

// terrainEffect holds the speed modifiers per terrain category.
var terrainEffect = map[string]float64{
	"mud":    0.7,
	"gravel": 0.85,
	"sand":   0.8,
}

// TerrainModifier returns the speed modifier for the track terrain.
// Unknown terrain values are neutral (1.0), not an error.
func (t Track) TerrainModifier() float64 {
	if m, ok := terrainEffect[t.Terrain]; ok {
		return m
	}
	return 1.0
}
