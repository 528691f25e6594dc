// Package catalog provides the vehicles and tracks available for racing,
// either the built in defaults or a custom set loaded from a YAML file.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/rallysim/turbo-rally/pkg/model"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrTrackNotFound   = errors.New("track not found")
)

type Catalog struct {
	Vehicles []model.Vehicle `yaml:"vehicles"`
	Tracks   []model.Track   `yaml:"tracks"`
}

// Default returns the built in catalog.
func Default() *Catalog {
	return &Catalog{
		Vehicles: []model.Vehicle{
			{Name: "Dust Rider", Speed: 140, Handling: 0.9, Acceleration: 0.8},
			{Name: "Mud Crusher", Speed: 130, Handling: 0.95, Acceleration: 0.85},
			{Name: "Gravel Master", Speed: 150, Handling: 0.85, Acceleration: 0.9},
			{Name: "Sand Storm", Speed: 145, Handling: 0.8, Acceleration: 0.88},
			{Name: "Rock Hopper", Speed: 135, Handling: 0.92, Acceleration: 0.83},
		},
		Tracks: []model.Track{
			{
				Name:      "Forest Trail",
				Terrain:   "mud",
				LengthKm:  5.0,
				Obstacles: []string{"log", "puddle", "rock"},
			},
			{
				Name:      "Gravel Pass",
				Terrain:   "gravel",
				LengthKm:  4.5,
				Obstacles: []string{"rock", "ditch"},
			},
			{
				Name:      "Desert Run",
				Terrain:   "sand",
				LengthKm:  6.0,
				Obstacles: []string{"dune", "rock", "cactus"},
			},
		},
	}
}

// FromFile loads a catalog from a YAML file.
func FromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var ret Catalog
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return &ret, nil
}

func (c *Catalog) VehicleByName(name string) (model.Vehicle, error) {
	if v, ok := lo.Find(c.Vehicles, func(item model.Vehicle) bool {
		return item.Name == name
	}); ok {
		return v, nil
	}
	return model.Vehicle{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, name)
}

func (c *Catalog) TrackByName(name string) (model.Track, error) {
	if t, ok := lo.Find(c.Tracks, func(item model.Track) bool {
		return item.Name == name
	}); ok {
		return t, nil
	}
	return model.Track{}, fmt.Errorf("%w: %s", ErrTrackNotFound, name)
}
