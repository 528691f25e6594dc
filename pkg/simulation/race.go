package simulation

import (
	"cmp"
	"maps"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/rallysim/turbo-rally/pkg/model"
)

// bounds of the random obstacle drag drawn once per lap
const (
	minObstacleDrag = 0.5
	maxObstacleDrag = 1.5
)

// Race simulates laps on one track under one weather condition and keeps a
// leaderboard of total times per vehicle name. A Race instance is meant to be
// driven by a single caller, no internal locking is done.
type Race struct {
	track       model.Track
	weather     model.Weather
	laps        int
	rand        RandSource
	observer    Observer
	leaderboard map[string]float64 // key: vehicle name
}

type RaceOption func(r *Race)

// WithRandSource replaces the default time seeded source.
func WithRandSource(src RandSource) RaceOption {
	return func(r *Race) {
		r.rand = src
	}
}

// WithObserver sets the sink for lap and race completion events.
func WithObserver(o Observer) RaceOption {
	return func(r *Race) {
		r.observer = o
	}
}

// NewRace creates a race. Inputs are taken as given: laps <= 0 or degenerate
// track values are permitted and produce defined degenerate output (see Run).
func NewRace(track model.Track, weather model.Weather, laps int, opts ...RaceOption) *Race {
	ret := &Race{
		track:       track,
		weather:     weather,
		laps:        laps,
		rand:        NewRandSource(),
		observer:    NopObserver{},
		leaderboard: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (r *Race) Track() model.Track     { return r.track }
func (r *Race) Weather() model.Weather { return r.weather }
func (r *Race) Laps() int              { return r.laps }

// ComputeLapTime calculates the time in minutes for a single lap. Speed is
// degraded multiplicatively by terrain and weather, then additively by a
// randomized obstacle drag: one uniform draw per lap scaled by the obstacle
// count, not one draw per obstacle. The denominator is floored at 1 so the
// result stays finite and positive for any input.
func (r *Race) ComputeLapTime(vehicle model.Vehicle) float64 {
	baseSpeed := vehicle.Speed * vehicle.PerformanceModifier()
	effectiveSpeed := baseSpeed * r.track.TerrainModifier() * r.weather.TractionModifier()
	obstaclePenalty := float64(len(r.track.Obstacles)) *
		r.rand.UniformFloat64(minObstacleDrag, maxObstacleDrag)
	timeHours := r.track.LengthKm / math.Max(effectiveSpeed-obstaclePenalty, 1)
	return timeHours * 60
}

// Run simulates all laps for the given vehicle and records the total time on
// the leaderboard, overwriting any earlier entry for the same vehicle name.
// Returns the per lap times in lap order. With laps <= 0 the returned slice
// is empty and the leaderboard is left untouched.
func (r *Race) Run(vehicle model.Vehicle) []float64 {
	times := make([]float64, 0, max(r.laps, 0))
	for lap := 1; lap <= r.laps; lap++ {
		lapTime := r.ComputeLapTime(vehicle)
		times = append(times, lapTime)
		r.observer.LapCompleted(lap, lapTime)
	}
	if len(times) == 0 {
		return times
	}
	total := lo.Sum(times)
	r.observer.RaceCompleted(total)
	r.leaderboard[vehicle.Name] = total
	return times
}

// Leaderboard returns a copy of the current leaderboard.
func (r *Race) Leaderboard() map[string]float64 {
	return maps.Clone(r.leaderboard)
}

// Standing is one ranked leaderboard entry.
type Standing struct {
	Pos          int
	VehicleName  string
	TotalMinutes float64
}

// Standings returns the leaderboard ranked by total time ascending.
// Ties are broken by vehicle name to keep the order deterministic.
func (r *Race) Standings() []Standing {
	ret := lo.MapToSlice(r.leaderboard, func(name string, total float64) Standing {
		return Standing{VehicleName: name, TotalMinutes: total}
	})
	slices.SortStableFunc(ret, func(a, b Standing) int {
		if c := cmp.Compare(a.TotalMinutes, b.TotalMinutes); c != 0 {
			return c
		}
		return cmp.Compare(a.VehicleName, b.VehicleName)
	})
	for i := range ret {
		ret[i].Pos = i + 1
	}
	return ret
}
