//nolint:funlen // ok for tests
package simulation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/rallysim/turbo-rally/pkg/model"
)

// fixedSource replays a fixed list of draw values.
type fixedSource struct {
	values []float64
	idx    int
}

func (s *fixedSource) UniformFloat64(minVal, _ float64) float64 {
	if len(s.values) == 0 {
		return minVal
	}
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

type lapEvent struct {
	Lap     int
	Minutes float64
}

// captureObserver records all events for later inspection.
type captureObserver struct {
	laps   []lapEvent
	totals []float64
}

func (o *captureObserver) LapCompleted(lap int, minutes float64) {
	o.laps = append(o.laps, lapEvent{Lap: lap, Minutes: minutes})
}

func (o *captureObserver) RaceCompleted(totalMinutes float64) {
	o.totals = append(o.totals, totalMinutes)
}

func testVehicle() model.Vehicle {
	return model.Vehicle{Name: "Test Car", Speed: 140, Handling: 0.9, Acceleration: 0.8}
}

func testTrack() model.Track {
	return model.Track{Name: "Test Track", Terrain: "gravel", LengthKm: 1.0}
}

func TestRace_ComputeLapTime_NoObstacles(t *testing.T) {
	r := NewRace(testTrack(), model.Weather{Condition: "clear"}, 1,
		WithRandSource(&fixedSource{values: []float64{1.5}}))

	// zero obstacles: the penalty term vanishes regardless of the draw
	expected := 1.0 / (140 * 0.85 * 0.85) * 60
	assert.InDelta(t, expected, r.ComputeLapTime(testVehicle()), 1e-12)
}

func TestRace_ComputeLapTime_WeatherSlowsDown(t *testing.T) {
	src := &fixedSource{}
	clear := NewRace(testTrack(), model.Weather{Condition: "clear"}, 1, WithRandSource(src))
	storm := NewRace(testTrack(), model.Weather{Condition: "storm"}, 1, WithRandSource(src))

	clearTime := clear.ComputeLapTime(testVehicle())
	stormTime := storm.ComputeLapTime(testVehicle())
	assert.Greater(t, stormTime, clearTime)
}

func TestRace_ComputeLapTime_ObstaclePenaltyScalesByCount(t *testing.T) {
	track := testTrack()
	track.Obstacles = []string{"rock", "ditch"}
	// one draw per lap computation, scaled by the obstacle count
	r := NewRace(track, model.Weather{Condition: "clear"}, 1,
		WithRandSource(&fixedSource{values: []float64{0.75}}))

	expected := 1.0 / (140*0.85*0.85 - 2*0.75) * 60
	assert.InDelta(t, expected, r.ComputeLapTime(testVehicle()), 1e-12)
}

func TestRace_ComputeLapTime_DenominatorFloor(t *testing.T) {
	// 60 km/h effective speed, crushed well below zero by 100 obstacles
	vehicle := model.Vehicle{Name: "Slow", Speed: 60, Handling: 1, Acceleration: 1}
	track := model.Track{Name: "Blocked", Terrain: "mud", LengthKm: 2.0}
	for range 100 {
		track.Obstacles = append(track.Obstacles, "rock")
	}
	r := NewRace(track, model.Weather{Condition: "storm"}, 1,
		WithRandSource(&fixedSource{values: []float64{1.5}}))

	// denominator is floored at 1, so the lap time degrades to lengthKm * 60
	assert.InDelta(t, 120.0, r.ComputeLapTime(vehicle), 1e-12)
}

func TestRace_Run(t *testing.T) {
	obs := &captureObserver{}
	r := NewRace(testTrack(), model.Weather{Condition: "clear"}, 3,
		WithRandSource(&fixedSource{values: []float64{0.5}}),
		WithObserver(obs))

	times := r.Run(testVehicle())

	assert.Len(t, times, 3)
	for _, lapTime := range times {
		assert.Positive(t, lapTime)
	}
	// no obstacles: every lap is identical regardless of the draw
	lapTime := r.ComputeLapTime(testVehicle())

	expectedLaps := []lapEvent{
		{Lap: 1, Minutes: lapTime},
		{Lap: 2, Minutes: lapTime},
		{Lap: 3, Minutes: lapTime},
	}
	if diff := cmp.Diff(expectedLaps, obs.laps); diff != "" {
		t.Errorf("lap events mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, obs.totals, 1)
	assert.InDelta(t, 3*lapTime, obs.totals[0], 1e-12)

	board := r.Leaderboard()
	assert.Contains(t, board, "Test Car")
	assert.InDelta(t, 3*lapTime, board["Test Car"], 1e-12)
}

func TestRace_Run_ZeroLaps(t *testing.T) {
	obs := &captureObserver{}
	r := NewRace(testTrack(), model.Weather{Condition: "clear"}, 0, WithObserver(obs))

	times := r.Run(testVehicle())

	assert.Empty(t, times)
	assert.Empty(t, obs.laps)
	assert.Empty(t, obs.totals)
	assert.Empty(t, r.Leaderboard())
}

func TestRace_Run_OverwritesLeaderboardEntry(t *testing.T) {
	track := testTrack()
	track.Obstacles = []string{"rock"}
	// first run draws 1.5, second run draws 0.5
	r := NewRace(track, model.Weather{Condition: "clear"}, 1,
		WithRandSource(&fixedSource{values: []float64{1.5, 0.5}}))

	r.Run(testVehicle())
	second := r.Run(testVehicle())

	board := r.Leaderboard()
	assert.Len(t, board, 1)
	assert.Equal(t, second[0], board["Test Car"])
}

func TestRace_Standings(t *testing.T) {
	r := NewRace(testTrack(), model.Weather{Condition: "clear"}, 2,
		WithRandSource(&fixedSource{}))

	fast := model.Vehicle{Name: "Fast", Speed: 150, Handling: 0.9, Acceleration: 0.9}
	slow := model.Vehicle{Name: "Slow", Speed: 120, Handling: 0.8, Acceleration: 0.8}
	r.Run(slow)
	r.Run(fast)

	standings := r.Standings()
	assert.Len(t, standings, 2)
	assert.Equal(t, 1, standings[0].Pos)
	assert.Equal(t, "Fast", standings[0].VehicleName)
	assert.Equal(t, 2, standings[1].Pos)
	assert.Equal(t, "Slow", standings[1].VehicleName)
	assert.Less(t, standings[0].TotalMinutes, standings[1].TotalMinutes)
}

func TestRace_LeaderboardIsACopy(t *testing.T) {
	r := NewRace(testTrack(), model.Weather{Condition: "clear"}, 1,
		WithRandSource(&fixedSource{}))
	r.Run(testVehicle())

	board := r.Leaderboard()
	board["Test Car"] = -1
	assert.NotEqual(t, -1.0, r.Leaderboard()["Test Car"])
}
