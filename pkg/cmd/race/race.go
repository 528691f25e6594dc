package race

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rallysim/turbo-rally/log"
	"github.com/rallysim/turbo-rally/pkg/catalog"
	"github.com/rallysim/turbo-rally/pkg/config"
	"github.com/rallysim/turbo-rally/pkg/model"
	"github.com/rallysim/turbo-rally/pkg/simulation"
)

var (
	vehicleName string
	trackName   string
	weatherCond string
	laps        int
	seed        uint64
)

func NewRaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "race",
		Short: "runs a single race and prints lap times and the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRace(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&vehicleName,
		"vehicle",
		"Dust Rider",
		"name of the vehicle (see 'catalog' command)")
	cmd.Flags().StringVar(&trackName,
		"track",
		"Forest Trail",
		"name of the track (see 'catalog' command)")
	cmd.Flags().StringVar(&weatherCond,
		"weather",
		"clear",
		"weather condition (clear, rain, storm; unknown values act neutral)")
	cmd.Flags().IntVar(&laps,
		"laps",
		1,
		"number of laps to race")
	cmd.Flags().Uint64Var(&seed,
		"seed",
		0,
		"seed for the random source (0 means time seeded)")
	return cmd
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func setupLogger() error {
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	if config.LogFilter != "" {
		var err error
		if logger, err = logger.WithFilter(config.LogFilter); err != nil {
			return fmt.Errorf("invalid log filter %q: %w", config.LogFilter, err)
		}
	}
	log.ResetDefault(logger)
	return nil
}

func loadCatalog() (*catalog.Catalog, error) {
	if config.CatalogFile != "" {
		return catalog.FromFile(config.CatalogFile)
	}
	return catalog.Default(), nil
}

func runRace(out io.Writer) error {
	if err := setupLogger(); err != nil {
		return err
	}
	if laps < 1 {
		return fmt.Errorf("laps must be >= 1, got %d", laps)
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	vehicle, err := cat.VehicleByName(vehicleName)
	if err != nil {
		return err
	}
	track, err := cat.TrackByName(trackName)
	if err != nil {
		return err
	}
	weather := model.Weather{Condition: weatherCond}

	raceID := uuid.New().String()
	logger := log.Default().Named("race").With(log.String("raceId", raceID))
	logger.Debug("race configured",
		log.String("vehicle", vehicle.Name),
		log.String("track", track.Name),
		log.String("weather", weather.Condition),
		log.Int("laps", laps),
	)

	opts := []simulation.RaceOption{
		simulation.WithObserver(simulation.NewConsoleObserver(out)),
	}
	if seed != 0 {
		opts = append(opts, simulation.WithRandSource(simulation.NewSeededSource(seed)))
	}
	r := simulation.NewRace(track, weather, laps, opts...)
	r.Run(vehicle)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Leaderboard:")
	for _, s := range r.Standings() {
		fmt.Fprintf(out, " %s: %.2f minutes\n", s.VehicleName, s.TotalMinutes)
	}
	logger.Info("race finished",
		log.String("vehicle", vehicle.Name),
		log.Int("laps", laps),
	)
	return nil
}
