package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"routeopt/internal/buildinfo"
	"routeopt/internal/config"
	"routeopt/internal/model"
	"routeopt/internal/service"
	"routeopt/internal/store"
)

func main() {
	var (
		configPath  = flag.String("config", "routeopt.yaml", "path to the YAML config file")
		stopsPath   = flag.String("stops", "", "path to a JSON file with the stops to optimize")
		driverID    = flag.String("driver", "", "driver id the routes belong to")
		algorithm   = flag.String("algorithm", "", "nearest_neighbor|genetic|simulated_annealing|ant_colony|hybrid")
		maxStops    = flag.Int("max-stops", 0, "max stops per route (0 = config default)")
		seed        = flag.Int64("seed", 0, "RNG seed for reproducible runs (0 = non-deterministic)")
		timeLimit   = flag.Duration("time-limit", 0, "soft optimization time budget")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(buildinfo.String())
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if *stopsPath == "" || *driverID == "" {
		log.Fatal().Msg("-stops and -driver are required")
	}

	ctx := context.Background()
	repo, err := buildRepository(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot init route repository")
	}

	data, err := os.ReadFile(*stopsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read stops file")
	}
	var locations []model.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		log.Fatal().Err(err).Msg("cannot parse stops file")
	}

	svc := service.New(repo, service.WithConfig(cfg), service.WithLogger(log.Logger))
	result := svc.OptimizeRoutes(ctx, *driverID, locations, model.OptimizationOptions{
		Algorithm:        *algorithm,
		MaxStopsPerRoute: *maxStops,
		Seed:             *seed,
		TimeLimit:        *timeLimit,
	})

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot encode result")
	}
	fmt.Println(string(out))
	if !result.Success {
		os.Exit(1)
	}
}

// buildRepository selects the store from the environment: Postgres when
// DATABASE_URL is set (wrapped in a Redis cache when REDIS_URL is set too),
// in-memory otherwise.
func buildRepository(ctx context.Context) (store.RouteRepository, error) {
	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dsn == "" {
		return store.NewMemory(), nil
	}
	pg, err := store.NewPostgres(dsn)
	if err != nil {
		return nil, err
	}
	if err := pg.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	if url := strings.TrimSpace(os.Getenv("REDIS_URL")); url != "" {
		return store.NewRedisCache(pg, url, 30*time.Second)
	}
	return pg, nil
}
