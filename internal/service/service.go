package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"routeopt/internal/config"
	"routeopt/internal/geo"
	"routeopt/internal/metrics"
	"routeopt/internal/model"
	"routeopt/internal/opt"
	"routeopt/internal/source"
	"routeopt/internal/store"
)

// avgSpeedKmh converts route distance into the caller-facing travel-time
// estimate. The fitness time term deliberately excludes travel time; this
// constant only feeds Route.TotalDurationMin.
const avgSpeedKmh = 40.0

// Service is the optimization engine's public entry point. Collaborators are
// injected so tests can swap in doubles.
type Service struct {
	repo    store.RouteRepository
	src     source.LocationSource
	cfg     config.Config
	limiter *rate.Limiter
	log     zerolog.Logger
}

type Option func(*Service)

func WithLogger(l zerolog.Logger) Option { return func(s *Service) { s.log = l } }
func WithLimiter(l *rate.Limiter) Option { return func(s *Service) { s.limiter = l } }
func WithConfig(c config.Config) Option  { return func(s *Service) { s.cfg = c } }

func WithSource(src source.LocationSource) Option {
	return func(s *Service) { s.src = src }
}

func New(repo store.RouteRepository, opts ...Option) *Service {
	s := &Service{repo: repo, cfg: config.Default(), log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	metrics.RegisterDefault()
	return s
}

// OptimizeRoutes computes a visiting order for the driver's stops using the
// algorithm named in opts (default hybrid). Optimization never panics the
// caller: any internal failure comes back as a failed result carrying the
// time measured up to that point. Persistence is best-effort and cannot
// change the outcome.
func (s *Service) OptimizeRoutes(ctx context.Context, driverID string, locations []model.Location, opts model.OptimizationOptions) (result model.OptimizationResult) {
	start := time.Now()
	algo := s.resolveAlgorithm(opts.Algorithm)

	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Str("driver", driverID).Interface("panic", r).Msg("optimization failed")
			result = failedResult(algo, time.Since(start))
			metrics.Optimizations.WithLabelValues(algo, "failed").Inc()
		}
	}()

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			metrics.Optimizations.WithLabelValues(algo, "failed").Inc()
			return failedResult(algo, time.Since(start))
		}
	}

	if len(locations) == 0 || !allCoordsValid(locations) {
		// nothing (valid) to optimize: vacuously successful
		return model.OptimizationResult{
			Success:          true,
			Routes:           []model.Route{},
			Algorithm:        algo,
			OptimizationTime: time.Since(start),
		}
	}

	maxStops := opts.MaxStopsPerRoute
	if maxStops <= 0 {
		maxStops = s.cfg.MaxStopsPerRoute
	}
	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = start.Add(opts.TimeLimit)
	}
	eval := opt.NewEvaluator(pickWeights(opts.Weights, s.cfg.Weights))

	var routes []model.Route
	improvement := 0.0
	switch algo {
	case model.AlgoHybrid:
		nn := s.planRoutes(ctx, driverID, locations, model.AlgoNearestNeighbor, maxStops, opts, eval, deadline)
		ga := s.planRoutes(ctx, driverID, locations, model.AlgoGenetic, maxStops, opts, eval, deadline)
		routes = nn
		if totalDistance(ga) < totalDistance(nn) {
			routes = ga
			improvement = totalDistance(nn) - totalDistance(ga)
		}
		for i := range routes {
			routes[i].Algorithm = model.AlgoHybrid
		}
	default:
		routes = s.planRoutes(ctx, driverID, locations, algo, maxStops, opts, eval, deadline)
	}

	result = assembleResult(routes, algo, time.Since(start))
	result.ImprovementKm = improvement
	s.persist(ctx, routes)
	metrics.Optimizations.WithLabelValues(algo, "success").Inc()
	metrics.OptimizationDuration.WithLabelValues(algo).Observe(result.OptimizationTime.Seconds())
	s.log.Info().
		Str("driver", driverID).
		Str("algorithm", algo).
		Int("stops", len(locations)).
		Int("routes", len(routes)).
		Float64("distanceKm", result.TotalDistanceKm).
		Dur("took", result.OptimizationTime).
		Msg("routes optimized")
	return result
}

// OptimizeActiveDeliveries fetches the driver's in-progress deliveries,
// expands them into pickup/delivery stops and runs a hybrid optimization
// with at most 20 stops per route.
func (s *Service) OptimizeActiveDeliveries(ctx context.Context, driverID string) model.OptimizationResult {
	start := time.Now()
	if s.src == nil {
		s.log.Error().Str("driver", driverID).Msg("no location source configured")
		return failedResult(model.AlgoHybrid, time.Since(start))
	}
	deliveries, err := s.src.ActiveDeliveries(ctx, driverID)
	if err != nil {
		s.log.Error().Err(err).Str("driver", driverID).Msg("active delivery fetch failed")
		metrics.Optimizations.WithLabelValues(model.AlgoHybrid, "failed").Inc()
		return failedResult(model.AlgoHybrid, time.Since(start))
	}
	return s.OptimizeRoutes(ctx, driverID, source.Expand(deliveries), model.OptimizationOptions{
		Algorithm:        model.AlgoHybrid,
		MaxStopsPerRoute: 20,
	})
}

// GetOptimizedRoutes returns the driver's most recent routes, newest first.
func (s *Service) GetOptimizedRoutes(ctx context.Context, driverID string, limit int) ([]model.Route, error) {
	return s.repo.ListByDriver(ctx, driverID, limit)
}

// DeleteRoute removes a stored route; a missing route is (false, nil).
func (s *Service) DeleteRoute(ctx context.Context, routeID string) (bool, error) {
	return s.repo.Delete(ctx, routeID)
}

// planRoutes splits oversized inputs with the nearest-neighbor splitter and
// refines each chunk's visiting order with the selected algorithm. The
// combined output is always a permutation of the input stops.
func (s *Service) planRoutes(ctx context.Context, driverID string, locations []model.Location, algo string, maxStops int, opts model.OptimizationOptions, eval opt.Evaluator, deadline time.Time) []model.Route {
	chunks := opt.SplitNearestNeighbor(locations, maxStops)
	chunks = capChunks(chunks, opts.MaxRoutes)
	routes := make([]model.Route, 0, len(chunks))
	for ci, chunk := range chunks {
		stops := make([]model.Location, len(chunk))
		for i, idx := range chunk {
			stops[i] = locations[idx]
		}
		prob := opt.Problem{Stops: stops, Eval: eval, Deadline: deadline}
		if opts.Seed != 0 {
			// decorrelate chunks while keeping the whole call reproducible
			prob.Seed = opts.Seed + int64(ci)
		}
		var ordered []model.Location
		switch algo {
		case model.AlgoNearestNeighbor:
			ordered = stops // chunk order is already the greedy order
		case model.AlgoGenetic:
			ordered = opt.Genetic(ctx, prob, s.cfg.Genetic)
		case model.AlgoSimulatedAnnealing:
			ordered = opt.Anneal(ctx, prob, s.cfg.Annealing)
		case model.AlgoAntColony:
			ordered = opt.AntColony(ctx, prob, s.cfg.AntColony)
		default:
			ordered = stops
		}
		routes = append(routes, buildRoute(driverID, ordered, algo))
	}
	return routes
}

func (s *Service) persist(ctx context.Context, routes []model.Route) {
	if s.repo == nil {
		return
	}
	for _, r := range routes {
		if err := s.repo.Save(ctx, r); err != nil {
			metrics.PersistFailures.Inc()
			s.log.Error().Err(err).Str("route", r.ID).Msg("route persist failed")
		}
	}
}

func (s *Service) resolveAlgorithm(name string) string {
	switch name {
	case model.AlgoNearestNeighbor, model.AlgoGenetic, model.AlgoSimulatedAnnealing,
		model.AlgoAntColony, model.AlgoHybrid:
		return name
	case "":
		return s.cfg.DefaultAlgorithm
	default:
		s.log.Warn().Str("algorithm", name).Msg("unknown algorithm, using hybrid")
		return model.AlgoHybrid
	}
}

func buildRoute(driverID string, stops []model.Location, algo string) model.Route {
	travelKm := geo.PathDistanceKm(stops)
	serviceMin := 0.0
	for _, l := range stops {
		serviceMin += geo.ServiceMinutes(l)
	}
	return model.Route{
		ID:                uuid.New().String(),
		DriverID:          driverID,
		Stops:             stops,
		TotalDistanceKm:   travelKm,
		TotalDurationMin:  travelKm/avgSpeedKmh*60 + serviceMin,
		EstimatedEarnings: opt.Earnings(stops),
		Optimized:         true,
		Algorithm:         algo,
		CreatedAt:         time.Now().UTC(),
	}
}

func assembleResult(routes []model.Route, algo string, took time.Duration) model.OptimizationResult {
	res := model.OptimizationResult{
		Success:          true,
		Routes:           routes,
		Algorithm:        algo,
		OptimizationTime: took,
	}
	for _, r := range routes {
		res.TotalDistanceKm += r.TotalDistanceKm
		res.TotalDurationMin += r.TotalDurationMin
		res.TotalEarnings += r.EstimatedEarnings
	}
	return res
}

func failedResult(algo string, took time.Duration) model.OptimizationResult {
	return model.OptimizationResult{
		Success:          false,
		Routes:           []model.Route{},
		Algorithm:        algo,
		OptimizationTime: took,
	}
}

// capChunks folds surplus chunks into the last allowed one so MaxRoutes is
// honored without dropping stops.
func capChunks(chunks [][]int, maxRoutes int) [][]int {
	if maxRoutes <= 0 || len(chunks) <= maxRoutes {
		return chunks
	}
	out := chunks[:maxRoutes]
	last := maxRoutes - 1
	for _, extra := range chunks[maxRoutes:] {
		out[last] = append(out[last], extra...)
	}
	return out
}

func totalDistance(routes []model.Route) float64 {
	total := 0.0
	for _, r := range routes {
		total += r.TotalDistanceKm
	}
	return total
}

func pickWeights(w, fallback model.Weights) model.Weights {
	if w.Distance+w.Time+w.Earnings > 0 {
		return w
	}
	return fallback
}

func allCoordsValid(locations []model.Location) bool {
	for _, l := range locations {
		if !l.ValidCoords() {
			return false
		}
	}
	return true
}
