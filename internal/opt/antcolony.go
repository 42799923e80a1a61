package opt

import (
	"context"
	"math"

	"routeopt/internal/geo"
	"routeopt/internal/model"
)

// AntColonyConfig tunes the swarm search.
type AntColonyConfig struct {
	Iterations  int     `yaml:"iterations"`
	Ants        int     `yaml:"ants"`
	Alpha       float64 `yaml:"alpha"` // pheromone influence
	Beta        float64 `yaml:"beta"`  // inverse-distance influence
	Evaporation float64 `yaml:"evaporation"`
}

func (c AntColonyConfig) withDefaults() AntColonyConfig {
	if c.Iterations <= 0 {
		c.Iterations = 50
	}
	if c.Ants <= 0 {
		c.Ants = 20
	}
	if c.Alpha <= 0 {
		c.Alpha = 1
	}
	if c.Beta <= 0 {
		c.Beta = 2
	}
	if c.Evaporation <= 0 || c.Evaporation >= 1 {
		c.Evaporation = 0.1
	}
	return c
}

// Stops closer than this are treated as coincident when weighting edges.
const minEdgeKm = 1e-6

// AntColony runs probabilistic tour construction guided by an n×n pheromone
// matrix, initialized uniformly to 1. Each ant starts at a random stop and
// picks the next with probability proportional to pheromone^alpha ×
// (1/distance)^beta over the remaining candidates. After every iteration the
// whole matrix evaporates by (1-Evaporation) and each ant's tour deposits
// its fitness onto the actual (from,to) edges it traversed, symmetrically.
// Returns the best tour observed across all ants and iterations.
func AntColony(ctx context.Context, p Problem, cfg AntColonyConfig) []model.Location {
	n := len(p.Stops)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return orderedStops(p.Stops, []int{0})
	}
	cfg = cfg.withDefaults()
	rng := p.newRand()

	pher := make([][]float64, n)
	for i := range pher {
		pher[i] = make([]float64, n)
		for j := range pher[i] {
			pher[i][j] = 1
		}
	}
	// distances are fixed per call; precompute once
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = geo.DistanceKm(p.Stops[i], p.Stops[j])
		}
	}

	var best []int
	bestFit := math.Inf(-1)
	weights := make([]float64, 0, n)
	candidates := make([]int, 0, n)

	for it := 0; it < cfg.Iterations; it++ {
		if p.expired(ctx) {
			break
		}
		tours := make([][]int, cfg.Ants)
		fits := make([]float64, cfg.Ants)
		for a := 0; a < cfg.Ants; a++ {
			visited := make([]bool, n)
			tour := make([]int, 0, n)
			cur := rng.Intn(n)
			tour = append(tour, cur)
			visited[cur] = true
			for len(tour) < n {
				candidates = candidates[:0]
				weights = weights[:0]
				for j := 0; j < n; j++ {
					if visited[j] {
						continue
					}
					d := dist[cur][j]
					if d < minEdgeKm {
						d = minEdgeKm
					}
					candidates = append(candidates, j)
					weights = append(weights, math.Pow(pher[cur][j], cfg.Alpha)*math.Pow(1/d, cfg.Beta))
				}
				next := candidates[rouletteSelect(weights, rng)]
				tour = append(tour, next)
				visited[next] = true
				cur = next
			}
			tours[a] = tour
			fits[a] = p.Eval.Fitness(p.Stops, tour)
			if fits[a] > bestFit {
				best = append([]int(nil), tour...)
				bestFit = fits[a]
			}
		}
		// evaporate, then reinforce every traversed edge by tour fitness
		for i := range pher {
			for j := range pher[i] {
				pher[i][j] *= 1 - cfg.Evaporation
			}
		}
		for a, tour := range tours {
			for i := 1; i < len(tour); i++ {
				from, to := tour[i-1], tour[i]
				pher[from][to] += fits[a]
				pher[to][from] += fits[a]
			}
		}
	}
	if best == nil {
		best = identityOrder(n)
	}
	return orderedStops(p.Stops, best)
}
