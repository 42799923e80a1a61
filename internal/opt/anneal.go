package opt

import (
	"context"
	"math"

	"routeopt/internal/model"
)

// AnnealConfig tunes the annealing schedule.
type AnnealConfig struct {
	InitialTemp float64 `yaml:"initialTemp"`
	Cooling     float64 `yaml:"cooling"`
	MinTemp     float64 `yaml:"minTemp"`
}

func (c AnnealConfig) withDefaults() AnnealConfig {
	if c.InitialTemp <= 0 {
		c.InitialTemp = 1000
	}
	if c.Cooling <= 0 || c.Cooling >= 1 {
		c.Cooling = 0.95
	}
	if c.MinTemp <= 0 {
		c.MinTemp = 1
	}
	return c
}

// Anneal runs a single-solution search from a random permutation. Each step
// swaps two random positions; improvements are always accepted, worse moves
// with probability exp((newFit-curFit)/temp). Fitness is higher-is-better,
// so the Metropolis exponent keeps that sign: a worse neighbor has a
// negative delta. The geometric schedule stops below MinTemp. Returns the
// best ordering seen across the whole anneal, not the final state.
func Anneal(ctx context.Context, p Problem, cfg AnnealConfig) []model.Location {
	n := len(p.Stops)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return orderedStops(p.Stops, []int{0})
	}
	cfg = cfg.withDefaults()
	rng := p.newRand()

	cur := rng.Perm(n)
	curFit := p.Eval.Fitness(p.Stops, cur)
	best := append([]int(nil), cur...)
	bestFit := curFit

	for temp := cfg.InitialTemp; temp >= cfg.MinTemp; temp *= cfg.Cooling {
		if p.expired(ctx) {
			break
		}
		next := append([]int(nil), cur...)
		swapMutate(next, rng)
		nextFit := p.Eval.Fitness(p.Stops, next)
		if nextFit > curFit || rng.Float64() < math.Exp((nextFit-curFit)/temp) {
			cur = next
			curFit = nextFit
			if curFit > bestFit {
				best = append(best[:0], cur...)
				bestFit = curFit
			}
		}
	}
	return orderedStops(p.Stops, best)
}
