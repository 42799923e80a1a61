package opt

import (
	"context"
	"math/rand"
	"time"

	"routeopt/internal/model"
)

// Problem is a single-route ordering problem: find a permutation of Stops
// that maximizes Eval's fitness. Each search allocates its own working
// state, so concurrent solves never share anything.
type Problem struct {
	Stops    []model.Location
	Eval     Evaluator
	Seed     int64     // 0 means wall-clock seeding
	Deadline time.Time // zero means unbounded; checked at iteration boundaries
}

func (p Problem) newRand() *rand.Rand {
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// expired reports whether the search should stop cooperatively.
func (p Problem) expired(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	return !p.Deadline.IsZero() && time.Now().After(p.Deadline)
}

// rouletteSelect picks an index with probability proportional to its weight.
func rouletteSelect(weights []float64, rng *rand.Rand) int {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return rng.Intn(len(weights))
	}
	r := rng.Float64() * sum
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return i
		}
	}
	return len(weights) - 1
}

// orderedStops materializes a permutation as a stop sequence.
func orderedStops(stops []model.Location, order []int) []model.Location {
	out := make([]model.Location, len(order))
	for i, idx := range order {
		out[i] = stops[idx]
	}
	return out
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
