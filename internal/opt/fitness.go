package opt

import (
	"routeopt/internal/geo"
	"routeopt/internal/model"
)

// Earnings proxy: each stop is worth priority × unitEarningsValue until the
// caller injects real order values. earningsNorm scales the earnings term
// into the same range as the harmonic distance/time terms. These constants
// are part of the scoring contract; changing them changes which algorithm
// wins the hybrid comparison.
const (
	unitEarningsValue = 10.0
	earningsNorm      = 100.0
)

// Evaluator scores an ordered stop sequence. Higher is better.
type Evaluator struct {
	wDist, wTime, wEarn float64
}

// NewEvaluator normalizes the configured weights so they sum to 1.
// Zero or negative weight sums fall back to the production defaults.
func NewEvaluator(w model.Weights) Evaluator {
	sum := w.Distance + w.Time + w.Earnings
	if sum <= 0 {
		w = model.DefaultWeights()
		sum = w.Distance + w.Time + w.Earnings
	}
	return Evaluator{wDist: w.Distance / sum, wTime: w.Time / sum, wEarn: w.Earnings / sum}
}

// Fitness scores the visiting order given as indices into stops.
// The time term sums per-stop service minutes only; travel time between
// stops is intentionally not part of it. Total over all inputs: no error
// paths, no allocation.
func (e Evaluator) Fitness(stops []model.Location, order []int) float64 {
	dist := 0.0
	for i := 1; i < len(order); i++ {
		dist += geo.DistanceKm(stops[order[i-1]], stops[order[i]])
	}
	minutes := 0.0
	earn := 0.0
	for _, idx := range order {
		minutes += geo.ServiceMinutes(stops[idx])
		earn += priorityOf(stops[idx]) * unitEarningsValue
	}
	return e.wDist*(1/(1+dist)) + e.wTime*(1/(1+minutes)) + e.wEarn*(earn/earningsNorm)
}

// Earnings returns the proxy earnings for a stop sequence.
func Earnings(stops []model.Location) float64 {
	total := 0.0
	for _, l := range stops {
		total += priorityOf(l) * unitEarningsValue
	}
	return total
}

func priorityOf(l model.Location) float64 {
	if l.Priority > 0 {
		return l.Priority
	}
	return 1
}
