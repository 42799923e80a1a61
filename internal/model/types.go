package model

import "time"

// Stop kinds.
const (
	KindPickup   = "pickup"
	KindDelivery = "delivery"
)

// Algorithm names accepted by the optimization service.
const (
	AlgoNearestNeighbor    = "nearest_neighbor"
	AlgoGenetic            = "genetic"
	AlgoSimulatedAnnealing = "simulated_annealing"
	AlgoAntColony          = "ant_colony"
	AlgoHybrid             = "hybrid"
)

type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Location is a single pickup or delivery stop. Locations are supplied
// per optimization call and never mutated by the engine.
type Location struct {
	ID             string      `json:"id"`
	Lat            float64     `json:"lat"`
	Lng            float64     `json:"lng"`
	Address        string      `json:"address,omitempty"`
	Kind           string      `json:"kind"` // pickup | delivery
	OrderID        string      `json:"orderId,omitempty"`
	Priority       float64     `json:"priority,omitempty"` // default 1, higher = more valuable
	TimeWindow     *TimeWindow `json:"timeWindow,omitempty"`
	ServiceMinutes float64     `json:"serviceMinutes,omitempty"` // default 10
}

// ValidCoords reports whether the location's coordinates are in range.
func (l Location) ValidCoords() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Route is an ordered visiting sequence of Locations for one driver.
// The stop order is the decision variable; a Route is immutable once built.
type Route struct {
	ID                string     `json:"id"`
	DriverID          string     `json:"driverId"`
	Stops             []Location `json:"stops"`
	TotalDistanceKm   float64    `json:"totalDistanceKm"`
	TotalDurationMin  float64    `json:"totalDurationMin"`
	EstimatedEarnings float64    `json:"estimatedEarnings"`
	Optimized         bool       `json:"optimized"`
	Algorithm         string     `json:"algorithm"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// Weights combines the three objective terms. They need not sum to 1;
// the evaluator normalizes internally.
type Weights struct {
	Distance float64 `json:"distance" yaml:"distance"`
	Time     float64 `json:"time" yaml:"time"`
	Earnings float64 `json:"earnings" yaml:"earnings"`
}

// DefaultWeights mirrors the production scoring defaults.
func DefaultWeights() Weights {
	return Weights{Distance: 0.4, Time: 0.3, Earnings: 0.3}
}

// OptimizationOptions tunes a single optimization call.
type OptimizationOptions struct {
	Algorithm           string        `json:"algorithm,omitempty"` // default hybrid
	MaxRoutes           int           `json:"maxRoutes,omitempty"`
	MaxStopsPerRoute    int           `json:"maxStopsPerRoute,omitempty"`
	TimeLimit           time.Duration `json:"timeLimit,omitempty"` // soft budget, checked at iteration boundaries
	Weights             Weights       `json:"weights,omitempty"`
	ConsiderTimeWindows bool          `json:"considerTimeWindows,omitempty"`
	ConsiderTraffic     bool          `json:"considerTraffic,omitempty"`    // advisory only
	ConsiderPreference  bool          `json:"considerPreference,omitempty"` // advisory only
	Seed                int64         `json:"seed,omitempty"`               // 0 = non-deterministic
}

// OptimizationResult is what the service hands back to callers.
type OptimizationResult struct {
	Success          bool          `json:"success"`
	Routes           []Route       `json:"routes"`
	TotalDistanceKm  float64       `json:"totalDistanceKm"`
	TotalDurationMin float64       `json:"totalDurationMin"`
	TotalEarnings    float64       `json:"totalEarnings"`
	OptimizationTime time.Duration `json:"optimizationTime"`
	Algorithm        string        `json:"algorithm"`
	ImprovementKm    float64       `json:"improvementKm,omitempty"` // baseline minus chosen, when known
}
