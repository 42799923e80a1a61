package opt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"routeopt/internal/model"
)

func fixtureStops() []model.Location {
	return []model.Location{
		{ID: "s1", Lat: 40.7580, Lng: -73.9855, Kind: model.KindPickup},
		{ID: "s2", Lat: 40.7527, Lng: -73.9772, Kind: model.KindDelivery},
		{ID: "s3", Lat: 40.7484, Lng: -73.9857, Kind: model.KindDelivery},
		{ID: "s4", Lat: 40.7614, Lng: -73.9776, Kind: model.KindPickup},
		{ID: "s5", Lat: 40.7505, Lng: -73.9934, Kind: model.KindDelivery},
	}
}

func TestNewEvaluatorNormalizes(t *testing.T) {
	e := NewEvaluator(model.Weights{Distance: 2, Time: 1, Earnings: 1})
	require.InDelta(t, 0.5, e.wDist, 1e-12)
	require.InDelta(t, 0.25, e.wTime, 1e-12)
	require.InDelta(t, 0.25, e.wEarn, 1e-12)

	// zero weights fall back to the defaults
	e = NewEvaluator(model.Weights{})
	require.InDelta(t, 0.4, e.wDist, 1e-12)
}

func TestFitnessPrefersShorterRoutes(t *testing.T) {
	stops := []model.Location{
		{ID: "a", Lat: 40.0, Lng: -74.0},
		{ID: "b", Lat: 40.01, Lng: -74.0},
		{ID: "c", Lat: 41.0, Lng: -74.0},
	}
	e := NewEvaluator(model.Weights{Distance: 1})
	short := e.Fitness(stops, []int{0, 1, 2}) // a->b->c
	long := e.Fitness(stops, []int{1, 2, 0})  // b->c->a, backtracks
	require.Greater(t, short, long)
}

func TestFitnessEarningsTerm(t *testing.T) {
	stops := fixtureStops()
	e := NewEvaluator(model.Weights{Earnings: 1})
	order := identityOrder(len(stops))
	base := e.Fitness(stops, order)

	stops[0].Priority = 5
	boosted := e.Fitness(stops, order)
	require.Greater(t, boosted, base)
}

func TestEarningsProxy(t *testing.T) {
	stops := fixtureStops()
	require.Equal(t, 50.0, Earnings(stops)) // 5 stops × default priority 1 × 10

	stops[1].Priority = 3
	require.Equal(t, 70.0, Earnings(stops))
}
