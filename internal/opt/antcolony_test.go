package opt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"routeopt/internal/model"
)

func TestAntColonyPermutationInvariant(t *testing.T) {
	stops := fixtureStops()
	p := Problem{Stops: stops, Eval: NewEvaluator(model.DefaultWeights()), Seed: 42}
	out := AntColony(context.Background(), p, AntColonyConfig{})
	requireStopPermutation(t, stops, out)
}

func TestAntColonyDeterministicForFixedSeed(t *testing.T) {
	stops := fixtureStops()
	p := Problem{Stops: stops, Eval: NewEvaluator(model.DefaultWeights()), Seed: 13}
	a := AntColony(context.Background(), p, AntColonyConfig{})
	b := AntColony(context.Background(), p, AntColonyConfig{})
	require.Equal(t, a, b)
}

func TestAntColonyCoincidentStops(t *testing.T) {
	// identical coordinates must not divide by zero or skew the roulette
	stops := []model.Location{
		{ID: "a", Lat: 40.75, Lng: -73.98},
		{ID: "b", Lat: 40.75, Lng: -73.98},
		{ID: "c", Lat: 40.76, Lng: -73.99},
	}
	p := Problem{Stops: stops, Eval: NewEvaluator(model.DefaultWeights()), Seed: 3}
	out := AntColony(context.Background(), p, AntColonyConfig{Iterations: 5, Ants: 4})
	requireStopPermutation(t, stops, out)
}

func TestAntColonyDegenerate(t *testing.T) {
	p := Problem{Eval: NewEvaluator(model.DefaultWeights()), Seed: 1}
	require.Nil(t, AntColony(context.Background(), p, AntColonyConfig{}))

	p.Stops = fixtureStops()[:1]
	out := AntColony(context.Background(), p, AntColonyConfig{})
	require.Len(t, out, 1)
}
