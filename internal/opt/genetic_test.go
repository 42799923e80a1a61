package opt

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"routeopt/internal/model"
)

func requireStopPermutation(t *testing.T, in, out []model.Location) {
	t.Helper()
	require.Equal(t, len(in), len(out))
	seen := map[string]int{}
	for _, l := range out {
		seen[l.ID]++
	}
	for _, l := range in {
		require.Equal(t, 1, seen[l.ID], "stop %s must appear exactly once", l.ID)
	}
}

func TestGeneticPermutationInvariant(t *testing.T) {
	stops := fixtureStops()
	p := Problem{Stops: stops, Eval: NewEvaluator(model.DefaultWeights()), Seed: 42}
	out := Genetic(context.Background(), p, GeneticConfig{})
	requireStopPermutation(t, stops, out)
}

func TestGeneticDeterministicForFixedSeed(t *testing.T) {
	stops := fixtureStops()
	p := Problem{Stops: stops, Eval: NewEvaluator(model.DefaultWeights()), Seed: 7}
	a := Genetic(context.Background(), p, GeneticConfig{})
	b := Genetic(context.Background(), p, GeneticConfig{})
	require.Equal(t, a, b)
}

func TestGeneticDegenerate(t *testing.T) {
	p := Problem{Eval: NewEvaluator(model.DefaultWeights()), Seed: 1}
	require.Nil(t, Genetic(context.Background(), p, GeneticConfig{}))

	p.Stops = fixtureStops()[:1]
	out := Genetic(context.Background(), p, GeneticConfig{})
	require.Len(t, out, 1)
	require.Equal(t, "s1", out[0].ID)
}

func TestGeneticHonorsCancellation(t *testing.T) {
	stops := fixtureStops()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := Problem{Stops: stops, Eval: NewEvaluator(model.DefaultWeights()), Seed: 3}
	out := Genetic(ctx, p, GeneticConfig{})
	// still returns a full, valid permutation from the initial population
	requireStopPermutation(t, stops, out)
}

func TestOrderCrossoverProducesPermutations(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7}
	b := []int{7, 6, 5, 4, 3, 2, 1, 0}
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		child := orderCrossover(a, b, rng)
		seen := make([]bool, len(a))
		for _, v := range child {
			require.False(t, seen[v], "seed %d duplicated %d", seed, v)
			seen[v] = true
		}
	}
}

func TestOrderCrossoverPreservesSliceAndRelativeOrder(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5}
	b := []int{5, 4, 3, 2, 1, 0}
	rng := rand.New(rand.NewSource(9))
	start, end := rng.Intn(len(a)), rng.Intn(len(a))
	if start > end {
		start, end = end, start
	}
	child := orderCrossover(a, b, rand.New(rand.NewSource(9)))
	for i := start; i <= end; i++ {
		require.Equal(t, a[i], child[i], "slice positions must come from parent a")
	}
}

func TestSwapMutate(t *testing.T) {
	order := []int{0, 1, 2, 3}
	swapMutate(order, rand.New(rand.NewSource(2)))
	seen := make([]bool, 4)
	for _, v := range order {
		seen[v] = true
	}
	for i, ok := range seen {
		require.True(t, ok, "value %d lost by mutation", i)
	}
}
