package opt

import (
	"context"
	"math/rand"

	"routeopt/internal/model"
)

// GeneticConfig tunes the evolutionary search.
type GeneticConfig struct {
	Population    int     `yaml:"population"`
	Generations   int     `yaml:"generations"`
	CrossoverRate float64 `yaml:"crossoverRate"`
	MutationRate  float64 `yaml:"mutationRate"`
}

func (c GeneticConfig) withDefaults() GeneticConfig {
	if c.Population <= 0 {
		c.Population = 50
	}
	if c.Generations <= 0 {
		c.Generations = 100
	}
	if c.CrossoverRate <= 0 {
		c.CrossoverRate = 0.8
	}
	if c.MutationRate <= 0 {
		c.MutationRate = 0.1
	}
	return c
}

// Genetic evolves a population of random permutations with roulette
// selection, order crossover and swap mutation. Replacement is fully
// generational with no elitism, and the run length is a fixed generation
// count; both are intentional simplifications. Returns the best ordering in
// the final population.
func Genetic(ctx context.Context, p Problem, cfg GeneticConfig) []model.Location {
	n := len(p.Stops)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return orderedStops(p.Stops, []int{0})
	}
	cfg = cfg.withDefaults()
	rng := p.newRand()

	pop := make([][]int, cfg.Population)
	for i := range pop {
		pop[i] = rng.Perm(n)
	}

	fit := make([]float64, cfg.Population)
	for g := 0; g < cfg.Generations; g++ {
		if p.expired(ctx) {
			break
		}
		for i, ind := range pop {
			fit[i] = p.Eval.Fitness(p.Stops, ind)
		}
		// fitness-proportionate selection, P draws with replacement
		parents := make([][]int, cfg.Population)
		for i := range parents {
			parents[i] = pop[rouletteSelect(fit, rng)]
		}
		next := make([][]int, 0, cfg.Population)
		for i := 0; i+1 < len(parents); i += 2 {
			a, b := parents[i], parents[i+1]
			var c1, c2 []int
			if rng.Float64() < cfg.CrossoverRate {
				c1 = orderCrossover(a, b, rng)
				c2 = orderCrossover(b, a, rng)
			} else {
				c1 = append([]int(nil), a...)
				c2 = append([]int(nil), b...)
			}
			next = append(next, c1, c2)
		}
		if len(parents)%2 == 1 {
			next = append(next, append([]int(nil), parents[len(parents)-1]...))
		}
		for _, child := range next {
			if rng.Float64() < cfg.MutationRate {
				swapMutate(child, rng)
			}
		}
		pop = next
	}

	best := pop[0]
	bestFit := p.Eval.Fitness(p.Stops, best)
	for _, ind := range pop[1:] {
		if f := p.Eval.Fitness(p.Stops, ind); f > bestFit {
			best = ind
			bestFit = f
		}
	}
	return orderedStops(p.Stops, best)
}

// orderCrossover (OX): copy a random contiguous slice of parent a into the
// child at the same positions, then fill the remaining positions scanning
// parent b left to right, skipping values already present. The child is
// always a valid permutation: every value of a appears exactly once.
func orderCrossover(a, b []int, rng *rand.Rand) []int {
	n := len(a)
	start := rng.Intn(n)
	end := rng.Intn(n)
	if start > end {
		start, end = end, start
	}
	child := make([]int, n)
	used := make([]bool, n)
	for i := range child {
		child[i] = -1
	}
	for i := start; i <= end; i++ {
		child[i] = a[i]
		used[a[i]] = true
	}
	pos := 0
	for _, v := range b {
		if used[v] {
			continue
		}
		for child[pos] != -1 {
			pos++
		}
		child[pos] = v
		used[v] = true
	}
	return child
}

func swapMutate(order []int, rng *rand.Rand) {
	if len(order) < 2 {
		return
	}
	i := rng.Intn(len(order))
	j := rng.Intn(len(order))
	order[i], order[j] = order[j], order[i]
}
