package opt

import (
	"routeopt/internal/geo"
	"routeopt/internal/model"
)

// SplitNearestNeighbor builds one or more visiting orders greedily: pop the
// first unassigned stop in input order as a fresh seed, then keep appending
// the nearest still-unassigned stop until the route holds maxStops (or all
// stops when maxStops <= 0). Distance ties keep the earlier input index, so
// the construction is deterministic for a fixed input ordering. O(n²)
// distance evaluations worst case.
//
// This doubles as the multi-route splitter for the other algorithms.
func SplitNearestNeighbor(stops []model.Location, maxStops int) [][]int {
	n := len(stops)
	if n == 0 {
		return nil
	}
	if maxStops <= 0 {
		maxStops = n
	}
	assigned := make([]bool, n)
	remaining := n
	var routes [][]int
	for remaining > 0 {
		seed := -1
		for i := 0; i < n; i++ {
			if !assigned[i] {
				seed = i
				break
			}
		}
		order := []int{seed}
		assigned[seed] = true
		remaining--
		cur := seed
		for len(order) < maxStops && remaining > 0 {
			next := -1
			best := 0.0
			for i := 0; i < n; i++ {
				if assigned[i] {
					continue
				}
				d := geo.DistanceKm(stops[cur], stops[i])
				if next == -1 || d < best {
					next = i
					best = d
				}
			}
			order = append(order, next)
			assigned[next] = true
			remaining--
			cur = next
		}
		routes = append(routes, order)
	}
	return routes
}

// NearestNeighborOrder returns a single greedy visiting order over all stops.
func NearestNeighborOrder(stops []model.Location) []int {
	routes := SplitNearestNeighbor(stops, 0)
	if len(routes) == 0 {
		return nil
	}
	return routes[0]
}
