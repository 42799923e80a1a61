package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"routeopt/internal/model"
)

// Memory is a simple in-memory repository used when no DATABASE_URL is set,
// and as the test double.
type Memory struct {
	mu       sync.Mutex
	routes   map[string]model.Route
	byDriver map[string][]string // driver -> route ids, insertion order
}

func NewMemory() *Memory {
	return &Memory{
		routes:   map[string]model.Route{},
		byDriver: map[string][]string{},
	}
}

func (m *Memory) Save(ctx context.Context, route model.Route) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if route.ID == "" {
		route.ID = uuid.New().String()
	}
	if _, exists := m.routes[route.ID]; !exists {
		m.byDriver[route.DriverID] = append(m.byDriver[route.DriverID], route.ID)
	}
	m.routes[route.ID] = route
	return nil
}

func (m *Memory) ListByDriver(ctx context.Context, driverID string, limit int) ([]model.Route, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := m.byDriver[driverID]
	out := make([]model.Route, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.routes[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) Delete(ctx context.Context, routeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	route, ok := m.routes[routeID]
	if !ok {
		return false, nil
	}
	delete(m.routes, routeID)
	ids := m.byDriver[route.DriverID]
	for i, id := range ids {
		if id == routeID {
			m.byDriver[route.DriverID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return true, nil
}
