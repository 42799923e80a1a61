package store

import (
	"context"
	"testing"
	"time"

	"routeopt/internal/model"
)

func TestMemorySaveListDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	older := model.Route{ID: "r1", DriverID: "d1", Algorithm: model.AlgoHybrid, CreatedAt: base}
	newer := model.Route{ID: "r2", DriverID: "d1", Algorithm: model.AlgoHybrid, CreatedAt: base.Add(time.Minute)}
	other := model.Route{ID: "r3", DriverID: "d2", Algorithm: model.AlgoGenetic, CreatedAt: base}
	for _, r := range []model.Route{older, newer, other} {
		if err := m.Save(ctx, r); err != nil {
			t.Fatalf("save %s: %v", r.ID, err)
		}
	}

	routes, err := m.ListByDriver(ctx, "d1", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("list: got %d routes, want 2", len(routes))
	}
	if routes[0].ID != "r2" || routes[1].ID != "r1" {
		t.Fatalf("list: want newest first, got %s then %s", routes[0].ID, routes[1].ID)
	}

	routes, err = m.ListByDriver(ctx, "d1", 1)
	if err != nil || len(routes) != 1 || routes[0].ID != "r2" {
		t.Fatalf("list limit 1: got %+v err %v", routes, err)
	}

	ok, err := m.Delete(ctx, "nope")
	if err != nil || ok {
		t.Fatalf("delete missing: got ok=%v err=%v", ok, err)
	}
	ok, err = m.Delete(ctx, "r1")
	if err != nil || !ok {
		t.Fatalf("delete r1: got ok=%v err=%v", ok, err)
	}
	routes, _ = m.ListByDriver(ctx, "d1", 10)
	if len(routes) != 1 {
		t.Fatalf("after delete: got %d routes, want 1", len(routes))
	}
}

func TestMemoryAssignsID(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	if err := m.Save(ctx, model.Route{DriverID: "d1", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("save: %v", err)
	}
	routes, err := m.ListByDriver(ctx, "d1", 1)
	if err != nil || len(routes) != 1 {
		t.Fatalf("list: %v", err)
	}
	if routes[0].ID == "" {
		t.Fatal("expected generated route id")
	}
}
