package store

import (
	"context"
	"errors"

	"routeopt/internal/model"
)

// RouteRepository is the persistence seam for computed routes.
type RouteRepository interface {
	Save(ctx context.Context, route model.Route) error
	// ListByDriver returns the driver's most recent routes, newest first.
	ListByDriver(ctx context.Context, driverID string, limit int) ([]model.Route, error)
	// Delete removes a route. A missing route returns (false, nil).
	Delete(ctx context.Context, routeID string) (bool, error)
}

var ErrNotFound = errors.New("not found")
