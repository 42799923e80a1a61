package store

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "github.com/jackc/pgx/v5/stdlib"

	"routeopt/internal/model"
)

// Postgres persists routes in a single table with the stop sequence as JSON.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

// EnsureSchema creates the routes table if it does not exist (dev helper).
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS routes (
        id TEXT PRIMARY KEY,
        driver_id TEXT NOT NULL,
        stops JSONB NOT NULL,
        total_distance_km DOUBLE PRECISION NOT NULL,
        total_duration_min DOUBLE PRECISION NOT NULL,
        estimated_earnings DOUBLE PRECISION NOT NULL,
        optimized BOOLEAN NOT NULL,
        algorithm TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL
    );
    CREATE INDEX IF NOT EXISTS routes_driver_created_idx ON routes (driver_id, created_at DESC)`)
	return err
}

func (p *Postgres) Save(ctx context.Context, route model.Route) error {
	stops, err := json.Marshal(route.Stops)
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, `INSERT INTO routes
        (id, driver_id, stops, total_distance_km, total_duration_min, estimated_earnings, optimized, algorithm, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		route.ID, route.DriverID, stops, route.TotalDistanceKm, route.TotalDurationMin,
		route.EstimatedEarnings, route.Optimized, route.Algorithm, route.CreatedAt)
	return err
}

func (p *Postgres) ListByDriver(ctx context.Context, driverID string, limit int) ([]model.Route, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := p.db.QueryContext(ctx, `SELECT id, driver_id, stops, total_distance_km,
        total_duration_min, estimated_earnings, optimized, algorithm, created_at
        FROM routes WHERE driver_id=$1 ORDER BY created_at DESC LIMIT $2`, driverID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Route{}
	for rows.Next() {
		var r model.Route
		var stops []byte
		if err := rows.Scan(&r.ID, &r.DriverID, &stops, &r.TotalDistanceKm, &r.TotalDurationMin,
			&r.EstimatedEarnings, &r.Optimized, &r.Algorithm, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(stops, &r.Stops); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *Postgres) Delete(ctx context.Context, routeID string) (bool, error) {
	res, err := p.db.ExecContext(ctx, `DELETE FROM routes WHERE id=$1`, routeID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
