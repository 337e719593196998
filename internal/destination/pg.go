package destination

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadFromDB reads the destination table from Postgres. Rates and
// destinations are immutable after startup, so this runs once in main;
// a change to the table requires a restart.
func LoadFromDB(ctx context.Context, pool *pgxpool.Pool) ([]Destination, error) {
	rows, err := pool.Query(ctx, `
        SELECT slug, name, zone, distance_km
        FROM shipping_destinations
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("load destinations: %w", err)
	}
	defer rows.Close()

	var out []Destination
	for rows.Next() {
		var d Destination
		if err := rows.Scan(&d.Slug, &d.Name, &d.Zone, &d.DistanceKm); err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		if d.Zone < 1 || d.Zone > 5 {
			return nil, fmt.Errorf("destination %q has invalid zone %d", d.Slug, d.Zone)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load destinations: %w", err)
	}
	return out, nil
}
