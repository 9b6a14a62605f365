package repositories

import (
	"context"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"ouest.xdoubleu.com/apps/ouest/internal/models"
)

// PostgresSource reads the schedule from the ouest schema. Events come
// back in insertion order so equal start dates resolve the same way as
// with a data file.
type PostgresSource struct {
	db postgres.DB
}

func NewPostgresSource(db postgres.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (source *PostgresSource) Load(ctx context.Context) (models.Schedule, error) {
	locations, err := source.getLocations(ctx)
	if err != nil {
		return models.Schedule{}, models.NewLoadError(err)
	}

	events, err := source.getEvents(ctx)
	if err != nil {
		return models.Schedule{}, models.NewLoadError(err)
	}

	return models.Schedule{
		Events:    events,
		Locations: locations,
	}, nil
}

func (source *PostgresSource) getLocations(
	ctx context.Context,
) (map[string]models.Location, error) {
	query := `
		SELECT key, name
		FROM ouest.locations
	`

	rows, err := source.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	locations := map[string]models.Location{}
	for rows.Next() {
		var key string
		//nolint:exhaustruct //fields are scanned below
		location := models.Location{}

		err = rows.Scan(&key, &location.Name)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		locations[key] = location
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return locations, nil
}

func (source *PostgresSource) getEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT starts_on, location_key
		FROM ouest.events
		ORDER BY id
	`

	rows, err := source.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var startsOn time.Time
		var locationKey string

		err = rows.Scan(&startsOn, &locationKey)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		events = append(events, models.Event{
			Start:       models.DateOf(startsOn),
			LocationKey: locationKey,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return events, nil
}

// Import replaces the stored events with those of schedule and upserts its
// locations. Locations that are no longer referenced are kept.
func (source *PostgresSource) Import(
	ctx context.Context,
	schedule models.Schedule,
) error {
	for key, location := range schedule.Locations {
		_, err := source.db.Exec(ctx, `
			INSERT INTO ouest.locations (key, name)
			VALUES ($1, $2)
			ON CONFLICT (key)
			DO UPDATE SET name = $2
		`, key, location.Name)
		if err != nil {
			return postgres.PgxErrorToHTTPError(err)
		}
	}

	_, err := source.db.Exec(ctx, `DELETE FROM ouest.events`)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	for _, event := range schedule.Events {
		_, err = source.db.Exec(ctx, `
			INSERT INTO ouest.events (starts_on, location_key)
			VALUES ($1, $2)
		`, event.Start.Time(), event.LocationKey)
		if err != nil {
			return postgres.PgxErrorToHTTPError(err)
		}
	}

	return nil
}
