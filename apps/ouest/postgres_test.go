package ouest_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	configtools "github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"ouest.xdoubleu.com/apps/ouest"
	"ouest.xdoubleu.com/apps/ouest/internal/models"
	"ouest.xdoubleu.com/apps/ouest/internal/repositories"
	"ouest.xdoubleu.com/internal/config"
)

func TestPostgresImportAndLoad(t *testing.T) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN is not set")
	}

	postgresDB, err := postgres.Connect(
		logging.NewNopLogger(),
		dsn,
		25,
		"15m",
		5,
		15*time.Second,
		30*time.Second,
	)
	require.Nil(t, err)
	defer postgresDB.Close()

	cfg := config.New(logging.NewNopLogger())
	cfg.Env = configtools.TestEnv
	cfg.Timezone = "UTC"
	cfg.IntegrityCheckEvery = "1h"

	app := ouest.New(logging.NewNopLogger(), cfg, postgresDB)
	require.Nil(t, app.ApplyMigrations(postgresDB))

	schedule := models.Schedule{
		Events: []models.Event{
			{Start: models.NewDate(2024, time.March, 1), LocationKey: "brest"},
			{Start: models.NewDate(2024, time.January, 1), LocationKey: "rennes"},
			{Start: models.NewDate(2024, time.January, 1), LocationKey: "brest"},
		},
		Locations: map[string]models.Location{
			"rennes": {Name: "Rennes"},
			"brest":  {Name: "Brest"},
		},
	}

	source := repositories.NewPostgresSource(postgresDB)
	ctx := context.Background()

	require.Nil(t, source.Import(ctx, schedule))
	// a second import replaces the events instead of appending them
	require.Nil(t, source.Import(ctx, schedule))

	loaded, err := source.Load(ctx)
	require.Nil(t, err)

	assert.Equal(t, schedule.Events, loaded.Events)
	assert.Equal(t, "Rennes", loaded.Locations["rennes"].Name)
	assert.Equal(t, "Brest", loaded.Locations["brest"].Name)
}

func TestImportSchedule(t *testing.T) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN is not set")
	}

	postgresDB, err := postgres.Connect(
		logging.NewNopLogger(),
		dsn,
		25,
		"15m",
		5,
		15*time.Second,
		30*time.Second,
	)
	require.Nil(t, err)
	defer postgresDB.Close()

	cfg := config.New(logging.NewNopLogger())
	cfg.Env = configtools.TestEnv
	cfg.Timezone = "UTC"
	cfg.IntegrityCheckEvery = "1h"

	app := ouest.New(logging.NewNopLogger(), cfg, postgresDB)
	require.Nil(t, app.ApplyMigrations(postgresDB))

	dir := t.TempDir()
	good := filepath.Join(dir, "ouest.yaml")
	require.Nil(t, os.WriteFile(good, []byte(
		"loc:\n  quimper:\n    name: Quimper\n"+
			"events:\n  - from: 2024-05-01\n    loc: quimper\n",
	), 0o600))

	ctx := context.Background()
	require.Nil(t, ouest.ImportSchedule(ctx, postgresDB, good))

	bad := filepath.Join(dir, "broken.yaml")
	require.Nil(t, os.WriteFile(bad, []byte("events: [from: {"), 0o600))
	err = ouest.ImportSchedule(ctx, postgresDB, bad)
	assert.True(t, errors.Is(err, models.ErrLoad))

	loaded, err := repositories.NewPostgresSource(postgresDB).Load(ctx)
	require.Nil(t, err)
	assert.Equal(t, []models.Event{
		{Start: models.NewDate(2024, time.May, 1), LocationKey: "quimper"},
	}, loaded.Events)
	assert.Equal(t, "Quimper", loaded.Locations["quimper"].Name)
}
