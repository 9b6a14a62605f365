package repositories

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"ouest.xdoubleu.com/apps/ouest/internal/models"
)

// Source produces a complete schedule snapshot. Failures are returned as
// load errors and never come with partial data.
type Source interface {
	Load(ctx context.Context) (models.Schedule, error)
}

type Repositories struct {
	Schedule Source
}

func New(schedule Source) *Repositories {
	return &Repositories{
		Schedule: schedule,
	}
}

func NewFromDB(db postgres.DB) *Repositories {
	return New(&PostgresSource{db: db})
}

func NewFromFile(path string) *Repositories {
	return New(&FileSource{path: path})
}
