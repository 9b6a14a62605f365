package ouest

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"ouest.xdoubleu.com/apps/ouest/internal/repositories"
)

// ImportSchedule replaces the schedule stored in db with the one in the
// data file at path. Nothing is written when the file fails to load.
func ImportSchedule(ctx context.Context, db postgres.DB, path string) error {
	schedule, err := repositories.NewFileSource(path).Load(ctx)
	if err != nil {
		return err
	}

	return repositories.NewPostgresSource(db).Import(ctx, schedule)
}
