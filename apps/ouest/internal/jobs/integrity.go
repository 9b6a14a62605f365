package jobs

import (
	"context"
	"log/slog"
	"time"

	"ouest.xdoubleu.com/apps/ouest/internal/services"
)

// IntegrityJob checks that every scheduled event points at a defined
// location, so a broken data file shows up in the logs before the
// faulty event becomes current.
type IntegrityJob struct {
	scheduleService *services.ScheduleService
	every           time.Duration
}

func NewIntegrityJob(
	scheduleService *services.ScheduleService,
	every time.Duration,
) IntegrityJob {
	return IntegrityJob{
		scheduleService: scheduleService,
		every:           every,
	}
}

func (j IntegrityJob) ID() string {
	return "integrity"
}

func (j IntegrityJob) RunEvery() time.Duration {
	return j.every
}

func (j IntegrityJob) Run(ctx context.Context, logger *slog.Logger) error {
	logger.Debug("validating schedule")
	return j.scheduleService.Validate(ctx)
}
