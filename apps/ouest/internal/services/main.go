package services

import (
	"log/slog"
	"time"

	"ouest.xdoubleu.com/apps/ouest/internal/repositories"
)

type Services struct {
	Schedule *ScheduleService
	Calendar *CalendarService
	Locale   *LocaleService
}

func New(
	logger *slog.Logger,
	repositories *repositories.Repositories,
	clock func() time.Time,
	location *time.Location,
	locale *LocaleService,
) *Services {
	return &Services{
		Schedule: &ScheduleService{
			source:   repositories.Schedule,
			clock:    clock,
			location: location,
		},
		Calendar: &CalendarService{logger: logger},
		Locale:   locale,
	}
}
