package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"ouest.xdoubleu.com/apps/ouest/internal/models"
	"ouest.xdoubleu.com/apps/ouest/internal/repositories"
	"ouest.xdoubleu.com/apps/ouest/internal/resolver"
)

type ScheduleService struct {
	source   repositories.Source
	clock    func() time.Time
	location *time.Location
}

func (service *ScheduleService) Now() time.Time {
	return service.clock()
}

// Today is the reference date every resolution is made against.
func (service *ScheduleService) Today() models.Date {
	return models.DateOf(service.clock().In(service.location))
}

// Current loads a fresh snapshot and returns the event active today, or
// nil when there is none.
func (service *ScheduleService) Current(
	ctx context.Context,
) (*models.ResolvedEvent, error) {
	schedule, err := service.source.Load(ctx)
	if err != nil {
		return nil, asLoadError(err)
	}

	return resolver.Resolve(service.Today(), schedule.Events, schedule.Locations)
}

func (service *ScheduleService) Timeline(
	ctx context.Context,
) ([]models.ResolvedEvent, error) {
	schedule, err := service.source.Load(ctx)
	if err != nil {
		return nil, asLoadError(err)
	}

	return resolver.Timeline(schedule.Events, schedule.Locations)
}

// Validate reports every event whose location is not defined.
func (service *ScheduleService) Validate(ctx context.Context) error {
	schedule, err := service.source.Load(ctx)
	if err != nil {
		return asLoadError(err)
	}

	var undefined []string
	for _, event := range schedule.Events {
		if _, ok := schedule.Locations[event.LocationKey]; ok {
			continue
		}
		if !slices.Contains(undefined, event.LocationKey) {
			undefined = append(undefined, event.LocationKey)
		}
	}

	errs := make([]error, 0, len(undefined))
	for _, key := range undefined {
		errs = append(errs, models.NewUndefinedLocationError(key))
	}

	return errors.Join(errs...)
}

func asLoadError(err error) error {
	var resolutionErr *models.Error
	if errors.As(err, &resolutionErr) {
		return err
	}
	return models.NewLoadError(fmt.Errorf("schedule source: %w", err))
}
