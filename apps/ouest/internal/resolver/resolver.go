// Package resolver decides which event of a schedule is active on a given
// day. Every event lasts from its start up to, but not including, the start
// of the next event; the last one never ends.
package resolver

import (
	"slices"

	"ouest.xdoubleu.com/apps/ouest/internal/models"
)

// Resolve returns the event active on now, or nil when now precedes every
// event. Events sharing a start date keep their input order; all but the
// last-loaded of them get an empty interval. The inputs are not modified.
func Resolve(
	now models.Date,
	events []models.Event,
	locations map[string]models.Location,
) (*models.ResolvedEvent, error) {
	if len(events) == 0 {
		return nil, nil
	}

	sorted := sortByStart(events)

	for i, current := range sorted {
		if now.Before(current.Start) {
			// sorted ascending, so no later interval can match either
			return nil, nil
		}

		var next *models.Event
		if i+1 < len(sorted) {
			next = &sorted[i+1]
		}

		if next != nil && !now.Before(next.Start) {
			continue
		}

		return resolve(current, next, locations)
	}

	return nil, nil
}

// Timeline returns every interval of the schedule in chronological order.
// Unlike Resolve it needs every event's location to be defined.
func Timeline(
	events []models.Event,
	locations map[string]models.Location,
) ([]models.ResolvedEvent, error) {
	sorted := sortByStart(events)

	timeline := make([]models.ResolvedEvent, 0, len(sorted))
	for i, current := range sorted {
		var next *models.Event
		if i+1 < len(sorted) {
			next = &sorted[i+1]
		}

		resolved, err := resolve(current, next, locations)
		if err != nil {
			return nil, err
		}

		timeline = append(timeline, *resolved)
	}

	return timeline, nil
}

func resolve(
	current models.Event,
	next *models.Event,
	locations map[string]models.Location,
) (*models.ResolvedEvent, error) {
	location, ok := locations[current.LocationKey]
	if !ok {
		return nil, models.NewUndefinedLocationError(current.LocationKey)
	}

	resolved := models.ResolvedEvent{
		Name:        location.Name,
		LocationKey: current.LocationKey,
		Start:       current.Start,
		End:         nil,
	}
	if next != nil {
		end := next.Start
		resolved.End = &end
	}

	return &resolved, nil
}

func sortByStart(events []models.Event) []models.Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b models.Event) int {
		return a.Start.Compare(b.Start)
	})
	return sorted
}
