package repositories

import "ouest.xdoubleu.com/apps/ouest/internal/models"

// document is the on-disk layout of a data file, shared by TOML and YAML.
type document struct {
	Loc    map[string]locationDocument `toml:"loc"    yaml:"loc"`
	Events []eventDocument             `toml:"events" yaml:"events"`
}

type locationDocument struct {
	Name string `toml:"name" yaml:"name"`
}

type eventDocument struct {
	From models.Date `toml:"from" yaml:"from"`
	Loc  string      `toml:"loc"  yaml:"loc"`
}

func (doc document) toSchedule() models.Schedule {
	schedule := models.Schedule{
		Events:    make([]models.Event, 0, len(doc.Events)),
		Locations: make(map[string]models.Location, len(doc.Loc)),
	}

	for key, loc := range doc.Loc {
		schedule.Locations[key] = models.Location{Name: loc.Name}
	}

	for _, event := range doc.Events {
		schedule.Events = append(schedule.Events, models.Event{
			Start:       event.From,
			LocationKey: event.Loc,
		})
	}

	return schedule
}
