package models

type Location struct {
	Name string
}

// Event starts at Start and lasts until the next event starts.
type Event struct {
	Start       Date
	LocationKey string
}

type Schedule struct {
	Events    []Event
	Locations map[string]Location
}

// ResolvedEvent is an event together with its display name and interval.
// End is exclusive and nil when the event is open-ended.
type ResolvedEvent struct {
	Name        string
	LocationKey string
	Start       Date
	End         *Date
}

// Contains reports whether day falls in [Start, End).
func (e ResolvedEvent) Contains(day Date) bool {
	if day.Before(e.Start) {
		return false
	}
	return e.End == nil || day.Before(*e.End)
}
