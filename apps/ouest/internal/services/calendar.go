package services

import (
	"log/slog"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"ouest.xdoubleu.com/apps/ouest/internal/models"
)

const productID = "-//xdoubleu//ouest//EN"

type CalendarService struct {
	logger *slog.Logger
}

// Export renders the timeline as an iCalendar feed with one all-day event
// per interval. The open-ended interval has no DTEND and intervals that
// are empty because of a shared start date are left out.
func (service *CalendarService) Export(
	timeline []models.ResolvedEvent,
	generatedAt time.Time,
) []byte {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName("ouest")

	skipped := 0
	for _, interval := range timeline {
		if interval.End != nil && !interval.Start.Before(*interval.End) {
			skipped++
			continue
		}

		event := cal.AddEvent(eventUID(interval))
		event.SetDtStampTime(generatedAt.UTC())
		event.SetAllDayStartAt(interval.Start.Time())
		if interval.End != nil {
			event.SetAllDayEndAt(interval.End.Time())
		}
		event.SetSummary(interval.Name)
		event.SetLocation(interval.Name)
	}

	if skipped > 0 {
		service.logger.Debug("skipped empty intervals in calendar export",
			slog.Int("count", skipped))
	}

	return []byte(cal.Serialize())
}

// eventUID stays the same across exports so calendar clients update
// events in place instead of duplicating them.
func eventUID(interval models.ResolvedEvent) string {
	name := interval.Start.String() + "/" + interval.LocationKey
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String() + "@ouest"
}
