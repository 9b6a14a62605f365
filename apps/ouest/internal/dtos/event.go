package dtos

import "ouest.xdoubleu.com/apps/ouest/internal/models"

type EventDto struct {
	Name        string       `json:"name"`
	LocationKey string       `json:"location_key"`
	Start       models.Date  `json:"start"`
	End         *models.Date `json:"end"`
} //	@name	EventDto

func NewEventDto(event models.ResolvedEvent) EventDto {
	return EventDto{
		Name:        event.Name,
		LocationKey: event.LocationKey,
		Start:       event.Start,
		End:         event.End,
	}
}
