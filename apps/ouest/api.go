package ouest

import (
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"ouest.xdoubleu.com/apps/ouest/internal/dtos"
)

func (app *Ouest) currentHandler(w http.ResponseWriter, r *http.Request) {
	current, err := app.Services.Schedule.Current(r.Context())
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
		return
	}

	var result *dtos.EventDto
	if current != nil {
		dto := dtos.NewEventDto(*current)
		result = &dto
	}

	err = httptools.WriteJSON(w, http.StatusOK, result, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

func (app *Ouest) scheduleHandler(w http.ResponseWriter, r *http.Request) {
	timeline, err := app.Services.Schedule.Timeline(r.Context())
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
		return
	}

	result := make([]dtos.EventDto, 0, len(timeline))
	for _, event := range timeline {
		result = append(result, dtos.NewEventDto(event))
	}

	err = httptools.WriteJSON(w, http.StatusOK, result, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

func (app *Ouest) feedHandler(w http.ResponseWriter, r *http.Request) {
	timeline, err := app.Services.Schedule.Timeline(r.Context())
	if err != nil {
		app.logger.Error("failed to build schedule", logging.ErrAttr(err))
		http.Error(w, "Failed to build calendar", http.StatusInternalServerError)
		return
	}

	feed := app.Services.Calendar.Export(timeline, app.Services.Schedule.Now())

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	_, err = w.Write(feed)
	if err != nil {
		app.logger.Error("failed to write calendar", logging.ErrAttr(err))
	}
}

func (app *Ouest) healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}
