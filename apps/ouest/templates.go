package ouest

import (
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"ouest.xdoubleu.com/apps/ouest/internal/services"
)

//nolint:gochecknoglobals //lookup table
var assetExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

func (app *Ouest) templateRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(fmt.Sprintf("GET %s/{$}", prefix), app.indexHandler)
	mux.HandleFunc(fmt.Sprintf("GET %s/{asset}", prefix), app.assetHandler)
}

type IndexData struct {
	Lang    string
	Title   string
	Message string
	Event   *EventView
}

type EventView struct {
	City       string
	FromLabel  string
	From       string
	UntilLabel string
	Until      string
	Image      string
}

func (app *Ouest) indexHandler(w http.ResponseWriter, r *http.Request) {
	current, err := app.Services.Schedule.Current(r.Context())
	if err != nil {
		app.logger.Error("failed to resolve current event", logging.ErrAttr(err))
		http.Error(w, "Failed to resolve current event", http.StatusInternalServerError)
		return
	}

	tag := app.Services.Locale.Tag(r)
	printer := app.Services.Locale.Printer(r)

	//nolint:exhaustruct //Message and Event depend on the result
	data := IndexData{
		Lang:  tag.String(),
		Title: printer.Sprintf(services.MsgTitle),
	}

	if current == nil {
		data.Message = printer.Sprintf(services.MsgNoCurrentEvent)
	} else {
		data.Event = &EventView{
			City:       current.Name,
			FromLabel:  printer.Sprintf(services.MsgFrom),
			From:       services.FormatDate(printer, &current.Start),
			UntilLabel: printer.Sprintf(services.MsgUntil),
			Until:      services.FormatDate(printer, current.End),
			Image:      fmt.Sprintf("%s/%s.png", app.prefix(r), current.LocationKey),
		}
	}

	tpltools.RenderWithPanic(app.tpl, w, "index.html", data)
}

func (app *Ouest) assetHandler(w http.ResponseWriter, r *http.Request) {
	name, err := parse.URLParam[string](r, "asset", nil)
	if err != nil || !fs.ValidPath(name) || strings.Contains(name, "/") ||
		!assetExtensions[strings.ToLower(path.Ext(name))] {
		http.NotFound(w, r)
		return
	}

	info, err := fs.Stat(app.assets, name)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeFileFS(w, r, app.assets, name)
}

// prefix is the index path without its trailing slash, so image links
// keep working when the app is mounted below a path.
func (app *Ouest) prefix(r *http.Request) string {
	return strings.TrimSuffix(r.URL.Path, "/")
}
