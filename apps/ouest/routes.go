package ouest

import (
	"fmt"
	"net/http"
)

// Routes registers the app below prefix, which is either empty or starts
// with a slash.
func (app *Ouest) Routes(prefix string, mux *http.ServeMux) {
	app.templateRoutes(prefix, mux)
	app.apiRoutes(prefix, mux)
}

func (app *Ouest) apiRoutes(prefix string, mux *http.ServeMux) {
	apiPrefix := fmt.Sprintf("%s/api", prefix)

	mux.HandleFunc(fmt.Sprintf("GET %s/current", apiPrefix), app.currentHandler)
	mux.HandleFunc(fmt.Sprintf("GET %s/schedule", apiPrefix), app.scheduleHandler)
	mux.HandleFunc(fmt.Sprintf("GET %s/ouest.ics", prefix), app.feedHandler)
	mux.HandleFunc(fmt.Sprintf("GET %s/health", prefix), app.healthHandler)
}
