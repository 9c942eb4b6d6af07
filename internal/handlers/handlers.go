package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/geolog/internal/config"
	"github.com/kidandcat/geolog/internal/ui"
)

// BackendPrefixes are the paths forwarded to the logging backend. Everything
// else is the client shell.
var BackendPrefixes = []string{
	"/projects/",
	"/profile/",
	"/borehole/",
	"/geology/",
	"/message/",
	"/sketch/",
	"/media/",
	"/login",
	"/logout",
	"/register",
}

// RegisterRoutes also registers the client routes with go-app, which the
// shell handler needs to prerender pages.
func RegisterRoutes(mux *http.ServeMux, cfg config.Config) error {
	target, err := cfg.Backend()
	if err != nil {
		return err
	}
	for _, p := range BackendPrefixes {
		mux.Handle(p, newProxy(target))
	}
	mux.HandleFunc("GET /healthz", handleHealth)

	ui.Register()
	mux.Handle("/", newSessionBridge(target).Wrap(shell(cfg)))
	return nil
}

func shell(cfg config.Config) *app.Handler {
	b := cfg.Branding
	return &app.Handler{
		Name:            b.AppName,
		ShortName:       b.AppName,
		Title:           b.AppName,
		Description:     b.Description,
		ThemeColor:      b.ThemeColor,
		BackgroundColor: "#ffffff",
		Resources:       app.LocalDir(cfg.WebDir),
	}
}

func newProxy(target *url.URL) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
		},
		ModifyResponse: modifyResponse,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Printf("proxy %s %s: %v", r.Method, r.URL.Path, err)
			writeError(w, http.StatusBadGateway, "Backend unavailable.")
		},
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
