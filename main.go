package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/kidandcat/geolog/internal/config"
	"github.com/kidandcat/geolog/internal/handlers"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides GEOLOG_ADDR)")
	backend := flag.String("backend", "", "backend base URL (overrides GEOLOG_BACKEND_URL)")
	flag.Parse()

	cfg, err := config.Load(*addr, *backend)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	mux := http.NewServeMux()
	if err := handlers.RegisterRoutes(mux, cfg); err != nil {
		log.Fatalf("routes: %v", err)
	}

	log.Printf("%s running on %s, backend %s", cfg.Branding.AppName, cfg.Addr, cfg.BackendURL)
	log.Fatal(http.ListenAndServe(cfg.Addr, handlers.LogRequests(mux)))
}
