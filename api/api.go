package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/BuraphaS/first-socket-backend/config"
	"github.com/BuraphaS/first-socket-backend/websocket"
)

// NewRouter wires the websocket endpoint and the health check.
func NewRouter(ws *websocket.Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/ws", ws.ServeWS)
	r.HandleFunc("/healthz", healthHandler).Methods("GET")

	return r
}

// StartAPI serves the router until the listener fails.
func StartAPI(cfg config.Config, ws *websocket.Handler) error {
	r := NewRouter(ws)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.AllowedOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	log.Info().Str("addr", cfg.Addr()).Msg("Server listening")
	return http.ListenAndServe(cfg.Addr(), handlers.LoggingHandler(log.Logger, cors(r)))
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
