package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Siddarth2230/hashlink/internal/middleware"
)

// NewRouter wires every route. The catch-all /{shortCode} routes go last.
func NewRouter(urls *URLHandler, codec *CodecHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	r.HandleFunc("/healthz", handleHealthz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1/hashids").Subrouter()
	api.HandleFunc("/encode", codec.Encode).Methods(http.MethodPost)
	api.HandleFunc("/decode", codec.Decode).Methods(http.MethodPost)

	r.HandleFunc("/shorten", urls.ShortenURL).Methods(http.MethodPost)
	r.HandleFunc("/{shortCode}", urls.RedirectURL).Methods(http.MethodGet)
	r.HandleFunc("/{shortCode}", urls.DeleteURL).Methods(http.MethodDelete)

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
