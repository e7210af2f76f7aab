// Package httptransport wires the public HTTP surface: middleware stack,
// health endpoint and the verify module routes.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fiscale/internal/platform/middleware"
	"fiscale/internal/verify/handler"
	"fiscale/pkg/platform/httputil"
)

// NewRouter wires all public endpoints with middleware.
func NewRouter(h *handler.Handler, logger *slog.Logger, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.ContentTypeJSON)

	r.Get("/healthz", handleHealth)
	h.Register(r)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
