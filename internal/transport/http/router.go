package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rutkit/internal/platform/metrics"
	"rutkit/pkg/platform/httputil"
	"rutkit/pkg/platform/middleware/metadata"
	"rutkit/pkg/platform/middleware/request"
	"rutkit/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by feature handlers that mount their routes.
type Registrar interface {
	Register(r chi.Router)
}

// RouterConfig carries the collaborators the router needs.
type RouterConfig struct {
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Handlers []Registrar
}

// NewRouter wires the middleware chain, operational endpoints and every
// feature handler. Handlers stay thin and delegate to services.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(cfg.Metrics.Middleware)

	r.Get("/health", handleHealth)
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	for _, h := range cfg.Handlers {
		h.Register(r)
	}
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
