// Package api serves the loaded dataset as a read-only JSON API.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/sells-group/f1-analytics/internal/loader"
	"github.com/sells-group/f1-analytics/internal/stats"
)

// Options tunes the server. A negative Weight or non-positive MaxDrivers falls
// back to the stats defaults; TopN 0 returns every row.
type Options struct {
	Weight      float64
	TopN        int
	MaxDrivers  int
	CORSOrigins []string
	// RateLimit is requests per second across all clients; 0 disables it.
	RateLimit float64
	RateBurst int
}

func (o Options) withDefaults() Options {
	if o.Weight < 0 {
		o.Weight = stats.DefaultWeight
	}
	if o.TopN < 0 {
		o.TopN = 0
	}
	if o.MaxDrivers <= 0 {
		o.MaxDrivers = stats.MaxDrivers
	}
	if len(o.CORSOrigins) == 0 {
		o.CORSOrigins = []string{"*"}
	}
	if o.RateLimit > 0 && o.RateBurst < 1 {
		o.RateBurst = 1
	}
	return o
}

// Server holds the dataset the handlers read from. The dataset is never
// mutated after construction, so handlers share it without locking.
type Server struct {
	data *loader.Dataset
	opts Options
}

// NewServer creates a Server over ds.
func NewServer(ds *loader.Dataset, opts Options) *Server {
	return &Server{data: ds, opts: opts.withDefaults()}
}

// Router builds the chi router with middleware and all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	var limiter *rate.Limiter
	if s.opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.opts.RateLimit), s.opts.RateBurst)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimit(limiter))
		r.Get("/summary", s.handleSummary)
		r.Get("/drivers", s.handleDrivers)
		r.Get("/drivers/names", s.handleDriverNames)
		r.Get("/constructors", s.handleConstructors)
		r.Get("/champions", s.handleChampions)
		r.Get("/compare", s.handleCompare)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
