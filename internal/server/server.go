// Package server exposes the computed views over HTTP for a
// rendering front end. Rendering itself stays outside this service;
// the handlers only ship shaped datasets.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"riskmap/internal/loader"
	"riskmap/internal/logger"
	"riskmap/internal/metrics"
	"riskmap/internal/viewcache"
	"riskmap/internal/views"
)

// Server serves views computed from one immutable dataset snapshot.
type Server struct {
	dataset *loader.Dataset
	cache   *viewcache.RedisCache // nil when caching is disabled
}

// New creates a Server over the loaded dataset. cache may be nil.
func New(dataset *loader.Dataset, cache *viewcache.RedisCache) *Server {
	return &Server{dataset: dataset, cache: cache}
}

// Router builds the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/api/views", s.handleViews)
	r.Get("/api/regions", s.handleRegions)
	r.Get("/api/insight", s.handleInsight)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"rows":      len(s.dataset.Rows),
		"loaded_at": s.dataset.LoadedAt,
	})
	count("/healthz", http.StatusOK)
}

// handleViews computes (or fetches from cache) the full view set for
// the optional region selection. An unknown region is not an error:
// every view degrades to its empty shape.
func (s *Server) handleViews(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	ctx := r.Context()

	if s.cache != nil {
		if payload, ok, err := s.cache.Get(ctx, s.dataset.Fingerprint, region); err != nil {
			logger.Warnf("View cache get failed: %v", err)
		} else if ok {
			metrics.CacheHits.Inc()
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write(payload)
			count("/api/views", http.StatusOK)
			return
		} else {
			metrics.CacheMisses.Inc()
		}
	}

	start := time.Now()
	set := views.Compute(s.dataset.Rows, region)
	metrics.ComputeDuration.Observe(time.Since(start).Seconds())

	payload, err := json.Marshal(set)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		count("/api/views", http.StatusInternalServerError)
		return
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, s.dataset.Fingerprint, region, payload); err != nil {
			logger.Warnf("View cache set failed: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
	count("/api/views", http.StatusOK)
}

// handleRegions returns the sorted unique region values, the source
// for the front end's region selector.
func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"regions": s.dataset.Regions})
	count("/api/regions", http.StatusOK)
}

// handleInsight returns just the top-country insight for the optional
// region selection. With no matching rows the insight is omitted
// rather than reported as an error.
func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	filtered := views.FilterRegion(s.dataset.Rows, region)

	resp := map[string]any{"region": region}
	if top, ok := views.TopCountry(views.GeographicCount(filtered)); ok {
		resp["top_country_insight"] = top
	}
	writeJSON(w, http.StatusOK, resp)
	count("/api/insight", http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warnf("Encode response: %v", err)
	}
}

func count(endpoint string, status int) {
	metrics.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}
