package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ongkir/internal/destination"
	"ongkir/internal/quote"
)

type Server struct {
	engine   *quote.Engine
	registry *destination.Registry
	cache    *quote.Cache
	log      *zap.Logger
}

func New(engine *quote.Engine, registry *destination.Registry, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{engine: engine, registry: registry, cache: quote.NewCache(), log: log}
	r := chi.NewRouter()
	// Observability: request ID plus structured request log
	r.Use(requestIDMiddleware)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Post("/api/shipping/quote", s.handleQuote)
	r.Get("/api/shipping/destinations", s.handleDestinations)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type QuoteRequest struct {
	TotalWeight float64 `json:"totalWeight"`
	Destination string  `json:"destination"`
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	// The computation is deterministic, so an unexpected failure (e.g.
	// a malformed rate table) is not retried; it surfaces as a 500.
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("quote calculation panicked", zap.Any("panic", rec))
			writeErrorJSON(w, http.StatusInternalServerError, "Calculation failed")
		}
	}()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "Total weight is required")
		return
	}
	if req.TotalWeight <= 0 {
		writeErrorJSON(w, http.StatusBadRequest, "Total weight is required")
		return
	}
	if strings.TrimSpace(req.Destination) == "" {
		writeErrorJSON(w, http.StatusBadRequest, "Destination is required")
		return
	}

	grams := int(req.TotalWeight)
	slug := destination.Normalize(req.Destination)

	key := quote.Key(slug, grams)
	if res, ok := s.cache.Get(key); ok {
		writeJSON(w, res)
		return
	}

	res, err := s.engine.Quote(grams, req.Destination)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrInvalidWeight):
			writeErrorJSON(w, http.StatusBadRequest, "Total weight is required")
		case errors.Is(err, destination.ErrUnknown):
			writeErrorJSON(w, http.StatusBadRequest, "Destination not supported")
		default:
			s.log.Error("quote calculation failed", zap.Error(err))
			writeErrorJSON(w, http.StatusInternalServerError, "Calculation failed")
		}
		return
	}

	s.cache.Put(key, res)
	writeJSON(w, res)
}

func (s *Server) handleDestinations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.registry.All())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeErrorJSON writes the flat error body the checkout UI matches
// on: {"error": message}.
func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// requestIDMiddleware ensures X-Request-ID is set on the response.
// If provided in the request header, it is propagated; otherwise a UUID
// is generated.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if rid == "" {
			rid = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
