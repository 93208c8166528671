package http

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/hpgl2dxf"
	"github.com/aretw0/hpgl2dxf/pkg/domain"
	"github.com/aretw0/hpgl2dxf/pkg/observability"
	"github.com/aretw0/hpgl2dxf/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ContentTypeDXF is the media type of converted documents.
const ContentTypeDXF = "application/dxf"

// DefaultMaxBodyBytes caps the size of an uploaded HPGL program.
const DefaultMaxBodyBytes = 32 << 20

// Server serves conversions over HTTP.
type Server struct {
	Converter ports.Converter
	Cache     ports.Cache // optional
	CacheTTL  time.Duration

	logger   *slog.Logger
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer
	maxBody  int64
}

// Option configures the Server.
type Option func(*Server)

// WithCache enables the document cache. Responses report X-Cache: HIT or MISS.
func WithCache(cache ports.Cache, ttl time.Duration) Option {
	return func(s *Server) {
		s.Cache = cache
		s.CacheTTL = ttl
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics records conversion outcomes into m and exposes g on GET /metrics.
func WithMetrics(m *observability.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBody = n
	}
}

// NewServer creates a Server for conv.
func NewServer(conv ports.Converter, opts ...Option) *Server {
	s := &Server{
		Converter: conv,
		logger:    slog.Default(),
		maxBody:   DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler creates a new HTTP handler for conv.
func NewHandler(conv ports.Converter, opts ...Option) http.Handler {
	return NewServer(conv, opts...).Routes()
}

// Routes mounts the API on a chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Post("/convert", s.Convert)
	r.Post("/segments", s.Segments)
	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CacheKey identifies the document produced for input under the converter's framing.
func CacheKey(fingerprint string, input []byte) string {
	sum := sha256.Sum256(input)
	return fingerprint + ":" + hex.EncodeToString(sum[:])
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return nil, false
		}
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		return nil, false
	}
	return body, true
}

// Convert handles the POST /convert request: HPGL in, DXF out.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readBody(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	var key string
	if s.Cache != nil {
		key = CacheKey(s.Converter.Fingerprint(), input)
		doc, err := s.Cache.Get(ctx, key)
		switch {
		case err == nil:
			s.logger.Debug("Convert: cache hit", "key", key)
			writeDocument(w, doc, "HIT")
			return
		case !errors.Is(err, domain.ErrCacheMiss):
			s.logger.Warn("Convert: cache lookup failed", "key", key, "error", err)
		}
	}

	var buf bytes.Buffer
	start := time.Now()
	report, err := s.Converter.Convert(ctx, input, &buf)
	s.observe(start, err)
	if err != nil {
		http.Error(w, fmt.Sprintf("Convert error: %v", err), http.StatusInternalServerError)
		s.logger.Error("Convert failed", "error", err)
		return
	}
	for _, cmdErr := range report.Errors {
		s.logger.Debug("Convert: skipped command", "error", cmdErr)
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, buf.Bytes(), s.CacheTTL); err != nil {
			s.logger.Warn("Convert: cache store failed", "key", key, "error", err)
		}
	}

	w.Header().Set("X-Skipped-Commands", strconv.Itoa(len(report.Errors)))
	cacheStatus := ""
	if s.Cache != nil {
		cacheStatus = "MISS"
	}
	writeDocument(w, buf.Bytes(), cacheStatus)
}

func writeDocument(w http.ResponseWriter, doc []byte, cacheStatus string) {
	w.Header().Set("Content-Type", ContentTypeDXF)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	if cacheStatus != "" {
		w.Header().Set("X-Cache", cacheStatus)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

// SegmentsResponse is the body of POST /segments.
type SegmentsResponse struct {
	Segments []domain.LineSegment `json:"segments"`
	Errors   []string             `json:"errors"`
	Final    domain.PenState      `json:"final"`
	Tokens   int                  `json:"tokens"`
	Commands int                  `json:"commands"`
	Ignored  int                  `json:"ignored"`
}

// Segments handles the POST /segments request: HPGL in, line list out.
func (s *Server) Segments(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readBody(w, r)
	if !ok {
		return
	}

	start := time.Now()
	segs, report, err := s.Converter.Segments(r.Context(), input)
	s.observe(start, err)
	if err != nil {
		http.Error(w, fmt.Sprintf("Segments error: %v", err), http.StatusInternalServerError)
		s.logger.Error("Segments failed", "error", err)
		return
	}

	if segs == nil {
		segs = []domain.LineSegment{}
	}
	resp := SegmentsResponse{
		Segments: segs,
		Errors:   report.ErrorMessages(),
		Final:    report.Final,
		Tokens:   report.Tokens,
		Commands: report.Commands,
		Ignored:  report.Ignored,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Segments response encode failed", "error", err)
	}
}

func (s *Server) observe(start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.ObserveConversion(time.Since(start), err)
	}
}

type pinger interface {
	Ping(ctx context.Context) error
}

// GetHealth handles the GET /healthz request.
// When the cache can be pinged, an unreachable cache reports 503.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	status, code := "ok", http.StatusOK
	if p, ok := s.Cache.(pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			s.logger.Warn("Health: cache unreachable", "error", err)
			status, code = "degraded", http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"app":         "hpgl2dxf-http",
		"version":     strings.TrimSpace(hpgl2dxf.Version),
		"fingerprint": s.Converter.Fingerprint(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
