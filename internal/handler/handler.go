package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/devarshiadi/devconsole/internal/domain"
	"github.com/devarshiadi/devconsole/internal/handler/dto"
	"github.com/devarshiadi/devconsole/internal/middleware"
	"github.com/devarshiadi/devconsole/internal/page"
)

// errorPage is served when the console cannot be rendered.
const errorPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Error</title></head>
<body><h1>500 Internal Server Error</h1></body>
</html>
`

// PageRenderer renders the console document for a point in time.
type PageRenderer interface {
	Render(now time.Time) (string, error)
}

// ViewRecorder accepts served page views.
type ViewRecorder interface {
	Record(view domain.PageView) error
}

// StatsSource summarises recorded page views.
type StatsSource interface {
	Stats(ctx context.Context, period domain.StatsPeriod, now time.Time) (*domain.ViewStats, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configures a Handler. Only Page and Clock have defaults; a nil
// Views, Stats or DB leaves that feature off.
type Options struct {
	Page       PageRenderer
	Clock      func() time.Time
	Views      ViewRecorder
	Stats      StatsSource
	DB         Pinger
	AdminToken string
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	page           PageRenderer
	clock          func() time.Time
	views          ViewRecorder
	stats          StatsSource
	db             Pinger
	authMiddleware *middleware.AuthMiddleware
}

// New creates a new Handler instance with all dependencies.
func New(opts Options) *Handler {
	h := &Handler{
		page:  opts.Page,
		clock: opts.Clock,
		views: opts.Views,
		stats: opts.Stats,
		db:    opts.DB,
	}
	if h.page == nil {
		h.page = page.Console
	}
	if h.clock == nil {
		h.clock = time.Now
	}
	if opts.AdminToken != "" {
		h.authMiddleware = middleware.NewAuthMiddleware(opts.AdminToken)
	}
	return h
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Console page, exact root only
	mux.HandleFunc("GET /{$}", h.handleConsole)

	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Stats need both the view log and an admin token
	if h.stats != nil && h.authMiddleware != nil {
		mux.Handle("GET /api/v1/stats", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleGetStats)))
	}
}

// Routes returns the full handler chain served by the process.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logging,
		middleware.Tracing,
	)
}

// handleConsole renders the console page with the current server time.
func (h *Handler) handleConsole(w http.ResponseWriter, r *http.Request) {
	now := h.clock()

	doc, err := h.page.Render(now)
	if err != nil {
		slog.Error("failed to render console page",
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		respondHTML(w, http.StatusInternalServerError, errorPage)
		return
	}

	respondHTML(w, http.StatusOK, doc)
	h.recordView(r, now)
}

// recordView hands the view to the recorder, if any. Failures never reach the client.
func (h *Handler) recordView(r *http.Request, now time.Time) {
	if h.views == nil {
		return
	}

	_ = h.views.Record(domain.PageView{
		ID:         uuid.NewString(),
		Path:       r.URL.Path,
		UserAgent:  r.UserAgent(),
		RemoteAddr: clientAddr(r),
		RequestID:  middleware.GetRequestID(r.Context()),
		RenderedAt: now,
	})
}

// handleHealthz returns 200 OK, or 503 if the view log database is unreachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			slog.Error("database health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

// respondHTML writes an HTML document with the given status code.
func respondHTML(w http.ResponseWriter, status int, doc string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, doc); err != nil {
		slog.Debug("failed to write HTML response", "error", err)
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps err and writes it.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}
