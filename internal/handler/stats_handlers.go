package handler

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/devarshiadi/devconsole/internal/domain"
	"github.com/devarshiadi/devconsole/internal/handler/dto"
)

// handleGetStats returns page-view statistics.
// Query: period = day | week (default) | month | all.
func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	period, err := domain.ParseStatsPeriod(r.URL.Query().Get("period"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	stats, err := h.stats.Stats(ctx, period, h.clock())
	if err != nil {
		slog.Error("failed to fetch page-view stats", "error", err, "period", period)
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch stats")
		return
	}

	respondJSON(w, http.StatusOK, dto.NewStatsResponse(stats))
}

// clientAddr returns the first X-Forwarded-For hop, or the host part of RemoteAddr.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
