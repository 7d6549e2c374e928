// Package handlers holds the HTTP handlers for the presentation layer.
// They own the session state of the latest run; the pipeline itself is
// stateless between invocations.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"github.com/rfalmeida/b3rank/internal/contracts"
	"github.com/rfalmeida/b3rank/internal/i18n"
	"github.com/rfalmeida/b3rank/pkg/logger"
)

// ErrRunInProgress is returned when a run is triggered while one is
// already executing. Runs are strictly sequential.
var ErrRunInProgress = errors.New("a pipeline run is already in progress")

// PipelineRunner is the slice of the pipeline the handlers need
type PipelineRunner interface {
	Run(ctx context.Context) (*contracts.RunResult, error)
}

// RankingHandler serves the ranked table, the run summary and the
// dismissible diagnostics
// SSOT: session state of the latest run lives here and nowhere else.
type RankingHandler struct {
	runner PipelineRunner
	logger *logger.Logger

	mu        sync.RWMutex
	result    *contracts.RunResult
	dismissed map[int]bool
	running   bool
	lastError string
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(runner PipelineRunner, log *logger.Logger) *RankingHandler {
	return &RankingHandler{
		runner:    runner,
		logger:    log,
		dismissed: make(map[int]bool),
	}
}

// StartRun triggers an asynchronous pipeline run. Only one run may be in
// flight at a time.
func (h *RankingHandler) StartRun() error {
	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		return ErrRunInProgress
	}
	h.running = true
	h.mu.Unlock()

	go func() {
		result, err := h.runner.Run(context.Background())

		h.mu.Lock()
		defer h.mu.Unlock()
		h.running = false

		if err != nil {
			// Fatal precondition failure: no partial result is kept.
			h.lastError = err.Error()
			h.logger.WithError(err).Error("Pipeline run failed")
			return
		}

		h.result = result
		h.dismissed = make(map[int]bool)
		h.lastError = ""
	}()

	return nil
}

// Run handles POST /api/run
func (h *RankingHandler) Run(w http.ResponseWriter, r *http.Request) {
	if err := h.StartRun(); err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

// GetRanking handles GET /api/ranking?lang=en|pt
func (h *RankingHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Parse(r.URL.Query().Get("lang"))

	h.mu.RLock()
	result := h.result
	h.mu.RUnlock()

	if !result.HasRows() {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"message": i18n.T(lang, "no_data"),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"title":        i18n.T(lang, "title"),
		"header":       i18n.T(lang, "table_header"),
		"summary":      i18n.Summary(lang, result.Summary.OK, result.Summary.NegativeOrZero, result.Summary.Failed),
		"count":        i18n.TickerCounter(lang, len(result.Rows)),
		"generated_at": result.GeneratedAt,
		"rows":         result.Rows,
	})
}

// GetSummary handles GET /api/summary?lang=en|pt
func (h *RankingHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Parse(r.URL.Query().Get("lang"))

	h.mu.RLock()
	defer h.mu.RUnlock()

	payload := map[string]interface{}{
		"running":    h.running,
		"last_error": h.lastError,
	}
	if h.result != nil {
		payload["summary"] = i18n.Summary(lang,
			h.result.Summary.OK, h.result.Summary.NegativeOrZero, h.result.Summary.Failed)
		payload["counts"] = h.result.Summary
		payload["generated_at"] = h.result.GeneratedAt
	}

	writeJSON(w, http.StatusOK, payload)
}

// diagnosticItem is one listed diagnostic with its dismiss handle
type diagnosticItem struct {
	ID      int    `json:"id"`
	Ticker  string `json:"ticker"`
	Message string `json:"message"`
}

// GetDiagnostics handles GET /api/diagnostics, listing the non-dismissed
// diagnostics of the latest run
func (h *RankingHandler) GetDiagnostics(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	items := []diagnosticItem{}
	if h.result != nil {
		for i, d := range h.result.Diagnostics {
			if h.dismissed[i] {
				continue
			}
			items = append(items, diagnosticItem{ID: i, Ticker: d.Ticker, Message: d.Message})
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"diagnostics": items})
}

// DismissDiagnostic handles DELETE /api/diagnostics/{id}. Dismissal is
// presentation-only state; it never touches the run result.
func (h *RankingHandler) DismissDiagnostic(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid diagnostic id"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.result == nil || id < 0 || id >= len(h.result.Diagnostics) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "diagnostic not found"})
		return
	}

	h.dismissed[id] = true
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON writes a JSON response with status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
