package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"annotext/internal/analysis"
)

// Handler holds HTTP handlers for the annotext analysis API.
type Handler struct {
	registry *analysis.Registry
	logger   *slog.Logger
}

// NewHandler creates a new Handler backed by the given analyzer registry.
func NewHandler(registry *analysis.Registry, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{registry: registry, logger: logger}
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /analyzers", h.handleListAnalyzers)
	mux.HandleFunc("POST /analyze", h.handleAnalyze)
}

// TokenResponse is the wire form of one analyzed token.
type TokenResponse struct {
	Term              string `json:"term"`
	Type              string `json:"type"`
	PositionIncrement int    `json:"position_increment"`
	StartByte         int    `json:"start_byte"`
	EndByte           int    `json:"end_byte"`
}

func (h *Handler) handleListAnalyzers(w http.ResponseWriter, r *http.Request) {
	names := h.registry.Names()
	sort.Strings(names)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"analyzers": names,
	})
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Analyzer string `json:"analyzer"`
		Text     string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Analyzer == "" {
		req.Analyzer = "standard"
	}

	a, err := h.registry.Get(req.Analyzer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens := a.Analyze("", req.Text)
	h.logger.Debug("analyzed text",
		"analyzer", req.Analyzer,
		"input_bytes", len(req.Text),
		"tokens", len(tokens),
	)

	resp := make([]TokenResponse, len(tokens))
	for i, tok := range tokens {
		resp[i] = TokenResponse{
			Term:              tok.Term,
			Type:              tok.Type,
			PositionIncrement: tok.PositionIncrement,
			StartByte:         tok.StartByte,
			EndByte:           tok.EndByte,
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"analyzer": req.Analyzer,
		"tokens":   resp,
	})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"message": message,
		},
	})
}
