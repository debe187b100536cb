// Package server exposes the synthesizer over HTTP.
package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"loshu.dev/pkg/loshu/internal/domain"
)

const maxBodyBytes = 1 << 10

// Handler wires the generate endpoint to a synthesizer.
type Handler struct {
	synth   domain.Synthesizer
	logger  *slog.Logger
	metrics *Metrics
}

// NewHandler constructs a handler with its dependencies. metrics may be nil.
func NewHandler(synth domain.Synthesizer, logger *slog.Logger, metrics *Metrics) *Handler {
	return &Handler{
		synth:   synth,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts the API endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/magic-squares/generate", h.HandleGenerate)
}

// HandleGenerate handles POST /api/magic-squares/generate requests.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetReqID(ctx)

	var req GenerateRequest

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.logger.DebugContext(ctx, "undecodable generate request", "request_id", requestID, "error", err)
		h.metrics.IncrementOutcome(codeBadRequest)
		writeBadRequest(w, "request body must be a JSON object with an integer dimension")

		return
	}

	if err := req.Validate(); err != nil {
		h.fail(w, r, req, err)

		return
	}

	start := time.Now()
	square, err := h.synth.Generate(req.Dimension)
	h.metrics.ObserveGenerateLatency(strconv.Itoa(req.Dimension), time.Since(start))

	if err != nil {
		h.fail(w, r, req, err)

		return
	}

	h.logger.InfoContext(ctx, "square generated",
		"request_id", requestID,
		"dimension", req.Dimension,
		"magic_constant", square.MagicConstant,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	h.metrics.IncrementOutcome("ok")
	writeJSON(w, http.StatusOK, square)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, req GenerateRequest, err error) {
	ctx := r.Context()
	status, body := errorResponseFor(err)

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "square synthesis failed",
			"request_id", middleware.GetReqID(ctx),
			"dimension", req.Dimension,
			"error", err,
		)
	} else {
		h.logger.InfoContext(ctx, "generate request rejected",
			"request_id", middleware.GetReqID(ctx),
			"dimension", req.Dimension,
			"error", err,
		)
	}

	h.metrics.IncrementOutcome(body.Error)
	writeJSON(w, status, body)
}
