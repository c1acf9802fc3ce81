package httpapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/baditaflorin/go_answer_normalization/internal/catalog"
	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/core/grading"
	"github.com/baditaflorin/go_answer_normalization/internal/metrics"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasthttp"
)

// MaxInputLength bounds answer and reference text in requests.
const MaxInputLength = 4096

// Service is what the handler needs from the normalizer.
type Service interface {
	Normalize(category domain.Category, input string) domain.Value
	GradeWith(ctx context.Context, policy grading.Policy, category domain.Category, answer, reference string) grading.Verdict
	Policy() grading.Policy
}

// NormalizeRequest asks for the canonical form of one answer.
type NormalizeRequest struct {
	Category string `json:"category" validate:"required,max=64"`
	Input    string `json:"input"    validate:"max=4096"`
}

// NormalizeResponse carries the canonical value.
type NormalizeResponse struct {
	Category string       `json:"category"`
	Value    domain.Value `json:"value"`
}

// GradeRequest asks to grade an answer against a reference answer.
// Strict, when set, overrides the configured policy.
type GradeRequest struct {
	Category  string `json:"category"  validate:"required,max=64"`
	Answer    string `json:"answer"    validate:"max=4096"`
	Reference string `json:"reference" validate:"max=4096"`
	Strict    *bool  `json:"strict,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler serves the normalization API.
type Handler struct {
	logger   ports.Logger
	service  Service
	validate *validator.Validate
	metrics  fasthttp.RequestHandler
	timeout  time.Duration
}

// NewHandler creates the API handler. metricsHandler may be nil.
func NewHandler(logger ports.Logger, service Service, metricsHandler fasthttp.RequestHandler) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
		metrics:  metricsHandler,
		timeout:  5 * time.Second,
	}
}

// Handle is the fasthttp request handler.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Server", "AnswerNormalizer")

	switch string(ctx.Path()) {
	case "/health":
		h.handleHealthCheck(ctx)
	case "/categories":
		h.handleCategories(ctx)
	case "/normalize":
		h.handleNormalize(ctx)
	case "/grade":
		h.handleGrade(ctx)
	case "/metrics":
		if h.metrics == nil {
			h.writeJSONError(ctx, fasthttp.StatusNotFound, "Not found")
			break
		}
		h.metrics(ctx)
	default:
		h.writeJSONError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	h.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func (h *Handler) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	h.writeJSON(ctx, fasthttp.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) handleCategories(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		h.writeJSONError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, catalog.QuestionCategories())
}

func (h *Handler) handleNormalize(ctx *fasthttp.RequestCtx) {
	var req NormalizeRequest
	if !h.decode(ctx, &req) {
		return
	}

	category := domain.ParseCategory(req.Category)
	value := h.service.Normalize(category, req.Input)

	h.writeJSON(ctx, fasthttp.StatusOK, NormalizeResponse{
		Category: category.String(),
		Value:    value,
	})
}

func (h *Handler) handleGrade(ctx *fasthttp.RequestCtx) {
	var req GradeRequest
	if !h.decode(ctx, &req) {
		return
	}

	policy := h.service.Policy()
	if req.Strict != nil {
		policy = grading.PolicyLenient
		if *req.Strict {
			policy = grading.PolicyStrict
		}
	}

	c, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	category := domain.ParseCategory(req.Category)
	verdict := h.service.GradeWith(c, policy, category, req.Answer, req.Reference)
	metrics.GradesTotal.WithLabelValues(category.String(), verdict.Policy, verdict.Reason).Inc()

	h.writeJSON(ctx, fasthttp.StatusOK, verdict)
}

// decode reads a POSTed JSON body into dst and validates it. It writes the
// error response itself and reports whether handling should continue.
func (h *Handler) decode(ctx *fasthttp.RequestCtx, dst interface{}) bool {
	if !ctx.IsPost() {
		h.writeJSONError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	if err := json.Unmarshal(ctx.PostBody(), dst); err != nil {
		h.writeJSONError(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeJSONError(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("Error marshaling JSON response", "error", err)
		h.writeJSONError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(response)
}

func (h *Handler) writeJSONError(ctx *fasthttp.RequestCtx, status int, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		h.logger.Error("Error marshaling JSON error response", "error", err)
		response = []byte(`{"error":"Internal server error"}`)
		status = fasthttp.StatusInternalServerError
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(response)
}
