package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/domain"
	gen "github.com/kailas-cloud/vecsense/internal/transport/generated"
	classifyuc "github.com/kailas-cloud/vecsense/internal/usecase/classify"
	documentuc "github.com/kailas-cloud/vecsense/internal/usecase/document"
	healthuc "github.com/kailas-cloud/vecsense/internal/usecase/health"
	searchuc "github.com/kailas-cloud/vecsense/internal/usecase/search"
)

const (
	maxRequestBodyBytes    = 1 << 20
	defaultTrainTestSplit  = 0.2
	predictTextPreviewSize = 200
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements generated.ServerInterface. documents may be a disabled service.
type Server struct {
	gen.Unimplemented
	search        *searchuc.Service
	classify      *classifyuc.Service
	documents     *documentuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	classify *classifyuc.Service,
	documents *documentuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		classify:  classify,
		documents: documents,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(domain.ErrUnsupportedModel, http.StatusBadRequest, gen.ErrorResponseCodeUnsupportedModel),
		sentinelHandler(domain.ErrUnsupportedMethod, http.StatusBadRequest, gen.ErrorResponseCodeUnsupportedMethod),
		sentinelHandler(domain.ErrSizeMismatch, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(domain.ErrDimensionMismatch, http.StatusBadRequest, gen.ErrorResponseCodeDimensionMismatch),
		sentinelHandler(domain.ErrModelNotTrained, http.StatusConflict, gen.ErrorResponseCodeModelNotTrained),
		sentinelHandler(domain.ErrEmbeddingFailure, http.StatusBadGateway, gen.ErrorResponseCodeEmbeddingProviderError),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, gen.ErrorResponseCodeNotFound),
		sentinelHandler(domain.ErrNotImplemented, http.StatusNotImplemented, gen.ErrorResponseCodeNotImplemented),
	}
	return s
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]gen.HealthResponseChecks, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = gen.HealthResponseChecks(v)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, gen.HealthResponse{
		Status: gen.HealthResponseStatus(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// decodeJSON reads a bounded JSON body into v. An empty body is an error.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a client-facing message without exposing
// internals. Validation errors keep their detail since it names the
// offending input.
func safeDomainMessage(err error) string {
	detailed := []error{
		domain.ErrInvalidInput,
		domain.ErrUnsupportedModel,
		domain.ErrUnsupportedMethod,
		domain.ErrModelNotTrained,
		domain.ErrSizeMismatch,
		domain.ErrDimensionMismatch,
	}
	for _, s := range detailed {
		if errors.Is(err, s) {
			return err.Error()
		}
	}
	sentinels := []error{
		domain.ErrEmbeddingFailure,
		domain.ErrNotFound,
		domain.ErrNotImplemented,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code gen.ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}
