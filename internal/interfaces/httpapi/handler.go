package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/nba-stats/internal/platform/logging"
	"github.com/riskibarqy/nba-stats/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

// Pinger reports whether the backing store accepts connections.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	playerService      *usecase.PlayerService
	teamService        *usecase.TeamService
	franchiseService   *usecase.FranchiseService
	retrieveService    *usecase.RetrieveService
	readiness          Pinger
	metrics            *Metrics
	logger             *logging.Logger
	validator          *validator.Validate
	exposeErrorDetails bool
}

func NewHandler(
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	franchiseService *usecase.FranchiseService,
	retrieveService *usecase.RetrieveService,
	readiness Pinger,
	metrics *Metrics,
	logger *logging.Logger,
	exposeErrorDetails bool,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:      playerService,
		teamService:        teamService,
		franchiseService:   franchiseService,
		retrieveService:    retrieveService,
		readiness:          readiness,
		metrics:            metrics,
		logger:             logger,
		validator:          validator.New(),
		exposeErrorDetails: exposeErrorDetails,
	}
}

// fail logs err at a level matching its HTTP class and writes the error body.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err, h.exposeErrorDetails)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON reads a bounded JSON body into dst. Strict mode rejects fields
// the payload type does not declare.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, strict bool) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func queryLimit(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, key)
	}
	return limit, nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Readyz")
	defer span.End()

	if h.readiness != nil {
		if err := h.readiness.PingContext(ctx); err != nil {
			h.fail(ctx, w, "readiness check failed",
				fmt.Errorf("%w: database ping: %v", usecase.ErrDependencyUnavailable, err))
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ready"})
}
