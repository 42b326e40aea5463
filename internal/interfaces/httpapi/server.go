package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/nba-stats/internal/platform/logging"
)

// RouterConfig carries the cross-cutting settings of the router.
type RouterConfig struct {
	CORSAllowedOrigins []string
	QueryTimeout       time.Duration
	Metrics            *Metrics
}

func NewRouter(handler *Handler, cfg RouterConfig, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.Metrics)
	registerPlayerRoutes(mux, handler)
	registerTeamRoutes(mux, handler)
	registerFranchiseRoutes(mux, handler)

	return RequestTracing(
		CORS(cfg.CORSAllowedOrigins,
			recoverPanic(logger,
				QueryTimeout(cfg.QueryTimeout,
					RequestLogging(logger, cfg.Metrics, mux)))))
}
