package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/nba-stats/internal/domain/retrieval"
	"github.com/riskibarqy/nba-stats/internal/platform/logging"
)

type RetrieveService struct {
	repo   retrieval.Repository
	logger *logging.Logger
}

func NewRetrieveService(repo retrieval.Repository, logger *logging.Logger) *RetrieveService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RetrieveService{repo: repo, logger: logger}
}

func (s *RetrieveService) Retrieve(ctx context.Context, entity retrieval.Entity, req retrieval.Request) (retrieval.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RetrieveService.Retrieve")
	defer span.End()

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return retrieval.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	res, err := s.repo.Retrieve(ctx, entity, req)
	if err != nil {
		if errors.Is(err, retrieval.ErrUnknownSortKey) {
			return retrieval.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return retrieval.Result{}, fmt.Errorf("retrieve %s: %w", entity, err)
	}

	s.logger.DebugContext(ctx, "retrieve query executed",
		"entity", string(entity),
		"query", res.Query,
		"params", len(res.Params),
		"rows", len(res.Rows),
	)
	return res, nil
}
