package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/nba-stats/internal/domain/franchise"
)

type FranchiseService struct {
	franchiseRepo franchise.Repository
}

func NewFranchiseService(franchiseRepo franchise.Repository) *FranchiseService {
	return &FranchiseService{franchiseRepo: franchiseRepo}
}

func (s *FranchiseService) ListRecords(ctx context.Context) ([]franchise.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FranchiseService.ListRecords")
	defer span.End()

	items, err := s.franchiseRepo.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list franchise records: %w", err)
	}
	return items, nil
}

func (s *FranchiseService) GetRecords(ctx context.Context, name string) ([]franchise.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FranchiseService.GetRecords")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: franchise name is required", ErrInvalidInput)
	}

	items, err := s.franchiseRepo.ListRecordsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list franchise records: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: franchise not found: %s", ErrNotFound, name)
	}
	return items, nil
}
