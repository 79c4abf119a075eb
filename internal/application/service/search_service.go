package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tcarmet/bmw-finder/internal/domain/models"
	"github.com/tcarmet/bmw-finder/internal/domain/ports"
	"go.uber.org/zap"
)

type SearchService struct {
	log    *zap.Logger
	source ports.VehicleSource
}

func NewSearchService(log *zap.Logger, source ports.VehicleSource) *SearchService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SearchService{
		log:    log,
		source: source,
	}
}

// Run fetches every requested model sequentially, concatenates the results
// and pushes them through the filter-sort pipeline. A failed query aborts
// the whole invocation; there is no partial output.
func (s *SearchService) Run(ctx context.Context, criteria models.SearchCriteria) ([]models.Vehicle, error) {
	const op = "service.Run"

	logger := s.log.With(
		zap.String("op", op),
		zap.Strings("models", criteria.Models),
		zap.String("condition", string(criteria.Condition)),
	)

	queries := BuildQueries(criteria)

	var found []models.Vehicle
	for _, query := range queries {
		vehicles, err := s.source.Search(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("%s: model %q: %w", op, query.Model, err)
		}
		logger.Debug("model query done",
			zap.String("model", query.Model),
			zap.Int("count", len(vehicles)),
		)
		found = append(found, vehicles...)
	}

	result := Process(found, criteria)
	logger.Info("search done",
		zap.Int("found", len(found)),
		zap.Int("matched", len(result)),
	)

	return result, nil
}

// Find resolves one listing by VSS ID.
func (s *SearchService) Find(ctx context.Context, condition models.Condition, id uuid.UUID) (models.Vehicle, error) {
	const op = "service.Find"

	vehicle, err := s.source.FindByVSSID(ctx, condition, id)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%s: %w", op, err)
	}

	return vehicle, nil
}
