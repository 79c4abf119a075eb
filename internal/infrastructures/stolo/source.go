package stolo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	derr "github.com/tcarmet/bmw-finder/internal/domain/errors"
	"github.com/tcarmet/bmw-finder/internal/domain/models"
	"github.com/tcarmet/bmw-finder/internal/infrastructures/stolo/dto"
	"github.com/tcarmet/bmw-finder/internal/infrastructures/stolo/http/client"
	"github.com/tcarmet/bmw-finder/internal/infrastructures/stolo/mappers"
	"go.uber.org/zap"
)

// Source adapts the stock-locator endpoint to the domain VehicleSource port.
type Source struct {
	log        *zap.Logger
	client     *client.Client
	detailsURL string
}

func NewSource(log *zap.Logger, client *client.Client, detailsURL string) *Source {
	if log == nil {
		log = zap.NewNop()
	}
	return &Source{
		log:        log,
		client:     client,
		detailsURL: detailsURL,
	}
}

// Search fetches one page of listings for the query's model and maps them to
// domain vehicles. Listings without a usable price are dropped, not fatal.
func (s *Source) Search(ctx context.Context, query models.SearchQuery) ([]models.Vehicle, error) {
	body := dto.NewModelSearchRequest(query.Model)

	resp, err := s.client.Search(ctx, query.Condition, query.MaxResults, 0, body)
	if err != nil {
		return nil, fmt.Errorf("search model %q: %w", query.Model, err)
	}

	vehicles := make([]models.Vehicle, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		vehicle, err := mappers.ToDomainVehicle(hit.Vehicle, s.detailsURL)
		if err != nil {
			// Per-record data problems exclude the listing, never the run.
			s.log.Warn("dropping listing",
				zap.String("model", query.Model),
				zap.String("vss_id", hit.Vehicle.VSSID),
				zap.Error(err),
			)
			continue
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, nil
}

// FindByVSSID looks up a single listing via the vssIds search context.
func (s *Source) FindByVSSID(ctx context.Context, condition models.Condition, id uuid.UUID) (models.Vehicle, error) {
	body := dto.NewVSSIDSearchRequest(id.String())

	resp, err := s.client.Search(ctx, condition, 1, 0, body)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("find vss id %s: %w", id, err)
	}

	if len(resp.Hits) == 0 {
		return models.Vehicle{}, derr.ErrVehicleNotFound
	}

	vehicle, err := mappers.ToDomainVehicle(resp.Hits[0].Vehicle, s.detailsURL)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("map vehicle: %w: %v", derr.ErrDecodeFailed, err)
	}

	return vehicle, nil
}
