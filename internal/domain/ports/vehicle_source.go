package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/tcarmet/bmw-finder/internal/domain/models"
)

type VehicleSource interface {
	Search(ctx context.Context, query models.SearchQuery) ([]models.Vehicle, error)
	FindByVSSID(ctx context.Context, condition models.Condition, id uuid.UUID) (models.Vehicle, error)
}
