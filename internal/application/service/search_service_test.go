package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	derr "github.com/tcarmet/bmw-finder/internal/domain/errors"
	"github.com/tcarmet/bmw-finder/internal/domain/models"
	"go.uber.org/zap"
)

type sourceMock struct {
	byModel map[string][]models.Vehicle
	err     error
	calls   []string
	found   models.Vehicle
	findErr error
}

func (m *sourceMock) Search(_ context.Context, query models.SearchQuery) ([]models.Vehicle, error) {
	m.calls = append(m.calls, query.Model)
	if m.err != nil {
		return nil, m.err
	}
	return m.byModel[query.Model], nil
}

func (m *sourceMock) FindByVSSID(_ context.Context, _ models.Condition, _ uuid.UUID) (models.Vehicle, error) {
	return m.found, m.findErr
}

func TestRun_ConcatenatesModelQueriesBeforePipeline(t *testing.T) {
	source := &sourceMock{byModel: map[string][]models.Vehicle{
		"iX2_U10E": {vehicle("a", 50000), vehicle("b", 30000)},
		"X1_U11":   {vehicle("c", 40000)},
	}}
	svc := NewSearchService(zap.NewNop(), source)

	criteria := models.SearchCriteria{
		Models:         []string{"iX2_U10E", "X1_U11"},
		Condition:      models.ConditionNew,
		EquipmentMatch: models.MatchExact,
	}

	result, err := svc.Run(context.Background(), criteria)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("expected 3 vehicles, got %d", len(result))
	}
	if result[0].Price != 30000 || result[1].Price != 40000 || result[2].Price != 50000 {
		t.Fatalf("expected ascending prices across models, got %+v", result)
	}
	if len(source.calls) != 2 || source.calls[0] != "iX2_U10E" || source.calls[1] != "X1_U11" {
		t.Fatalf("expected sequential per-model queries in flag order, got %v", source.calls)
	}
}

func TestRun_QueryFailureAbortsInvocation(t *testing.T) {
	source := &sourceMock{err: derr.ErrSourceUnavailable}
	svc := NewSearchService(zap.NewNop(), source)

	criteria := models.SearchCriteria{
		Models:         []string{"iX2_U10E", "X1_U11"},
		EquipmentMatch: models.MatchExact,
	}

	_, err := svc.Run(context.Background(), criteria)
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if len(source.calls) != 1 {
		t.Fatalf("expected remaining queries skipped after failure, got %d calls", len(source.calls))
	}
}

func TestRun_ZeroMatchesIsNotAnError(t *testing.T) {
	source := &sourceMock{byModel: map[string][]models.Vehicle{}}
	svc := NewSearchService(zap.NewNop(), source)

	result, err := svc.Run(context.Background(), models.SearchCriteria{
		Models:         []string{"iX2_U10E"},
		EquipmentMatch: models.MatchExact,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %d", len(result))
	}
}

func TestFind_PropagatesNotFound(t *testing.T) {
	source := &sourceMock{findErr: derr.ErrVehicleNotFound}
	svc := NewSearchService(zap.NewNop(), source)

	_, err := svc.Find(context.Background(), models.ConditionNew, uuid.New())
	if !errors.Is(err, derr.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}
