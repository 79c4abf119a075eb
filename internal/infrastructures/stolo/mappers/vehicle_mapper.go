package mappers

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	derr "github.com/tcarmet/bmw-finder/internal/domain/errors"
	"github.com/tcarmet/bmw-finder/internal/domain/models"
	"github.com/tcarmet/bmw-finder/internal/infrastructures/stolo/dto"
)

// ToDomainVehicle converts one search hit into a domain Vehicle.
// A listing without a resolvable offer price fails with ErrPriceMissing so
// the caller can drop it without aborting the whole response.
func ToDomainVehicle(v dto.Vehicle, detailsURL string) (models.Vehicle, error) {
	vssID, err := uuid.Parse(v.VSSID)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("parse vss id %q: %w", v.VSSID, err)
	}

	price, ok := offerPrice(v.Offering)
	if !ok {
		return models.Vehicle{}, fmt.Errorf("vehicle %s: %w", v.VSSID, derr.ErrPriceMissing)
	}

	condition := models.ConditionUsed
	if v.Ordering.OrderData.UsageState == "NEW" {
		condition = models.ConditionNew
	}

	return models.Vehicle{
		VSSID:      vssID,
		DocumentID: v.DocumentID,
		Model:      v.VehicleSpecification.ModelAndOption.MarketingModelRange,
		Condition:  condition,
		Price:      price,
		ListPrice:  v.Price.VehicleGrossPrice,
		Trim:       firstLocalized(v.VehicleSpecification.ModelAndOption.ModelDescription),
		Color:      firstLocalized(v.VehicleSpecification.ModelAndOption.ColorDescription),
		Equipment:  equipmentNames(v.VehicleSpecification.ModelAndOption.Equipments),
		Link:       listingLink(detailsURL, condition, vssID),
	}, nil
}

// offerPrice takes the first offer entry carrying a gross price. Keys are
// visited in sorted order so repeated mappings are deterministic.
func offerPrice(offering dto.Offering) (float64, bool) {
	keys := make([]string, 0, len(offering.OfferPrices))
	for key := range offering.OfferPrices {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if gross := offering.OfferPrices[key].OfferGrossPrice; gross != nil {
			return *gross, true
		}
	}
	return 0, false
}

// equipmentNames flattens every localized equipment name into one sorted
// list. The endpoint keys equipments by option code, so the wire order is
// not meaningful; sorting keeps the domain value stable across calls.
func equipmentNames(equipments map[string]dto.Equipment) []string {
	names := make([]string, 0, len(equipments))
	for _, equipment := range equipments {
		for _, name := range equipment.Name {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func firstLocalized(names map[string]string) string {
	keys := make([]string, 0, len(names))
	for key := range names {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if names[key] != "" {
			return names[key]
		}
	}
	return ""
}

func listingLink(detailsURL string, condition models.Condition, vssID uuid.UUID) string {
	section := "stocklocator_uc"
	if condition == models.ConditionNew {
		section = "stocklocator"
	}
	return fmt.Sprintf("%s/%s#/details/%s", detailsURL, section, vssID)
}
