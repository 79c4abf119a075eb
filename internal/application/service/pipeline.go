package service

import (
	"sort"

	"github.com/tcarmet/bmw-finder/internal/domain/models"
)

// Process runs the filter -> sort -> limit pipeline over fetched vehicles.
// Each stage returns a fresh slice; the input is never mutated, so calling
// Process twice on the same input yields identical results.
func Process(vehicles []models.Vehicle, criteria models.SearchCriteria) []models.Vehicle {
	filtered := filterByEquipment(vehicles, criteria.EquipmentNames, criteria.EquipmentMatch)
	sorted := sortByPrice(filtered)
	return limitResults(sorted, criteria.Limit)
}

// BuildQueries derives one SearchQuery per requested model, in flag order.
func BuildQueries(criteria models.SearchCriteria) []models.SearchQuery {
	maxResults := 0
	if criteria.Limit != nil {
		maxResults = *criteria.Limit
	}

	queries := make([]models.SearchQuery, 0, len(criteria.Models))
	for _, model := range criteria.Models {
		queries = append(queries, models.SearchQuery{
			Model:      model,
			Condition:  criteria.Condition,
			MaxResults: maxResults,
		})
	}
	return queries
}

func filterByEquipment(vehicles []models.Vehicle, names []string, mode models.EquipmentMatch) []models.Vehicle {
	filtered := make([]models.Vehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		if vehicle.HasAllEquipment(names, mode) {
			filtered = append(filtered, vehicle)
		}
	}
	return filtered
}

// sortByPrice orders by ascending price. The sort is stable so equal-price
// vehicles keep their fetch order and output stays deterministic.
func sortByPrice(vehicles []models.Vehicle) []models.Vehicle {
	sorted := make([]models.Vehicle, len(vehicles))
	copy(sorted, vehicles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})
	return sorted
}

func limitResults(vehicles []models.Vehicle, limit *int) []models.Vehicle {
	if limit == nil || *limit >= len(vehicles) {
		return vehicles
	}
	if *limit <= 0 {
		return []models.Vehicle{}
	}
	return vehicles[:*limit]
}
