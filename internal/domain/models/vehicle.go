package models

import (
	"strings"

	"github.com/google/uuid"
)

type Condition string

const (
	ConditionNew  Condition = "NEW"
	ConditionUsed Condition = "USED"
)

// Vehicle is one stock-locator listing, fully resolved for display.
// Instances are never mutated after mapping; the pipeline always works on
// fresh slices.
type Vehicle struct {
	VSSID      uuid.UUID `json:"vssId"`
	DocumentID string    `json:"documentId"`
	Model      string    `json:"model"`
	Condition  Condition `json:"condition"`
	// Price is the effective offer gross price. A listing without a
	// resolvable offer price never becomes a Vehicle.
	Price     float64  `json:"price"`
	ListPrice float64  `json:"listPrice"`
	Trim      string   `json:"trim,omitempty"`
	Color     string   `json:"color,omitempty"`
	Equipment []string `json:"equipment"`
	Link      string   `json:"link"`
}

// DiscountPercent is the offer discount relative to the list price.
// Returns 0 when the list price is unknown.
func (v Vehicle) DiscountPercent() float64 {
	if v.ListPrice <= 0 {
		return 0
	}
	return (v.ListPrice - v.Price) / v.ListPrice * 100
}

// HasEquipment reports whether one required equipment name matches any of
// the vehicle's equipment names under the given match policy.
func (v Vehicle) HasEquipment(name string, mode EquipmentMatch) bool {
	if name == "" {
		return false
	}
	for _, candidate := range v.Equipment {
		switch mode {
		case MatchContains:
			if strings.Contains(strings.ToLower(candidate), strings.ToLower(name)) {
				return true
			}
		default:
			if candidate == name {
				return true
			}
		}
	}
	return false
}

// HasAllEquipment applies AND semantics over the required names.
// An empty required set always matches.
func (v Vehicle) HasAllEquipment(names []string, mode EquipmentMatch) bool {
	for _, name := range names {
		if !v.HasEquipment(name, mode) {
			return false
		}
	}
	return true
}
