package models

import "fmt"

// DefaultModel is searched when no --model flag is given.
const DefaultModel = "iX2_U10E"

type OutputMode string

const (
	OutputUI   OutputMode = "ui"
	OutputText OutputMode = "text"
	OutputJSON OutputMode = "json"
)

func ParseOutputMode(value string) (OutputMode, error) {
	switch OutputMode(value) {
	case OutputUI, OutputText, OutputJSON:
		return OutputMode(value), nil
	default:
		return "", fmt.Errorf("unknown output mode %q (expected ui, text or json)", value)
	}
}

// EquipmentMatch selects how required equipment names are compared against a
// vehicle's equipment list.
type EquipmentMatch string

const (
	// MatchExact requires case-sensitive string equality.
	MatchExact EquipmentMatch = "exact"
	// MatchContains requires a case-insensitive substring match.
	MatchContains EquipmentMatch = "contains"
)

func ParseEquipmentMatch(value string) (EquipmentMatch, error) {
	switch EquipmentMatch(value) {
	case MatchExact, MatchContains:
		return EquipmentMatch(value), nil
	default:
		return "", fmt.Errorf("unknown equipment match mode %q (expected exact or contains)", value)
	}
}

// SearchCriteria holds the resolved per-invocation inputs. Built once by the
// CLI layer, immutable afterwards.
type SearchCriteria struct {
	Models         []string
	Condition      Condition
	Limit          *int
	EquipmentNames []string
	EquipmentMatch EquipmentMatch
	Output         OutputMode
}

// SearchQuery is one outbound request descriptor: one per requested model.
type SearchQuery struct {
	Model     string
	Condition Condition
	// MaxResults caps the fetch for this query; 0 lets the source use its
	// configured page size.
	MaxResults int
}
