package model

import "strings"

type Intent string

const (
	IntentHigh   Intent = "High"
	IntentMedium Intent = "Medium"
	IntentLow    Intent = "Low"
)

// ParseIntent maps a model-supplied label onto the closed vocabulary.
// Anything that is not High or Medium is Low.
func ParseIntent(label string) Intent {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "high":
		return IntentHigh
	case "medium":
		return IntentMedium
	default:
		return IntentLow
	}
}

// Points is the fixed AI contribution for an intent label.
func (i Intent) Points() int {
	switch i {
	case IntentHigh:
		return 50
	case IntentMedium:
		return 30
	default:
		return 10
	}
}

// Result column order is the export column order.
type Result struct {
	Name      string `json:"name" csv:"name"`
	Role      string `json:"role" csv:"role"`
	Company   string `json:"company" csv:"company"`
	Intent    Intent `json:"intent" csv:"intent"`
	Score     int    `json:"score" csv:"score"`
	Reasoning string `json:"reasoning" csv:"reasoning"`
}
