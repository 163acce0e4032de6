package scoring

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/lead-scorer/internal/model"
)

type ReasoningMode string

const (
	// ReasoningAI surfaces only the model's explanation.
	ReasoningAI ReasoningMode = "ai"
	// ReasoningCombined appends the rule explanations after the model's.
	ReasoningCombined ReasoningMode = "combined"
)

func ParseReasoningMode(s string) (ReasoningMode, error) {
	switch ReasoningMode(strings.ToLower(strings.TrimSpace(s))) {
	case ReasoningAI, "":
		return ReasoningAI, nil
	case ReasoningCombined:
		return ReasoningCombined, nil
	default:
		return "", fmt.Errorf("unknown reasoning mode %q (want ai or combined)", s)
	}
}

const aiFailureReasoning = "Error in AI processing."

// Combine merges both scorer outputs. Identity fields come from the lead, never
// from whatever the model echoed back.
func Combine(lead model.Lead, rules RuleResult, ai AIResult, mode ReasoningMode) model.Result {
	reasoning := ai.Reasoning
	if mode == ReasoningCombined && len(rules.Explanations) > 0 {
		reasoning = fmt.Sprintf("%s Rules: %s", reasoning, strings.Join(rules.Explanations, "; "))
	}
	return model.Result{
		Name:      lead.Name,
		Role:      lead.Role,
		Company:   lead.Company,
		Intent:    ai.Intent,
		Score:     rules.Points + ai.Points,
		Reasoning: reasoning,
	}
}

// FallbackResult stands in for a lead whose AI call failed under the degrade policy.
func FallbackResult(lead model.Lead) model.Result {
	return model.Result{
		Name:      lead.Name,
		Role:      lead.Role,
		Company:   lead.Company,
		Intent:    model.IntentLow,
		Score:     0,
		Reasoning: aiFailureReasoning,
	}
}
