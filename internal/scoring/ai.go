package scoring

import (
	"context"
	"time"

	"github.com/fadilmartias/lead-scorer/internal/apperror"
	"github.com/fadilmartias/lead-scorer/internal/model"
	"github.com/fadilmartias/lead-scorer/internal/service"
)

type AIResult struct {
	Points    int
	Intent    model.Intent
	Reasoning string
}

// IntentScorer is the fallible, network-bound half of a lead's score.
type IntentScorer interface {
	Score(ctx context.Context, lead model.Lead, offer model.Offer) (AIResult, error)
}

type AIScorer struct {
	completer service.Completer
	timeout   time.Duration
}

func NewAIScorer(completer service.Completer, timeout time.Duration) *AIScorer {
	return &AIScorer{completer: completer, timeout: timeout}
}

// Score makes one completion call per lead. Transport failures, timeouts and
// unparseable replies all come back as *apperror.AIScoringError.
func (s *AIScorer) Score(ctx context.Context, lead model.Lead, offer model.Offer) (AIResult, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.completer.Complete(ctx, BuildPrompt(lead, offer))
	if err != nil {
		return AIResult{}, apperror.NewAIScoringError(lead.Name, err)
	}

	payload, err := parseAIOutput(text)
	if err != nil {
		return AIResult{}, apperror.NewAIScoringError(lead.Name, err)
	}

	return AIResult{
		Points:    payload.Intent.Points(),
		Intent:    payload.Intent,
		Reasoning: payload.Reasoning,
	}, nil
}
