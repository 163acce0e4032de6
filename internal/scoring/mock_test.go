package scoring

import (
	"context"

	"github.com/fadilmartias/lead-scorer/internal/model"
	"github.com/stretchr/testify/mock"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// funcScorer adapts a function to IntentScorer for orchestrator tests.
type funcScorer func(ctx context.Context, lead model.Lead, offer model.Offer) (AIResult, error)

func (f funcScorer) Score(ctx context.Context, lead model.Lead, offer model.Offer) (AIResult, error) {
	return f(ctx, lead, offer)
}
