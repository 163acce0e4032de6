package scoring

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fadilmartias/lead-scorer/internal/apperror"
	"github.com/fadilmartias/lead-scorer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeLeads(n int) []model.Lead {
	leads := make([]model.Lead, n)
	for i := range leads {
		leads[i] = model.Lead{Name: fmt.Sprintf("lead-%d", i), Role: "VP", Company: fmt.Sprintf("co-%d", i)}
	}
	return leads
}

func TestOrchestrator_EmptyBatch(t *testing.T) {
	o := NewOrchestrator(funcScorer(func(context.Context, model.Lead, model.Offer) (AIResult, error) {
		t.Fatal("scorer must not be called")
		return AIResult{}, nil
	}), OrchestratorConfig{})

	_, err := o.Run(context.Background(), nil, model.Offer{})
	assert.ErrorIs(t, err, apperror.ErrNoLeads)
}

func TestOrchestrator_PreservesOrder(t *testing.T) {
	leads := makeLeads(25)
	// Later leads finish first.
	scorer := funcScorer(func(ctx context.Context, lead model.Lead, _ model.Offer) (AIResult, error) {
		var idx int
		_, _ = fmt.Sscanf(lead.Name, "lead-%d", &idx)
		time.Sleep(time.Duration(25-idx) * time.Millisecond)
		return AIResult{Points: 30, Intent: model.IntentMedium, Reasoning: "r-" + lead.Name}, nil
	})

	results, err := NewOrchestrator(scorer, OrchestratorConfig{}).Run(context.Background(), leads, model.Offer{})
	require.NoError(t, err)
	require.Len(t, results, len(leads))
	for i, r := range results {
		assert.Equal(t, leads[i].Name, r.Name)
		assert.Equal(t, leads[i].Company, r.Company)
		assert.Equal(t, "r-"+leads[i].Name, r.Reasoning)
		assert.Equal(t, 20+30, r.Score)
	}
}

func TestOrchestrator_ScenarioVPSaaS(t *testing.T) {
	offer := model.Offer{Name: "X", ValueProps: []string{"a"}, IdealUseCases: []string{"b"}}
	lead := fullLead("VP of Sales", "SaaS")

	c := &mockCompleter{}
	c.On("Complete", mock.Anything, BuildPrompt(lead, offer)).Return(`{"intent":"High","reasoning":"Great fit"}`, nil)

	o := NewOrchestrator(NewAIScorer(c, 0), OrchestratorConfig{Policy: PolicyAbort})
	results, err := o.Run(context.Background(), []model.Lead{lead}, offer)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 100, results[0].Score)
	assert.Equal(t, model.IntentHigh, results[0].Intent)
}

func failingScorer(failName string) funcScorer {
	return func(ctx context.Context, lead model.Lead, _ model.Offer) (AIResult, error) {
		if lead.Name == failName {
			return AIResult{}, apperror.NewAIScoringError(lead.Name, errors.New("model unavailable"))
		}
		return AIResult{Points: 50, Intent: model.IntentHigh, Reasoning: "ok"}, nil
	}
}

func TestOrchestrator_DegradePolicy(t *testing.T) {
	leads := makeLeads(3)
	o := NewOrchestrator(failingScorer("lead-1"), OrchestratorConfig{Policy: PolicyDegrade})

	results, err := o.Run(context.Background(), leads, model.Offer{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, model.IntentHigh, results[0].Intent)
	assert.Equal(t, 70, results[0].Score)
	assert.Equal(t, model.Result{Name: "lead-1", Role: "VP", Company: "co-1", Intent: model.IntentLow, Score: 0, Reasoning: "Error in AI processing."}, results[1])
	assert.Equal(t, model.IntentHigh, results[2].Intent)
}

func TestOrchestrator_AbortPolicy(t *testing.T) {
	o := NewOrchestrator(failingScorer("lead-1"), OrchestratorConfig{Policy: PolicyAbort})

	results, err := o.Run(context.Background(), makeLeads(3), model.Offer{})
	assert.Nil(t, results)
	var aiErr *apperror.AIScoringError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, "lead-1", aiErr.Lead)
}

func TestOrchestrator_AbortCancelsOutstandingCalls(t *testing.T) {
	var cancelled atomic.Int32
	scorer := funcScorer(func(ctx context.Context, lead model.Lead, _ model.Offer) (AIResult, error) {
		if lead.Name == "lead-0" {
			return AIResult{}, apperror.NewAIScoringError(lead.Name, errors.New("bad output"))
		}
		select {
		case <-ctx.Done():
			cancelled.Add(1)
			return AIResult{}, apperror.NewAIScoringError(lead.Name, ctx.Err())
		case <-time.After(5 * time.Second):
			return AIResult{Points: 10, Intent: model.IntentLow}, nil
		}
	})

	start := time.Now()
	_, err := NewOrchestrator(scorer, OrchestratorConfig{Policy: PolicyAbort}).Run(context.Background(), makeLeads(4), model.Offer{})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, int32(3), cancelled.Load())
}

func TestOrchestrator_ConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	scorer := funcScorer(func(ctx context.Context, lead model.Lead, _ model.Offer) (AIResult, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return AIResult{Points: 10, Intent: model.IntentLow}, nil
	})

	results, err := NewOrchestrator(scorer, OrchestratorConfig{Concurrency: 2}).Run(context.Background(), makeLeads(10), model.Offer{})
	require.NoError(t, err)
	assert.Len(t, results, 10)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestParseFailurePolicy(t *testing.T) {
	p, err := ParseFailurePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyDegrade, p)

	p, err = ParseFailurePolicy("ABORT")
	require.NoError(t, err)
	assert.Equal(t, PolicyAbort, p)

	_, err = ParseFailurePolicy("retry")
	assert.Error(t, err)
}
