package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/lead-scorer/internal/apperror"
	"github.com/fadilmartias/lead-scorer/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type FailurePolicy string

const (
	// PolicyAbort fails the whole batch on the first AI scoring error.
	PolicyAbort FailurePolicy = "abort"
	// PolicyDegrade keeps the batch and substitutes FallbackResult for failed leads.
	PolicyDegrade FailurePolicy = "degrade"
)

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyDegrade, "":
		return PolicyDegrade, nil
	case PolicyAbort:
		return PolicyAbort, nil
	default:
		return "", fmt.Errorf("unknown AI failure policy %q (want abort or degrade)", s)
	}
}

type OrchestratorConfig struct {
	Policy        FailurePolicy
	ReasoningMode ReasoningMode
	// Concurrency caps in-flight AI calls; 0 scores every lead at once.
	Concurrency int
}

type Orchestrator struct {
	ai  IntentScorer
	cfg OrchestratorConfig
}

func NewOrchestrator(ai IntentScorer, cfg OrchestratorConfig) *Orchestrator {
	if cfg.Policy == "" {
		cfg.Policy = PolicyDegrade
	}
	if cfg.ReasoningMode == "" {
		cfg.ReasoningMode = ReasoningAI
	}
	return &Orchestrator{ai: ai, cfg: cfg}
}

func (o *Orchestrator) Policy() FailurePolicy {
	return o.cfg.Policy
}

// Run scores every lead concurrently. results[i] always belongs to leads[i].
func (o *Orchestrator) Run(ctx context.Context, leads []model.Lead, offer model.Offer) ([]model.Result, error) {
	if len(leads) == 0 {
		return nil, apperror.ErrNoLeads
	}

	results := make([]model.Result, len(leads))
	g, gCtx := errgroup.WithContext(ctx)
	if o.cfg.Concurrency > 0 {
		g.SetLimit(o.cfg.Concurrency)
	}

	for i, lead := range leads {
		g.Go(func() error {
			rules := ScoreRules(lead)
			ai, err := o.ai.Score(gCtx, lead, offer)
			if err != nil {
				if o.cfg.Policy == PolicyAbort {
					return err
				}
				zap.L().Warn("scoring: AI scoring failed, using fallback result",
					zap.Int("index", i),
					zap.String("lead", lead.Name),
					zap.Error(err),
				)
				results[i] = FallbackResult(lead)
				return nil
			}
			results[i] = Combine(lead, rules, ai, o.cfg.ReasoningMode)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
