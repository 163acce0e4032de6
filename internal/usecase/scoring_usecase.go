package usecase

import (
	"context"
	"time"

	"github.com/fadilmartias/lead-scorer/internal/apperror"
	"github.com/fadilmartias/lead-scorer/internal/model"
	"github.com/fadilmartias/lead-scorer/internal/repository"
	"github.com/fadilmartias/lead-scorer/internal/scoring"
	"github.com/fadilmartias/lead-scorer/internal/util"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

type ScoringUsecase struct {
	repo         repository.SessionRepository
	orchestrator *scoring.Orchestrator
}

func NewScoringUsecase(repo repository.SessionRepository, orchestrator *scoring.Orchestrator) *ScoringUsecase {
	return &ScoringUsecase{repo: repo, orchestrator: orchestrator}
}

func (uc *ScoringUsecase) SubmitOffer(ctx context.Context, sessionID string, offer model.Offer) (model.Offer, error) {
	if err := uc.repo.SaveOffer(ctx, sessionID, offer); err != nil {
		return model.Offer{}, eris.Wrap(err, "save offer")
	}
	zap.L().Info("offer stored",
		zap.String("session", sessionID),
		zap.String("offer", offer.Name),
		zap.Int("value_props", len(offer.ValueProps)),
		zap.Int("ideal_use_cases", len(offer.IdealUseCases)),
	)
	return offer, nil
}

func (uc *ScoringUsecase) GetOffer(ctx context.Context, sessionID string) (model.Offer, error) {
	offer, err := uc.repo.GetOffer(ctx, sessionID)
	if err != nil {
		return model.Offer{}, eris.Wrap(err, "load offer")
	}
	if offer == nil {
		return model.Offer{}, apperror.ErrNoOffer
	}
	return *offer, nil
}

// UploadLeads parses the stored upload at path and replaces the session's lead batch.
// On a parse failure the previous batch is left untouched.
func (uc *ScoringUsecase) UploadLeads(ctx context.Context, sessionID, path string) ([]model.Lead, error) {
	leads, err := util.ExtractLeadsCSV(path)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SaveLeads(ctx, sessionID, leads); err != nil {
		return nil, eris.Wrap(err, "save leads")
	}
	zap.L().Info("lead batch stored", zap.String("session", sessionID), zap.Int("count", len(leads)))
	return leads, nil
}

func (uc *ScoringUsecase) GetLeads(ctx context.Context, sessionID string) ([]model.Lead, error) {
	leads, err := uc.repo.GetLeads(ctx, sessionID)
	if err != nil {
		return nil, eris.Wrap(err, "load leads")
	}
	return leads, nil
}

type ScoreRun struct {
	ID      string
	Results []model.Result
}

// Score snapshots the offer and lead batch, scores the batch and replaces the
// stored results once at the end. Nothing is stored when the run fails.
func (uc *ScoringUsecase) Score(ctx context.Context, sessionID string) (ScoreRun, error) {
	leads, err := uc.repo.GetLeads(ctx, sessionID)
	if err != nil {
		return ScoreRun{}, eris.Wrap(err, "load leads")
	}
	if len(leads) == 0 {
		return ScoreRun{}, apperror.ErrNoLeads
	}

	offer := model.Offer{ValueProps: []string{}, IdealUseCases: []string{}}
	stored, err := uc.repo.GetOffer(ctx, sessionID)
	if err != nil {
		return ScoreRun{}, eris.Wrap(err, "load offer")
	}
	if stored != nil {
		offer = *stored
	} else {
		zap.L().Warn("scoring without an offer", zap.String("session", sessionID))
	}

	run := ScoreRun{ID: uuid.NewString()}
	log := zap.L().With(zap.String("run_id", run.ID), zap.String("session", sessionID))
	start := time.Now()
	log.Info("scoring batch", zap.Int("leads", len(leads)), zap.String("policy", string(uc.orchestrator.Policy())))

	results, err := uc.orchestrator.Run(ctx, leads, offer)
	if err != nil {
		log.Error("scoring batch failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return ScoreRun{}, err
	}

	if err := uc.repo.SaveResults(ctx, sessionID, results); err != nil {
		return ScoreRun{}, eris.Wrap(err, "save results")
	}
	log.Info("scoring batch done", zap.Int("results", len(results)), zap.Duration("elapsed", time.Since(start)))

	run.Results = results
	return run, nil
}

func (uc *ScoringUsecase) GetResults(ctx context.Context, sessionID string) ([]model.Result, error) {
	results, err := uc.repo.GetResults(ctx, sessionID)
	if err != nil {
		return nil, eris.Wrap(err, "load results")
	}
	return results, nil
}

func (uc *ScoringUsecase) ExportResults(ctx context.Context, sessionID string) ([]byte, error) {
	results, err := uc.GetResults(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return util.EncodeResultsCSV(results)
}
