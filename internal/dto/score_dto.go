package dto

import "github.com/fadilmartias/lead-scorer/internal/model"

type ScoreResponse struct {
	Message string         `json:"message"`
	RunID   string         `json:"run_id"`
	Results []model.Result `json:"results"`
}
