package dto

import "github.com/fadilmartias/lead-scorer/internal/model"

type LeadUploadResponse struct {
	Message string       `json:"message"`
	Count   int          `json:"count"`
	Leads   []model.Lead `json:"leads"`
}
