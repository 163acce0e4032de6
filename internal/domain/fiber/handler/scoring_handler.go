package handler

import (
	"time"

	"github.com/fadilmartias/lead-scorer/internal/config"
	"github.com/fadilmartias/lead-scorer/internal/middleware"
	"github.com/fadilmartias/lead-scorer/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type ScoringHandler struct {
	uc     *usecase.ScoringUsecase
	upload *config.UploadConfig
}

func NewScoringHandler(uc *usecase.ScoringUsecase, upload *config.UploadConfig) *ScoringHandler {
	return &ScoringHandler{uc: uc, upload: upload}
}

func (h *ScoringHandler) RegisterRoutes(app *fiber.App) {
	app.Use(middleware.Session())

	app.Post("/offer", h.SubmitOffer)
	app.Get("/offer", h.GetOffer)
	app.Post("/leads/upload", middleware.RateLimiter(10, 1*time.Minute), h.UploadLeads)
	app.Get("/leads", h.ListLeads)
	app.Post("/score", middleware.RateLimiter(5, 1*time.Minute), h.Score)
	app.Get("/results", h.Results)
	app.Get("/results/export", h.ExportResults)
}
