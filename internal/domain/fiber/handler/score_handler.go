package handler

import (
	"github.com/fadilmartias/lead-scorer/internal/dto"
	"github.com/fadilmartias/lead-scorer/internal/middleware"
	"github.com/fadilmartias/lead-scorer/internal/util"
	"github.com/gofiber/fiber/v2"
)

func (h *ScoringHandler) Score(c *fiber.Ctx) error {
	run, err := h.uc.Score(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(dto.ScoreResponse{
		Message: "Scoring completed",
		RunID:   run.ID,
		Results: run.Results,
	})
}

func (h *ScoringHandler) Results(c *fiber.Ctx) error {
	results, err := h.uc.GetResults(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(results)
}

func (h *ScoringHandler) ExportResults(c *fiber.Ctx) error {
	out, err := h.uc.ExportResults(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to export results",
		}, err)
	}
	c.Attachment("results.csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(out)
}
