package handler

import (
	"github.com/fadilmartias/lead-scorer/internal/dto"
	"github.com/fadilmartias/lead-scorer/internal/middleware"
	"github.com/fadilmartias/lead-scorer/internal/util"
	"github.com/gofiber/fiber/v2"
)

func (h *ScoringHandler) SubmitOffer(c *fiber.Ctx) error {
	offer, err := dto.ParseOffer(c.Body())
	if err != nil {
		return util.HandleError(c, err)
	}

	saved, err := h.uc.SubmitOffer(c.UserContext(), middleware.SessionID(c), offer)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OfferResponse{
		Message: "Offer received successfully",
		Offer:   saved,
	})
}

func (h *ScoringHandler) GetOffer(c *fiber.Ctx) error {
	offer, err := h.uc.GetOffer(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(offer)
}
