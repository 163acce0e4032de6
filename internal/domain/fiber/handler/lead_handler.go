package handler

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/lead-scorer/internal/dto"
	"github.com/fadilmartias/lead-scorer/internal/middleware"
	"github.com/fadilmartias/lead-scorer/internal/response"
	"github.com/fadilmartias/lead-scorer/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var csvMediaTypes = map[string]bool{
	"text/csv":                 true,
	"application/csv":          true,
	"application/vnd.ms-excel": true,
}

func (h *ScoringHandler) UploadLeads(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "CSV file is required in field \"file\"",
			Field:   "file",
		}, err)
	}

	if file.Size > h.upload.MaxBytes {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("file is too large (max %d bytes)", h.upload.MaxBytes),
			Field:   "file",
		}, nil)
	}

	if !isCSVUpload(file.Header.Get(fiber.HeaderContentType), file.Filename) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Only CSV files are allowed",
			Field:   "file",
		}, nil)
	}

	tmp, err := os.CreateTemp(h.upload.Dir, "leads-*.csv")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot store upload",
		}, err)
	}
	savePath := tmp.Name()
	tmp.Close()
	defer func() {
		if err := os.Remove(savePath); err != nil && !os.IsNotExist(err) {
			zap.L().Warn("failed to remove upload", zap.String("path", savePath), zap.Error(err))
		}
	}()

	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot store upload",
		}, err)
	}

	leads, err := h.uc.UploadLeads(c.UserContext(), middleware.SessionID(c), savePath)
	if err != nil {
		return util.HandleError(c, err)
	}

	return c.JSON(dto.LeadUploadResponse{
		Message: "Leads uploaded",
		Count:   len(leads),
		Leads:   leads,
	})
}

func (h *ScoringHandler) ListLeads(c *fiber.Ctx) error {
	leads, err := h.uc.GetLeads(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return util.HandleError(c, err)
	}

	page := response.NewPagination(c.QueryInt("page", 1), c.QueryInt("page_size", response.DefaultPageSize), len(leads))
	lo, hi := page.Bounds()
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get leads",
		Data:       leads[lo:hi],
		Pagination: &page,
	})
}

// isCSVUpload accepts an explicit CSV media type, or a .csv filename sent with a generic type.
func isCSVUpload(contentType, filename string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil && csvMediaTypes[mediaType] {
		return true
	}
	generic := contentType == "" || mediaType == "application/octet-stream" || mediaType == "text/plain"
	return generic && strings.EqualFold(filepath.Ext(filename), ".csv")
}
