package util

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/lead-scorer/internal/apperror"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func call(t *testing.T, h fiber.Handler) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestHandleError_Validation(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return HandleError(c, apperror.NewValidationError("value_props", "value_props must be an array"))
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "value_props must be an array", gjson.Get(body, "error").String())
	assert.Equal(t, "value_props", gjson.Get(body, "field").String())
}

func TestHandleError_NoLeads(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return HandleError(c, apperror.ErrNoLeads)
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "No leads uploaded to score. Upload CSV first", gjson.Get(body, "error").String())
}

func TestErrorResponse_DefaultsTo500(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, ErrorResponseFormat{Message: "boom"}, errors.New("root cause"))
	})
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "boom", gjson.Get(body, "error").String())
	assert.Equal(t, "root cause", gjson.Get(body, "dev_message").String())
}

func TestSuccessResponse(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, SuccessResponseFormat{Message: "ok", Data: []int{1, 2}})
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, gjson.Get(body, "success").Bool())
	assert.Equal(t, int64(2), gjson.Get(body, "data.#").Int())
}
