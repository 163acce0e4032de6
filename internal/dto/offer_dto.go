package dto

import (
	"github.com/fadilmartias/lead-scorer/internal/apperror"
	"github.com/fadilmartias/lead-scorer/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

var validate = validator.New()

type OfferResponse struct {
	Message string      `json:"message"`
	Offer   model.Offer `json:"offer"`
}

// ParseOffer checks the raw POST /offer body field by field and returns a typed Offer.
// Array fields may be empty; they only have to be arrays.
func ParseOffer(body []byte) (model.Offer, error) {
	if !gjson.ValidBytes(body) {
		return model.Offer{}, apperror.NewValidationError("body", "request body must be valid JSON")
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return model.Offer{}, apperror.NewValidationError("body", "request body must be a JSON object")
	}

	name := doc.Get("name")
	if name.Type != gjson.String {
		return model.Offer{}, apperror.NewValidationError("name", "name is required and must be a string")
	}

	valueProps, ok := stringArray(doc.Get("value_props"))
	if !ok {
		return model.Offer{}, apperror.NewValidationError("value_props", "value_props must be an array")
	}
	useCases, ok := stringArray(doc.Get("ideal_use_cases"))
	if !ok {
		return model.Offer{}, apperror.NewValidationError("ideal_use_cases", "ideal_use_cases must be an array")
	}

	offer := model.Offer{
		Name:          name.String(),
		ValueProps:    valueProps,
		IdealUseCases: useCases,
	}
	if err := validate.Struct(offer); err != nil {
		return model.Offer{}, apperror.NewValidationError("name", "name is required and must be a string")
	}
	return offer, nil
}

func stringArray(v gjson.Result) ([]string, bool) {
	if !v.IsArray() {
		return nil, false
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out, true
}
