package model

type Offer struct {
	Name          string   `json:"name" validate:"required"`
	ValueProps    []string `json:"value_props"`
	IdealUseCases []string `json:"ideal_use_cases"`
}
