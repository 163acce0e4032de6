package dto

import (
	"errors"
	"testing"

	"github.com/fadilmartias/lead-scorer/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOffer_Valid(t *testing.T) {
	offer, err := ParseOffer([]byte(`{"name":"X","value_props":["a"],"ideal_use_cases":["b"]}`))
	require.NoError(t, err)
	assert.Equal(t, "X", offer.Name)
	assert.Equal(t, []string{"a"}, offer.ValueProps)
	assert.Equal(t, []string{"b"}, offer.IdealUseCases)
}

func TestParseOffer_EmptyArraysAccepted(t *testing.T) {
	offer, err := ParseOffer([]byte(`{"name":"X","value_props":[],"ideal_use_cases":[]}`))
	require.NoError(t, err)
	assert.NotNil(t, offer.ValueProps)
	assert.Empty(t, offer.ValueProps)
	assert.Empty(t, offer.IdealUseCases)
}

func TestParseOffer_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{"not json", `{`, "body", "request body must be valid JSON"},
		{"not object", `[1,2]`, "body", "request body must be a JSON object"},
		{"missing name", `{"value_props":[],"ideal_use_cases":[]}`, "name", "name is required and must be a string"},
		{"numeric name", `{"name":5,"value_props":[],"ideal_use_cases":[]}`, "name", "name is required and must be a string"},
		{"empty name", `{"name":"","value_props":[],"ideal_use_cases":[]}`, "name", "name is required and must be a string"},
		{"value_props string", `{"name":"X","value_props":"fast","ideal_use_cases":[]}`, "value_props", "value_props must be an array"},
		{"value_props missing", `{"name":"X","ideal_use_cases":[]}`, "value_props", "value_props must be an array"},
		{"use cases object", `{"name":"X","value_props":[],"ideal_use_cases":{}}`, "ideal_use_cases", "ideal_use_cases must be an array"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOffer([]byte(tt.body))
			var vErr *apperror.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.msg, vErr.Message)
		})
	}
}
