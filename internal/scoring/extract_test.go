package scoring

import (
	"testing"

	"github.com/fadilmartias/lead-scorer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"intent":"High"}`, `{"intent":"High"}`},
		{"prose around", "Sure! Here you go:\n{\"intent\":\"Low\"}\nHope that helps.", `{"intent":"Low"}`},
		{"markdown fence", "```json\n{\"intent\": \"Medium\"}\n```", `{"intent": "Medium"}`},
		{"nested", `x {"a":{"b":1},"intent":"High"} y {"other":1}`, `{"a":{"b":1},"intent":"High"}`},
		{"brace in string", `{"reasoning":"uses } and { freely","intent":"High"}`, `{"reasoning":"uses } and { freely","intent":"High"}`},
		{"unbalanced prefix", `use { carefully: {"intent":"High"}`, `{"intent":"High"}`},
		{"stray quote before object", `it's "quoted { then {"intent":"Medium"}`, `{"intent":"Medium"}`},
		{"escaped quote", `{"reasoning":"said \"hi}\"","intent":"Low"}`, `{"reasoning":"said \"hi}\"","intent":"Low"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	for _, in := range []string{"", "no json here", "{ never closed", "} backwards {"} {
		_, err := ExtractJSON(in)
		assert.ErrorIs(t, err, ErrNoJSON, in)
	}
}

func TestParseAIOutput(t *testing.T) {
	p, err := parseAIOutput(`Result: {"name":"A","intent":"High","score":3,"reasoning":"Strong fit."}`)
	require.NoError(t, err)
	assert.Equal(t, model.IntentHigh, p.Intent)
	assert.Equal(t, "Strong fit.", p.Reasoning)

	p, err = parseAIOutput(`{"intent":"maybe"}`)
	require.NoError(t, err)
	assert.Equal(t, model.IntentLow, p.Intent)
	assert.Equal(t, defaultReasoning, p.Reasoning)

	p, err = parseAIOutput(`{"reasoning":"  "}`)
	require.NoError(t, err)
	assert.Equal(t, model.IntentLow, p.Intent)
	assert.Equal(t, defaultReasoning, p.Reasoning)
}

func TestParseAIOutput_Invalid(t *testing.T) {
	for _, in := range []string{"nothing", `{"intent": High}`, `{"intent":"High",}`} {
		_, err := parseAIOutput(in)
		assert.ErrorIs(t, err, ErrNoJSON, in)
	}
}
