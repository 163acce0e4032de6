package scoring

import (
	"errors"
	"strings"

	"github.com/fadilmartias/lead-scorer/internal/model"
	"github.com/tidwall/gjson"
)

var ErrNoJSON = errors.New("no parseable JSON in model output")

const defaultReasoning = "No reasoning provided."

// ExtractJSON returns the first balanced {...} object in text. Braces inside
// JSON string literals do not count toward the balance. When a '{' never
// balances, the scan restarts at the next '{'.
func ExtractJSON(text string) (string, error) {
	for offset := 0; offset < len(text); {
		start := strings.IndexByte(text[offset:], '{')
		if start < 0 {
			break
		}
		start += offset
		if end, ok := balancedEnd(text, start); ok {
			return text[start : end+1], nil
		}
		offset = start + 1
	}
	return "", ErrNoJSON
}

// balancedEnd returns the index of the '}' closing the '{' at start.
func balancedEnd(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

type aiPayload struct {
	Intent    model.Intent
	Reasoning string
}

// parseAIOutput is the single extract-and-validate step for model replies.
func parseAIOutput(text string) (aiPayload, error) {
	candidate, err := ExtractJSON(text)
	if err != nil {
		return aiPayload{}, err
	}
	if !gjson.Valid(candidate) {
		return aiPayload{}, ErrNoJSON
	}
	doc := gjson.Parse(candidate)
	if !doc.IsObject() {
		return aiPayload{}, ErrNoJSON
	}

	reasoning := strings.TrimSpace(doc.Get("reasoning").String())
	if reasoning == "" {
		reasoning = defaultReasoning
	} else {
		reasoning = doc.Get("reasoning").String()
	}
	return aiPayload{
		Intent:    model.ParseIntent(doc.Get("intent").String()),
		Reasoning: reasoning,
	}, nil
}
