package scoring

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/lead-scorer/internal/model"
)

const leadPromptTemplate = `
You are a B2B sales analyst. Assess how likely this prospect is to buy the product described below.

Product/Offer:
Name: %s
Value propositions:
%s
Ideal use cases:
%s

Prospect:
Name: %s
Role: %s
Company: %s
Industry: %s
Location: %s
LinkedIn bio: %s

Return your answer STRICTLY in JSON format with this schema:
{
  "name": "<prospect name>",
  "role": "<prospect role>",
  "company": "<prospect company>",
  "intent": "<one of High, Medium, Low>",
  "score": <number 0-100>,
  "reasoning": "<one or two sentences explaining the intent>"
}
`

// BuildPrompt renders the scoring prompt for one lead against the current offer.
func BuildPrompt(lead model.Lead, offer model.Offer) string {
	return fmt.Sprintf(leadPromptTemplate,
		orNone(offer.Name),
		bulletList(offer.ValueProps),
		bulletList(offer.IdealUseCases),
		orNone(lead.Name),
		orNone(lead.Role),
		orNone(lead.Company),
		orNone(lead.Industry),
		orNone(lead.Location),
		orNone(lead.LinkedInBio),
	)
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "- (none provided)"
	}
	return strings.TrimRight(b.String(), "\n")
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not provided)"
	}
	return s
}
