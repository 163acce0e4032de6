// Package scoring holds the lead scoring pipeline: the keyword rule scorer, the
// LLM-backed intent scorer, the combiner and the batch orchestrator.
package scoring

import (
	"strings"

	"github.com/fadilmartias/lead-scorer/internal/model"
)

const MaxRulePoints = 50

type RuleResult struct {
	Points       int
	Explanations []string
}

type bucket struct {
	keywords []string
	points   int
	reason   string
}

// Buckets are checked in order; the first match in a category wins.
var (
	roleBuckets = []bucket{
		{keywords: []string{"chief", "head", "director", "vp"}, points: 20, reason: "decision maker"},
		{keywords: []string{"manager", "lead", "senior"}, points: 10, reason: "influencer"},
	}
	industryBuckets = []bucket{
		{keywords: []string{"saas", "software", "tech"}, points: 20, reason: "exact ICP match"},
		{keywords: []string{"marketing", "consulting", "services"}, points: 10, reason: "adjacent to ICP"},
	}
)

const completenessPoints = 10

// ScoreRules is the deterministic half of a lead's score.
func ScoreRules(lead model.Lead) RuleResult {
	res := RuleResult{Explanations: []string{}}

	if b, ok := matchBucket(lead.Role, roleBuckets); ok {
		res.Points += b.points
		res.Explanations = append(res.Explanations, "Role: "+b.reason)
	}
	if b, ok := matchBucket(lead.Industry, industryBuckets); ok {
		res.Points += b.points
		res.Explanations = append(res.Explanations, "Industry: "+b.reason)
	}
	if lead.IsComplete() {
		res.Points += completenessPoints
		res.Explanations = append(res.Explanations, "Complete profile")
	}
	return res
}

func matchBucket(text string, buckets []bucket) (bucket, bool) {
	lower := strings.ToLower(text)
	if lower == "" {
		return bucket{}, false
	}
	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return b, true
			}
		}
	}
	return bucket{}, false
}
