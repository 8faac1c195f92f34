package coach

import (
	"regexp"
	"strings"
)

// Category is a coach conversation topic.
type Category string

const (
	CategoryBudget   Category = "budget"
	CategoryNeeds    Category = "needs"
	CategorySearch   Category = "search"
	CategoryAnalysis Category = "analysis"
	CategoryReport   Category = "report"
	CategoryPrep     Category = "prep"
	CategoryGeneral  Category = "general"
)

// Message is one turn of the coach conversation.
type Message struct {
	Role    string `json:"role"` // user|assistant
	Content string `json:"content"`
}

// intentRules are tested in order; the first match wins. A message touching
// several topics is classified by whichever category is listed first, so the
// order here is the priority contract.
var intentRules = []struct {
	category Category
	pattern  *regexp.Regexp
}{
	{CategoryBudget, regexp.MustCompile(`budget|afford|cost|price|money|income|expense|financial|pay`)},
	{CategoryNeeds, regexp.MustCompile(`need|should|looking for|require|important|must have|prefer`)},
	{CategorySearch, regexp.MustCompile(`find|search|show me|look for|apartment|housing|place|location|area|neighborhood`)},
	{CategoryAnalysis, regexp.MustCompile(`compare|analyze|difference|better|pros and cons|evaluate|assess`)},
	{CategoryReport, regexp.MustCompile(`report|document|share with|show my|family|kids|children`)},
	{CategoryPrep, regexp.MustCompile(`agent|realtor|broker|questions to ask|prepare|ready to|next steps`)},
}

// Classify maps a message to a topic category. Pure function: lower-cases
// the message and returns the first matching category, falling back to
// general. History is accepted for interface stability; classification
// depends only on the current message.
func Classify(message string, history []Message) Category {
	_ = history
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		if rule.pattern.MatchString(lower) {
			return rule.category
		}
	}
	return CategoryGeneral
}
