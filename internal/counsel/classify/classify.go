package classify

import "strings"

// Category identifies one of the fixed, mutually exclusive reply
// classes the offline engine can select.
type Category string

const (
	// CategoryGeneralSupport is the terminal empathetic fallback,
	// selected when no specific rule matches but the text still carries
	// a relevance keyword.
	CategoryGeneralSupport Category = "general-support"
	// CategoryOffTopic is the redirect reply for text outside the
	// support domain entirely.
	CategoryOffTopic Category = "off-topic"
)

// Clause is one conjunct of a rule's trigger predicate: it is satisfied
// when at least one Any phrase is present as a substring and no Not
// phrase is present. An empty Any list leaves only the Not condition.
type Clause struct {
	Any []string
	Not []string
}

// Rule maps a trigger predicate (the conjunction of its clauses) to a
// category and its fixed reply. Rules live in an ordered sequence that
// is append-only at build time; evaluation is front-to-back and the
// first satisfied rule wins, so ordering encodes precedence.
type Rule struct {
	Category Category
	Clauses  []Clause
	Reply    string
}

func (r Rule) matches(text string) bool {
	for _, cl := range r.Clauses {
		if !cl.matches(text) {
			return false
		}
	}
	return len(r.Clauses) > 0
}

func (cl Clause) matches(text string) bool {
	for _, phrase := range cl.Not {
		if strings.Contains(text, phrase) {
			return false
		}
	}
	if len(cl.Any) == 0 {
		return true
	}
	for _, phrase := range cl.Any {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// Engine is the offline rule-based classifier. It is immutable after
// construction and requires no synchronization.
type Engine struct {
	rules     []Rule
	relevance []string
}

func NewEngine() *Engine {
	return &Engine{rules: supportRules, relevance: relevanceKeywords}
}

// NewEngineWithRules builds an engine over a caller-supplied rule table
// and relevance keyword set.
func NewEngineWithRules(rules []Rule, relevance []string) *Engine {
	return &Engine{rules: rules, relevance: relevance}
}

// Classify maps text to a category and its reply. It lowercases the
// input once and evaluates the rule sequence in order; the first rule
// whose clauses are all satisfied wins. With no rule match, a relevance
// keyword hit yields the generic empathetic reply and anything else the
// off-topic redirect. Pure and deterministic over all inputs.
func (e *Engine) Classify(text string) (Category, string) {
	lowered := strings.ToLower(text)
	for _, rule := range e.rules {
		if rule.matches(lowered) {
			return rule.Category, rule.Reply
		}
	}
	for _, kw := range e.relevance {
		if strings.Contains(lowered, kw) {
			return CategoryGeneralSupport, generalSupportReply
		}
	}
	return CategoryOffTopic, offTopicReply
}
