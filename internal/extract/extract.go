// Package extract picks a single recommended city out of free-form
// recommendation text.
//
// Matching runs an ordered list of rules over the candidate list; the first
// rule that matches any candidate wins. Rules differ in how they
// match and in case sensitivity, and each rule records both.
package extract

import (
	"regexp"
	"strings"
)

// NoRecommendation is returned when no city can be selected.
const NoRecommendation = "No recommendation available"

// Strategy is how a rule tests a candidate against the text.
type Strategy int

// Rule strategies.
const (
	// StrategyPhraseThenCity matches the regular expression `phrase.*city`
	// anywhere in the text. The wildcard does not cross line breaks.
	StrategyPhraseThenCity Strategy = iota
	// StrategyLiteralPair looks for the literal strings "city.*phrase" or
	// "phrase.*city"; ".*" is not a wildcard here.
	StrategyLiteralPair
	// StrategySentenceStart matches a city at the start of the text or right
	// after sentence-ending punctuation and whitespace.
	StrategySentenceStart
	// StrategyContains matches any occurrence of the city.
	StrategyContains
)

// Rule is one tier of the extraction heuristic.
type Rule struct {
	Name            string
	Strategy        Strategy
	CaseInsensitive bool
	// Phrases are tried in order, each against every candidate, for the
	// phrase-based strategies. Other strategies ignore them.
	Phrases []string
}

// DefaultRules are the tiers in precedence order.
var DefaultRules = []Rule{
	{
		Name:            "strong-signal",
		Strategy:        StrategyPhraseThenCity,
		CaseInsensitive: true,
		Phrases: []string{
			"final recommendation is",
			"we recommend",
			"I recommend",
			"best city is",
			"top choice is",
			"recommend visiting",
			"ideal destination is",
			"best destination is",
		},
	},
	{
		Name:     "positive-sentiment",
		Strategy: StrategyLiteralPair,
		Phrases: []string{
			"excellent weather",
			"ideal conditions",
			"perfect weather",
			"best weather",
			"highest comfort score",
			"most comfortable",
		},
	},
	{
		Name:     "sentence-start",
		Strategy: StrategySentenceStart,
	},
	{
		Name:     "bare-mention",
		Strategy: StrategyContains,
	},
}

// Fallback decides the result when no rule matches a non-empty candidate list.
type Fallback int

// Fallback policies.
const (
	// FallbackSentinel returns NoRecommendation.
	FallbackSentinel Fallback = iota
	// FallbackFirstCandidate returns the first candidate.
	FallbackFirstCandidate
)

// Match is a selected city and the rule that selected it.
type Match struct {
	City string `json:"city"`
	Tier string `json:"tier"`
}

// Extractor applies a rule list with a fallback policy. The zero value uses
// DefaultRules and FallbackSentinel.
type Extractor struct {
	Rules    []Rule
	Fallback Fallback
}

// Extract returns the recommended city using the default extractor.
func Extract(text string, candidates []string) string {
	return Extractor{}.Extract(text, candidates)
}

// Extract returns the recommended city or the fallback result.
func (e Extractor) Extract(text string, candidates []string) string {
	m, _ := e.Resolve(text, candidates)
	return m.City
}

// Resolve is Match with the fallback policy applied. The returned bool is
// false when no rule matched, in which case Tier is empty.
func (e Extractor) Resolve(text string, candidates []string) (Match, bool) {
	if m, ok := e.Match(text, candidates); ok {
		return m, true
	}

	if e.Fallback == FallbackFirstCandidate && len(candidates) > 0 {
		return Match{City: candidates[0]}, false
	}

	return Match{City: NoRecommendation}, false
}

// Match runs the rules in order and reports the first matching city.
func (e Extractor) Match(text string, candidates []string) (Match, bool) {
	rules := e.Rules
	if rules == nil {
		rules = DefaultRules
	}

	for _, r := range rules {
		if city, ok := r.find(text, candidates); ok {
			return Match{City: city, Tier: r.Name}, true
		}
	}

	return Match{}, false
}

func (r Rule) find(text string, candidates []string) (string, bool) {
	switch r.Strategy {
	case StrategyPhraseThenCity, StrategyLiteralPair:
		for _, phrase := range r.Phrases {
			for _, city := range candidates {
				if r.matchPhrase(text, phrase, city) {
					return city, true
				}
			}
		}
	default:
		for _, city := range candidates {
			if r.matchCity(text, city) {
				return city, true
			}
		}
	}

	return "", false
}

func (r Rule) matchPhrase(text, phrase, city string) bool {
	if city == "" {
		return false
	}

	if r.Strategy == StrategyPhraseThenCity {
		return r.compile(regexp.QuoteMeta(phrase) + ".*" + regexp.QuoteMeta(city)).MatchString(text)
	}

	if r.CaseInsensitive {
		text, phrase, city = strings.ToLower(text), strings.ToLower(phrase), strings.ToLower(city)
	}

	return strings.Contains(text, city+".*"+phrase) || strings.Contains(text, phrase+".*"+city)
}

func (r Rule) matchCity(text, city string) bool {
	if city == "" {
		return false
	}

	switch r.Strategy {
	case StrategySentenceStart:
		if r.hasPrefix(text, city) {
			return true
		}
		return r.compile(`[.!?]\s+` + regexp.QuoteMeta(city)).MatchString(text)
	case StrategyContains:
		if r.CaseInsensitive {
			return strings.Contains(strings.ToLower(text), strings.ToLower(city))
		}
		return strings.Contains(text, city)
	}

	return false
}

func (r Rule) hasPrefix(text, city string) bool {
	if r.CaseInsensitive {
		return len(text) >= len(city) && strings.EqualFold(text[:len(city)], city)
	}
	return strings.HasPrefix(text, city)
}

// compile builds the rule's pattern; its inputs are quoted, so it cannot fail.
func (r Rule) compile(pattern string) *regexp.Regexp {
	if r.CaseInsensitive {
		pattern = "(?i)" + pattern
	}
	return regexp.MustCompile(pattern)
}
