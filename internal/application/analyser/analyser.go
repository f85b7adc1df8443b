// Package analyser implements the Prompt Analyser (C4): lightweight
// keyword-driven classification of a raw prompt into ParsedMetadata, merged
// with any caller-supplied overrides into EnhancedMetadata.
package analyser

import (
	"strings"
	"unicode"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

// Analyser extracts EnhancedMetadata from a raw prompt. It holds no mutable
// state; RouterConfig supplies the only configurable thresholds.
type Analyser struct {
	cfg domain.RouterConfig
}

func New(cfg domain.RouterConfig) *Analyser {
	return &Analyser{cfg: cfg}
}

// Analyse runs the full §4.4 algorithm and merges overrides (step 10).
func (a *Analyser) Analyse(prompt string, overrides map[string]interface{}) domain.EnhancedMetadata {
	parsed := a.parse(prompt)
	return a.mergeOverrides(parsed, overrides)
}

func (a *Analyser) parse(prompt string) domain.ParsedMetadata {
	normalised := normalise(prompt)
	wordCount := countWords(prompt)

	m := domain.ParsedMetadata{
		Prompt:    prompt,
		WordCount: wordCount,
		Intent:    classifyIntent(normalised),
		Domain:    classifyDomain(normalised),
		Topics:    collectTags(normalised, topicTable),
	}

	m.Capabilities = inferCapabilities(normalised, m.Topics)
	m.Sensitivity, m.SafetyScore = classifySensitivity(normalised, m.Topics)
	m.Tone = classifyTone(normalised)
	m.Complexity = classifyComplexity(normalised, wordCount, a.cfg)

	return m
}

func normalise(prompt string) string {
	lower := strings.ToLower(prompt)
	fields := strings.Fields(lower)
	joined := strings.Join(fields, " ")
	return strings.Trim(joined, ".,!?;:\"'")
}

func countWords(prompt string) int {
	n := 0
	for _, f := range strings.FieldsFunc(prompt, unicode.IsSpace) {
		for _, r := range f {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				n++
				break
			}
		}
	}
	return n
}

func classifyIntent(normalised string) domain.Intent {
	for _, rule := range intentTable {
		for _, kw := range rule.keywords {
			if strings.Contains(normalised, kw) {
				return rule.intent
			}
		}
	}
	return domain.IntentStatement
}

func classifyDomain(normalised string) string {
	for _, rule := range domainTable {
		for _, kw := range rule.keywords {
			if strings.Contains(normalised, kw) {
				return rule.tag
			}
		}
	}
	return ""
}

func collectTags(normalised string, table []taggedRule) []string {
	var out []string
	for _, rule := range table {
		for _, kw := range rule.keywords {
			if strings.Contains(normalised, kw) {
				out = append(out, rule.tag)
				break
			}
		}
	}
	return out
}

func inferCapabilities(normalised string, topics []string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}

	for _, rule := range capabilityTable {
		for _, kw := range rule.keywords {
			if strings.Contains(normalised, kw) {
				add(rule.tag)
				break
			}
		}
	}
	for _, t := range topics {
		if cap, ok := topicToCapability[t]; ok {
			add(cap)
		}
	}
	return out
}

func classifySensitivity(normalised string, topics []string) (domain.Sensitivity, int) {
	sensitiveHit := 0
	for _, t := range topics {
		if sensitiveTopics[t] {
			sensitiveHit++
		}
	}
	if sensitiveHit > 0 {
		score := 40 - 5*(sensitiveHit-1)
		if score < 0 {
			score = 0
		}
		return domain.SensitivityHigh, score
	}

	score := 100
	for _, tok := range minorRiskTokens {
		if strings.Contains(normalised, tok) {
			score -= 5
		}
	}
	if score < 0 {
		score = 0
	}
	return domain.SensitivityLow, score
}

func classifyTone(normalised string) domain.Tone {
	for _, t := range urgentTokens {
		if strings.Contains(normalised, t) {
			return domain.ToneUrgent
		}
	}
	for _, t := range formalTokens {
		if strings.Contains(normalised, t) {
			return domain.ToneFormal
		}
	}
	return domain.ToneNeutral
}

func classifyComplexity(normalised string, wordCount int, cfg domain.RouterConfig) domain.Complexity {
	if wordCount >= cfg.ComplexityWordHigh {
		return domain.ComplexityComplex
	}
	for _, sig := range complexitySignals {
		if strings.Contains(normalised, sig) {
			return domain.ComplexityComplex
		}
	}
	if wordCount >= cfg.ComplexityWordMedium {
		return domain.ComplexityMedium
	}
	return domain.ComplexitySimple
}

func (a *Analyser) mergeOverrides(parsed domain.ParsedMetadata, overrides map[string]interface{}) domain.EnhancedMetadata {
	m := domain.EnhancedMetadata{ParsedMetadata: parsed}

	for key, raw := range overrides {
		if !domain.OverrideKeys[key] {
			continue
		}
		switch key {
		case "domain":
			if s, ok := raw.(string); ok {
				m.Domain = s
			}
		case "intent":
			if s, ok := raw.(string); ok {
				m.Intent = domain.Intent(s)
			}
		case "sensitivity":
			if s, ok := raw.(string); ok {
				m.Sensitivity = domain.Sensitivity(s)
			}
		case "complexity":
			if s, ok := raw.(string); ok {
				m.Complexity = domain.Complexity(s)
			}
		case "priority":
			if s, ok := raw.(string); ok {
				m.Priority = s
			}
		case "audience":
			if s, ok := raw.(string); ok {
				m.Audience = s
			}
		case "language":
			if s, ok := raw.(string); ok {
				m.Language = s
			}
		case "context_tags":
			tags := toStringSlice(raw)
			m.ContextTags = tags
			m.Topics = union(m.Topics, tags)
		case "capabilities":
			caps := toStringSlice(raw)
			m.Capabilities = union(m.Capabilities, caps)
		}
	}

	return m
}

func toStringSlice(raw interface{}) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func union(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
