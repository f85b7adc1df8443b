package domain

// Intent is the coarse classification of what the caller is asking for.
type Intent string

const (
	IntentStatement      Intent = "statement"
	IntentQuestion       Intent = "question"
	IntentBugReport      Intent = "bug_report"
	IntentBrainstorm     Intent = "brainstorm"
	IntentDiagnosis      Intent = "diagnosis"
	IntentReview         Intent = "review"
	IntentCodeGeneration Intent = "code_generation"
	IntentOther          Intent = "other"
)

// Sensitivity is the coarse risk classification of the prompt content.
type Sensitivity string

const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
)

// Tone is the detected register of the prompt.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneUrgent  Tone = "urgent"
	ToneFormal  Tone = "formal"
	ToneCasual  Tone = "casual"
)

// Complexity is the coarse size/difficulty classification of the prompt.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// ParsedMetadata is the Prompt Analyser's pure output, before any caller
// overrides are merged in.
type ParsedMetadata struct {
	Prompt       string      `json:"prompt"`
	WordCount    int         `json:"word_count"`
	Intent       Intent      `json:"intent"`
	Domain       string      `json:"domain,omitempty"`
	Topics       []string    `json:"topics,omitempty"`
	Capabilities []string    `json:"capabilities,omitempty"`
	Sensitivity  Sensitivity `json:"sensitivity"`
	SafetyScore  int         `json:"safety_score"`
	Tone         Tone        `json:"tone"`
	Complexity   Complexity  `json:"complexity"`
}

// OverrideKeys enumerates the exact set of keys a caller-supplied metadata
// override object may contain; every other key is ignored.
var OverrideKeys = map[string]bool{
	"domain":       true,
	"intent":       true,
	"sensitivity":  true,
	"priority":     true,
	"audience":     true,
	"language":     true,
	"complexity":   true,
	"context_tags": true,
	"capabilities": true,
}

// EnhancedMetadata is ParsedMetadata with caller overrides merged in
// (override precedence is caller > analyser) plus the fields that only ever
// come from an override: Priority, Audience, Language, and ContextTags.
type EnhancedMetadata struct {
	ParsedMetadata

	Priority    string   `json:"priority,omitempty"`
	Audience    string   `json:"audience,omitempty"`
	Language    string   `json:"language,omitempty"`
	ContextTags []string `json:"context_tags,omitempty"`

	// ProfileNameOverride, when non-empty, forces Router.Route to return this
	// profile directly with reason ForcedByOverride, skipping scoring.
	ProfileNameOverride string `json:"-"`
}

// AllTags returns the union of topics, capabilities, and context tags used
// by the Router's required-tag disqualification gate.
func (m EnhancedMetadata) AllTags() map[string]bool {
	tags := make(map[string]bool, len(m.Topics)+len(m.Capabilities)+len(m.ContextTags))
	for _, t := range m.Topics {
		tags[t] = true
	}
	for _, c := range m.Capabilities {
		tags[c] = true
	}
	for _, c := range m.ContextTags {
		tags[c] = true
	}
	return tags
}
