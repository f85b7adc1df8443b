package analyser

import "github.com/michaelprinc/mcp-prompt-broker/internal/domain"

// intentRule is one entry of the ordered intent-classification table; the
// first rule whose keyword set intersects the normalised prompt wins.
type intentRule struct {
	intent   domain.Intent
	keywords []string
}

// intentTable is checked in order; keep bug_report/diagnosis ahead of the
// generic question/statement buckets so specific signals win.
var intentTable = []intentRule{
	{domain.IntentBugReport, []string{"bug", "error", "exception", "crash", "keyerror", "traceback", "stack trace", "broken", "doesn't work", "nefunguje"}},
	{domain.IntentDiagnosis, []string{"debug", "diagnose", "root cause", "troubleshoot", "why is", "proč"}},
	{domain.IntentBrainstorm, []string{"brainstorm", "nápady", "vymyslet", "ideas", "idea", "ideate", "nápad"}},
	{domain.IntentReview, []string{"review", "feedback", "critique", "evaluate"}},
	{domain.IntentCodeGeneration, []string{"write a function", "write code", "implement", "generate code", "create a script"}},
	{domain.IntentQuestion, []string{"?", "what ", "how ", "why ", "can you"}},
}

type taggedRule struct {
	tag      string
	keywords []string
}

// domainTable: ordered, first match wins (§4.4 step 4 uses "same mechanism"
// as intent classification).
var domainTable = []taggedRule{
	{"engineering", []string{"python", "script", "function", "api", "backend", "programming", "code", "kód", "program", "skript"}},
	{"creative", []string{"logo", "brainstorm", "design", "nápady", "vymyslet", "art", "fitness aplikace"}},
	{"compliance", []string{"gdpr", "hipaa", "compliance", "regulation", "audit"}},
	{"healthcare", []string{"patient", "medical", "clinical", "diagnosis record"}},
}

// topicTable: every matching entry's tag is collected (§4.4 step 5), unlike
// the first-match intent/domain tables.
var topicTable = []taggedRule{
	{"python", []string{"python", "kód python"}},
	{"javascript", []string{"javascript", "typescript", "node.js"}},
	{"machine_learning", []string{"machine learning", "neural network", "strojové učení", "neuronová síť", "ml model"}},
	{"pii", []string{"ssn", "social security", "patient record", "personal data", "date of birth"}},
	{"compliance", []string{"gdpr", "hipaa", "compliance", "regulation"}},
	{"security", []string{"exploit", "vulnerability", "credential", "cve"}},
	{"debugging", []string{"debug", "keyerror", "traceback", "stack trace"}},
}

// capabilityTable: the trigger keywords that directly infer a capability
// tag (§4.4 step 6), independent of the topic-seeding alias below.
var capabilityTable = []taggedRule{
	{"code_generation", []string{"write a function", "write code", "generate code", "implement", "create a script"}},
	{"programming", []string{"programming", "code", "kód", "program", "skript"}},
	{"python", []string{"python"}},
	{"machine_learning", []string{"machine learning", "neural network", "strojové učení", "neuronová síť"}},
	{"compliance", []string{"gdpr", "hipaa", "compliance", "regulation"}},
	{"codex", []string{"codex"}},
	{"cli_orchestration", []string{"cli", "command line", "orchestration"}},
}

// topicToCapability seeds a same-named capability when a topic tag matches
// a known capability tag (§4.4 step 6, "also seed from matched topics").
var topicToCapability = map[string]string{
	"python":           "python",
	"machine_learning": "machine_learning",
	"compliance":       "compliance",
}

// sensitiveTopics drives §4.4 step 7: any of these present forces high
// sensitivity and a capped safety score.
var sensitiveTopics = map[string]bool{
	"pii":        true,
	"compliance": true,
	"security":   true,
}

// minorRiskTokens each deduct from the low-sensitivity safety score once if
// present (repeats are not counted), without forcing high sensitivity outright.
var minorRiskTokens = []string{"password", "hack", "leak"}

var urgentTokens = []string{"urgent", "asap", "critical", "outage"}
var formalTokens = []string{"kindly", "pursuant", "hereby", "please note", "regards"}

// complexitySignals trigger "complex" regardless of word count (§4.4 step 9).
var complexitySignals = []string{"architecture", "migration", "enterprise", "scalability", "microservice", "refactor", "distributed"}
