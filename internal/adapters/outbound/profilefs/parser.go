// Package profilefs is the filesystem-backed Profile Parser (C1) and Profile
// Loader (C2): it turns a directory of markdown files into a
// *domain.Catalog, held behind an atomic pointer and hot-reloadable.
package profilefs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

const (
	sectionInstructions = "instructions"
	sectionChecklist    = "checklist"
	sectionPrimaryRole  = "primary role"
)

var (
	frontMatterDelim = "---"
	headingPattern    = regexp.MustCompile(`^##\s+(.+?)\s*$`)
	checklistPattern  = regexp.MustCompile(`^-\s*\[\s*[xX ]\s*\]\s*(.+)$`)
)

// frontMatter mirrors the recognised front-matter keys of §3; Extra catches
// everything else via yaml.v3's inline map merge.
type frontMatter struct {
	Name                string         `yaml:"name"`
	Description         string         `yaml:"description"`
	Version             string         `yaml:"version"`
	ComplexityTier      string         `yaml:"complexity_tier"`
	Domains             []string       `yaml:"domains"`
	Capabilities        []string       `yaml:"capabilities"`
	KeywordWeights      map[string]int `yaml:"keyword_weights"`
	PriorityWeights     map[string]int `yaml:"priority_weights"`
	DomainWeights       map[string]int `yaml:"domain_weights"`
	ComplexityWeights   map[string]int `yaml:"complexity_weights"`
	RequiredContextTags []string       `yaml:"required_context_tags"`
	DefaultScore        int            `yaml:"default_score"`
	Fallback            bool           `yaml:"fallback"`
	ShortInstructions   string         `yaml:"short_instructions"`

	Extra map[string]interface{} `yaml:",inline"`
}

// ParseProfile implements §4.1: it splits front-matter from body, decodes
// the front-matter as YAML, splits the body into `## `-delimited sections,
// and extracts Instructions/Checklist per the documented fallback chain.
func ParseProfile(sourcePath string, modTime time.Time, raw []byte) (domain.Profile, error) {
	text := string(raw)
	fm, body, err := splitFrontMatter(text)
	if err != nil {
		return domain.Profile{}, err
	}

	var meta frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
			return domain.Profile{}, fmt.Errorf("parsing front-matter: %w", err)
		}
	}
	if meta.Name == "" || meta.Description == "" {
		return domain.Profile{}, fmt.Errorf("missing required front-matter field(s): name and description are mandatory")
	}

	sections := splitSections(body)
	instructions, instrWarning := resolveInstructions(sections, body, meta.ShortInstructions)
	checklist := resolveChecklist(sections)

	p := domain.Profile{
		Name:                meta.Name,
		Description:         meta.Description,
		Version:             meta.Version,
		ComplexityTier:      domain.ComplexityTier(meta.ComplexityTier),
		Domains:             meta.Domains,
		Capabilities:        meta.Capabilities,
		KeywordWeights:      meta.KeywordWeights,
		PriorityWeights:     meta.PriorityWeights,
		DomainWeights:       meta.DomainWeights,
		ComplexityWeights:   meta.ComplexityWeights,
		RequiredContextTags: meta.RequiredContextTags,
		DefaultScore:        meta.DefaultScore,
		Fallback:            meta.Fallback,
		Instructions:        instructions,
		Checklist:           checklist,
		Extra:               meta.Extra,
		SourcePath:          sourcePath,
		LastModified:        modTime,
		ContentHash:         contentHash(raw),
	}.WithDefaults()

	if instrWarning != "" {
		p.Warnings = append(p.Warnings, instrWarning)
	}
	if err := p.Validate(); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

// splitFrontMatter separates a leading `---`-delimited block from the rest
// of the document. A document with no leading `---` line has no front
// matter at all, not a parse error; its whole text is the body.
func splitFrontMatter(text string) (frontMatter, body string, err error) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterDelim {
		return "", text, nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterDelim {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), nil
		}
	}
	return "", "", fmt.Errorf("unterminated front-matter block: no closing --- line found")
}

// splitSections breaks body into a map keyed by lower-cased `## ` heading
// title, each value being the raw text up to (not including) the next
// heading line.
func splitSections(body string) map[string]string {
	sections := make(map[string]string)
	lines := strings.Split(body, "\n")

	currentTitle := ""
	var buf []string
	flush := func() {
		if currentTitle != "" {
			sections[currentTitle] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
	}

	for _, line := range lines {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			currentTitle = strings.ToLower(strings.TrimSpace(m[1]))
			buf = nil
			continue
		}
		if currentTitle != "" {
			buf = append(buf, line)
		}
	}
	flush()
	return sections
}

// resolveInstructions implements §4.1's fallback chain: Instructions
// section, then Primary Role section, then front-matter short_instructions,
// then the whole body. Any fallback past the first choice is reported.
func resolveInstructions(sections map[string]string, body, shortInstructions string) (string, string) {
	if s, ok := sections[sectionInstructions]; ok && s != "" {
		return s, ""
	}
	if s, ok := sections[sectionPrimaryRole]; ok && s != "" {
		return s, "Instructions section missing, fell back to Primary Role"
	}
	if shortInstructions != "" {
		return shortInstructions, "Instructions section missing, fell back to short_instructions"
	}
	return strings.TrimSpace(body), "Instructions section missing, fell back to full document body"
}

// resolveChecklist scans the Checklist section's lines for task-list items.
func resolveChecklist(sections map[string]string) []string {
	s, ok := sections[sectionChecklist]
	if !ok || s == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if m := checklistPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			out = append(out, strings.TrimSpace(m[1]))
		}
	}
	return out
}

func contentHash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
