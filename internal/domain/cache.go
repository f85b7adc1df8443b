package domain

import "time"

// CatalogMetadataFile is the optional §6.5 profiles_metadata.json write-back
// payload, persisted atomically by the catalogexport adapter (C9) after a
// successful reload.
type CatalogMetadataFile struct {
	GeneratedAt  time.Time             `json:"generated_at"`
	TotalCount   int                   `json:"total_count"`
	Profiles     []ProfileMetadataEntry `json:"profiles"`
}

// ProfileMetadataEntry is one profile's provenance-only projection, used for
// the persisted catalog metadata file and the list_profiles tool.
type ProfileMetadataEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Version      string   `json:"version"`
	Complexity   string   `json:"complexity"`
	Domains      []string `json:"domains"`
	Capabilities []string `json:"capabilities"`
	Fallback     bool     `json:"fallback"`
	SourcePath   string   `json:"source_path"`
	ContentHash  string   `json:"content_hash"`
}

// ToMetadataEntry projects a Profile down to its narrow provenance fields,
// the shape persisted to profiles_metadata.json and returned by
// list_profiles. It is not the get_profile_metadata projection; see
// ToFullMetadata for that.
func (p Profile) ToMetadataEntry() ProfileMetadataEntry {
	return ProfileMetadataEntry{
		Name:         p.Name,
		Description:  p.Description,
		Version:      p.Version,
		Complexity:   string(p.ComplexityTier),
		Domains:      p.Domains,
		Capabilities: p.Capabilities,
		Fallback:     p.Fallback,
		SourcePath:   p.SourcePath,
		ContentHash:  p.ContentHash,
	}
}

// ProfileFullMetadata is the full provenance and scoring-weight projection
// returned by get_profile_metadata: every Profile field except the
// Instructions and Checklist bodies.
type ProfileFullMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Complexity  string `json:"complexity"`

	Domains      []string `json:"domains"`
	Capabilities []string `json:"capabilities"`

	KeywordWeights    map[string]int `json:"keyword_weights,omitempty"`
	PriorityWeights   map[string]int `json:"priority_weights,omitempty"`
	DomainWeights     map[string]int `json:"domain_weights,omitempty"`
	ComplexityWeights map[string]int `json:"complexity_weights,omitempty"`

	RequiredContextTags []string `json:"required_context_tags,omitempty"`
	DefaultScore        int      `json:"default_score"`
	Fallback            bool     `json:"fallback"`

	SourcePath   string    `json:"source_path"`
	LastModified time.Time `json:"last_modified"`
	ContentHash  string    `json:"content_hash"`

	Warnings []string `json:"warnings,omitempty"`
}

// ToFullMetadata projects a Profile down to the full provenance and
// scoring-weight record the get_profile_metadata tool returns, omitting
// only Instructions and Checklist.
func (p Profile) ToFullMetadata() ProfileFullMetadata {
	return ProfileFullMetadata{
		Name:                p.Name,
		Description:         p.Description,
		Version:             p.Version,
		Complexity:          string(p.ComplexityTier),
		Domains:             p.Domains,
		Capabilities:        p.Capabilities,
		KeywordWeights:      p.KeywordWeights,
		PriorityWeights:     p.PriorityWeights,
		DomainWeights:       p.DomainWeights,
		ComplexityWeights:   p.ComplexityWeights,
		RequiredContextTags: p.RequiredContextTags,
		DefaultScore:        p.DefaultScore,
		Fallback:            p.Fallback,
		SourcePath:          p.SourcePath,
		LastModified:        p.LastModified,
		ContentHash:         p.ContentHash,
		Warnings:            p.Warnings,
	}
}
