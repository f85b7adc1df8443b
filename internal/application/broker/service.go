// Package broker wires the Prompt Analyser, Metadata Registry, and Router
// into the set of operations the MCP tool dispatcher calls. It is the
// application-layer analogue of the teacher's ScoreService: a thin
// orchestration shell over ports and pure application packages, with no
// transport or presentation concerns of its own.
package broker

import (
	"context"
	"fmt"

	"github.com/michaelprinc/mcp-prompt-broker/internal/application/analyser"
	"github.com/michaelprinc/mcp-prompt-broker/internal/application/registry"
	"github.com/michaelprinc/mcp-prompt-broker/internal/application/router"
	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

// Broker is the single entry point the inbound adapters call through.
type Broker struct {
	catalog  domain.CatalogSource
	analyser *analyser.Analyser
	router   *router.Router
	exporter domain.MetadataExporter // nil disables §6.5 write-back
}

// New builds a Broker from its ports. exporter may be nil.
func New(catalog domain.CatalogSource, a *analyser.Analyser, r *router.Router, exporter domain.MetadataExporter) *Broker {
	return &Broker{catalog: catalog, analyser: a, router: r, exporter: exporter}
}

// ResolvePrompt runs the full C4->C5 pipeline for one raw prompt and
// returns the Router's decision. overrides may be nil.
func (b *Broker) ResolvePrompt(_ context.Context, prompt string, overrides map[string]interface{}) (domain.RoutingResult, error) {
	if prompt == "" {
		return domain.RoutingResult{}, domain.NewBrokerError(domain.KindInvalidArgument, "prompt must not be empty", nil)
	}

	meta := b.analyser.Analyse(prompt, overrides)
	if name, ok := profileNameOverride(overrides); ok {
		meta.ProfileNameOverride = name
	}

	result, err := b.router.Route(b.catalog.Current(), meta)
	if err != nil {
		return domain.RoutingResult{}, err
	}
	return result, nil
}

func profileNameOverride(overrides map[string]interface{}) (string, bool) {
	raw, ok := overrides["profile_name"]
	if !ok {
		return "", false
	}
	name, ok := raw.(string)
	return name, ok && name != ""
}

// GetProfile returns the full profile, instructions and checklist included.
func (b *Broker) GetProfile(_ context.Context, name string) (domain.Profile, error) {
	p, ok := b.catalog.Current().Get(name)
	if !ok {
		return domain.Profile{}, domain.NewBrokerError(domain.KindNotFound, fmt.Sprintf("no profile named %q is loaded", name), nil)
	}
	return p, nil
}

// GetChecklist returns just the checklist lines of one profile.
func (b *Broker) GetChecklist(ctx context.Context, name string) ([]string, error) {
	p, err := b.GetProfile(ctx, name)
	if err != nil {
		return nil, err
	}
	return p.Checklist, nil
}

// GetProfileMetadata returns one profile's full provenance and
// scoring-weight record, instructions and checklist bodies excluded.
func (b *Broker) GetProfileMetadata(ctx context.Context, name string) (domain.ProfileFullMetadata, error) {
	p, err := b.GetProfile(ctx, name)
	if err != nil {
		return domain.ProfileFullMetadata{}, err
	}
	return p.ToFullMetadata(), nil
}

// ListProfiles returns every loaded profile's metadata projection, in the
// catalog's stable name-sorted order.
func (b *Broker) ListProfiles(_ context.Context) []domain.ProfileMetadataEntry {
	profiles := b.catalog.Current().All()
	out := make([]domain.ProfileMetadataEntry, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ToMetadataEntry())
	}
	return out
}

// FindProfilesByCapability delegates to the Metadata Registry (C3).
func (b *Broker) FindProfilesByCapability(_ context.Context, capability string) []domain.TagMatch {
	return registry.FindByCapability(b.catalog.Current(), capability)
}

// FindProfilesByDomain delegates to the Metadata Registry (C3).
func (b *Broker) FindProfilesByDomain(_ context.Context, domainTag string) []domain.TagMatch {
	return registry.FindByDomain(b.catalog.Current(), domainTag)
}

// GetRegistrySummary delegates to the Metadata Registry (C3).
func (b *Broker) GetRegistrySummary(_ context.Context) domain.RegistrySummary {
	return registry.Summarize(b.catalog.Current())
}

// ReloadProfiles re-scans the profiles directory (C1+C2), atomically swaps
// the catalog snapshot, and exports the metadata write-back if configured.
func (b *Broker) ReloadProfiles(ctx context.Context) (*domain.ReloadReport, error) {
	report, err := b.catalog.Reload(ctx)
	if err != nil {
		return nil, fmt.Errorf("reloading profiles: %w", err)
	}

	if b.exporter != nil {
		if err := b.exporter.Export(ctx, b.catalog.Current()); err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("metadata export failed: %v", err))
		}
	}

	return report, nil
}
