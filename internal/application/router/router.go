// Package router implements the Router (C5): it scores every catalog
// profile against EnhancedMetadata, selects a winner, applies the
// complexity-upgrade step, and computes the softmax consistency metric. The
// scoring primitives themselves live in internal/domain/scoring so they
// stay unit-testable without a catalog.
package router

import (
	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
	"github.com/michaelprinc/mcp-prompt-broker/internal/domain/scoring"
)

// Router ties catalog lookups to the pure scoring/consistency math.
type Router struct {
	cfg domain.RouterConfig
}

func New(cfg domain.RouterConfig) *Router {
	return &Router{cfg: cfg}
}

// Route implements §4.5 end to end. It returns a *domain.BrokerError with
// kind no_matching_profile when there is no winner and no fallback.
func (r *Router) Route(c *domain.Catalog, m domain.EnhancedMetadata) (domain.RoutingResult, error) {
	if m.ProfileNameOverride != "" {
		p, ok := c.Get(m.ProfileNameOverride)
		if !ok {
			return domain.RoutingResult{}, domain.NewBrokerError(domain.KindNoMatchingProfile,
				"profile_name override does not match any loaded profile", nil)
		}
		return domain.RoutingResult{
			Profile:     p,
			Metadata:    m,
			Score:       scoring.Score(p, m),
			Consistency: 100,
			Reason:      domain.ReasonForcedByOverride,
		}, nil
	}

	candidates := r.candidates(c, m)
	winner, eligible, ok := scoring.Select(candidates, m)

	reason := domain.ReasonMatched
	if !ok {
		fallback, hasFallback := c.Fallback()
		if !hasFallback {
			return domain.RoutingResult{}, domain.NewBrokerError(domain.KindNoMatchingProfile,
				"no profile scored above zero and no fallback is configured", nil)
		}
		winner = scoring.Candidate{Profile: fallback, Score: scoring.Score(fallback, m)}
		eligible = []scoring.Candidate{winner}
		reason = domain.ReasonFallback
	} else if winner.Profile.Fallback {
		// The fallback profile won on its own default_score: report it as the
		// fallback outcome, not as a match against the other candidates.
		eligible = []scoring.Candidate{winner}
		reason = domain.ReasonFallback
	}

	if r.cfg.ComplexityRouting && !winner.Profile.IsComplexVariant() {
		if upgraded, ok := r.tryUpgrade(c, winner, m); ok {
			winner = upgraded
			reason = domain.ReasonUpgradedToComplex
			eligible = replaceOrAppend(eligible, upgraded)
		}
	}

	scores := make([]int, len(eligible))
	for i, c := range eligible {
		scores[i] = c.Score
	}

	return domain.RoutingResult{
		Profile:     winner.Profile,
		Metadata:    m,
		Score:       winner.Score,
		Consistency: scoring.Consistency(scores, winner.Score),
		Reason:      reason,
	}, nil
}

func (r *Router) candidates(c *domain.Catalog, m domain.EnhancedMetadata) []scoring.Candidate {
	profiles := c.All()
	out := make([]scoring.Candidate, 0, len(profiles))
	for _, p := range profiles {
		if scoring.Disqualified(p, m) {
			continue
		}
		out = append(out, scoring.Candidate{Profile: p, Score: scoring.Score(p, m)})
	}
	return out
}

func (r *Router) tryUpgrade(c *domain.Catalog, winner scoring.Candidate, m domain.EnhancedMetadata) (scoring.Candidate, bool) {
	if !scoring.PrefersComplex(m, r.cfg) {
		return scoring.Candidate{}, false
	}
	sibling, ok := c.Get(winner.Profile.ComplexSiblingName())
	if !ok || scoring.Disqualified(sibling, m) {
		return scoring.Candidate{}, false
	}
	return scoring.Candidate{Profile: sibling, Score: scoring.Score(sibling, m)}, true
}

func replaceOrAppend(eligible []scoring.Candidate, winner scoring.Candidate) []scoring.Candidate {
	for i, c := range eligible {
		if c.Profile.Name == winner.Profile.Name {
			eligible[i] = winner
			return eligible
		}
	}
	return append(eligible, winner)
}
