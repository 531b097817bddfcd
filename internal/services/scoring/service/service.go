// Package service provides the scoring service implementation
package service

import (
	"context"

	"bitebank/internal/core/alignment"
	"bitebank/internal/core/socialgraph"
	"bitebank/internal/core/trust"
	perr "bitebank/internal/platform/errors"
	"bitebank/internal/platform/logger"
	graphdom "bitebank/internal/services/graph/domain"
	recdom "bitebank/internal/services/recs/domain"
	repdom "bitebank/internal/services/reputation/domain"
	"bitebank/internal/services/scoring/domain"
)

// Svc implements domain.ScorerPort by orchestrating the graph, recs
// and reputation ports into the pure scoring core
type Svc struct {
	graph graphdom.SnapshotPort
	recs  recdom.ReaderPort
	tiers repdom.TierPort
}

// New constructs the scoring service
func New(graph graphdom.SnapshotPort, recs recdom.ReaderPort, tiers repdom.TierPort) *Svc {
	if graph == nil {
		panic("scoring.Service requires a non nil SnapshotPort")
	}
	if recs == nil {
		panic("scoring.Service requires a non nil ReaderPort")
	}
	if tiers == nil {
		panic("scoring.Service requires a non nil TierPort")
	}
	return &Svc{graph: graph, recs: recs, tiers: tiers}
}

// Score implements domain.ScorerPort
func (s *Svc) Score(ctx context.Context, in domain.ScoreInput) (domain.ScoreResult, error) {
	if in.ViewerID == "" || in.RecommendationID == "" {
		return domain.ScoreResult{}, perr.InvalidArgf("viewer id and recommendation id required")
	}

	rec, err := s.recs.Context(ctx, in.RecommendationID)
	if err != nil {
		return domain.ScoreResult{}, err
	}
	endorsements, err := s.recs.Endorsements(ctx, in.RecommendationID)
	if err != nil {
		return domain.ScoreResult{}, err
	}

	snap, err := s.graph.Snapshot(ctx, in.ViewerID)
	if err != nil {
		if in.Strict {
			return domain.ScoreResult{}, err
		}
		// scoring stays available when the graph store is down
		logger.C(ctx).Warn().Err(err).Str("viewer_id", in.ViewerID).Msg("graph lookup failed, scoring as isolated")
		snap = socialgraph.Isolated(in.ViewerID)
	}

	authorState, err := s.tiers.State(ctx, rec.AuthorID)
	if err != nil {
		return domain.ScoreResult{}, err
	}

	weight := trust.Weigh(resolve(snap, endorsements))
	score := alignment.Compute(alignment.Input{
		AuthorDistance:       snap.Distance(rec.AuthorID),
		Social:               weight,
		Taste:                tasteMatch(in.Prefs, rec),
		Context:              situationMatch(in.Situation),
		AuthorTier:           authorState.Tier,
		AuthorValidatedCount: authorState.ValidatedCount,
	})

	return domain.ScoreResult{
		RecommendationID: rec.ID,
		ViewerID:         in.ViewerID,
		Score:            score,
		Social:           weight,
	}, nil
}

// resolve tags each stored endorsement with the viewer's distance to
// its endorser
func resolve(snap socialgraph.Snapshot, es []recdom.Endorsement) []trust.Endorsement {
	out := make([]trust.Endorsement, 0, len(es))
	for _, e := range es {
		out = append(out, trust.Endorsement{
			EndorserID: e.EndorserID,
			Type:       trust.EndorsementType(e.Type),
			Distance:   snap.Distance(e.EndorserID),
			TrustScore: e.TrustScore,
		})
	}
	return out
}

func tasteMatch(p domain.Prefs, rec recdom.Rec) alignment.TasteMatch {
	return alignment.TasteMatch{
		Category:     member(p.Categories, rec.Category),
		Variant:      member(p.Cuisines, rec.Category),
		Price:        member(p.PriceRanges, rec.PriceRange),
		Occasion:     member(p.Occasions, rec.Occasion),
		CategoryName: rec.Category,
	}
}

// member scores 1 for a hit, 0 for a miss, unknown for an empty list
func member(prefs []string, value string) alignment.Signal {
	if len(prefs) == 0 || value == "" {
		return alignment.SignalUnknown
	}
	for _, p := range prefs {
		if p == value {
			return 1
		}
	}
	return 0
}

func situationMatch(s domain.Situation) alignment.ContextMatch {
	return alignment.ContextMatch{
		Location: alignment.Signal(s.LocationFit),
		Time:     alignment.Signal(s.TimeFit),
		Occasion: alignment.Signal(s.OccasionFit),
	}
}
