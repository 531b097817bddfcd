// Package http provides http transport for scoring
package http

import (
	stdhttp "net/http"

	"bitebank/internal/modkit/httpkit"
	"bitebank/internal/services/api/scoring/domain"
	scoredom "bitebank/internal/services/scoring/domain"
)

// Register mounts scoring endpoints on the given router
func Register(r httpkit.Router, scorer scoredom.ScorerPort) {
	h := &handlers{scorer: scorer}
	httpkit.PostJSON[domain.ScoreInput](r, "/", h.score)
}

type handlers struct{ scorer scoredom.ScorerPort }

// swagger:route POST /score Scoring score
// @Summary Score one recommendation for a viewer
// @Tags Scoring
// @Accept json
// @Produce json
// @Param payload body domain.ScoreInput true "Score request"
// @Success 200 {object} domain.ScoreResponse "ok"
// @Router /score [post]
func (h *handlers) score(r *stdhttp.Request, in domain.ScoreInput) (any, error) {
	res, err := h.scorer.Score(r.Context(), scoredom.ScoreInput{
		ViewerID:         in.ViewerID,
		RecommendationID: in.RecommendationID,
		Prefs: scoredom.Prefs{
			Categories:  in.Prefs.Categories,
			Cuisines:    in.Prefs.Cuisines,
			PriceRanges: in.Prefs.PriceRanges,
			Occasions:   in.Prefs.Occasions,
		},
		Situation: scoredom.Situation{
			LocationFit: fitOrUnknown(in.Situation.LocationFit),
			TimeFit:     fitOrUnknown(in.Situation.TimeFit),
			OccasionFit: fitOrUnknown(in.Situation.OccasionFit),
		},
		Strict: in.Strict,
	})
	if err != nil {
		return nil, err
	}
	return domain.ScoreResponse{
		RecommendationID: res.RecommendationID,
		ViewerID:         res.ViewerID,
		Total:            res.Score.Total,
		Breakdown: domain.ScoreBreakdown{
			SocialAlignment:   res.Score.SocialAlignment,
			TasteMatch:        res.Score.TasteMatch,
			ContextRelevance:  res.Score.ContextRelevance,
			AuthorCredibility: res.Score.AuthorCredibility,
		},
		Proof: domain.SocialProof{
			DirectEndorsers:   res.Score.Proof.DirectEndorsers,
			IndirectEndorsers: res.Score.Proof.IndirectEndorsers,
			Multiplier:        res.Score.Proof.Multiplier,
		},
		Explanation: res.Score.Explanation,
	}, nil
}

func fitOrUnknown(v *float64) float64 {
	if v == nil {
		return -1
	}
	return *v
}
