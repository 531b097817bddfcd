// Package domain holds DTOs for scoring http and service contracts
package domain

// PrefsInput is the viewer's taste profile; empty lists read as unknown
type PrefsInput struct {
	Categories  []string `json:"categories,omitempty" validate:"omitempty,max=50,dive,min=1,max=100" example:"ramen"`
	Cuisines    []string `json:"cuisines,omitempty" validate:"omitempty,max=50,dive,min=1,max=100" example:"japanese"`
	PriceRanges []string `json:"price_ranges,omitempty" validate:"omitempty,max=10,dive,min=1,max=10" example:"$$"`
	Occasions   []string `json:"occasions,omitempty" validate:"omitempty,max=20,dive,min=1,max=100" example:"dinner"`
}

// SituationInput carries contextual fit in [0,1]
// omitted fields read as unknown, not as zero fit
type SituationInput struct {
	LocationFit *float64 `json:"location_fit,omitempty" validate:"omitempty,min=0,max=1" example:"0.8"`
	TimeFit     *float64 `json:"time_fit,omitempty" validate:"omitempty,min=0,max=1" example:"0.5"`
	OccasionFit *float64 `json:"occasion_fit,omitempty" validate:"omitempty,min=0,max=1" example:"1"`
}

// ScoreInput is the input for scoring one recommendation for a viewer
type ScoreInput struct {
	ViewerID         string         `json:"viewer_id" validate:"required,min=1,max=100" example:"u_1042"`
	RecommendationID string         `json:"recommendation_id" validate:"required,min=1,max=100" example:"rec_88f"`
	Prefs            PrefsInput     `json:"prefs,omitempty"`
	Situation        SituationInput `json:"situation,omitempty"`
	Strict           bool           `json:"strict,omitempty" example:"false"`
}

// ScoreBreakdown itemizes the sub-scores behind the total
type ScoreBreakdown struct {
	SocialAlignment   float64 `json:"social_alignment" example:"2.25"`
	TasteMatch        float64 `json:"taste_match" example:"3.1"`
	ContextRelevance  float64 `json:"context_relevance" example:"1.2"`
	AuthorCredibility float64 `json:"author_credibility" example:"0.7"`
}

// SocialProof summarizes the endorsement signal behind the score
type SocialProof struct {
	DirectEndorsers   int     `json:"direct_endorsers" example:"2"`
	IndirectEndorsers int     `json:"indirect_endorsers" example:"3"`
	Multiplier        float64 `json:"multiplier" example:"1.85"`
}

// ScoreResponse is the scored result
type ScoreResponse struct {
	RecommendationID string         `json:"recommendation_id" example:"rec_88f"`
	ViewerID         string         `json:"viewer_id" example:"u_1042"`
	Total            float64        `json:"total" example:"7.25"`
	Breakdown        ScoreBreakdown `json:"breakdown"`
	Proof            SocialProof    `json:"social_proof"`
	Explanation      string         `json:"explanation" example:"Recommended by 2 friends you trust"`
}
