// Package domain defines the types and interfaces for the scoring service
package domain

import (
	"context"

	"bitebank/internal/core/alignment"
	"bitebank/internal/core/trust"
)

// Prefs are the viewer's taste preferences; empty slices read as unknown
type Prefs struct {
	Categories  []string
	Cuisines    []string
	PriceRanges []string
	Occasions   []string
}

// Situation carries caller-resolved contextual fit in [0,1]
// negative values mean the signal could not be resolved
type Situation struct {
	LocationFit float64
	TimeFit     float64
	OccasionFit float64
}

// ScoreInput asks for one viewer/recommendation alignment score
type ScoreInput struct {
	ViewerID         string
	RecommendationID string
	Prefs            Prefs
	Situation        Situation
	// Strict propagates graph lookup failures instead of degrading
	// to an isolated viewer
	Strict bool
}

// ScoreResult is the alignment score plus its social weighing
type ScoreResult struct {
	RecommendationID string
	ViewerID         string
	Score            alignment.Score
	Social           trust.Weight
}

// ScorerPort produces alignment scores
type ScorerPort interface {
	Score(ctx context.Context, in ScoreInput) (ScoreResult, error)
}
