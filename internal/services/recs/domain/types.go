// Package domain defines the types and interfaces for the recs service
package domain

import "time"

// Rec is one recommendation with its engagement standing
type Rec struct {
	ID              string
	AuthorID        string
	VenueID         string
	Category        string
	PriceRange      string
	Occasion        string
	EngagementScore int64
	Validated       bool
	IsFirstReview   bool
	CreatedAt       time.Time
}

// Endorsement is one recorded engagement on a recommendation
// TrustScore below zero means the endorser's trust was unknown at
// record time; the scoring core substitutes its default
type Endorsement struct {
	RecommendationID string
	EndorserID       string
	Type             string
	TrustScore       float64
	CreatedAt        time.Time
}

// CreateInput describes a new recommendation
type CreateInput struct {
	ID         string
	AuthorID   string
	VenueID    string
	Category   string
	PriceRange string
	Occasion   string
}

// EndorseInput records one engagement
type EndorseInput struct {
	RecommendationID string
	EndorserID       string
	Type             string
	TrustScore       float64
	Points           int64
	// ValidationThreshold is the tariff threshold the bump compares
	// against when detecting the validation crossing
	ValidationThreshold int64
}

// EndorseResult is the post-engagement standing
type EndorseResult struct {
	Rec Rec
	// Crossed is true only on the single bump that moved the score
	// from below the threshold to at-or-above it
	Crossed bool
}
