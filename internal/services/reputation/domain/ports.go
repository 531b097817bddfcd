// Package domain defines the types and interfaces for the reputation service
package domain

import (
	"context"
	"time"

	"bitebank/internal/core/tier"
	ptime "bitebank/internal/platform/time"
)

// TierPort reads and advances user tier state
type TierPort interface {
	// State returns the user's current standing; unregistered users
	// come back as a fresh New-tier state rather than an error
	State(ctx context.Context, userID string) (tier.State, error)

	// Register creates the initial state for a new user
	Register(ctx context.Context, userID string, at time.Time) (tier.State, error)

	// RefreshTenure applies updated tenure counters; tier can only move up
	RefreshTenure(ctx context.Context, userID string, daysActive, validatedCount int) (tier.State, error)

	// Flag records one spam flag and escalates the penalty when a
	// threshold is reached
	Flag(ctx context.Context, userID string, at time.Time) (tier.State, error)

	// BoostDay reports whether day is the user's registration or most
	// recent tier-upgrade day
	BoostDay(ctx context.Context, userID string, day ptime.Day) (bool, error)
}

// Row is the stored shape of one user's tier state
type Row struct {
	UserID           string
	Tier             string
	DaysActive       int
	ValidatedCount   int
	SpamFlags        int
	Penalty          string
	PenaltyExpiresAt *time.Time
	RegisteredOn     string
	UpgradedOn       *string
}

// Repo abstracts tier state storage
type Repo interface {
	// Get returns NotFound when the user has no row yet
	Get(ctx context.Context, userID string) (Row, error)
	Insert(ctx context.Context, row Row) error
	Update(ctx context.Context, row Row) error
}
