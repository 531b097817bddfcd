// Package domain defines the types and interfaces for the rewards service
package domain

import (
	"context"
	"time"

	"bitebank/internal/core/reward"
	"bitebank/internal/core/tier"
)

// Event is one paid-out reward, keyed by its triggering action
type Event struct {
	EventID       string
	Type          reward.EventType
	ActorID       string
	BeneficiaryID string
	TierAtEvent   tier.Tier
	Amount        int64
	CreatedAt     time.Time
}

// EmitInput describes a reward to compute and record
type EmitInput struct {
	// EventID is the caller's stable id for the triggering action
	// emitting twice with the same id yields DuplicateEvent
	EventID       string
	Type          reward.EventType
	ActorID       string
	BeneficiaryID string
}

// LedgerPort computes and records rewards write-once by event id
type LedgerPort interface {
	// Emit computes the amount for the event and appends it to the
	// ledger; a second emit for the same EventID is refused with
	// DuplicateEvent, never silently skipped
	Emit(ctx context.Context, in EmitInput) (Event, error)

	// History lists a beneficiary's recent reward events
	History(ctx context.Context, beneficiaryID string, limit int) ([]Event, error)
}

// Repo abstracts reward ledger storage
type Repo interface {
	// Insert returns DuplicateEvent when the event id already exists
	Insert(ctx context.Context, ev Event) error
	ListByBeneficiary(ctx context.Context, beneficiaryID string, limit int) ([]Event, error)
}
