// Package tier models the user reputation tier machine and its
// spam-penalty escalation
//
// Transitions are a pure function (state, event) -> state; callers own
// persistence of the resulting state
package tier

import (
	"time"
)

// Tier is the coarse reputation class gating quotas and reward weight
type Tier int

const (
	TierNew Tier = iota
	TierEstablished
	TierTrusted
)

// String returns the wire label for a tier
func (t Tier) String() string {
	switch t {
	case TierTrusted:
		return "trusted"
	case TierEstablished:
		return "established"
	default:
		return "new"
	}
}

// ParseTier maps a wire label back to a Tier, defaulting to TierNew
func ParseTier(s string) Tier {
	switch s {
	case "trusted":
		return TierTrusted
	case "established":
		return TierEstablished
	default:
		return TierNew
	}
}

// PenaltyKind is the spam penalty currently applied to a user
type PenaltyKind int

const (
	PenaltyNone PenaltyKind = iota
	PenaltyTemporary30d
	PenaltyTemporary90d
	PenaltyPermanent
)

// String returns the wire label for a penalty kind
func (p PenaltyKind) String() string {
	switch p {
	case PenaltyTemporary30d:
		return "temporary_30d"
	case PenaltyTemporary90d:
		return "temporary_90d"
	case PenaltyPermanent:
		return "permanent"
	default:
		return "none"
	}
}

// ParsePenaltyKind maps a wire label back to a PenaltyKind
func ParsePenaltyKind(s string) PenaltyKind {
	switch s {
	case "temporary_30d":
		return PenaltyTemporary30d
	case "temporary_90d":
		return PenaltyTemporary90d
	case "permanent":
		return PenaltyPermanent
	default:
		return PenaltyNone
	}
}

// Duration returns how long a temporary penalty lasts; zero for
// none and permanent
func (p PenaltyKind) Duration() time.Duration {
	switch p {
	case PenaltyTemporary30d:
		return 30 * 24 * time.Hour
	case PenaltyTemporary90d:
		return 90 * 24 * time.Hour
	default:
		return 0
	}
}

// State is one user's tier and penalty standing
type State struct {
	UserID           string
	Tier             Tier
	DaysActive       int
	ValidatedCount   int
	SpamFlagCount    int
	Penalty          PenaltyKind
	PenaltyExpiresAt *time.Time
}

// Penalized reports whether a penalty is in force at the given instant
func (s State) Penalized(now time.Time) bool {
	switch s.Penalty {
	case PenaltyNone:
		return false
	case PenaltyPermanent:
		return true
	default:
		return s.PenaltyExpiresAt == nil || now.Before(*s.PenaltyExpiresAt)
	}
}

// Config is the immutable tier policy injected at construction
type Config struct {
	// EstablishedMinDays gates New -> Established
	EstablishedMinDays int
	// TrustedMinDays and TrustedMinValidated gate Established -> Trusted
	TrustedMinDays      int
	TrustedMinValidated int

	// Engagement weight per tier in basis points (10000 = 1.0x)
	NewWeightBP         int64
	EstablishedWeightBP int64
	TrustedWeightBP     int64

	// Flag counts at which the penalty escalates one step
	Temp30dFlagThreshold   int
	Temp90dFlagThreshold   int
	PermanentFlagThreshold int

	// Daily recommendation quotas per tier
	NewQuota         int
	EstablishedQuota int
	TrustedQuota     int
	// BoostMultiplier applies on registration and tier-upgrade days
	BoostMultiplier int
	// PenaltyQuota replaces the tier quota while a penalty is in force
	PenaltyQuota int
}

// DefaultConfig returns the platform tier policy
func DefaultConfig() Config {
	return Config{
		EstablishedMinDays:  7,
		TrustedMinDays:      30,
		TrustedMinValidated: 3,

		NewWeightBP:         5000,
		EstablishedWeightBP: 10000,
		TrustedWeightBP:     15000,

		Temp30dFlagThreshold:   3,
		Temp90dFlagThreshold:   5,
		PermanentFlagThreshold: 8,

		NewQuota:         3,
		EstablishedQuota: 10,
		TrustedQuota:     20,
		BoostMultiplier:  2,
		PenaltyQuota:     1,
	}
}

// WeightBP returns the engagement weight for a tier in basis points
func (c Config) WeightBP(t Tier) int64 {
	switch t {
	case TierTrusted:
		return c.TrustedWeightBP
	case TierEstablished:
		return c.EstablishedWeightBP
	default:
		return c.NewWeightBP
	}
}

// StandardQuota returns the base daily quota for a tier
func (c Config) StandardQuota(t Tier) int {
	switch t {
	case TierTrusted:
		return c.TrustedQuota
	case TierEstablished:
		return c.EstablishedQuota
	default:
		return c.NewQuota
	}
}

// DailyQuota resolves the effective quota for one UTC day
// penalty wins over boost; boost applies only on registration and
// tier-upgrade days
func (c Config) DailyQuota(t Tier, boostDay, penalized bool) int {
	if penalized {
		return c.PenaltyQuota
	}
	q := c.StandardQuota(t)
	if boostDay {
		q *= c.BoostMultiplier
	}
	return q
}

// Event advances a State through the machine
type Event interface{ isEvent() }

// TenureUpdated carries refreshed tenure and validation counters
type TenureUpdated struct {
	DaysActive     int
	ValidatedCount int
}

// SpamFlagged records one spam flag at a given instant
type SpamFlagged struct {
	At time.Time
}

func (TenureUpdated) isEvent() {}
func (SpamFlagged) isEvent()   {}

// Engine evaluates tier transitions under one immutable Config
type Engine struct {
	cfg Config
}

// New builds an Engine with the given policy
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the policy the engine was built with
func (e *Engine) Config() Config { return e.cfg }

// EligibleTier is the pure tier function of tenure and validation count
func (e *Engine) EligibleTier(daysActive, validatedCount int) Tier {
	if daysActive >= e.cfg.TrustedMinDays && validatedCount >= e.cfg.TrustedMinValidated {
		return TierTrusted
	}
	if daysActive >= e.cfg.EstablishedMinDays {
		return TierEstablished
	}
	return TierNew
}

// Next applies one event to a state and returns the successor state
//
// Tier never regresses here: if refreshed counters would place the
// user lower, the current tier sticks. Demotion is a moderation action
// outside the machine
func (e *Engine) Next(s State, ev Event) State {
	switch ev := ev.(type) {
	case TenureUpdated:
		s.DaysActive = ev.DaysActive
		s.ValidatedCount = ev.ValidatedCount
		if t := e.EligibleTier(ev.DaysActive, ev.ValidatedCount); t > s.Tier {
			s.Tier = t
		}
	case SpamFlagged:
		s.SpamFlagCount++
		if kind := e.penaltyFor(s.SpamFlagCount); kind > s.Penalty {
			s.Penalty = kind
			if d := kind.Duration(); d > 0 {
				exp := ev.At.Add(d)
				s.PenaltyExpiresAt = &exp
			} else {
				s.PenaltyExpiresAt = nil
			}
		}
	}
	return s
}

func (e *Engine) penaltyFor(flags int) PenaltyKind {
	switch {
	case flags >= e.cfg.PermanentFlagThreshold:
		return PenaltyPermanent
	case flags >= e.cfg.Temp90dFlagThreshold:
		return PenaltyTemporary90d
	case flags >= e.cfg.Temp30dFlagThreshold:
		return PenaltyTemporary30d
	default:
		return PenaltyNone
	}
}
