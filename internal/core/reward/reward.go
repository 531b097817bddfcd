// Package reward maps platform events to deterministic payout amounts
//
// Amounts are integer base currency units; tier weighting uses integer
// basis points so repeated computation never drifts
package reward

import (
	"bitebank/internal/core/tier"
	perr "bitebank/internal/platform/errors"
)

// EventType is a rewardable platform event
type EventType string

const (
	EventCreation       EventType = "creation"
	EventSave           EventType = "save"
	EventComment        EventType = "comment"
	EventBoost          EventType = "boost"
	EventReshare        EventType = "reshare"
	EventAttribution    EventType = "attribution"
	EventHelpfulComment EventType = "helpful_comment"
	EventValidation     EventType = "validation"
	EventFirstReview    EventType = "first_review"
	EventOnboarding     EventType = "onboarding"
	EventReferral       EventType = "referral"
	EventContest        EventType = "contest"
	EventLottery        EventType = "lottery"
)

// Tariff is one immutable version of the reward table
//
// Base amounts are in base currency units. EngagementEvents lists the
// event types whose amount is scaled by the actor's tier weight; all
// other events pay the flat base regardless of standing
type Tariff struct {
	Version             int
	Base                map[EventType]int64
	EngagementEvents    map[EventType]struct{}
	EngagementPoints    map[string]int64
	ValidationThreshold int64
}

// tariffs is the version table; selected once at startup, never mutated
var tariffs = map[int]Tariff{
	1: {
		Version: 1,
		Base: map[EventType]int64{
			EventCreation:       5_000_000,
			EventSave:           1_000_000,
			EventComment:        2_000_000,
			EventBoost:          3_000_000,
			EventReshare:        1_500_000,
			EventAttribution:    2_500_000,
			EventHelpfulComment: 4_000_000,
			EventValidation:     10_000_000,
			EventFirstReview:    25_000_000,
			EventOnboarding:     5_000_000,
			EventReferral:       20_000_000,
			EventContest:        100_000_000,
			EventLottery:        50_000_000,
		},
		EngagementEvents: map[EventType]struct{}{
			EventSave:    {},
			EventComment: {},
		},
		EngagementPoints: map[string]int64{
			"like":    1,
			"comment": 2,
			"save":    3,
			"share":   5,
		},
		ValidationThreshold: 25,
	},
}

// CurrentVersion is the tariff active for new deployments
const CurrentVersion = 1

// TariffFor returns the tariff for a protocol version
func TariffFor(version int) (Tariff, error) {
	t, ok := tariffs[version]
	if !ok {
		return Tariff{}, perr.NotFoundf("tariff version %d", version)
	}
	return t, nil
}

// MustTariff returns the tariff for a version or panics; startup only
func MustTariff(version int) Tariff {
	t, err := TariffFor(version)
	if err != nil {
		panic(err)
	}
	return t
}

// Compute returns the payout for an event performed by an actor of the
// given tier, under the given tier policy
func (t Tariff) Compute(ev EventType, actorTier tier.Tier, policy tier.Config) (int64, error) {
	base, ok := t.Base[ev]
	if !ok {
		return 0, perr.InvalidArgf("unknown event type %q", ev)
	}
	if _, engagement := t.EngagementEvents[ev]; engagement {
		// floor division by construction on non-negative operands
		return base * policy.WeightBP(actorTier) / 10_000, nil
	}
	return base, nil
}

// EngagementPointsFor returns the engagement score contribution of one
// endorsement type; unknown types score zero
func (t Tariff) EngagementPointsFor(endorsementType string) int64 {
	return t.EngagementPoints[endorsementType]
}

// Validated reports whether an engagement score meets the validation
// threshold; the comparison is inclusive
func (t Tariff) Validated(engagementScore int64) bool {
	return engagementScore >= t.ValidationThreshold
}
