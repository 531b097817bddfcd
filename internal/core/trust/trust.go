// Package trust converts endorsements into a capped social multiplier
//
// Pure arithmetic over already-resolved inputs; identical inputs always
// produce identical output
package trust

import (
	"bitebank/internal/core/socialgraph"
)

// Endorsement is one recorded engagement with an endorser's resolved
// social distance and trust score attached
type Endorsement struct {
	EndorserID string
	Type       EndorsementType
	Distance   socialgraph.Distance
	// TrustScore is the endorser's platform trust in [0,1]
	// negative means unknown and defaults to UnknownTrustScore
	TrustScore float64
}

// EndorsementType classifies the engagement behind an endorsement
type EndorsementType string

const (
	EndorsementLike    EndorsementType = "like"
	EndorsementSave    EndorsementType = "save"
	EndorsementComment EndorsementType = "comment"
	EndorsementShare   EndorsementType = "share"
)

const (
	// DirectWeight is the base weight of a distance-1 endorser
	DirectWeight = 0.75
	// IndirectWeight is the base weight of a distance-2 endorser
	IndirectWeight = 0.25
	// UnknownTrustScore substitutes for a missing endorser trust score
	UnknownTrustScore = 0.5
	// MultiplierCap is the platform-wide ceiling on the aggregate
	// multiplier; no amount of endorsement pushes past it
	MultiplierCap = 3.0
)

// Contribution is the per-endorser audit breakdown
type Contribution struct {
	EndorserID  string               `json:"endorser_id"`
	Distance    socialgraph.Distance `json:"distance"`
	BaseWeight  float64              `json:"base_weight"`
	TrustScore  float64              `json:"trust_score"`
	FinalWeight float64              `json:"final_weight"`
}

// Weight is the aggregate result of weighing an endorsement list
type Weight struct {
	Multiplier    float64        `json:"multiplier"`
	TotalWeight   float64        `json:"total_weight"`
	DirectCount   int            `json:"direct_count"`
	IndirectCount int            `json:"indirect_count"`
	Contributions []Contribution `json:"contributions"`
}

// Weigh aggregates endorsements into a capped multiplier with a
// per-endorser breakdown
func Weigh(endorsements []Endorsement) Weight {
	w := Weight{Contributions: make([]Contribution, 0, len(endorsements))}
	for _, e := range endorsements {
		base := baseWeight(e.Distance)
		score := clampTrust(e.TrustScore)
		final := base * score

		switch e.Distance {
		case socialgraph.DistanceDirect:
			w.DirectCount++
		case socialgraph.DistanceIndirect:
			w.IndirectCount++
		}

		w.TotalWeight += final
		w.Contributions = append(w.Contributions, Contribution{
			EndorserID:  e.EndorserID,
			Distance:    e.Distance,
			BaseWeight:  base,
			TrustScore:  score,
			FinalWeight: final,
		})
	}
	w.Multiplier = w.TotalWeight
	if w.Multiplier > MultiplierCap {
		w.Multiplier = MultiplierCap
	}
	return w
}

func baseWeight(d socialgraph.Distance) float64 {
	switch d {
	case socialgraph.DistanceDirect:
		return DirectWeight
	case socialgraph.DistanceIndirect:
		return IndirectWeight
	default:
		return 0
	}
}

func clampTrust(s float64) float64 {
	if s < 0 {
		return UnknownTrustScore
	}
	if s > 1 {
		return 1
	}
	return s
}
