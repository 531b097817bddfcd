// Package alignment combines social, taste, contextual and credibility
// signals into a 0-10 score with a human-readable explanation
//
// Everything here is pure arithmetic over resolved inputs; identical
// inputs yield identical scores and identical explanation text
package alignment

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bitebank/internal/core/socialgraph"
	"bitebank/internal/core/tier"
	"bitebank/internal/core/trust"
)

// Signal is a [0,1] match strength; SignalUnknown marks a missing
// preference field which degrades to neutral partial credit
type Signal float64

// SignalUnknown is the sentinel for a field the caller could not resolve
const SignalUnknown Signal = -1

// NeutralSignal is the partial credit substituted for unknown signals
const NeutralSignal = 0.3

func (s Signal) value() float64 {
	if s < 0 {
		return NeutralSignal
	}
	if s > 1 {
		return 1
	}
	return float64(s)
}

// TasteMatch holds preference match signals between viewer and
// recommendation
type TasteMatch struct {
	Category Signal
	Variant  Signal
	Price    Signal
	Occasion Signal
	// CategoryName feeds the taste explanation phrase when present
	CategoryName string
}

// ContextMatch holds situational fit signals
type ContextMatch struct {
	Location Signal
	Time     Signal
	Occasion Signal
}

// Input is everything the scorer needs, already resolved by callers
type Input struct {
	AuthorDistance       socialgraph.Distance
	Social               trust.Weight
	Taste                TasteMatch
	Context              ContextMatch
	AuthorTier           tier.Tier
	AuthorValidatedCount int
}

// SocialProof summarizes who is behind the social signal
type SocialProof struct {
	DirectEndorsers   int     `json:"direct_endorsers"`
	IndirectEndorsers int     `json:"indirect_endorsers"`
	Multiplier        float64 `json:"multiplier"`
}

// Score is the scored result with its audit breakdown
type Score struct {
	Total             float64     `json:"total"`
	SocialAlignment   float64     `json:"social_alignment"`
	TasteMatch        float64     `json:"taste_match"`
	ContextRelevance  float64     `json:"context_relevance"`
	AuthorCredibility float64     `json:"author_credibility"`
	Proof             SocialProof `json:"social_proof"`
	Explanation       string      `json:"explanation"`
}

// sub-score ceilings
const (
	maxSocial      = 3.0
	maxTaste       = 4.0
	maxContext     = 2.0
	maxCredibility = 1.0
	maxTotal       = 10.0
)

var titler = cases.Title(language.English)

// Compute scores one recommendation for one viewer
func Compute(in Input) Score {
	social := clamp(socialAlignment(in)*maxSocial, maxSocial)
	taste := clamp(tasteMatch(in.Taste)*maxTaste, maxTaste)
	ctx := clamp(contextRelevance(in.Context)*maxContext, maxContext)
	cred := clamp(authorCredibility(in.AuthorTier, in.AuthorValidatedCount), maxCredibility)

	s := Score{
		SocialAlignment:   social,
		TasteMatch:        taste,
		ContextRelevance:  ctx,
		AuthorCredibility: cred,
		Total:             clamp(social+taste+ctx+cred, maxTotal),
		Proof: SocialProof{
			DirectEndorsers:   in.Social.DirectCount,
			IndirectEndorsers: in.Social.IndirectCount,
			Multiplier:        in.Social.Multiplier,
		},
	}
	s.Explanation = explain(in, s)
	return s
}

// socialAlignment derives a [0,1] weight from author distance and the
// endorsement multiplier, whichever carries more signal. Unconnected
// authors keep a low floor so cold-start content is never unscored
func socialAlignment(in Input) float64 {
	w := distanceWeight(in.AuthorDistance)
	if m := in.Social.Multiplier / trust.MultiplierCap; m > w {
		w = m
	}
	return w
}

func distanceWeight(d socialgraph.Distance) float64 {
	switch d {
	case socialgraph.DistanceSelf:
		return 1.0
	case socialgraph.DistanceDirect:
		return 0.75
	case socialgraph.DistanceIndirect:
		return 0.25
	default:
		return 0.1
	}
}

func tasteMatch(m TasteMatch) float64 {
	return 0.35*m.Category.value() +
		0.35*m.Variant.value() +
		0.15*m.Price.value() +
		0.15*m.Occasion.value()
}

func contextRelevance(m ContextMatch) float64 {
	return (m.Location.value() + m.Time.value() + m.Occasion.value()) / 3
}

func authorCredibility(t tier.Tier, validated int) float64 {
	var base float64
	switch t {
	case tier.TierTrusted:
		base = 1.0
	case tier.TierEstablished:
		base = 0.6
	default:
		base = 0.3
	}
	if validated > 5 {
		base += 0.1
	}
	return base
}

// explain assembles the explanation phrase; the endorsement phrase wins
// over the taste phrase, and a generic line covers the quiet case
func explain(in Input, s Score) string {
	if in.Social.DirectCount > 0 {
		noun := "friend"
		if in.Social.DirectCount > 1 {
			noun = "friends"
		}
		return fmt.Sprintf("Recommended by %d %s you trust", in.Social.DirectCount, noun)
	}
	if in.Social.IndirectCount > 0 {
		return fmt.Sprintf("Endorsed by %d people in your extended network", in.Social.IndirectCount)
	}
	if s.TasteMatch >= maxTaste*0.7 {
		if in.Taste.CategoryName != "" {
			return fmt.Sprintf("Strong match for your taste in %s", titler.String(in.Taste.CategoryName))
		}
		return "Strong match for your tastes"
	}
	if s.AuthorCredibility >= 0.9 {
		return "From a trusted reviewer on the platform"
	}
	return "Suggested based on your overall preferences"
}

func clamp(v, hi float64) float64 {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
