// Package service contains the recs API workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bitebank/internal/core/reward"
	perr "bitebank/internal/platform/errors"
	"bitebank/internal/platform/logger"
	ptime "bitebank/internal/platform/time"
	"bitebank/internal/services/api/recs/domain"
	limdom "bitebank/internal/services/ratelimit/domain"
	recdom "bitebank/internal/services/recs/domain"
	rewdom "bitebank/internal/services/rewards/domain"
)

// Service defines the recs API contract
type Service interface {
	Create(ctx context.Context, in domain.CreateInput) (domain.CreateResponse, error)
	Engage(ctx context.Context, in domain.EngageInput) (domain.EngageResponse, error)
	Context(ctx context.Context, in domain.ContextInput) (domain.ContextResponse, error)
}

// Svc implements Service by composing the limiter, the store and the ledger
type Svc struct {
	limiter limdom.LimiterPort
	recs    recdom.Ports
	ledger  rewdom.LedgerPort
	tariff  reward.Tariff
}

// New creates a new recs API service
func New(limiter limdom.LimiterPort, recs recdom.Ports, ledger rewdom.LedgerPort, tariff reward.Tariff) *Svc {
	if limiter == nil {
		panic("recs api requires a non nil LimiterPort")
	}
	if recs == nil {
		panic("recs api requires a non nil recs Ports")
	}
	if ledger == nil {
		panic("recs api requires a non nil LedgerPort")
	}
	return &Svc{limiter: limiter, recs: recs, ledger: ledger, tariff: tariff}
}

// Create posts a recommendation: quota first, then the row, then payouts
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.CreateResponse, error) {
	window, err := s.limiter.Consume(ctx, in.AuthorID, ptime.Today())
	if err != nil {
		return domain.CreateResponse{}, err
	}

	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	rec, err := s.recs.Create(ctx, recdom.CreateInput{
		ID:         in.ID,
		AuthorID:   in.AuthorID,
		VenueID:    in.VenueID,
		Category:   in.Category,
		PriceRange: in.PriceRange,
		Occasion:   in.Occasion,
	})
	if err != nil {
		return domain.CreateResponse{}, err
	}

	created, err := s.ledger.Emit(ctx, rewdom.EmitInput{
		EventID: "creation:" + rec.ID,
		Type:    reward.EventCreation,
		ActorID: rec.AuthorID,
	})
	if err != nil {
		return domain.CreateResponse{}, err
	}

	out := domain.CreateResponse{
		Recommendation: toWire(rec),
		CreationReward: created.Amount,
		FirstReview:    rec.IsFirstReview,
		QuotaRemaining: window.Remaining,
	}
	if rec.IsFirstReview {
		bonus, err := s.ledger.Emit(ctx, rewdom.EmitInput{
			EventID: "first_review:" + rec.ID,
			Type:    reward.EventFirstReview,
			ActorID: rec.AuthorID,
		})
		if err != nil {
			return domain.CreateResponse{}, err
		}
		out.BonusRewards = append(out.BonusRewards, bonus.Amount)
	}
	return out, nil
}

// Engage records an endorsement, pays the endorser where the tariff
// says to, and pays the author's validation bonus on the crossing bump
func (s *Svc) Engage(ctx context.Context, in domain.EngageInput) (domain.EngageResponse, error) {
	points := s.tariff.EngagementPointsFor(in.Kind)
	if points == 0 {
		return domain.EngageResponse{}, perr.InvalidArgf("unknown engagement kind %q", in.Kind)
	}
	trustScore := -1.0 // unknown unless the caller resolved one
	if in.TrustScore != nil {
		trustScore = *in.TrustScore
	}

	res, err := s.recs.Endorse(ctx, recdom.EndorseInput{
		RecommendationID:    in.RecommendationID,
		EndorserID:          in.EndorserID,
		Type:                in.Kind,
		TrustScore:          trustScore,
		Points:              points,
		ValidationThreshold: s.tariff.ValidationThreshold,
	})
	if err != nil {
		return domain.EngageResponse{}, err
	}

	out := domain.EngageResponse{
		Recommendation: toWire(res.Rec),
		PointsAdded:    points,
		ValidatedNow:   res.Crossed,
	}

	if ev, ok := engagementEvent(in.Kind); ok {
		paid, err := s.ledger.Emit(ctx, rewdom.EmitInput{
			EventID: "engage:" + in.EventID,
			Type:    ev,
			ActorID: in.EndorserID,
		})
		if err != nil {
			return domain.EngageResponse{}, err
		}
		out.EndorserReward = paid.Amount
	}

	if res.Crossed {
		bonus, err := s.ledger.Emit(ctx, rewdom.EmitInput{
			EventID: "validation:" + res.Rec.ID,
			Type:    reward.EventValidation,
			ActorID: res.Rec.AuthorID,
		})
		if err != nil {
			// the ledger's write-once guarantee is the backstop when
			// two bumps race the crossing; losing that race is fine
			if perr.CodeOf(err) != perr.ErrorCodeDuplicateEvent {
				return domain.EngageResponse{}, err
			}
			logger.C(ctx).Info().Str("recommendation_id", res.Rec.ID).Msg("validation bonus already paid")
		} else {
			out.ValidationBonus = bonus.Amount
		}
	}
	return out, nil
}

// Context returns one recommendation with its endorsements
func (s *Svc) Context(ctx context.Context, in domain.ContextInput) (domain.ContextResponse, error) {
	rec, err := s.recs.Context(ctx, in.RecommendationID)
	if err != nil {
		return domain.ContextResponse{}, err
	}
	es, err := s.recs.Endorsements(ctx, in.RecommendationID)
	if err != nil {
		return domain.ContextResponse{}, err
	}
	out := domain.ContextResponse{
		Recommendation: toWire(rec),
		Endorsements:   make([]domain.Endorsement, 0, len(es)),
	}
	for _, e := range es {
		out.Endorsements = append(out.Endorsements, domain.Endorsement{
			EndorserID: e.EndorserID,
			Kind:       e.Type,
			TrustScore: e.TrustScore,
			CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}

func engagementEvent(kind string) (reward.EventType, bool) {
	switch kind {
	case "save":
		return reward.EventSave, true
	case "comment":
		return reward.EventComment, true
	default:
		return "", false
	}
}

func toWire(rec recdom.Rec) domain.Rec {
	return domain.Rec{
		ID:              rec.ID,
		AuthorID:        rec.AuthorID,
		VenueID:         rec.VenueID,
		Category:        rec.Category,
		PriceRange:      rec.PriceRange,
		Occasion:        rec.Occasion,
		EngagementScore: rec.EngagementScore,
		Validated:       rec.Validated,
		IsFirstReview:   rec.IsFirstReview,
		CreatedAt:       rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}
