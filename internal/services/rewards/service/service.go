// Package service provides the rewards service implementation
package service

import (
	"context"
	"time"

	"bitebank/internal/core/reward"
	"bitebank/internal/core/tier"
	"bitebank/internal/modkit/repokit"
	perr "bitebank/internal/platform/errors"
	"bitebank/internal/platform/logger"
	"bitebank/internal/platform/store"
	"bitebank/internal/services/reputation/domain"
	rewdom "bitebank/internal/services/rewards/domain"
)

// Config for the rewards service
type Config struct {
	HistoryLimit int
	// AnalyticsTable receives a best-effort copy of every emitted
	// event for columnar reporting; empty disables the mirror
	AnalyticsTable string
}

// Svc implements rewdom.LedgerPort
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[rewdom.Repo]
	tiers  domain.TierPort
	tariff reward.Tariff
	policy tier.Config
	ch     store.Clickhouse
	cfg    Config
}

// New constructs the rewards service; ch may be nil when analytics is off
func New(
	db repokit.TxRunner,
	binder repokit.Binder[rewdom.Repo],
	tiers domain.TierPort,
	tariff reward.Tariff,
	policy tier.Config,
	ch store.Clickhouse,
	cfg Config,
) *Svc {
	if db == nil {
		panic("rewards.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("rewards.Service requires a non nil Repo binder")
	}
	if tiers == nil {
		panic("rewards.Service requires a non nil TierPort")
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 100
	}
	return &Svc{db: db, binder: binder, tiers: tiers, tariff: tariff, policy: policy, ch: ch, cfg: cfg}
}

// Emit implements rewdom.LedgerPort
func (s *Svc) Emit(ctx context.Context, in rewdom.EmitInput) (rewdom.Event, error) {
	if in.EventID == "" {
		return rewdom.Event{}, perr.InvalidArgf("event id required")
	}
	if in.ActorID == "" {
		return rewdom.Event{}, perr.InvalidArgf("actor id required")
	}
	if in.BeneficiaryID == "" {
		in.BeneficiaryID = in.ActorID
	}

	st, err := s.tiers.State(ctx, in.ActorID)
	if err != nil {
		return rewdom.Event{}, err
	}
	amount, err := s.tariff.Compute(in.Type, st.Tier, s.policy)
	if err != nil {
		return rewdom.Event{}, err
	}

	ev := rewdom.Event{
		EventID:       in.EventID,
		Type:          in.Type,
		ActorID:       in.ActorID,
		BeneficiaryID: in.BeneficiaryID,
		TierAtEvent:   st.Tier,
		Amount:        amount,
		CreatedAt:     time.Now().UTC(),
	}
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Insert(ctx, ev)
	})
	if err != nil {
		return rewdom.Event{}, err
	}

	s.mirror(ctx, ev)
	return ev, nil
}

// History implements rewdom.LedgerPort
func (s *Svc) History(ctx context.Context, beneficiaryID string, limit int) ([]rewdom.Event, error) {
	if beneficiaryID == "" {
		return nil, perr.InvalidArgf("beneficiary id required")
	}
	if limit <= 0 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}
	var out []rewdom.Event
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.binder.Bind(q).ListByBeneficiary(ctx, beneficiaryID, limit)
		return err
	})
	return out, err
}

// mirror copies the event into the columnar store for reporting
// the ledger row is the source of truth; a mirror failure only logs
func (s *Svc) mirror(ctx context.Context, ev rewdom.Event) {
	if s.ch == nil || s.cfg.AnalyticsTable == "" {
		return
	}
	row := [][]any{{
		ev.EventID,
		string(ev.Type),
		ev.ActorID,
		ev.BeneficiaryID,
		ev.TierAtEvent.String(),
		ev.Amount,
		ev.CreatedAt,
	}}
	if err := s.ch.Insert(ctx, s.cfg.AnalyticsTable, row); err != nil {
		logger.C(ctx).Warn().Err(err).Str("event_id", ev.EventID).Msg("reward analytics mirror failed")
	}
}
