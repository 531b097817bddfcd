// Package service provides the reputation service implementation
package service

import (
	"context"
	"time"

	"bitebank/internal/core/tier"
	"bitebank/internal/modkit/repokit"
	perr "bitebank/internal/platform/errors"
	ptime "bitebank/internal/platform/time"
	"bitebank/internal/services/reputation/domain"
)

// Svc implements domain.TierPort over an injected tier policy
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	engine *tier.Engine
}

// New constructs the reputation service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo], engine *tier.Engine) *Svc {
	if db == nil {
		panic("reputation.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reputation.Service requires a non nil Repo binder")
	}
	if engine == nil {
		panic("reputation.Service requires a non nil tier engine")
	}
	return &Svc{db: db, binder: binder, engine: engine}
}

// State implements domain.TierPort
// an unregistered user reads as a fresh New-tier state so scoring and
// limits keep working before the first registration event lands
func (s *Svc) State(ctx context.Context, userID string) (tier.State, error) {
	if userID == "" {
		return tier.State{}, perr.InvalidArgf("user id required")
	}
	var row domain.Row
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		row, err = s.binder.Bind(q).Get(ctx, userID)
		return err
	})
	if err != nil {
		if perr.CodeOf(err) == perr.ErrorCodeNotFound {
			return tier.State{UserID: userID}, nil
		}
		return tier.State{}, err
	}
	return toState(row), nil
}

// Register implements domain.TierPort
func (s *Svc) Register(ctx context.Context, userID string, at time.Time) (tier.State, error) {
	if userID == "" {
		return tier.State{}, perr.InvalidArgf("user id required")
	}
	st := tier.State{UserID: userID}
	row := toRow(st)
	row.RegisteredOn = string(ptime.DayOf(at))
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Insert(ctx, row)
	})
	if err != nil {
		return tier.State{}, err
	}
	return st, nil
}

// RefreshTenure implements domain.TierPort
func (s *Svc) RefreshTenure(ctx context.Context, userID string, daysActive, validatedCount int) (tier.State, error) {
	var out tier.State
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		row, err := r.Get(ctx, userID)
		if err != nil {
			return err
		}
		before := toState(row)
		after := s.engine.Next(before, tier.TenureUpdated{
			DaysActive:     daysActive,
			ValidatedCount: validatedCount,
		})

		next := toRow(after)
		next.RegisteredOn = row.RegisteredOn
		next.UpgradedOn = row.UpgradedOn
		if after.Tier > before.Tier {
			day := string(ptime.Today())
			next.UpgradedOn = &day
		}
		out = after
		return r.Update(ctx, next)
	})
	return out, err
}

// Flag implements domain.TierPort
func (s *Svc) Flag(ctx context.Context, userID string, at time.Time) (tier.State, error) {
	var out tier.State
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		row, err := r.Get(ctx, userID)
		if err != nil {
			return err
		}
		after := s.engine.Next(toState(row), tier.SpamFlagged{At: at})

		next := toRow(after)
		next.RegisteredOn = row.RegisteredOn
		next.UpgradedOn = row.UpgradedOn
		out = after
		return r.Update(ctx, next)
	})
	return out, err
}

// BoostDay implements domain.TierPort
func (s *Svc) BoostDay(ctx context.Context, userID string, day ptime.Day) (bool, error) {
	var row domain.Row
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		row, err = s.binder.Bind(q).Get(ctx, userID)
		return err
	})
	if err != nil {
		if perr.CodeOf(err) == perr.ErrorCodeNotFound {
			return false, nil
		}
		return false, err
	}
	if row.RegisteredOn == string(day) {
		return true, nil
	}
	return row.UpgradedOn != nil && *row.UpgradedOn == string(day), nil
}

func toState(row domain.Row) tier.State {
	return tier.State{
		UserID:           row.UserID,
		Tier:             tier.ParseTier(row.Tier),
		DaysActive:       row.DaysActive,
		ValidatedCount:   row.ValidatedCount,
		SpamFlagCount:    row.SpamFlags,
		Penalty:          tier.ParsePenaltyKind(row.Penalty),
		PenaltyExpiresAt: row.PenaltyExpiresAt,
	}
}

func toRow(st tier.State) domain.Row {
	return domain.Row{
		UserID:           st.UserID,
		Tier:             st.Tier.String(),
		DaysActive:       st.DaysActive,
		ValidatedCount:   st.ValidatedCount,
		SpamFlags:        st.SpamFlagCount,
		Penalty:          st.Penalty.String(),
		PenaltyExpiresAt: st.PenaltyExpiresAt,
	}
}
