// Package service provides the ratelimit service implementation
package service

import (
	"context"

	"bitebank/internal/core/tier"
	"bitebank/internal/modkit/repokit"
	perr "bitebank/internal/platform/errors"
	ptime "bitebank/internal/platform/time"
	"bitebank/internal/services/ratelimit/domain"
	repdom "bitebank/internal/services/reputation/domain"
)

// Svc implements domain.LimiterPort
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	tiers  repdom.TierPort
	policy tier.Config
}

// New constructs the ratelimit service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo], tiers repdom.TierPort, policy tier.Config) *Svc {
	if db == nil {
		panic("ratelimit.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("ratelimit.Service requires a non nil Repo binder")
	}
	if tiers == nil {
		panic("ratelimit.Service requires a non nil TierPort")
	}
	return &Svc{db: db, binder: binder, tiers: tiers, policy: policy}
}

// Check implements domain.LimiterPort
func (s *Svc) Check(ctx context.Context, userID string, day ptime.Day) (domain.Window, error) {
	w, _, err := s.window(ctx, userID, day)
	if err != nil {
		return domain.Window{}, err
	}
	var used int
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		used, err = s.binder.Bind(q).Used(ctx, userID, string(day))
		return err
	})
	if err != nil {
		return domain.Window{}, err
	}
	w.Used = used
	w.Remaining = remaining(w.Quota, used)
	return w, nil
}

// Consume implements domain.LimiterPort
func (s *Svc) Consume(ctx context.Context, userID string, day ptime.Day) (domain.Window, error) {
	w, permanent, err := s.window(ctx, userID, day)
	if err != nil {
		return domain.Window{}, err
	}
	if permanent {
		return domain.Window{}, perr.SpamPenalizedf("account permanently penalized")
	}
	// the upsert's insert arm always grants the day's first action, so a
	// non-positive quota has to be refused before touching the store
	if w.Quota <= 0 {
		if w.Penalized {
			return w, perr.SpamPenalizedf("penalty quota exhausted for %s", day)
		}
		return w, perr.RateLimitedf("daily quota of %d reached for %s", w.Quota, day)
	}

	var used int
	var ok bool
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		used, ok, err = s.binder.Bind(q).ConsumeUpTo(ctx, userID, string(day), w.Quota)
		return err
	})
	if err != nil {
		return domain.Window{}, err
	}
	w.Used = used
	w.Remaining = remaining(w.Quota, used)
	if !ok {
		if w.Penalized {
			return w, perr.SpamPenalizedf("penalty quota exhausted for %s", day)
		}
		return w, perr.RateLimitedf("daily quota of %d reached for %s", w.Quota, day)
	}
	return w, nil
}

// window resolves the effective quota for the day from tier state
// the second return flags a permanent penalty, which blocks outright
func (s *Svc) window(ctx context.Context, userID string, day ptime.Day) (domain.Window, bool, error) {
	if userID == "" {
		return domain.Window{}, false, perr.InvalidArgf("user id required")
	}
	st, err := s.tiers.State(ctx, userID)
	if err != nil {
		return domain.Window{}, false, err
	}

	penalized := st.Penalized(day.Time())
	boost := false
	if !penalized {
		boost, err = s.tiers.BoostDay(ctx, userID, day)
		if err != nil {
			return domain.Window{}, false, err
		}
	}

	return domain.Window{
		UserID:    userID,
		Day:       day,
		Quota:     s.policy.DailyQuota(st.Tier, boost, penalized),
		BoostDay:  boost,
		Penalized: penalized,
	}, st.Penalty == tier.PenaltyPermanent, nil
}

func remaining(quota, used int) int {
	if r := quota - used; r > 0 {
		return r
	}
	return 0
}
