// Package repo provides Postgres bindings for the rewards domain.Repo
package repo

import (
	"context"

	"bitebank/internal/modkit/repokit"
	"bitebank/internal/core/reward"
	"bitebank/internal/core/tier"
	perr "bitebank/internal/platform/errors"
	"bitebank/internal/services/rewards/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

// Insert relies on the primary key over event_id for write-once
// semantics; the unique violation maps to DuplicateEvent so callers
// can tell an idempotence refusal from a storage fault
func (r *queries) Insert(ctx context.Context, ev domain.Event) error {
	const sql = `
insert into reward_events (event_id, kind, actor_id, beneficiary_id, tier_at_event, amount)
values ($1, $2, $3, $4, $5, $6)
`
	_, err := r.q.Exec(ctx, sql,
		ev.EventID, string(ev.Type), ev.ActorID, ev.BeneficiaryID, ev.TierAtEvent.String(), ev.Amount,
	)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return perr.DuplicateEventf("reward already emitted for event %s", ev.EventID)
		}
		return perr.FromPostgres(err, "insert reward event")
	}
	return nil
}

func (r *queries) ListByBeneficiary(ctx context.Context, beneficiaryID string, limit int) ([]domain.Event, error) {
	const sql = `
select event_id, kind, actor_id, beneficiary_id, tier_at_event, amount, created_at
from reward_events
where beneficiary_id = $1
order by created_at desc, event_id
limit $2
`
	rows, err := r.q.Query(ctx, sql, beneficiaryID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var ev domain.Event
		var kind, tierLabel string
		if err := rows.Scan(
			&ev.EventID, &kind, &ev.ActorID, &ev.BeneficiaryID, &tierLabel, &ev.Amount, &ev.CreatedAt,
		); err != nil {
			return nil, err
		}
		ev.Type = reward.EventType(kind)
		ev.TierAtEvent = tier.ParseTier(tierLabel)
		out = append(out, ev)
	}
	return out, rows.Err()
}
