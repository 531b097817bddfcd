// Package repo provides Postgres bindings for the reputation domain.Repo
package repo

import (
	"context"

	"bitebank/internal/modkit/repokit"
	perr "bitebank/internal/platform/errors"
	"bitebank/internal/services/reputation/domain"
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

func (r *queries) Get(ctx context.Context, userID string) (domain.Row, error) {
	const sql = `
select user_id, tier, days_active, validated_count, spam_flags,
       penalty, penalty_expires_at, registered_on::text, upgraded_on::text
from user_tiers
where user_id = $1
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return domain.Row{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Row{}, err
		}
		return domain.Row{}, perr.NotFoundf("tier state for %s", userID)
	}
	var row domain.Row
	if err := rows.Scan(
		&row.UserID,
		&row.Tier,
		&row.DaysActive,
		&row.ValidatedCount,
		&row.SpamFlags,
		&row.Penalty,
		&row.PenaltyExpiresAt,
		&row.RegisteredOn,
		&row.UpgradedOn,
	); err != nil {
		return domain.Row{}, err
	}
	return row, rows.Err()
}

func (r *queries) Insert(ctx context.Context, row domain.Row) error {
	const sql = `
insert into user_tiers (
	user_id, tier, days_active, validated_count, spam_flags,
	penalty, penalty_expires_at, registered_on, upgraded_on
) values ($1, $2, $3, $4, $5, $6, $7, $8::date, $9::date)
on conflict (user_id) do nothing
`
	_, err := r.q.Exec(ctx, sql,
		row.UserID, row.Tier, row.DaysActive, row.ValidatedCount, row.SpamFlags,
		row.Penalty, row.PenaltyExpiresAt, row.RegisteredOn, row.UpgradedOn,
	)
	return err
}

func (r *queries) Update(ctx context.Context, row domain.Row) error {
	const sql = `
update user_tiers set
	tier = $2,
	days_active = $3,
	validated_count = $4,
	spam_flags = $5,
	penalty = $6,
	penalty_expires_at = $7,
	upgraded_on = $8::date
where user_id = $1
`
	_, err := r.q.Exec(ctx, sql,
		row.UserID, row.Tier, row.DaysActive, row.ValidatedCount, row.SpamFlags,
		row.Penalty, row.PenaltyExpiresAt, row.UpgradedOn,
	)
	return err
}
