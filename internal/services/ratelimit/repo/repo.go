// Package repo provides Postgres bindings for the ratelimit domain.Repo
package repo

import (
	"context"

	"bitebank/internal/modkit/repokit"
	"bitebank/internal/services/ratelimit/domain"
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

func (r *queries) Used(ctx context.Context, userID string, day string) (int, error) {
	const sql = `
select actions_used
from rate_windows
where user_id = $1 and day = $2::date
`
	rows, err := r.q.Query(ctx, sql, userID, day)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, rows.Err()
	}
	var used int
	if err := rows.Scan(&used); err != nil {
		return 0, err
	}
	return used, rows.Err()
}

// ConsumeUpTo is a single upsert so two concurrent callers can never
// both slip past the quota
func (r *queries) ConsumeUpTo(ctx context.Context, userID string, day string, quota int) (int, bool, error) {
	const sql = `
insert into rate_windows (user_id, day, actions_used)
values ($1, $2::date, 1)
on conflict (user_id, day) do update
set actions_used = rate_windows.actions_used + 1
where rate_windows.actions_used < $3
returning actions_used
`
	rows, err := r.q.Query(ctx, sql, userID, day, quota)
	if err != nil {
		return 0, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		// conflict target matched but the guard refused the increment
		if err := rows.Err(); err != nil {
			return 0, false, err
		}
		used, err := r.Used(ctx, userID, day)
		return used, false, err
	}
	var used int
	if err := rows.Scan(&used); err != nil {
		return 0, false, err
	}
	return used, true, rows.Err()
}
