// Package repo provides Postgres bindings for the graph domain.Repo
package repo

import (
	"context"

	"bitebank/internal/modkit/repokit"
	"bitebank/internal/services/graph/domain"
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

func (r *queries) DirectIDs(ctx context.Context, userID string) ([]string, error) {
	const sql = `
select peer_id
from social_connections
where user_id = $1
order by peer_id
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *queries) PeersOf(ctx context.Context, userIDs []string) (map[string][]string, error) {
	if len(userIDs) == 0 {
		return map[string][]string{}, nil
	}
	const sql = `
select user_id, peer_id
from social_connections
where user_id = any($1)
order by user_id, peer_id
`
	rows, err := r.q.Query(ctx, sql, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string, len(userIDs))
	for rows.Next() {
		var uid, pid string
		if err := rows.Scan(&uid, &pid); err != nil {
			return nil, err
		}
		out[uid] = append(out[uid], pid)
	}
	return out, rows.Err()
}

// InsertEdge stores both directions so lookups stay single-column
func (r *queries) InsertEdge(ctx context.Context, userID, peerID string) error {
	const sql = `
insert into social_connections (user_id, peer_id)
values ($1, $2), ($2, $1)
on conflict (user_id, peer_id) do nothing
`
	_, err := r.q.Exec(ctx, sql, userID, peerID)
	return err
}
