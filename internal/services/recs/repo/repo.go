// Package repo provides Postgres bindings for the recs domain.Repo
package repo

import (
	"context"

	"bitebank/internal/modkit/repokit"
	perr "bitebank/internal/platform/errors"
	"bitebank/internal/services/recs/domain"
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

const recColumns = `
id, author_id, venue_id, category, price_range, occasion,
engagement_score, validated, is_first_review, created_at
`

func scanRec(rows repokit.Rows) (domain.Rec, error) {
	var rec domain.Rec
	err := rows.Scan(
		&rec.ID,
		&rec.AuthorID,
		&rec.VenueID,
		&rec.Category,
		&rec.PriceRange,
		&rec.Occasion,
		&rec.EngagementScore,
		&rec.Validated,
		&rec.IsFirstReview,
		&rec.CreatedAt,
	)
	return rec, err
}

func (r *queries) Get(ctx context.Context, id string) (domain.Rec, error) {
	rows, err := r.q.Query(ctx, `select `+recColumns+` from recommendations where id = $1`, id)
	if err != nil {
		return domain.Rec{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Rec{}, err
		}
		return domain.Rec{}, perr.NotFoundf("recommendation %s", id)
	}
	rec, err := scanRec(rows)
	if err != nil {
		return domain.Rec{}, err
	}
	return rec, rows.Err()
}

// Insert fixes the first-review flag at creation time. The venue-scoped
// advisory lock serializes concurrent creates for one venue; without it
// two inserts could each see an empty venue under read committed and
// both claim the flag. The lock falls with the enclosing transaction
func (r *queries) Insert(ctx context.Context, in domain.CreateInput) (domain.Rec, error) {
	if _, err := r.q.Exec(ctx,
		`select pg_advisory_xact_lock(hashtext('venue:' || $1))`, in.VenueID,
	); err != nil {
		return domain.Rec{}, err
	}

	const sql = `
insert into recommendations (
	id, author_id, venue_id, category, price_range, occasion,
	engagement_score, validated, is_first_review
)
select $1, $2, $3, $4, $5, $6, 0, false,
       not exists (select 1 from recommendations where venue_id = $3)
returning ` + recColumns
	rows, err := r.q.Query(ctx, sql,
		in.ID, in.AuthorID, in.VenueID, in.Category, in.PriceRange, in.Occasion,
	)
	if err != nil {
		return domain.Rec{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Rec{}, err
		}
		return domain.Rec{}, perr.DBf("insert recommendation returned no row")
	}
	rec, err := scanRec(rows)
	if err != nil {
		return domain.Rec{}, err
	}
	return rec, rows.Err()
}

func (r *queries) InsertEndorsement(ctx context.Context, in domain.EndorseInput) error {
	const sql = `
insert into endorsements (recommendation_id, endorser_id, kind, trust_score)
values ($1, $2, $3, $4)
`
	_, err := r.q.Exec(ctx, sql, in.RecommendationID, in.EndorserID, in.Type, in.TrustScore)
	return err
}

// BumpEngagement adds points and detects the threshold crossing in one
// statement; the returning clause sees post-update values, so the prior
// score is recovered by subtracting the bump
func (r *queries) BumpEngagement(ctx context.Context, id string, points, threshold int64) (domain.Rec, bool, error) {
	const sql = `
update recommendations
set engagement_score = engagement_score + $2,
    validated = validated or (engagement_score + $2) >= $3
where id = $1
returning ` + recColumns + `,
          (engagement_score - $2) < $3 and engagement_score >= $3 as crossed
`
	rows, err := r.q.Query(ctx, sql, id, points, threshold)
	if err != nil {
		return domain.Rec{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Rec{}, false, err
		}
		return domain.Rec{}, false, perr.NotFoundf("recommendation %s", id)
	}
	var rec domain.Rec
	var crossed bool
	if err := rows.Scan(
		&rec.ID,
		&rec.AuthorID,
		&rec.VenueID,
		&rec.Category,
		&rec.PriceRange,
		&rec.Occasion,
		&rec.EngagementScore,
		&rec.Validated,
		&rec.IsFirstReview,
		&rec.CreatedAt,
		&crossed,
	); err != nil {
		return domain.Rec{}, false, err
	}
	return rec, crossed, rows.Err()
}

func (r *queries) ListEndorsements(ctx context.Context, id string) ([]domain.Endorsement, error) {
	const sql = `
select recommendation_id, endorser_id, kind, trust_score, created_at
from endorsements
where recommendation_id = $1
order by created_at, endorser_id
`
	rows, err := r.q.Query(ctx, sql, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Endorsement
	for rows.Next() {
		var e domain.Endorsement
		if err := rows.Scan(&e.RecommendationID, &e.EndorserID, &e.Type, &e.TrustScore, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
