// Package service provides the recs service implementation
package service

import (
	"context"

	"bitebank/internal/modkit/repokit"
	perr "bitebank/internal/platform/errors"
	"bitebank/internal/services/recs/domain"
)

// Svc implements domain.ReaderPort and domain.WriterPort
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
}

// New constructs the recs service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo]) *Svc {
	if db == nil {
		panic("recs.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("recs.Service requires a non nil Repo binder")
	}
	return &Svc{db: db, binder: binder}
}

// Context implements domain.ReaderPort
func (s *Svc) Context(ctx context.Context, recommendationID string) (domain.Rec, error) {
	if recommendationID == "" {
		return domain.Rec{}, perr.InvalidArgf("recommendation id required")
	}
	var rec domain.Rec
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rec, err = s.binder.Bind(q).Get(ctx, recommendationID)
		return err
	})
	return rec, err
}

// Endorsements implements domain.ReaderPort
func (s *Svc) Endorsements(ctx context.Context, recommendationID string) ([]domain.Endorsement, error) {
	var out []domain.Endorsement
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.binder.Bind(q).ListEndorsements(ctx, recommendationID)
		return err
	})
	return out, err
}

// Create implements domain.WriterPort
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Rec, error) {
	if in.ID == "" || in.AuthorID == "" || in.VenueID == "" {
		return domain.Rec{}, perr.InvalidArgf("recommendation id, author id and venue id required")
	}
	var rec domain.Rec
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rec, err = s.binder.Bind(q).Insert(ctx, in)
		return err
	})
	return rec, err
}

// Endorse implements domain.WriterPort
// the endorsement row and the engagement bump land in one transaction
func (s *Svc) Endorse(ctx context.Context, in domain.EndorseInput) (domain.EndorseResult, error) {
	if in.RecommendationID == "" || in.EndorserID == "" {
		return domain.EndorseResult{}, perr.InvalidArgf("recommendation id and endorser id required")
	}
	var res domain.EndorseResult
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.InsertEndorsement(ctx, in); err != nil {
			return err
		}
		rec, crossed, err := r.BumpEngagement(ctx, in.RecommendationID, in.Points, in.ValidationThreshold)
		if err != nil {
			return err
		}
		res = domain.EndorseResult{Rec: rec, Crossed: crossed}
		return nil
	})
	return res, err
}
