package domain

import "context"

// ReaderPort reads recommendation context and endorsements
type ReaderPort interface {
	Context(ctx context.Context, recommendationID string) (Rec, error)
	Endorsements(ctx context.Context, recommendationID string) ([]Endorsement, error)
}

// WriterPort creates recommendations and records engagement
type WriterPort interface {
	// Create stores a recommendation; the first-review flag is fixed
	// here from the venue's prior recommendation count and never
	// recomputed afterwards
	Create(ctx context.Context, in CreateInput) (Rec, error)

	// Endorse appends an endorsement and bumps the engagement score in
	// one atomic statement, reporting whether this bump crossed the
	// validation threshold
	Endorse(ctx context.Context, in EndorseInput) (EndorseResult, error)
}

// Repo abstracts recommendation storage
type Repo interface {
	Get(ctx context.Context, id string) (Rec, error)
	Insert(ctx context.Context, in CreateInput) (Rec, error)
	InsertEndorsement(ctx context.Context, in EndorseInput) error
	BumpEngagement(ctx context.Context, id string, points, threshold int64) (Rec, bool, error)
	ListEndorsements(ctx context.Context, id string) ([]Endorsement, error)
}

// Ports is a convenience interface for both recs ports
type Ports interface {
	ReaderPort
	WriterPort
}
