package service

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"bitebank/internal/core/socialgraph"
	"bitebank/internal/core/tier"
	perr "bitebank/internal/platform/errors"
	ptime "bitebank/internal/platform/time"
	recdom "bitebank/internal/services/recs/domain"
	"bitebank/internal/services/scoring/domain"
)

type fakeGraph struct {
	snap socialgraph.Snapshot
	err  error
}

func (f fakeGraph) Snapshot(context.Context, string) (socialgraph.Snapshot, error) {
	return f.snap, f.err
}

type fakeRecs struct {
	rec recdom.Rec
	es  []recdom.Endorsement
}

func (f fakeRecs) Context(context.Context, string) (recdom.Rec, error) { return f.rec, nil }
func (f fakeRecs) Endorsements(context.Context, string) ([]recdom.Endorsement, error) {
	return f.es, nil
}

type fakeTiers struct{ st tier.State }

func (f fakeTiers) State(_ context.Context, userID string) (tier.State, error) {
	st := f.st
	st.UserID = userID
	return st, nil
}

func (f fakeTiers) Register(_ context.Context, userID string, _ time.Time) (tier.State, error) {
	return tier.State{UserID: userID}, nil
}

func (f fakeTiers) RefreshTenure(_ context.Context, userID string, _, _ int) (tier.State, error) {
	return f.st, nil
}

func (f fakeTiers) Flag(_ context.Context, userID string, _ time.Time) (tier.State, error) {
	return f.st, nil
}

func (f fakeTiers) BoostDay(context.Context, string, ptime.Day) (bool, error) { return false, nil }

func viewerSnap() socialgraph.Snapshot {
	return socialgraph.Build("viewer", []string{"friend"}, map[string][]string{
		"friend": {"fof"},
	})
}

func TestScore_EndorsementsResolvedAgainstGraph(t *testing.T) {
	t.Parallel()

	svc := New(
		fakeGraph{snap: viewerSnap()},
		fakeRecs{
			rec: recdom.Rec{ID: "r1", AuthorID: "author", Category: "ramen"},
			es: []recdom.Endorsement{
				{EndorserID: "friend", Type: "save", TrustScore: 0.8},
				{EndorserID: "fof", Type: "like", TrustScore: 0.5},
				{EndorserID: "stranger", Type: "like", TrustScore: 1},
			},
		},
		fakeTiers{st: tier.State{Tier: tier.TierEstablished}},
	)

	res, err := svc.Score(context.Background(), domain.ScoreInput{
		ViewerID:         "viewer",
		RecommendationID: "r1",
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	// 0.75*0.8 + 0.25*0.5, stranger contributes nothing
	if math.Abs(res.Social.Multiplier-0.725) > 1e-9 {
		t.Fatalf("multiplier = %v, want 0.725", res.Social.Multiplier)
	}
	if res.Social.DirectCount != 1 || res.Social.IndirectCount != 1 {
		t.Fatalf("counts = %d/%d", res.Social.DirectCount, res.Social.IndirectCount)
	}
	if !strings.Contains(res.Score.Explanation, "1 friend") {
		t.Fatalf("explanation = %q", res.Score.Explanation)
	}
	if res.Score.Total < 0 || res.Score.Total > 10 {
		t.Fatalf("total out of range: %v", res.Score.Total)
	}
}

func TestScore_GraphFailureDegradesToIsolated(t *testing.T) {
	t.Parallel()

	graphErr := perr.NotFoundf("graph down")
	recs := fakeRecs{rec: recdom.Rec{ID: "r1", AuthorID: "author"}}
	tiers := fakeTiers{st: tier.State{Tier: tier.TierNew}}

	svc := New(fakeGraph{err: graphErr}, recs, tiers)
	res, err := svc.Score(context.Background(), domain.ScoreInput{
		ViewerID:         "viewer",
		RecommendationID: "r1",
	})
	if err != nil {
		t.Fatalf("degraded score must not fail: %v", err)
	}
	if res.Social.Multiplier != 0 {
		t.Fatalf("isolated multiplier = %v", res.Social.Multiplier)
	}

	// strict mode propagates instead
	if _, err := svc.Score(context.Background(), domain.ScoreInput{
		ViewerID:         "viewer",
		RecommendationID: "r1",
		Strict:           true,
	}); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("strict err = %v, want not found", err)
	}
}

func TestScore_TastePreferences(t *testing.T) {
	t.Parallel()

	svc := New(
		fakeGraph{snap: socialgraph.Isolated("viewer")},
		fakeRecs{rec: recdom.Rec{
			ID: "r1", AuthorID: "author",
			Category: "ramen", PriceRange: "$$", Occasion: "dinner",
		}},
		fakeTiers{st: tier.State{Tier: tier.TierNew}},
	)

	hit, err := svc.Score(context.Background(), domain.ScoreInput{
		ViewerID:         "viewer",
		RecommendationID: "r1",
		Prefs: domain.Prefs{
			Categories:  []string{"ramen"},
			Cuisines:    []string{"ramen"},
			PriceRanges: []string{"$$"},
			Occasions:   []string{"dinner"},
		},
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	miss, err := svc.Score(context.Background(), domain.ScoreInput{
		ViewerID:         "viewer",
		RecommendationID: "r1",
		Prefs: domain.Prefs{
			Categories:  []string{"sushi"},
			Cuisines:    []string{"sushi"},
			PriceRanges: []string{"$"},
			Occasions:   []string{"brunch"},
		},
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(hit.Score.TasteMatch-4) > 1e-9 {
		t.Fatalf("full match taste = %v, want 4", hit.Score.TasteMatch)
	}
	if miss.Score.TasteMatch != 0 {
		t.Fatalf("full miss taste = %v, want 0", miss.Score.TasteMatch)
	}
}

func TestScore_Deterministic(t *testing.T) {
	t.Parallel()

	svc := New(
		fakeGraph{snap: viewerSnap()},
		fakeRecs{
			rec: recdom.Rec{ID: "r1", AuthorID: "friend", Category: "ramen"},
			es:  []recdom.Endorsement{{EndorserID: "fof", Type: "like", TrustScore: 0.4}},
		},
		fakeTiers{st: tier.State{Tier: tier.TierTrusted, ValidatedCount: 9}},
	)
	in := domain.ScoreInput{ViewerID: "viewer", RecommendationID: "r1"}

	a, err := svc.Score(context.Background(), in)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	b, err := svc.Score(context.Background(), in)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if a.Score.Total != b.Score.Total || a.Score.Explanation != b.Score.Explanation {
		t.Fatalf("identical inputs must score identically")
	}
}
