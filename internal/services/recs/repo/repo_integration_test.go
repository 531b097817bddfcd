//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"bitebank/internal/platform/store"
	"bitebank/internal/services/recs/domain"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mp.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func openStore(t *testing.T, dsn string) *store.Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	t.Cleanup(cancel)

	s, err := store.Open(ctx, store.Config{
		AppName: "recs-test",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 5},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func migrate(t *testing.T, s *store.Store) {
	t.Helper()
	ctx := context.Background()
	stmts := []string{`
		CREATE TABLE recommendations (
			id               TEXT PRIMARY KEY,
			author_id        TEXT NOT NULL,
			venue_id         TEXT NOT NULL,
			category         TEXT NOT NULL DEFAULT '',
			price_range      TEXT NOT NULL DEFAULT '',
			occasion         TEXT NOT NULL DEFAULT '',
			engagement_score BIGINT NOT NULL DEFAULT 0,
			validated        BOOLEAN NOT NULL DEFAULT FALSE,
			is_first_review  BOOLEAN NOT NULL DEFAULT FALSE,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, `
		CREATE TABLE endorsements (
			recommendation_id TEXT NOT NULL REFERENCES recommendations(id),
			endorser_id       TEXT NOT NULL,
			kind              TEXT NOT NULL,
			trust_score       DOUBLE PRECISION NOT NULL DEFAULT -1,
			created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.PG.Exec(ctx, stmt); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}
}

func TestInsert_Integration_FirstReviewFixedAtCreation(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	s := openStore(t, dsn)
	migrate(t, s)
	ctx := context.Background()
	r := NewPG().Bind(s.PG)

	first, err := r.Insert(ctx, domain.CreateInput{ID: "r1", AuthorID: "a1", VenueID: "v1"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !first.IsFirstReview {
		t.Fatalf("first recommendation for a venue must flag first review")
	}

	second, err := r.Insert(ctx, domain.CreateInput{ID: "r2", AuthorID: "a2", VenueID: "v1"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if second.IsFirstReview {
		t.Fatalf("second recommendation for a venue must not flag first review")
	}

	// different venue starts over
	other, err := r.Insert(ctx, domain.CreateInput{ID: "r3", AuthorID: "a1", VenueID: "v2"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !other.IsFirstReview {
		t.Fatalf("new venue must flag first review")
	}
}

func TestInsert_Integration_ConcurrentFirstReviewsOneWinner(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	s := openStore(t, dsn)
	migrate(t, s)
	ctx := context.Background()
	binder := NewPG()

	// every create races for the same fresh venue inside its own
	// transaction, the way the service drives the repo
	const writers = 8
	results := make(chan domain.Rec, writers)
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			var rec domain.Rec
			err := s.PG.Tx(ctx, func(q store.RowQuerier) error {
				var err error
				rec, err = binder.Bind(q).Insert(ctx, domain.CreateInput{
					ID:       fmt.Sprintf("r%d", n),
					AuthorID: fmt.Sprintf("a%d", n),
					VenueID:  "venue-contested",
				})
				return err
			})
			if err != nil {
				errs <- err
				return
			}
			results <- rec
		}(i)
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent insert: %v", err)
	}
	var flagged int
	for rec := range results {
		if rec.IsFirstReview {
			flagged++
		}
	}
	if flagged != 1 {
		t.Fatalf("first review flagged %d times for one venue, want exactly 1", flagged)
	}
}

func TestBumpEngagement_Integration_CrossesOnce(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	s := openStore(t, dsn)
	migrate(t, s)
	ctx := context.Background()
	r := NewPG().Bind(s.PG)

	if _, err := r.Insert(ctx, domain.CreateInput{ID: "r1", AuthorID: "a1", VenueID: "v1"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	const threshold = 25

	// climb to just below the threshold
	rec, crossed, err := r.BumpEngagement(ctx, "r1", 24, threshold)
	if err != nil {
		t.Fatalf("bump: %v", err)
	}
	if crossed || rec.Validated {
		t.Fatalf("below threshold must not cross: %+v crossed=%v", rec, crossed)
	}

	// the inclusive comparison crosses exactly at the threshold
	rec, crossed, err = r.BumpEngagement(ctx, "r1", 1, threshold)
	if err != nil {
		t.Fatalf("bump: %v", err)
	}
	if !crossed || !rec.Validated || rec.EngagementScore != threshold {
		t.Fatalf("crossing bump: %+v crossed=%v", rec, crossed)
	}

	// further bumps stay validated but never re-cross
	rec, crossed, err = r.BumpEngagement(ctx, "r1", 100, threshold)
	if err != nil {
		t.Fatalf("bump: %v", err)
	}
	if crossed || !rec.Validated {
		t.Fatalf("re-crossing must not trigger: %+v crossed=%v", rec, crossed)
	}
}
