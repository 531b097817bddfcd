package net_test

import (
	"context"
	"testing"

	pnet "bitebank/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets both ids", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123", "user-abc")

		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		if got := pnet.UserID(ctx); got != "user-abc" {
			t.Fatalf("UserID got %q want %q", got, "user-abc")
		}
	})

	t.Run("sets only request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "r-only", "")

		if got := pnet.RequestID(ctx); got != "r-only" {
			t.Fatalf("RequestID got %q want %q", got, "r-only")
		}
		if got := pnet.UserID(ctx); got != "" {
			t.Fatalf("UserID got %q want empty", got)
		}
	})

	t.Run("sets only user id", func(t *testing.T) {
		ctx := pnet.WithUser(base, "u-only")

		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
		if got := pnet.UserID(ctx); got != "u-only" {
			t.Fatalf("UserID got %q want %q", got, "u-only")
		}
	})

	t.Run("no ids returns same ctx and empty getters", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "", "")

		// should be the same reference since nothing was set
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when both ids empty")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
		if got := pnet.UserID(ctx); got != "" {
			t.Fatalf("UserID got %q want empty", got)
		}
	})
}
