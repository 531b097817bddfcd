// Package domain defines the types and interfaces for the ratelimit service
package domain

import (
	"context"

	ptime "bitebank/internal/platform/time"
)

// Window is one user's quota standing for one UTC day
type Window struct {
	UserID    string
	Day       ptime.Day
	Quota     int
	Used      int
	Remaining int
	BoostDay  bool
	Penalized bool
}

// LimiterPort enforces the per-user per-UTC-day action quota
type LimiterPort interface {
	// Check reads the current window without consuming
	Check(ctx context.Context, userID string, day ptime.Day) (Window, error)

	// Consume atomically takes one action from the window
	// returns SpamPenalized while a penalty is in force and
	// RateLimitExceeded when the quota is spent; never both conflated
	Consume(ctx context.Context, userID string, day ptime.Day) (Window, error)
}

// Repo abstracts the rate window counters
type Repo interface {
	// Used returns the actions consumed so far; zero when no row exists
	Used(ctx context.Context, userID string, day string) (int, error)

	// ConsumeUpTo increments the counter only while used < quota and
	// reports the new count; ok=false means the quota was already spent
	// the increment-and-check must be a single statement at the store
	ConsumeUpTo(ctx context.Context, userID string, day string, quota int) (used int, ok bool, err error)
}
