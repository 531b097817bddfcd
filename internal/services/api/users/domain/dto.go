// Package domain holds DTOs for users http and service contracts
package domain

// RegisterInput creates a user's reputation record
type RegisterInput struct {
	UserID string `json:"user_id" validate:"required,min=1,max=100" example:"u_1042"`
}

// StateInput asks for a user's standing
type StateInput struct {
	UserID string `json:"user_id" validate:"required,min=1,max=100" example:"u_1042"`
}

// TenureInput refreshes tenure counters for a user
type TenureInput struct {
	UserID         string `json:"user_id" validate:"required,min=1,max=100" example:"u_1042"`
	DaysActive     int    `json:"days_active" validate:"min=0" example:"42"`
	ValidatedCount int    `json:"validated_count" validate:"min=0" example:"5"`
}

// FlagInput records one spam flag against a user
type FlagInput struct {
	UserID string `json:"user_id" validate:"required,min=1,max=100" example:"u_1042"`
}

// ConnectInput records a mutual connection between two users
type ConnectInput struct {
	UserID string `json:"user_id" validate:"required,min=1,max=100" example:"u_1042"`
	PeerID string `json:"peer_id" validate:"required,min=1,max=100,nefield=UserID" example:"u_2001"`
}

// LimitsInput asks for a user's quota window
type LimitsInput struct {
	UserID string `json:"user_id" validate:"required,min=1,max=100" example:"u_1042"`
	Day    string `json:"day,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-06-01"`
}

// StateResponse is the wire shape of a user's standing
type StateResponse struct {
	UserID           string `json:"user_id" example:"u_1042"`
	Tier             string `json:"tier" example:"established"`
	DaysActive       int    `json:"days_active" example:"42"`
	ValidatedCount   int    `json:"validated_count" example:"5"`
	SpamFlagCount    int    `json:"spam_flag_count" example:"0"`
	Penalty          string `json:"penalty" example:"none"`
	PenaltyExpiresAt string `json:"penalty_expires_at,omitempty" example:"2025-07-01T00:00:00Z"`
}

// LimitsResponse is the wire shape of a quota window
type LimitsResponse struct {
	UserID    string `json:"user_id" example:"u_1042"`
	Day       string `json:"day" example:"2025-06-01"`
	Quota     int    `json:"quota" example:"10"`
	Used      int    `json:"used" example:"3"`
	Remaining int    `json:"remaining" example:"7"`
	BoostDay  bool   `json:"boost_day" example:"false"`
	Penalized bool   `json:"penalized" example:"false"`
}

// OKResponse acknowledges a write
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}
