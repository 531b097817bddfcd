// Package domain holds DTOs for rewards http and service contracts
package domain

// EmitInput requests a reward payout for one platform event
type EmitInput struct {
	EventID       string `json:"event_id" validate:"required,min=1,max=150" example:"evt_9a1"`
	Kind          string `json:"kind" validate:"required,oneof=creation save comment boost reshare attribution helpful_comment validation first_review onboarding referral contest lottery" example:"boost"`
	ActorID       string `json:"actor_id" validate:"required,min=1,max=100" example:"u_1042"`
	BeneficiaryID string `json:"beneficiary_id,omitempty" validate:"omitempty,min=1,max=100" example:"u_2001"`
}

// Event is the wire shape of one ledger entry
type Event struct {
	EventID       string `json:"event_id" example:"evt_9a1"`
	Kind          string `json:"kind" example:"boost"`
	ActorID       string `json:"actor_id" example:"u_1042"`
	BeneficiaryID string `json:"beneficiary_id" example:"u_2001"`
	TierAtEvent   string `json:"tier_at_event" example:"established"`
	Amount        int64  `json:"amount" example:"3000000"`
	CreatedAt     string `json:"created_at" example:"2025-06-01T12:00:00Z"`
}

// HistoryInput asks for a beneficiary's recent ledger entries
type HistoryInput struct {
	UserID string `json:"user_id" validate:"required,min=1,max=100" example:"u_1042"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"50"`
}

// HistoryResponse is a page of ledger entries
type HistoryResponse struct {
	Events []Event `json:"events"`
}
