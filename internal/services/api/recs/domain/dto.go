// Package domain holds DTOs for recs http and service contracts
package domain

// CreateInput is the input for posting a recommendation
type CreateInput struct {
	ID         string `json:"id,omitempty" validate:"omitempty,min=1,max=100" example:"rec_88f"`
	AuthorID   string `json:"author_id" validate:"required,min=1,max=100" example:"u_1042"`
	VenueID    string `json:"venue_id" validate:"required,min=1,max=100" example:"venue_77"`
	Category   string `json:"category,omitempty" validate:"omitempty,min=1,max=100" example:"ramen"`
	PriceRange string `json:"price_range,omitempty" validate:"omitempty,min=1,max=10" example:"$$"`
	Occasion   string `json:"occasion,omitempty" validate:"omitempty,min=1,max=100" example:"dinner"`
}

// CreateResponse reports the stored recommendation and its payouts
type CreateResponse struct {
	Recommendation Rec     `json:"recommendation"`
	CreationReward int64   `json:"creation_reward" example:"5000000"`
	FirstReview    bool    `json:"first_review" example:"true"`
	BonusRewards   []int64 `json:"bonus_rewards,omitempty" example:"25000000"`
	QuotaRemaining int     `json:"quota_remaining" example:"9"`
}

// EngageInput records one engagement on a recommendation
// TrustScore omitted means the endorser's trust is unknown; an explicit
// zero is a known zero-trust endorser, which is a different thing
type EngageInput struct {
	EventID          string   `json:"event_id" validate:"required,min=1,max=150" example:"evt_3c9"`
	RecommendationID string   `json:"recommendation_id" validate:"required,min=1,max=100" example:"rec_88f"`
	EndorserID       string   `json:"endorser_id" validate:"required,min=1,max=100" example:"u_2001"`
	Kind             string   `json:"kind" validate:"required,oneof=like save comment share" example:"save"`
	TrustScore       *float64 `json:"trust_score,omitempty" validate:"omitempty,min=0,max=1" example:"0.8"`
}

// EngageResponse reports the post-engagement standing
type EngageResponse struct {
	Recommendation  Rec   `json:"recommendation"`
	PointsAdded     int64 `json:"points_added" example:"3"`
	EndorserReward  int64 `json:"endorser_reward" example:"1000000"`
	ValidatedNow    bool  `json:"validated_now" example:"false"`
	ValidationBonus int64 `json:"validation_bonus,omitempty" example:"10000000"`
}

// ContextInput asks for one recommendation's standing
type ContextInput struct {
	RecommendationID string `json:"recommendation_id" validate:"required,min=1,max=100" example:"rec_88f"`
}

// Rec is the wire shape of a recommendation
type Rec struct {
	ID              string `json:"id" example:"rec_88f"`
	AuthorID        string `json:"author_id" example:"u_1042"`
	VenueID         string `json:"venue_id" example:"venue_77"`
	Category        string `json:"category,omitempty" example:"ramen"`
	PriceRange      string `json:"price_range,omitempty" example:"$$"`
	Occasion        string `json:"occasion,omitempty" example:"dinner"`
	EngagementScore int64  `json:"engagement_score" example:"12"`
	Validated       bool   `json:"validated" example:"false"`
	IsFirstReview   bool   `json:"is_first_review" example:"true"`
	CreatedAt       string `json:"created_at" example:"2025-06-01T12:00:00Z"`
}

// ContextResponse is a recommendation with its endorsements
type ContextResponse struct {
	Recommendation Rec           `json:"recommendation"`
	Endorsements   []Endorsement `json:"endorsements"`
}

// Endorsement is the wire shape of one endorsement
type Endorsement struct {
	EndorserID string  `json:"endorser_id" example:"u_2001"`
	Kind       string  `json:"kind" example:"save"`
	TrustScore float64 `json:"trust_score" example:"0.8"`
	CreatedAt  string  `json:"created_at" example:"2025-06-01T12:05:00Z"`
}
