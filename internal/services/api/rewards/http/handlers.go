// Package http provides http transport for rewards
package http

import (
	stdhttp "net/http"
	"time"

	"bitebank/internal/core/reward"
	"bitebank/internal/modkit/httpkit"
	"bitebank/internal/services/api/rewards/domain"
	rewdom "bitebank/internal/services/rewards/domain"
)

// Register mounts rewards endpoints on the given router
func Register(r httpkit.Router, ledger rewdom.LedgerPort) {
	h := &handlers{ledger: ledger}
	httpkit.PostJSON[domain.EmitInput](r, "/emit", h.emit)
	httpkit.PostJSON[domain.HistoryInput](r, "/history", h.history)
}

type handlers struct{ ledger rewdom.LedgerPort }

// swagger:route POST /rewards/emit Rewards rewardsEmit
// @Summary Compute and record a reward payout
// @Tags Rewards
// @Accept json
// @Produce json
// @Param payload body domain.EmitInput true "Event"
// @Success 200 {object} domain.Event "ok"
// @Failure 409 {object} httpkit.Envelope "duplicate event"
// @Router /rewards/emit [post]
func (h *handlers) emit(r *stdhttp.Request, in domain.EmitInput) (any, error) {
	ev, err := h.ledger.Emit(r.Context(), rewdom.EmitInput{
		EventID:       in.EventID,
		Type:          reward.EventType(in.Kind),
		ActorID:       in.ActorID,
		BeneficiaryID: in.BeneficiaryID,
	})
	if err != nil {
		return nil, err
	}
	return toWire(ev), nil
}

// swagger:route POST /rewards/history Rewards rewardsHistory
// @Summary Recent reward payouts for a user
// @Tags Rewards
// @Accept json
// @Produce json
// @Param payload body domain.HistoryInput true "Query"
// @Success 200 {object} domain.HistoryResponse "ok"
// @Router /rewards/history [post]
func (h *handlers) history(r *stdhttp.Request, in domain.HistoryInput) (any, error) {
	events, err := h.ledger.History(r.Context(), in.UserID, in.Limit)
	if err != nil {
		return nil, err
	}
	out := domain.HistoryResponse{Events: make([]domain.Event, 0, len(events))}
	for _, ev := range events {
		out.Events = append(out.Events, toWire(ev))
	}
	return out, nil
}

func toWire(ev rewdom.Event) domain.Event {
	return domain.Event{
		EventID:       ev.EventID,
		Kind:          string(ev.Type),
		ActorID:       ev.ActorID,
		BeneficiaryID: ev.BeneficiaryID,
		TierAtEvent:   ev.TierAtEvent.String(),
		Amount:        ev.Amount,
		CreatedAt:     ev.CreatedAt.UTC().Format(time.RFC3339),
	}
}
