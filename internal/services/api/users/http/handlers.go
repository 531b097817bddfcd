// Package http provides http transport for users
package http

import (
	stdhttp "net/http"
	"time"

	"bitebank/internal/modkit/httpkit"
	ptime "bitebank/internal/platform/time"
	"bitebank/internal/services/api/users/domain"
	graphdom "bitebank/internal/services/graph/domain"
	limdom "bitebank/internal/services/ratelimit/domain"
	repdom "bitebank/internal/services/reputation/domain"

	"bitebank/internal/core/tier"
)

// Deps are the handler dependencies
type Deps struct {
	Tiers   repdom.TierPort
	Graph   graphdom.WriterPort
	Limiter limdom.LimiterPort
}

// Register mounts users endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.PostJSON[domain.RegisterInput](r, "/register", h.register)
	httpkit.PostJSON[domain.StateInput](r, "/state", h.state)
	httpkit.PostJSON[domain.TenureInput](r, "/tenure", h.tenure)
	httpkit.PostJSON[domain.FlagInput](r, "/flag", h.flag)
	httpkit.PostJSON[domain.ConnectInput](r, "/connect", h.connect)
	httpkit.PostJSON[domain.LimitsInput](r, "/limits", h.limits)
}

type handlers struct{ deps Deps }

// swagger:route POST /users/register Users usersRegister
// @Summary Register a user's reputation record
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.RegisterInput true "User"
// @Success 200 {object} domain.StateResponse "ok"
// @Router /users/register [post]
func (h *handlers) register(r *stdhttp.Request, in domain.RegisterInput) (any, error) {
	st, err := h.deps.Tiers.Register(r.Context(), in.UserID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return toState(st), nil
}

// swagger:route POST /users/state Users usersState
// @Summary Current tier and penalty standing
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.StateInput true "Query"
// @Success 200 {object} domain.StateResponse "ok"
// @Router /users/state [post]
func (h *handlers) state(r *stdhttp.Request, in domain.StateInput) (any, error) {
	st, err := h.deps.Tiers.State(r.Context(), in.UserID)
	if err != nil {
		return nil, err
	}
	return toState(st), nil
}

// swagger:route POST /users/tenure Users usersTenure
// @Summary Refresh tenure counters; tier only moves up
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.TenureInput true "Counters"
// @Success 200 {object} domain.StateResponse "ok"
// @Router /users/tenure [post]
func (h *handlers) tenure(r *stdhttp.Request, in domain.TenureInput) (any, error) {
	st, err := h.deps.Tiers.RefreshTenure(r.Context(), in.UserID, in.DaysActive, in.ValidatedCount)
	if err != nil {
		return nil, err
	}
	return toState(st), nil
}

// swagger:route POST /users/flag Users usersFlag
// @Summary Record a spam flag; penalties escalate at thresholds
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.FlagInput true "Flag"
// @Success 200 {object} domain.StateResponse "ok"
// @Router /users/flag [post]
func (h *handlers) flag(r *stdhttp.Request, in domain.FlagInput) (any, error) {
	st, err := h.deps.Tiers.Flag(r.Context(), in.UserID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return toState(st), nil
}

// swagger:route POST /users/connect Users usersConnect
// @Summary Record a mutual connection between two users
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.ConnectInput true "Edge"
// @Success 200 {object} domain.OKResponse "ok"
// @Router /users/connect [post]
func (h *handlers) connect(r *stdhttp.Request, in domain.ConnectInput) (any, error) {
	if err := h.deps.Graph.Connect(r.Context(), in.UserID, in.PeerID); err != nil {
		return nil, err
	}
	return domain.OKResponse{OK: true}, nil
}

// swagger:route POST /users/limits Users usersLimits
// @Summary Quota window for a UTC day without consuming
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.LimitsInput true "Query"
// @Success 200 {object} domain.LimitsResponse "ok"
// @Router /users/limits [post]
func (h *handlers) limits(r *stdhttp.Request, in domain.LimitsInput) (any, error) {
	day := ptime.Day(in.Day)
	if in.Day == "" {
		day = ptime.Today()
	}
	w, err := h.deps.Limiter.Check(r.Context(), in.UserID, day)
	if err != nil {
		return nil, err
	}
	return domain.LimitsResponse{
		UserID:    w.UserID,
		Day:       string(w.Day),
		Quota:     w.Quota,
		Used:      w.Used,
		Remaining: w.Remaining,
		BoostDay:  w.BoostDay,
		Penalized: w.Penalized,
	}, nil
}

func toState(st tier.State) domain.StateResponse {
	out := domain.StateResponse{
		UserID:         st.UserID,
		Tier:           st.Tier.String(),
		DaysActive:     st.DaysActive,
		ValidatedCount: st.ValidatedCount,
		SpamFlagCount:  st.SpamFlagCount,
		Penalty:        st.Penalty.String(),
	}
	if st.PenaltyExpiresAt != nil {
		out.PenaltyExpiresAt = st.PenaltyExpiresAt.UTC().Format(time.RFC3339)
	}
	return out
}
