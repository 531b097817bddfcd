// Package http provides http transport for recs
package http

import (
	stdhttp "net/http"

	"bitebank/internal/modkit/httpkit"
	"bitebank/internal/services/api/recs/domain"
	svc "bitebank/internal/services/api/recs/service"
)

// Register mounts recs endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PostJSON[domain.EngageInput](r, "/engage", h.engage)
	httpkit.PostJSON[domain.ContextInput](r, "/context", h.context)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /recs Recs recsCreate
// @Summary Post a recommendation
// @Tags Recs
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Recommendation"
// @Success 200 {object} domain.CreateResponse "ok"
// @Failure 429 {object} httpkit.Envelope "rate limited"
// @Router /recs [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /recs/engage Recs recsEngage
// @Summary Record an engagement on a recommendation
// @Tags Recs
// @Accept json
// @Produce json
// @Param payload body domain.EngageInput true "Engagement"
// @Success 200 {object} domain.EngageResponse "ok"
// @Failure 409 {object} httpkit.Envelope "duplicate event"
// @Router /recs/engage [post]
func (h *handlers) engage(r *stdhttp.Request, in domain.EngageInput) (any, error) {
	return h.svc.Engage(r.Context(), in)
}

// swagger:route POST /recs/context Recs recsContext
// @Summary Fetch a recommendation with its endorsements
// @Tags Recs
// @Accept json
// @Produce json
// @Param payload body domain.ContextInput true "Query"
// @Success 200 {object} domain.ContextResponse "ok"
// @Router /recs/context [post]
func (h *handlers) context(r *stdhttp.Request, in domain.ContextInput) (any, error) {
	return h.svc.Context(r.Context(), in)
}
