// Package http provides http transport for sizing
package http

import (
	stdhttp "net/http"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/modkit/httpkit"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/sizing/domain"
)

// Register mounts sizing endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// flow -> beta, d
	httpkit.PostJSON[domain.SizeInput](r, "/beta", h.size)

	// beta or d -> flow
	httpkit.PostJSON[domain.FlowInput](r, "/flow", h.flow)

	// flow, d -> differential pressure
	httpkit.PostJSON[domain.DeltaPInput](r, "/dp", h.deltaP)

	// correction factors only
	httpkit.PostJSON[domain.CorrectionsInput](r, "/corrections", h.corrections)

	httpkit.Get(r, "/tables", h.tables)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /sizing/beta Sizing sizingBeta
// @Summary Size an orifice for a desired flow
// @Tags Sizing
// @Accept json
// @Produce json
// @Param payload body domain.SizeInput true "Sizing request"
// @Success 200 {object} domain.SizeOutput "ok"
// @Failure 422 {object} httpkit.Envelope "flow outside the beta envelope or non-physical input"
// @Router /sizing/beta [post]
func (h *handlers) size(r *stdhttp.Request, in domain.SizeInput) (any, error) {
	return h.svc.Size(r.Context(), in)
}

// swagger:route POST /sizing/flow Sizing sizingFlow
// @Summary Flow through a known plate
// @Tags Sizing
// @Accept json
// @Produce json
// @Param payload body domain.FlowInput true "Flow request"
// @Success 200 {object} domain.FlowOutput "ok"
// @Failure 422 {object} httpkit.Envelope "non-physical input"
// @Router /sizing/flow [post]
func (h *handlers) flow(r *stdhttp.Request, in domain.FlowInput) (any, error) {
	return h.svc.Flow(r.Context(), in)
}

// swagger:route POST /sizing/dp Sizing sizingDeltaP
// @Summary Differential pressure for a flow and orifice
// @Tags Sizing
// @Accept json
// @Produce json
// @Param payload body domain.DeltaPInput true "Differential pressure request"
// @Success 200 {object} domain.DeltaPOutput "ok"
// @Failure 422 {object} httpkit.Envelope "non-physical input"
// @Router /sizing/dp [post]
func (h *handlers) deltaP(r *stdhttp.Request, in domain.DeltaPInput) (any, error) {
	return h.svc.DeltaP(r.Context(), in)
}

// swagger:route POST /sizing/corrections Sizing sizingCorrections
// @Summary Correction factors and effective discharge coefficient
// @Tags Sizing
// @Accept json
// @Produce json
// @Param payload body domain.CorrectionsInput true "Installation"
// @Success 200 {object} domain.CorrectionReport "ok"
// @Router /sizing/corrections [post]
func (h *handlers) corrections(r *stdhttp.Request, in domain.CorrectionsInput) (any, error) {
	return h.svc.Corrections(r.Context(), in)
}

// swagger:route GET /sizing/tables Sizing sizingTables
// @Summary Active correction tables
// @Tags Sizing
// @Produce json
// @Success 200 {object} domain.TablesOutput "ok"
// @Router /sizing/tables [get]
func (h *handlers) tables(r *stdhttp.Request) (any, error) {
	return h.svc.Tables(r.Context())
}
