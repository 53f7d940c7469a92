package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type RiskSummariesHandler struct {
	TenantService      *service.TenantService
	RiskSummaryService *service.RiskSummaryService
}

func (h *RiskSummariesHandler) tenantID(r *http.Request) (string, error) {
	tenant, err := h.TenantService.GetTenantForUser(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		return "", err
	}
	return tenant.ID, nil
}

// HandleCreate stores a tenant-level risk rollup.
//
//	@Summary		Create risk summary
//	@Tags			RiskSummaries
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scanapi.RiskSummaryRequest	true	"Risk summary payload"
//	@Success		201		{object}	scanapi.RiskSummaryResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/risk-summaries [post].
func (h *RiskSummariesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tenantID, err := h.tenantID(r)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	var req scanapi.RiskSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	rs, err := h.RiskSummaryService.Create(ctx, tenantID, service.RiskSummaryInput{
		Title:    req.Title,
		Severity: req.Severity,
		Score:    req.Score,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRiskSummaryResponse(rs))
}

// HandleList returns the tenant's risk rollups.
//
//	@Summary		List risk summaries
//	@Tags			RiskSummaries
//	@Produce		json
//	@Success		200	{array}		scanapi.RiskSummaryResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/risk-summaries [get].
func (h *RiskSummariesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tenantID, err := h.tenantID(r)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	summaries, err := h.RiskSummaryService.List(ctx, tenantID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]scanapi.RiskSummaryResponse, 0, len(summaries))
	for _, rs := range summaries {
		out = append(out, toRiskSummaryResponse(rs))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one risk rollup.
//
//	@Summary		Get risk summary
//	@Tags			RiskSummaries
//	@Produce		json
//	@Param			id	path		string	true	"Risk summary ID"
//	@Success		200	{object}	scanapi.RiskSummaryResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/risk-summaries/{id} [get].
func (h *RiskSummariesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	rs, err := h.RiskSummaryService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRiskSummaryResponse(rs))
}

// HandleDelete removes a risk rollup.
//
//	@Summary		Delete risk summary
//	@Tags			RiskSummaries
//	@Param			id	path	string	true	"Risk summary ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/risk-summaries/{id} [delete].
func (h *RiskSummariesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.RiskSummaryService.Delete(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
