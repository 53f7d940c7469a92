package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

// FindingsHandler serves risks and vulnerabilities. Both share the same
// payload shape and rules.
type FindingsHandler struct {
	RiskService *service.RiskService
}

// HandleCreateRisk records a risk against a project.
//
//	@Summary		Create risk
//	@Tags			Findings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Project ID"
//	@Param			request	body		scanapi.FindingRequest	true	"Finding payload"
//	@Success		201		{object}	scanapi.FindingResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404		{object}	scanapi.APIError	"Project not found"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/risks [post].
func (h *FindingsHandler) HandleCreateRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.FindingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	risk, err := h.RiskService.CreateRisk(ctx, service.FindingInput{
		ProjectID:   r.PathValue("id"),
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRiskResponse(risk))
}

// HandleListRisks returns the risks recorded against a project.
//
//	@Summary		List risks
//	@Tags			Findings
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{array}		scanapi.FindingResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Project not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/risks [get].
func (h *FindingsHandler) HandleListRisks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	risks, err := h.RiskService.ListRisks(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]scanapi.FindingResponse, 0, len(risks))
	for _, risk := range risks {
		out = append(out, toRiskResponse(risk))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDeleteRisk removes a risk.
//
//	@Summary		Delete risk
//	@Tags			Findings
//	@Param			id	path	string	true	"Risk ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/risks/{id} [delete].
func (h *FindingsHandler) HandleDeleteRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.RiskService.DeleteRisk(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleCreateVulnerability records a vulnerability against a project.
//
//	@Summary		Create vulnerability
//	@Tags			Findings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Project ID"
//	@Param			request	body		scanapi.FindingRequest	true	"Finding payload"
//	@Success		201		{object}	scanapi.FindingResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404		{object}	scanapi.APIError	"Project not found"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/vulnerabilities [post].
func (h *FindingsHandler) HandleCreateVulnerability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.FindingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	vuln, err := h.RiskService.CreateVulnerability(ctx, service.FindingInput{
		ProjectID:   r.PathValue("id"),
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toVulnerabilityResponse(vuln))
}

// HandleListVulnerabilities returns the vulnerabilities recorded against a
// project.
//
//	@Summary		List vulnerabilities
//	@Tags			Findings
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{array}		scanapi.FindingResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Project not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/vulnerabilities [get].
func (h *FindingsHandler) HandleListVulnerabilities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	vulns, err := h.RiskService.ListVulnerabilities(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]scanapi.FindingResponse, 0, len(vulns))
	for _, v := range vulns {
		out = append(out, toVulnerabilityResponse(v))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDeleteVulnerability removes a vulnerability.
//
//	@Summary		Delete vulnerability
//	@Tags			Findings
//	@Param			id	path	string	true	"Vulnerability ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/vulnerabilities/{id} [delete].
func (h *FindingsHandler) HandleDeleteVulnerability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.RiskService.DeleteVulnerability(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
