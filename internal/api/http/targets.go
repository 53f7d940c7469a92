package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type TargetsHandler struct {
	TargetService *service.TargetService
}

// HandleCreate stores a scan target.
//
//	@Summary		Create target
//	@Tags			Targets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scanapi.TargetRequest	true	"Target payload"
//	@Success		201		{object}	scanapi.TargetResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/targets [post].
func (h *TargetsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.TargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	target, err := h.TargetService.Create(ctx, service.TargetInput{
		Name: req.Name,
		Host: req.Host,
		Kind: req.Kind,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTargetResponse(target))
}

// HandleList returns all targets.
//
//	@Summary		List targets
//	@Tags			Targets
//	@Produce		json
//	@Success		200	{array}		scanapi.TargetResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/targets [get].
func (h *TargetsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	targets, err := h.TargetService.List(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]scanapi.TargetResponse, 0, len(targets))
	for _, t := range targets {
		out = append(out, toTargetResponse(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one target.
//
//	@Summary		Get target
//	@Tags			Targets
//	@Produce		json
//	@Param			id	path		string	true	"Target ID"
//	@Success		200	{object}	scanapi.TargetResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/targets/{id} [get].
func (h *TargetsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	target, err := h.TargetService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTargetResponse(target))
}

// HandleUpdate rewrites a target.
//
//	@Summary		Update target
//	@Tags			Targets
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Target ID"
//	@Param			request	body		scanapi.TargetRequest	true	"Target payload"
//	@Success		200		{object}	scanapi.TargetResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404		{object}	scanapi.APIError	"Not found"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/targets/{id} [put].
func (h *TargetsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.TargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	target, err := h.TargetService.Update(ctx, r.PathValue("id"), service.TargetInput{
		Name: req.Name,
		Host: req.Host,
		Kind: req.Kind,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTargetResponse(target))
}

// HandleDelete removes a target.
//
//	@Summary		Delete target
//	@Tags			Targets
//	@Param			id	path	string	true	"Target ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/targets/{id} [delete].
func (h *TargetsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.TargetService.Delete(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
