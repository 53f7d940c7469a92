package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type ScansHandler struct {
	ScanService *service.ScanService
}

// HandleCreate queues a scan of one of the project's targets.
//
//	@Summary		Queue scan
//	@Tags			Scans
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Project ID"
//	@Param			request	body		scanapi.ScanRequest	true	"Scan payload"
//	@Success		201		{object}	scanapi.ScanResponse
//	@Failure		400		{object}	scanapi.APIError	"Target not in project"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404		{object}	scanapi.APIError	"Project not found"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/scans [post].
func (h *ScansHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	scan, err := h.ScanService.Create(ctx, service.ScanInput{
		ProjectID: r.PathValue("id"),
		TargetID:  req.TargetID,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toScanResponse(scan))
}

// HandleList returns the scans for a project.
//
//	@Summary		List scans
//	@Tags			Scans
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{array}		scanapi.ScanResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Project not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/scans [get].
func (h *ScansHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	scans, err := h.ScanService.List(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]scanapi.ScanResponse, 0, len(scans))
	for _, s := range scans {
		out = append(out, toScanResponse(s))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one scan.
//
//	@Summary		Get scan
//	@Tags			Scans
//	@Produce		json
//	@Param			id	path		string	true	"Scan ID"
//	@Success		200	{object}	scanapi.ScanResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/scans/{id} [get].
func (h *ScansHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	scan, err := h.ScanService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toScanResponse(scan))
}

// HandleStart transitions a queued scan to running.
//
//	@Summary		Start scan
//	@Tags			Scans
//	@Produce		json
//	@Param			id	path		string	true	"Scan ID"
//	@Success		200	{object}	scanapi.ScanResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/scans/{id}/start [post].
func (h *ScansHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.ScanService.MarkRunning)
}

// HandleFinish transitions a running scan to finished.
//
//	@Summary		Finish scan
//	@Tags			Scans
//	@Produce		json
//	@Param			id	path		string	true	"Scan ID"
//	@Success		200	{object}	scanapi.ScanResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/scans/{id}/finish [post].
func (h *ScansHandler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.ScanService.MarkFinished)
}

// HandleFail transitions a running scan to failed.
//
//	@Summary		Fail scan
//	@Tags			Scans
//	@Produce		json
//	@Param			id	path		string	true	"Scan ID"
//	@Success		200	{object}	scanapi.ScanResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/scans/{id}/fail [post].
func (h *ScansHandler) HandleFail(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.ScanService.MarkFailed)
}

// HandleDelete removes a scan record.
//
//	@Summary		Delete scan
//	@Tags			Scans
//	@Param			id	path	string	true	"Scan ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/scans/{id} [delete].
func (h *ScansHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.ScanService.Delete(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ScansHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id string) (domain.Scan, error),
) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	scan, err := fn(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toScanResponse(scan))
}
