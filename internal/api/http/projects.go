package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type ProjectsHandler struct {
	TenantService  *service.TenantService
	ProjectService *service.ProjectService
}

func (h *ProjectsHandler) tenantID(r *http.Request) (string, error) {
	tenant, err := h.TenantService.GetTenantForUser(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		return "", err
	}
	return tenant.ID, nil
}

// HandleCreate stores a project under the caller's tenant.
//
//	@Summary		Create project
//	@Description	Creates a project with at least one existing target. A single unknown target ID fails the whole request.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scanapi.ProjectRequest	true	"Project payload"
//	@Success		201		{object}	scanapi.ProjectResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tenantID, err := h.tenantID(r)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	var req scanapi.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	project, err := h.ProjectService.Create(ctx, tenantID, service.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
		TargetIDs:   req.Targets,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProjectResponse(project))
}

// HandleList returns the caller's projects with targets expanded.
//
//	@Summary		List projects
//	@Tags			Projects
//	@Produce		json
//	@Success		200	{array}		scanapi.ProjectResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tenantID, err := h.tenantID(r)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	projects, err := h.ProjectService.List(ctx, tenantID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]scanapi.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one project with targets expanded.
//
//	@Summary		Get project
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{object}	scanapi.ProjectResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	project, err := h.ProjectService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProjectResponse(project))
}

// HandleUpdate rewrites a project and replaces its target set.
//
//	@Summary		Update project
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Project ID"
//	@Param			request	body		scanapi.ProjectRequest	true	"Project payload"
//	@Success		200		{object}	scanapi.ProjectResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404		{object}	scanapi.APIError	"Not found"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id} [put].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	project, err := h.ProjectService.Update(ctx, r.PathValue("id"), service.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
		TargetIDs:   req.Targets,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProjectResponse(project))
}

// HandleDelete removes a project.
//
//	@Summary		Delete project
//	@Tags			Projects
//	@Param			id	path	string	true	"Project ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id} [delete].
func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.ProjectService.Delete(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
