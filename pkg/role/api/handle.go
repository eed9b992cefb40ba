package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	errs "github.com/tendant/simple-facts/pkg/errors"
	rolepkg "github.com/tendant/simple-facts/pkg/role"
)

// Handle handles HTTP requests for role management
type Handle struct {
	roleService *rolepkg.RoleService
}

// NewHandle creates a new role handler
func NewHandle(roleService *rolepkg.RoleService) *Handle {
	return &Handle{
		roleService: roleService,
	}
}

// RegisterRoutes registers the role routes
func (h *Handle) RegisterRoutes(r chi.Router) {
	r.Route("/roles", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)
		r.Get("/search", h.Search)
		r.Get("/count", h.Count)
		r.Get("/trash", h.ListTrash)
		r.Get("/name/{name}", h.GetByName)
		r.Get("/name/{name}/exists", h.ExistsByName)
		r.Post("/bulk/delete", h.BulkDelete)
		r.Post("/bulk/restore", h.BulkRestore)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.SoftDelete)
		r.Patch("/{id}/name", h.Rename)
		r.Patch("/{id}/description", h.UpdateDescription)
		r.Get("/{id}/users", h.ListRoleUsers)
		r.Post("/{id}/restore", h.Restore)
		r.Delete("/{id}/permanent", h.HardDelete)
	})
}

// CreateRoleRequest is the request body for creating or updating a role
type CreateRoleRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// RenameRoleRequest is the request body for renaming a role
type RenameRoleRequest struct {
	Name string `json:"name"`
}

// UpdateDescriptionRequest is the request body for changing a role description
type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

// BulkRoleIdsRequest is the request body for bulk delete/restore
type BulkRoleIdsRequest struct {
	Ids []uuid.UUID `json:"ids"`
}

// RoleResponse is the API representation of a role
type RoleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Deleted     bool    `json:"deleted"`
}

// ErrorResponse is the structured error body returned for failed requests
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toRoleResponse(role rolepkg.Role) RoleResponse {
	resp := RoleResponse{
		ID:      role.ID.String(),
		Name:    role.Name,
		Deleted: role.Deleted,
	}
	if role.DescriptionValid {
		description := role.Description
		resp.Description = &description
	}
	return resp
}

func toRoleResponses(roles []rolepkg.Role) []RoleResponse {
	responses := make([]RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = toRoleResponse(role)
	}
	return responses
}

// respondError translates service errors into a status code and error body
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalidName   rolepkg.ErrInvalidRoleName
		duplicateName rolepkg.ErrDuplicateRoleName
	)

	code := errs.ErrCodeInternal
	switch {
	case errors.Is(err, rolepkg.ErrRoleNotFound):
		code = errs.ErrCodeRoleNotFound
	case errors.Is(err, rolepkg.ErrRoleInUse):
		code = errs.ErrCodeRoleInUse
	case errors.Is(err, rolepkg.ErrRoleNotDeleted):
		code = errs.ErrCodeRoleNotDeleted
	case errors.Is(err, rolepkg.ErrDescriptionTooLong):
		code = errs.ErrCodeValueTooLong
	case errors.As(err, &invalidName):
		code = errs.ErrCodeInvalidFormat
	case errors.As(err, &duplicateName):
		code = errs.ErrCodeAlreadyExists
	}

	render.Status(r, errs.MapErrorCodeToHTTPStatus(code))
	render.JSON(w, r, ErrorResponse{
		Code:    string(code),
		Message: err.Error(),
	})
}

func respondBadRequest(w http.ResponseWriter, r *http.Request, code errs.ErrorCode, message string) {
	render.Status(r, errs.MapErrorCodeToHTTPStatus(code))
	render.JSON(w, r, ErrorResponse{
		Code:    string(code),
		Message: message,
	})
}

func parseRoleID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func parsePage(r *http.Request) (limit, offset int32) {
	limit = 20
	offset = 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limitInt, err := strconv.Atoi(limitStr); err == nil && limitInt > 0 {
			limit = int32(limitInt)
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if offsetInt, err := strconv.Atoi(offsetStr); err == nil && offsetInt >= 0 {
			offset = int32(offsetInt)
		}
	}
	return limit, offset
}

// FindAll handles listing all roles
func (h *Handle) FindAll(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.FindRoles(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, toRoleResponses(roles))
}

// GetByID handles retrieving a role by ID
func (h *Handle) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseRoleID(r)
	if err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "invalid role id")
		return
	}

	role, err := h.roleService.GetRole(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, toRoleResponse(role))
}

// GetByName handles retrieving a role by name
func (h *Handle) GetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	role, err := h.roleService.GetRoleByName(r.Context(), name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, toRoleResponse(role))
}

// ExistsByName reports whether a role with the given name exists
func (h *Handle) ExistsByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	exists, err := h.roleService.ExistsByName(r.Context(), name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, struct {
		Exists bool `json:"exists"`
	}{Exists: exists})
}

// Count returns the total number of roles
func (h *Handle) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.roleService.CountRoles(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, struct {
		Count int64 `json:"count"`
	}{Count: count})
}

// Search returns a page of roles matching the q parameter.
// An empty q lists all roles.
func (h *Handle) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, offset := parsePage(r)

	list, err := h.roleService.SearchRoles(r.Context(), query, limit, offset)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, struct {
		Roles []RoleResponse `json:"roles"`
		Total int64          `json:"total"`
	}{
		Roles: toRoleResponses(list.Roles),
		Total: list.Total,
	})
}

// ListRoleUsers returns a page of users assigned to a role
func (h *Handle) ListRoleUsers(w http.ResponseWriter, r *http.Request) {
	id, err := parseRoleID(r)
	if err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "invalid role id")
		return
	}
	limit, offset := parsePage(r)

	list, err := h.roleService.GetRoleUsers(r.Context(), id, limit, offset)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, list)
}

// Create handles creating a new role
func (h *Handle) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "failed to decode request body")
		return
	}
	if req.Name == "" {
		respondBadRequest(w, r, errs.ErrCodeMissingRequired, "name is required")
		return
	}

	description, descriptionValid := "", false
	if req.Description != nil {
		description, descriptionValid = *req.Description, true
	}

	role, err := h.roleService.CreateRole(r.Context(), req.Name, description, descriptionValid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toRoleResponse(role))
}

// Update handles overwriting a role's name and description
func (h *Handle) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseRoleID(r)
	if err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "invalid role id")
		return
	}

	var req CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "failed to decode request body")
		return
	}
	if req.Name == "" {
		respondBadRequest(w, r, errs.ErrCodeMissingRequired, "name is required")
		return
	}

	description, descriptionValid := "", false
	if req.Description != nil {
		description, descriptionValid = *req.Description, true
	}

	role, err := h.roleService.UpdateRole(r.Context(), id, req.Name, description, descriptionValid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, toRoleResponse(role))
}

// Rename handles changing a role's name
func (h *Handle) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := parseRoleID(r)
	if err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "invalid role id")
		return
	}

	var req RenameRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "failed to decode request body")
		return
	}
	if req.Name == "" {
		respondBadRequest(w, r, errs.ErrCodeMissingRequired, "name is required")
		return
	}

	role, err := h.roleService.RenameRole(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, toRoleResponse(role))
}

// UpdateDescription handles changing a role's description
func (h *Handle) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	id, err := parseRoleID(r)
	if err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "invalid role id")
		return
	}

	var req UpdateDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "failed to decode request body")
		return
	}

	role, err := h.roleService.UpdateRoleDescription(r.Context(), id, req.Description)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, toRoleResponse(role))
}

// SoftDelete handles marking a role deleted
func (h *Handle) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseRoleID(r)
	if err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "invalid role id")
		return
	}

	if _, err := h.roleService.SoftDeleteRole(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

// ListTrash handles listing soft-deleted roles
func (h *Handle) ListTrash(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.ListTrash(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, toRoleResponses(roles))
}

// Restore handles clearing a role's deleted flag
func (h *Handle) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := parseRoleID(r)
	if err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "invalid role id")
		return
	}

	role, err := h.roleService.RestoreRole(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, toRoleResponse(role))
}

// BulkDelete handles soft-deleting a set of roles
func (h *Handle) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req BulkRoleIdsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "failed to decode request body")
		return
	}

	result, err := h.roleService.BulkDeleteRoles(r.Context(), req.Ids)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, result)
}

// BulkRestore handles restoring a set of soft-deleted roles
func (h *Handle) BulkRestore(w http.ResponseWriter, r *http.Request) {
	var req BulkRoleIdsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "failed to decode request body")
		return
	}

	result, err := h.roleService.BulkRestoreRoles(r.Context(), req.Ids)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, result)
}

// HardDelete handles permanently removing a soft-deleted role
func (h *Handle) HardDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseRoleID(r)
	if err != nil {
		respondBadRequest(w, r, errs.ErrCodeInvalidInput, "invalid role id")
		return
	}

	if err := h.roleService.HardDeleteRole(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	render.NoContent(w, r)
}
