package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	errs "github.com/tendant/simple-facts/pkg/errors"
	"github.com/tendant/simple-facts/pkg/iam"
)

// Handle handles HTTP requests for user management
type Handle struct {
	iamService *iam.IamService
}

// NewHandle creates a new user handler
func NewHandle(iamService *iam.IamService) *Handle {
	return &Handle{
		iamService: iamService,
	}
}

// RegisterRoutes registers the user routes
func (h *Handle) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/roles/{roleId}", h.AddRole)
		r.Delete("/{id}/roles/{roleId}", h.RemoveRole)
	})
}

// UserRequest is the request body for creating or updating a user
type UserRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Enabled       bool   `json:"enabled"`
	EmailVerified bool   `json:"email_verified"`
}

// ErrorResponse is the structured error body returned for failed requests
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalidUser   iam.ErrInvalidUser
		usernameTaken iam.ErrUsernameAlreadyExists
		emailTaken    iam.ErrEmailAlreadyExists
	)

	code := errs.ErrCodeInternal
	switch {
	case errors.Is(err, iam.ErrUserNotFound):
		code = errs.ErrCodeUserNotFound
	case errors.As(err, &invalidUser):
		code = errs.ErrCodeValidationFailed
	case errors.As(err, &usernameTaken), errors.As(err, &emailTaken):
		code = errs.ErrCodeUserAlreadyExists
	}

	render.Status(r, errs.MapErrorCodeToHTTPStatus(code))
	render.JSON(w, r, ErrorResponse{
		Code:    string(code),
		Message: err.Error(),
	})
}

func respondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{
		Code:    string(errs.ErrCodeInvalidInput),
		Message: message,
	})
}

func parseUserID(r *http.Request, param string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, param))
}

// FindAll handles listing all users
func (h *Handle) FindAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.iamService.FindUsers(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, users)
}

// GetByID handles retrieving a user with their roles
func (h *Handle) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r, "id")
	if err != nil {
		respondBadRequest(w, r, "invalid user id")
		return
	}

	user, err := h.iamService.GetUserWithRoles(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, user)
}

// Create handles creating a new user
func (h *Handle) Create(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, "failed to decode request body")
		return
	}

	var params iam.CreateUserParams
	copier.Copy(&params, &req)

	user, err := h.iamService.CreateUser(r.Context(), params)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, user)
}

// Update handles updating a user's profile fields
func (h *Handle) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r, "id")
	if err != nil {
		respondBadRequest(w, r, "invalid user id")
		return
	}

	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, "failed to decode request body")
		return
	}

	var params iam.UpdateUserParams
	copier.Copy(&params, &req)
	params.ID = id

	user, err := h.iamService.UpdateUser(r.Context(), params)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, user)
}

// Delete handles removing a user
func (h *Handle) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r, "id")
	if err != nil {
		respondBadRequest(w, r, "invalid user id")
		return
	}

	if err := h.iamService.DeleteUser(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

// AddRole handles assigning a role to a user
func (h *Handle) AddRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r, "id")
	if err != nil {
		respondBadRequest(w, r, "invalid user id")
		return
	}
	roleID, err := parseUserID(r, "roleId")
	if err != nil {
		respondBadRequest(w, r, "invalid role id")
		return
	}

	if err := h.iamService.AddUserToRole(r.Context(), id, roleID); err != nil {
		respondError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

// RemoveRole handles removing a role assignment from a user
func (h *Handle) RemoveRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r, "id")
	if err != nil {
		respondBadRequest(w, r, "invalid user id")
		return
	}
	roleID, err := parseUserID(r, "roleId")
	if err != nil {
		respondBadRequest(w, r, "invalid role id")
		return
	}

	if err := h.iamService.RemoveUserFromRole(r.Context(), id, roleID); err != nil {
		respondError(w, r, err)
		return
	}
	render.NoContent(w, r)
}
