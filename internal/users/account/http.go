// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sellora/sellora/internal/platform/middleware"
	requestutil "github.com/sellora/sellora/internal/platform/request"
	"github.com/sellora/sellora/internal/platform/respond"
	"github.com/sellora/sellora/internal/platform/sec"
	"github.com/sellora/sellora/internal/platform/validate"
	"github.com/sellora/sellora/internal/users/auth"
	"github.com/sellora/sellora/pkg/pagination"
	"github.com/sellora/sellora/pkg/pointer"
)

// # Definitions & Constructors

// Handler implements profile and administrative user endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with account routes.
//
// # Endpoints
//   - GET  /me       : Current user's profile.
//   - PUT  /me       : Update current user's profile.
//   - GET  /         : Admin roster listing.
//   - POST /         : Admin account provisioning.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Self-service endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.getProfile)
		r.Put("/me", handler.updateProfile)
	})

	// Administrative endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Get("/", handler.listUsers)
		r.Post("/", handler.createUser)
		r.Get("/{id}", handler.getUser)
		r.Put("/{id}", handler.updateUser)
		r.Patch("/{id}/active", handler.setUserActive)
		r.Delete("/{id}", handler.deleteUser)
	})

	return router
}

// # Request Payloads

type updateProfileRequest struct {
	FullName *string `json:"full_name"`
}

type createUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

/*
GetProfile returns the authenticated user's own profile.

GET /api/v1/users/me

Response:
  - 200: auth.User: Private profile payload
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
UpdateProfile updates the authenticated user's own profile.

PUT /api/v1/users/me

Request:
  - Body: updateProfileRequest (FullName)

Response:
  - 200: auth.User: Updated profile
  - 400: ErrInvalidJSON: Validation failure
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	if input.FullName != nil {
		v.Required(auth.FieldFullName, *input.FullName).
			MinLen(auth.FieldFullName, *input.FullName, 2)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), userID, UpdateProfileInput{
		FullName: input.FullName,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
ListUsers returns a paginated roster of user accounts.

GET /api/v1/users?page=&limit=&search=

Response:
  - 200: []auth.User + pagination.Meta
  - 403: ErrForbidden: Admin role required
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	search := request.URL.Query().Get("search")

	users, total, err := handler.accountService.ListUsers(request.Context(), search, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GetUser returns one account for the admin roster view.

GET /api/v1/users/{id}

Response:
  - 200: auth.User
  - 404: ErrNotFound: No such account
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetUser(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
CreateUser provisions a new account with an explicit role.

POST /api/v1/users

Request:
  - Body: createUserRequest (FullName, Email, Password, Role)

Response:
  - 201: auth.User: Created account
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var input createUserRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(auth.FieldFullName, input.FullName).
		MinLen(auth.FieldFullName, input.FullName, 2).
		Required(auth.FieldEmail, input.Email).
		Email(auth.FieldEmail, input.Email).
		Required(auth.FieldPassword, input.Password).
		MinLen(auth.FieldPassword, input.Password, 8).
		Required("role", input.Role).
		OneOf("role", input.Role, string(sec.RoleAdmin), string(sec.RoleManager), string(sec.RoleStaff))

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.CreateUser(request.Context(), CreateUserInput{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
		Role:     sec.UserRole(input.Role),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
UpdateUser applies administrative changes to an account.

PUT /api/v1/users/{id}

Request:
  - Body: updateUserRequest (FullName, Role)

Response:
  - 200: auth.User: Updated account
  - 404: ErrNotFound: No such account
*/
func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	var input updateUserRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.UUID("id", id)
	if input.FullName != nil {
		v.Required(auth.FieldFullName, *input.FullName).
			MinLen(auth.FieldFullName, *input.FullName, 2)
	}
	if input.Role != nil {
		v.OneOf("role", *input.Role, string(sec.RoleAdmin), string(sec.RoleManager), string(sec.RoleStaff))
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	serviceInput := UpdateUserInput{FullName: input.FullName}
	if input.Role != nil {
		serviceInput.Role = pointer.To(sec.UserRole(*input.Role))
	}

	user, err := handler.accountService.UpdateUser(request.Context(), id, serviceInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
SetUserActive enables or disables an account.

PATCH /api/v1/users/{id}/active

Request:
  - Body: setActiveRequest (Active)

Response:
  - 204: No Content: State applied
  - 404: ErrNotFound: No such account
*/
func (handler *Handler) setUserActive(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	var input setActiveRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.SetUserActive(request.Context(), id, input.Active); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
DeleteUser soft-deletes an account.

DELETE /api/v1/users/{id}

Response:
  - 204: No Content: Account deleted
  - 404: ErrNotFound: No such account
*/
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.DeleteUser(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
