package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pratik-mahalle/userboard/internal/api/dto"
	"github.com/pratik-mahalle/userboard/internal/api/middleware"
	"github.com/pratik-mahalle/userboard/internal/domain/user"
	"github.com/pratik-mahalle/userboard/internal/pkg/errors"
	"github.com/pratik-mahalle/userboard/internal/pkg/logger"
	"github.com/pratik-mahalle/userboard/internal/pkg/utils"
	"github.com/pratik-mahalle/userboard/internal/pkg/validator"
)

type UserHandler struct {
	service   user.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewUserHandler(service user.Service, log *logger.Logger, val *validator.Validator) *UserHandler {
	return &UserHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// List returns one page of the filtered, sorted user view
// @Summary List users
// @Description Search, sort and paginate the user collection
// @Tags Users
// @Produce json
// @Param search query string false "Case-insensitive name or email substring"
// @Param sort query string false "Sort key (name, email, city, zipcode)"
// @Param direction query string false "Sort direction (asc, desc)"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (5, 10 or 15; default: 5)"
// @Success 200 {object} dto.UserListResponse "Page of users"
// @Failure 400 {object} utils.ErrorResponse "Invalid query"
// @Failure 503 {object} utils.ErrorResponse "Users not loaded"
// @Router /api/v1/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	key, err := user.ParseSortKey(q.Get("sort"))
	if err != nil {
		utils.WriteError(w, errors.BadRequest(err.Error()))
		return
	}

	direction, err := user.ParseSortDirection(q.Get("direction"))
	if err != nil {
		utils.WriteError(w, errors.BadRequest(err.Error()))
		return
	}

	pageSize := utils.QueryInt(r, "page_size", user.DefaultPageSize)
	if !user.ValidPageSize(pageSize) {
		utils.WriteError(w, errors.BadRequest("page_size must be one of 5, 10, 15"))
		return
	}

	state := user.ViewState{
		SearchTerm: q.Get("search"),
		Sort:       user.SortConfig{Key: key, Direction: direction},
		Page:       utils.QueryInt(r, "page", 1),
		PageSize:   pageSize,
	}

	page, err := h.service.Query(r.Context(), state)
	if err != nil {
		utils.WriteErr(w, err, "Failed to list users")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.FromPage(page))
}

// Get returns a single user
// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserDTO "User details"
// @Failure 404 {object} utils.ErrorResponse "User not found"
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		utils.WriteErr(w, err, "Invalid user ID")
		return
	}

	u, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		utils.WriteErr(w, err, "Failed to get user")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.FromUser(*u))
}

// Create adds a user
// @Summary Add user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.UserRequest true "User details"
// @Success 201 {object} dto.UserDTO "User created"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Router /api/v1/users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	u, err := h.service.Add(r.Context(), req.ToInput())
	if err != nil {
		h.logger.WarnWithErr(err, "Failed to add user")
		utils.WriteErr(w, err, "Failed to add user")
		return
	}

	middleware.AddLogField(w, "user_id", u.ID)
	utils.WriteSuccess(w, http.StatusCreated, dto.FromUser(*u))
}

// Update replaces a user in place
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UserRequest true "User details"
// @Success 200 {object} dto.UserDTO "User updated"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 404 {object} utils.ErrorResponse "User not found"
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		utils.WriteErr(w, err, "Invalid user ID")
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	u, err := h.service.Update(r.Context(), id, req.ToInput())
	if err != nil {
		utils.WriteErr(w, err, "Failed to update user")
		return
	}

	middleware.AddLogField(w, "user_id", id)
	utils.WriteSuccess(w, http.StatusOK, dto.FromUser(*u))
}

// Delete removes a user
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.SuccessResponse "User deleted"
// @Failure 404 {object} utils.ErrorResponse "User not found"
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		utils.WriteErr(w, err, "Invalid user ID")
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		utils.WriteErr(w, err, "Failed to delete user")
		return
	}

	middleware.AddLogField(w, "user_id", id)
	utils.WriteSuccessWithMessage(w, http.StatusOK, "User deleted successfully", nil)
}

func (h *UserHandler) decode(w http.ResponseWriter, r *http.Request) (dto.UserRequest, bool) {
	var req dto.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return req, false
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return req, false
	}

	return req, true
}
