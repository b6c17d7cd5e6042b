package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/userhub/userhub/internal/handler/dto"
	"github.com/userhub/userhub/internal/service"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/user.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.logger.Info("creating user", "email", req.Email)

	user, err := h.svc.CreateUser(r.Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// List handles GET /api/user.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("getting all users")

	query := r.URL.Query()

	input := service.ListUsersInput{}
	if p := query.Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			input.Page = parsed
		}
	}
	if s := query.Get("size"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			input.Size = parsed
		}
	}

	// sort=column or sort=column,desc
	if sort := query.Get("sort"); sort != "" {
		parts := strings.SplitN(sort, ",", 2)
		input.Sort = parts[0]
		input.Desc = len(parts) == 2 && strings.EqualFold(parts[1], "desc")
	}

	out, err := h.svc.GetUsers(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(out))
}

// Get handles GET /api/user/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	h.logger.Info("getting user", "user_id", id)

	user, err := h.svc.GetUserByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// Update handles PUT /api/user/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.logger.Info("updating user", "user_id", id)

	user, err := h.svc.UpdateUser(r.Context(), id, service.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// ChangePassword handles PATCH /api/user/{id}.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.logger.Info("changing password for user", "user_id", id)

	msg, err := h.svc.ChangePassword(r.Context(), id, service.ChangePasswordInput{
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeText(w, http.StatusOK, msg)
}

// Delete handles DELETE /api/user/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	h.logger.Info("deleting user", "user_id", id)

	msg, err := h.svc.DeleteUser(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeText(w, http.StatusOK, msg)
}

// userID parses the {id} path parameter. On failure it writes a 400 and
// returns ok=false.
func (h *UserHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeText(w, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors to HTTP responses.
// Every domain failure collapses to a 400 with the error message as a
// plain-text body; only unexpected store/infra failures become a 500.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrSamePassword):
		writeText(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		writeText(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
