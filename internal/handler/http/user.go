package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/interntrack/interntrack-backend-go/internal/domain/attendance"
	"github.com/interntrack/interntrack-backend-go/internal/domain/user"
	"github.com/interntrack/interntrack-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Attendance(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService       user.UserService
	attendanceService attendance.AttendanceService
}

func NewUserHandler(userService user.UserService, attendanceService attendance.AttendanceService) UserHandler {
	return &userHandlerImpl{
		userService:       userService,
		attendanceService: attendanceService,
	}
}

// userAttendanceResponse is the admin view of one intern: profile, aggregate
// stats, and the most recent records.
type userAttendanceResponse struct {
	User   user.UserResponse           `json:"user"`
	Stats  attendance.UserStats        `json:"stats"`
	Recent []attendance.RecordResponse `json:"recent"`
}

// Create implements UserHandler.
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", result)
}

// Get implements UserHandler.
func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements UserHandler.
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var role *user.Role
	switch user.Role(r.URL.Query().Get("role")) {
	case user.RoleAdmin, user.RoleIntern:
		parsed := user.Role(r.URL.Query().Get("role"))
		role = &parsed
	}

	result, err := h.userService.List(r.Context(), role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements UserHandler.
func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.userService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated", result)
}

// Attendance implements UserHandler.
func (h *userHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	profile, err := h.userService.GetProfile(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.attendanceService.GetStats(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit, offset := paginationParams(r)
	recent, err := h.attendanceService.GetHistory(r.Context(), id, limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, userAttendanceResponse{
		User:   profile,
		Stats:  stats,
		Recent: recent,
	})
}

// Delete implements UserHandler.
func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted", nil)
}
