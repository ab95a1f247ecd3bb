package handler

import (
	"net/http"

	"domain-auction/internal/models"
	"domain-auction/services/auction/helpers"
	"domain-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_account_service.go -package=handler . AccountServiceInterface

type AccountServiceInterface interface {
	Register(name, email, password string) (models.SessionUser, error)
	Login(email, password string) (models.SessionUser, error)
	Logout() bool
	CurrentUser() (models.SessionUser, bool)
	Users() []models.User
	User(userID int) (models.User, error)
	UpdateUser(userID int, patch models.UserPatch) (models.User, error)
	RemoveUser(userID int) error
	ResetPassword(userID int) (string, error)
	UserActivity(userID int) []models.ActivityLog
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterHandler handles POST /auth/register
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	session, err := h.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", "registration failed", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, session, "registration successful")
	helpers.LogSuccess("RegisterHandler", "registration successful", map[string]any{"user_id": session.ID})
}

// LoginHandler handles POST /auth/login
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	session, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", "login failed", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, session, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"user_id": session.ID})
}

// LogoutHandler handles POST /auth/logout
func (h *AccountHandler) LogoutHandler(c *gin.Context) {
	ended := h.service.Logout()
	utils.JSONResponse(c, http.StatusOK, gin.H{"loggedOut": ended}, "logout successful")
}

// SessionHandler handles GET /auth/session
func (h *AccountHandler) SessionHandler(c *gin.Context) {
	session, ok := h.service.CurrentUser()
	if !ok {
		utils.JSONResponse(c, http.StatusOK, gin.H{"authenticated": false}, "no active session")
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"authenticated": true, "user": session}, "session retrieved successfully")
}

// ListUsersHandler handles GET /users
func (h *AccountHandler) ListUsersHandler(c *gin.Context) {
	users := h.service.Users()
	utils.JSONResponse(c, http.StatusOK, users, "users retrieved successfully")
	helpers.LogSuccess("ListUsersHandler", "users retrieved successfully", map[string]any{"count": len(users)})
}

// UpdateUserHandler handles PATCH /users/:user_id
func (h *AccountHandler) UpdateUserHandler(c *gin.Context) {
	userID, ok := helpers.ParseIDParam(c, "UpdateUserHandler", "user_id")
	if !ok {
		return
	}

	var req helpers.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateUserHandler", err)
		return
	}

	user, err := h.service.UpdateUser(userID, req.ToPatch())
	if err != nil {
		helpers.RespondError(c, "UpdateUserHandler", "failed to update user", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user updated successfully")
	helpers.LogSuccess("UpdateUserHandler", "user updated successfully", map[string]any{"user_id": userID})
}

// RemoveUserHandler handles DELETE /users/:user_id
func (h *AccountHandler) RemoveUserHandler(c *gin.Context) {
	userID, ok := helpers.ParseIDParam(c, "RemoveUserHandler", "user_id")
	if !ok {
		return
	}

	if err := h.service.RemoveUser(userID); err != nil {
		helpers.RespondError(c, "RemoveUserHandler", "failed to remove user", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"id": userID}, "user removed successfully")
	helpers.LogSuccess("RemoveUserHandler", "user removed successfully", map[string]any{"user_id": userID})
}

// ResetPasswordHandler handles POST /users/:user_id/reset-password
func (h *AccountHandler) ResetPasswordHandler(c *gin.Context) {
	userID, ok := helpers.ParseIDParam(c, "ResetPasswordHandler", "user_id")
	if !ok {
		return
	}

	password, err := h.service.ResetPassword(userID)
	if err != nil {
		helpers.RespondError(c, "ResetPasswordHandler", "failed to reset password", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ResetPasswordResponse{UserID: userID, Password: password}, "password reset successfully")
	helpers.LogSuccess("ResetPasswordHandler", "password reset successfully", map[string]any{"user_id": userID})
}

// GetUserActivityHandler handles GET /users/:user_id/activity
func (h *AccountHandler) GetUserActivityHandler(c *gin.Context) {
	userID, ok := helpers.ParseIDParam(c, "GetUserActivityHandler", "user_id")
	if !ok {
		return
	}

	if _, err := h.service.User(userID); err != nil {
		helpers.RespondError(c, "GetUserActivityHandler", "error retrieving activity", err, map[string]any{"user_id": userID})
		return
	}

	logs := h.service.UserActivity(userID)
	utils.JSONResponse(c, http.StatusOK, logs, "activity retrieved successfully")
	helpers.LogSuccess("GetUserActivityHandler", "activity retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(logs),
	})
}
