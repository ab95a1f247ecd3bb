package handler

import (
	"net/http"
	"testing"

	"domain-auction/internal/auctionerrors"
	"domain-auction/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newAccountRouter(t *testing.T) (*gin.Engine, *MockAccountServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockAccountServiceInterface(ctrl)
	handler := NewAccountHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", handler.RegisterHandler)
	router.POST("/auth/login", handler.LoginHandler)
	router.POST("/auth/logout", handler.LogoutHandler)
	router.GET("/auth/session", handler.SessionHandler)
	router.GET("/users", handler.ListUsersHandler)
	router.PATCH("/users/:user_id", handler.UpdateUserHandler)
	router.DELETE("/users/:user_id", handler.RemoveUserHandler)
	router.POST("/users/:user_id/reset-password", handler.ResetPasswordHandler)
	router.GET("/users/:user_id/activity", handler.GetUserActivityHandler)
	return router, mockService
}

// Test RegisterHandler and LoginHandler
func TestAuthHandlers(t *testing.T) {
	t.Parallel()

	alice := models.SessionUser{User: models.User{ID: 3, Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$secret", Role: models.RoleUser}, Bids: []models.Bid{}}

	tests := []struct {
		name           string
		url            string
		body           string
		mockSetup      func(m *MockAccountServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "register_success",
			url:  "/auth/register",
			body: `{"name":"Alice","email":"alice@example.com","password":"s3cret"}`,
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().Register("Alice", "alice@example.com", "s3cret").Return(alice, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "registration successful",
		},
		{
			name: "register_email_taken",
			url:  "/auth/register",
			body: `{"name":"John","email":"john@example.com","password":"x"}`,
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().Register("John", "john@example.com", "x").Return(models.SessionUser{}, auctionerrors.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "email already in use",
		},
		{
			name:           "register_bad_email",
			url:            "/auth/register",
			body:           `{"name":"Alice","email":"not-an-email","password":"x"}`,
			mockSetup:      func(m *MockAccountServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "login_success",
			url:  "/auth/login",
			body: `{"email":"alice@example.com","password":"s3cret"}`,
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().Login("alice@example.com", "s3cret").Return(alice, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "login successful",
		},
		{
			name: "login_wrong_password",
			url:  "/auth/login",
			body: `{"email":"alice@example.com","password":"nope"}`,
			mockSetup: func(m *MockAccountServiceInterface) {
				m.EXPECT().Login("alice@example.com", "nope").Return(models.SessionUser{}, auctionerrors.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "invalid email or password",
		},
		{
			name:           "login_missing_password",
			url:            "/auth/login",
			body:           `{"email":"alice@example.com"}`,
			mockSetup:      func(m *MockAccountServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService := newAccountRouter(t)
			tc.mockSetup(mockService)

			w, resp := serveJSON(router, http.MethodPost, tc.url, tc.body)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			require.NotContains(t, w.Body.String(), "$2a$secret", "password hashes never leave the service")
		})
	}
}

// Test session and logout
func TestSessionHandlers(t *testing.T) {
	t.Parallel()

	router, mockService := newAccountRouter(t)

	mockService.EXPECT().CurrentUser().Return(models.SessionUser{}, false)
	w, resp := serveJSON(router, http.MethodGet, "/auth/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, resp["data"].(map[string]any)["authenticated"])

	mockService.EXPECT().CurrentUser().Return(models.SessionUser{User: models.User{ID: 2, Name: "Jane Smith"}}, true)
	w, resp = serveJSON(router, http.MethodGet, "/auth/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, true, data["authenticated"])
	require.Equal(t, "Jane Smith", data["user"].(map[string]any)["name"])

	mockService.EXPECT().Logout().Return(true)
	w, resp = serveJSON(router, http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, resp["data"].(map[string]any)["loggedOut"])
}

// Test user administration handlers
func TestUserAdminHandlers(t *testing.T) {
	t.Parallel()

	t.Run("update_role", func(t *testing.T) {
		t.Parallel()

		router, mockService := newAccountRouter(t)
		mockService.EXPECT().
			UpdateUser(2, gomock.Any()).
			DoAndReturn(func(id int, patch models.UserPatch) (models.User, error) {
				require.NotNil(t, patch.Role)
				require.Equal(t, models.RoleModerator, *patch.Role)
				return models.User{ID: 2, Role: models.RoleModerator}, nil
			})

		w, _ := serveJSON(router, http.MethodPatch, "/users/2", `{"role":"moderator"}`)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update_unknown_role", func(t *testing.T) {
		t.Parallel()

		router, _ := newAccountRouter(t)
		w, _ := serveJSON(router, http.MethodPatch, "/users/2", `{"role":"owner"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("remove_missing", func(t *testing.T) {
		t.Parallel()

		router, mockService := newAccountRouter(t)
		mockService.EXPECT().RemoveUser(9).Return(auctionerrors.ErrUserNotFound)

		w, resp := serveJSON(router, http.MethodDelete, "/users/9", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "user not found", resp["message"])
	})

	t.Run("reset_password", func(t *testing.T) {
		t.Parallel()

		router, mockService := newAccountRouter(t)
		mockService.EXPECT().ResetPassword(2).Return("Ab3dE6gH", nil)

		w, resp := serveJSON(router, http.MethodPost, "/users/2/reset-password", "")
		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, 2.0, data["userId"])
		require.Equal(t, "Ab3dE6gH", data["password"])
	})

	t.Run("activity", func(t *testing.T) {
		t.Parallel()

		router, mockService := newAccountRouter(t)
		mockService.EXPECT().User(2).Return(models.User{ID: 2}, nil)
		mockService.EXPECT().UserActivity(2).Return([]models.ActivityLog{{ID: 1, UserID: 2, Action: "User logged in"}})

		w, resp := serveJSON(router, http.MethodGet, "/users/2/activity", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"], 1)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		router, mockService := newAccountRouter(t)
		mockService.EXPECT().Users().Return([]models.User{{ID: 1, PasswordHash: "$2a$hidden"}})

		w, _ := serveJSON(router, http.MethodGet, "/users", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NotContains(t, w.Body.String(), "$2a$hidden")
	})
}
