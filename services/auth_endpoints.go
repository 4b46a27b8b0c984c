package services

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dtaccel/backend/models"
)

type AuthEndpoints struct {
	authService *AuthService
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func NewAuthEndpoints(authService *AuthService) *AuthEndpoints {
	return &AuthEndpoints{
		authService: authService,
	}
}

func (e *AuthEndpoints) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	authResponse, err := e.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		slog.Error("Login failed", "error", err, "email", req.Email)
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	e.authService.SetAuthCookies(w, authResponse.AccessToken, authResponse.RefreshToken, authResponse.PermanentToken)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]interface{}{
			"id":        authResponse.User.ID,
			"email":     authResponse.User.Email,
			"full_name": authResponse.User.FullName,
			"role":      authResponse.User.Role,
		},
		"message": "Login successful",
	})

	slog.Info("User logged in", "user_id", authResponse.User.ID, "email", authResponse.User.Email)
}

func (e *AuthEndpoints) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	authResponse, err := e.authService.Signup(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		slog.Error("Signup failed", "error", err, "email", req.Email)
		http.Error(w, "Failed to create account", http.StatusBadRequest)
		return
	}

	e.authService.SetAuthCookies(w, authResponse.AccessToken, authResponse.RefreshToken, authResponse.PermanentToken)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"user": map[string]interface{}{
			"id":        authResponse.User.ID,
			"email":     authResponse.User.Email,
			"full_name": authResponse.User.FullName,
			"role":      authResponse.User.Role,
		},
		"message": "Account created successfully",
	})

	slog.Info("User signed up", "user_id", authResponse.User.ID, "email", authResponse.User.Email)
}

func (e *AuthEndpoints) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	refreshToken := e.authService.GetTokenFromCookie(r, "refresh_token")
	if refreshToken == "" {
		http.Error(w, "Refresh token required", http.StatusUnauthorized)
		return
	}

	authResponse, err := e.authService.RefreshToken(r.Context(), refreshToken)
	if err != nil {
		slog.Error("Token refresh failed", "error", err)
		http.Error(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	e.authService.SetAuthCookies(w, authResponse.AccessToken, "", "")

	writeJSON(w, http.StatusOK, map[string]string{"message": "Token refreshed"})
}

func (e *AuthEndpoints) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	accessToken := e.authService.GetTokenFromCookie(r, "access_token")
	if accessToken != "" {
		if user, err := e.authService.VerifyAccessToken(r.Context(), accessToken); err == nil {
			if err := e.authService.Logout(r.Context(), user.ID); err != nil {
				slog.Error("Logout failed", "error", err, "user_id", user.ID)
			}
		}
	}

	e.authService.ClearAuthCookies(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (e *AuthEndpoints) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value("user").(*models.User)
	if !ok {
		http.Error(w, "User not found in context", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
