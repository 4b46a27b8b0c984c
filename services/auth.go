package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo            *repository.GORMRepository
	jwtSecret       []byte
	accessExpiry    time.Duration
	refreshExpiry   time.Duration
	permanentExpiry time.Duration
}

type CookieClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthResponse struct {
	User           *models.User `json:"user"`
	AccessToken    string       `json:"access_token,omitempty"`
	RefreshToken   string       `json:"refresh_token,omitempty"`
	PermanentToken string       `json:"permanent_token,omitempty"`
}

func NewAuthService(repo *repository.GORMRepository, jwtSecret string) *AuthService {
	return &AuthService{
		repo:            repo,
		jwtSecret:       []byte(jwtSecret),
		accessExpiry:    5 * time.Minute,     // 5 minutes
		refreshExpiry:   7 * 24 * time.Hour,  // 7 days
		permanentExpiry: 30 * 24 * time.Hour, // 30 days
	}
}

// generateSecureToken generates a cryptographically secure random token
func (s *AuthService) generateSecureToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// hashToken creates a SHA256 hash of the token for secure storage
func (s *AuthService) hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// Login authenticates a staff account and creates tokens
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateSecureToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	permanentToken, err := s.generateSecureToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate permanent token: %w", err)
	}

	if err := s.storeTokens(ctx, user.ID, refreshToken, permanentToken); err != nil {
		return nil, fmt.Errorf("failed to store tokens: %w", err)
	}

	slog.Info("User logged in successfully", "user_id", user.ID, "email", user.Email)
	return &AuthResponse{
		User:           user,
		AccessToken:    accessToken,
		RefreshToken:   refreshToken,
		PermanentToken: permanentToken,
	}, nil
}

// Signup creates a new staff account
func (s *AuthService) Signup(ctx context.Context, email, password, fullName string) (*AuthResponse, error) {
	existingUser, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		FullName: fullName,
		Role:     "consultant",
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateSecureToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	permanentToken, err := s.generateSecureToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate permanent token: %w", err)
	}

	if err := s.storeTokens(ctx, user.ID, refreshToken, permanentToken); err != nil {
		return nil, fmt.Errorf("failed to store tokens: %w", err)
	}

	slog.Info("User signed up successfully", "user_id", user.ID, "email", user.Email)
	return &AuthResponse{
		User:           user,
		AccessToken:    accessToken,
		RefreshToken:   refreshToken,
		PermanentToken: permanentToken,
	}, nil
}

// RefreshToken generates a new access token using refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	tokenRecord, err := s.repo.GetRefreshToken(ctx, s.hashToken(refreshToken))
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	if tokenRecord == nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	user, err := s.repo.GetUserByID(ctx, tokenRecord.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("Access token refreshed", "user_id", user.ID)
	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
	}, nil
}

// VerifyPermanentToken verifies permanent token and generates new access token
func (s *AuthService) VerifyPermanentToken(ctx context.Context, permanentToken string) (*AuthResponse, error) {
	tokenRecord, err := s.repo.GetPermanentToken(ctx, s.hashToken(permanentToken))
	if err != nil {
		return nil, fmt.Errorf("failed to get permanent token: %w", err)
	}
	if tokenRecord == nil {
		return nil, fmt.Errorf("invalid permanent token")
	}

	user, err := s.repo.GetUserByID(ctx, tokenRecord.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("Access token generated from permanent token", "user_id", user.ID)
	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
	}, nil
}

// Logout invalidates all tokens for the user
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.repo.DeleteAllUserTokens(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user tokens: %w", err)
	}

	slog.Info("User logged out", "user_id", userID)
	return nil
}

// VerifyAccessToken verifies and extracts user from access token
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (*models.User, error) {
	claims := &CookieClaims{}

	parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !parsedToken.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	// Get user from database to ensure they still exist
	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return user, nil
}

// generateAccessToken creates a short-lived access token
func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := &CookieClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// storeTokens stores refresh and permanent tokens in database
func (s *AuthService) storeTokens(ctx context.Context, userID, refreshToken, permanentToken string) error {
	refreshTokenRecord := &models.RefreshToken{
		UserID:    userID,
		Token:     s.hashToken(refreshToken),
		ExpiresAt: time.Now().Add(s.refreshExpiry),
	}
	if err := s.repo.CreateRefreshToken(ctx, refreshTokenRecord); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	permanentTokenRecord := &models.PermanentToken{
		UserID: userID,
		Token:  s.hashToken(permanentToken),
	}
	if err := s.repo.CreatePermanentToken(ctx, permanentTokenRecord); err != nil {
		return fmt.Errorf("failed to store permanent token: %w", err)
	}

	return nil
}

// SetAuthCookies sets HTTP-only, secure cookies
func (s *AuthService) SetAuthCookies(w http.ResponseWriter, accessToken, refreshToken, permanentToken string) {
	isProduction := os.Getenv("ENVIRONMENT") == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.accessExpiry.Seconds()),
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.refreshExpiry.Seconds()),
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "permanent_token",
		Value:    permanentToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.permanentExpiry.Seconds()),
	})
}

// ClearAuthCookies clears all authentication cookies
func (s *AuthService) ClearAuthCookies(w http.ResponseWriter) {
	isProduction := os.Getenv("ENVIRONMENT") == "production"
	cookies := []string{"access_token", "refresh_token", "permanent_token"}

	for _, cookieName := range cookies {
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   isProduction,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}

// GetTokenFromCookie extracts token from request cookies
func (s *AuthService) GetTokenFromCookie(r *http.Request, cookieName string) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Middleware for cookie-based authentication
func (s *AuthService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := s.GetTokenFromCookie(r, "access_token")

		if accessToken != "" {
			user, err := s.VerifyAccessToken(r.Context(), accessToken)
			if err == nil {
				ctx := context.WithValue(r.Context(), "user", user)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		// Try to refresh using refresh token
		refreshToken := s.GetTokenFromCookie(r, "refresh_token")
		if refreshToken != "" {
			authResponse, err := s.RefreshToken(r.Context(), refreshToken)
			if err == nil {
				s.SetAuthCookies(w, authResponse.AccessToken, "", "")
				ctx := context.WithValue(r.Context(), "user", authResponse.User)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		// Permanent token as last resort
		permanentToken := s.GetTokenFromCookie(r, "permanent_token")
		if permanentToken != "" {
			authResponse, err := s.VerifyPermanentToken(r.Context(), permanentToken)
			if err == nil {
				s.SetAuthCookies(w, authResponse.AccessToken, "", "")
				ctx := context.WithValue(r.Context(), "user", authResponse.User)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})
}
