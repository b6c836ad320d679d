package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/sajidspace/connectly/backend/internal/repositories"
	"github.com/sajidspace/connectly/backend/internal/services"
	"github.com/sajidspace/connectly/backend/pkg/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles registration, login and token issuance
type AuthHandler struct {
	userRepository repositories.UserRepository
	jwtSecret      string
	accessTTL      time.Duration
	refreshTTL     time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		jwtSecret:      cfg.JWTSecret,
		accessTTL:      cfg.AccessTokenTTL,
		refreshTTL:     cfg.RefreshTokenTTL,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/token", h.Login)
	g.POST("/token/refresh", h.Refresh)
}

// Register creates a user together with its profile and returns a token pair
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.userRepository.GetUserByUsername(req.Username); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Username already taken")
	}
	if _, err := h.userRepository.GetUserByEmail(req.Email); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	profile := &models.Profile{Bio: services.CleanText(req.Bio)}

	if err := h.userRepository.CreateUserWithProfile(user, profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	access, refresh, err := h.generateTokenPair(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate tokens")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"user":    user,
		"access":  access,
		"refresh": refresh,
	})
}

// Login authenticates a username/password pair and returns a token pair
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByUsername(req.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	access, refresh, err := h.generateTokenPair(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate tokens")
	}

	return c.JSON(http.StatusOK, echo.Map{"access": access, "refresh": refresh})
}

// Refresh rotates a refresh token into a fresh token pair
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(req.Refresh, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil || !token.Valid || claims.TokenType != "refresh" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid refresh token")
	}

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusUnauthorized, "Account no longer exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	access, refresh, err := h.generateTokenPair(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate tokens")
	}

	return c.JSON(http.StatusOK, echo.Map{"access": access, "refresh": refresh})
}

// generateTokenPair signs an access/refresh pair for the user. The refresh
// token carries a unique ID so every rotation produces a distinct token.
func (h *AuthHandler) generateTokenPair(user *models.User) (string, string, error) {
	access, err := h.signToken(user, "access", h.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := h.signToken(user, "refresh", h.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (h *AuthHandler) signToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:    user.ID,
		Username:  user.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
