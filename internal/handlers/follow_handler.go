package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sajidspace/connectly/backend/internal/repositories"
	"github.com/sajidspace/connectly/backend/internal/services"
	"gorm.io/gorm"
)

// FollowHandler handles follow-toggle and graph-query HTTP requests
type FollowHandler struct {
	followService    *services.FollowService
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService *services.FollowService, followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followService:    followService,
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.ToggleFollow)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

// ToggleFollow follows the target if not yet followed, unfollows otherwise
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.userRepository.GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	following, err := h.followService.Toggle(currentUserID, targetID)
	if err != nil {
		if errors.Is(err, services.ErrFollowSelf) {
			return echo.NewHTTPError(http.StatusBadRequest, "You cannot follow yourself")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": following}})
}

// GetFollowers lists the users following :id
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	if getUserIDFromContext(c) == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	users, err := h.followRepository.GetFollowers(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// GetFollowing lists the users :id follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	if getUserIDFromContext(c) == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	users, err := h.followRepository.GetFollowing(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}
