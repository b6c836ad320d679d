package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/sajidspace/connectly/backend/internal/repositories"
	"github.com/sajidspace/connectly/backend/internal/services"
	"gorm.io/gorm"
)

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
	followRepository  repositories.FollowRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository, followRepo repositories.FollowRepository) *ProfileHandler {
	return &ProfileHandler{profileRepository: profileRepo, followRepository: followRepo}
}

// RegisterProfileRoutes registers profile routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profiles/:id", h.GetProfile)
	g.PUT("/profiles/:id", h.UpdateProfile)
}

// ProfileResponse is a profile with its follower/following counts attached
type ProfileResponse struct {
	models.Profile
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}

// resolveProfile resolves the :id parameter, where "me" means the caller
func (h *ProfileHandler) resolveProfile(c echo.Context) (*models.Profile, error) {
	if c.Param("id") == "me" {
		currentUserID := getUserIDFromContext(c)
		if currentUserID == 0 {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
		}
		profile, err := h.profileRepository.GetByUserID(currentUserID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, echo.NewHTTPError(http.StatusNotFound, "Profile not found")
			}
			return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return profile, nil
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	profile, err := h.profileRepository.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return profile, nil
}

// GetProfile returns a profile by ID, or the caller's own via "me"
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.resolveProfile(c)
	if err != nil {
		return err
	}

	followers, err := h.followRepository.GetFollowersCount(profile.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	following, err := h.followRepository.GetFollowingCount(profile.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Profile:        *profile,
		FollowersCount: followers,
		FollowingCount: following,
	})
}

// UpdateProfile updates the caller's own profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	profile, err := h.resolveProfile(c)
	if err != nil {
		return err
	}
	if profile.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can only update your own profile")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Bio != "" {
		profile.Bio = services.CleanText(req.Bio)
	}
	if req.AvatarURL != "" {
		profile.AvatarURL = req.AvatarURL
	}

	if err := h.profileRepository.Update(profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}
