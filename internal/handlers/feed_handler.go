package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sajidspace/connectly/backend/internal/services"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService *services.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// RegisterFeedRoutes registers feed routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/users/:id/feed", h.GetUserFeed)
}

// GetFeed returns the public feed for anonymous callers and the personalized
// feed for authenticated ones
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	offset, limit := pageWindow(c, 50)

	var posts interface{}
	var err error
	if currentUserID == 0 {
		posts, err = h.feedService.ForAnonymous(offset, limit)
	} else {
		posts, err = h.feedService.ForUser(currentUserID, offset, limit)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// GetUserFeed returns the personalized feed of :id; only that user may
// request it
func (h *FeedHandler) GetUserFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if id != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can only view your own feed")
	}

	offset, limit := pageWindow(c, 50)
	posts, err := h.feedService.ForUser(id, offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}
