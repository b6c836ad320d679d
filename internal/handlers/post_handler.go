package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/sajidspace/connectly/backend/internal/repositories"
	"github.com/sajidspace/connectly/backend/internal/services"
	"gorm.io/gorm"
)

// PostHandler handles post CRUD HTTP requests
type PostHandler struct {
	postRepository    repositories.PostRepository
	hashtagRepository repositories.HashtagRepository
	tagService        *services.TagService
	feedService       *services.FeedService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	hashtagRepo repositories.HashtagRepository,
	tagService *services.TagService,
	feedService *services.FeedService,
) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		hashtagRepository: hashtagRepo,
		tagService:        tagService,
		feedService:       feedService,
	}
}

// RegisterPostRoutes registers post routes; reads are open, writes check
// authentication themselves
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.ListPosts)
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.GET("/hashtags/:name/posts", h.ListPostsByHashtag)
}

// ListPosts returns the visibility-scoped post listing for the caller
func (h *PostHandler) ListPosts(c echo.Context) error {
	offset, limit := pageWindow(c, 50)
	posts, err := h.feedService.VisiblePosts(getUserIDFromContext(c), offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// CreatePost persists a post, then extracts its hashtags and mentions
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	post := &models.Post{
		AuthorID:   currentUserID,
		Content:    services.CleanText(req.Content),
		ImageURL:   req.ImageURL,
		Visibility: visibility,
		IsActive:   true,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.tagService.Sync(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost returns one post, subject to its visibility
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	visible, err := h.feedService.CanView(getUserIDFromContext(c), post)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !visible || !post.IsActive {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

// UpdatePost edits a post; only the author may do so. Hashtags and mentions
// are re-derived from the new content.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post.AuthorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can only edit your own posts")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Content != "" {
		post.Content = services.CleanText(req.Content)
	}
	if req.ImageURL != "" {
		post.ImageURL = req.ImageURL
	}
	if req.Visibility != "" {
		post.Visibility = req.Visibility
	}

	if err := h.postRepository.UpdatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.tagService.Sync(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post; only the author may do so
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post.AuthorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can only delete your own posts")
	}

	if err := h.postRepository.DeletePost(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ListPostsByHashtag returns public posts carrying the given tag
func (h *PostHandler) ListPostsByHashtag(c echo.Context) error {
	offset, limit := pageWindow(c, 50)
	posts, err := h.hashtagRepository.ListPostsByTag(c.Param("name"), offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}
