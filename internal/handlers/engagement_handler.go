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

// EngagementHandler handles likes, comments and shares
type EngagementHandler struct {
	engagementService *services.EngagementService
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository
	likeRepository    repositories.LikeRepository
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(
	engagementService *services.EngagementService,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
		postRepository:    postRepo,
		commentRepository: commentRepo,
		likeRepository:    likeRepo,
	}
}

// RegisterEngagementRoutes registers engagement routes
func (h *EngagementHandler) RegisterEngagementRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
	g.POST("/posts/:id/comment", h.AddComment)
	g.GET("/posts/:id/comments", h.ListComments)
	g.POST("/posts/:id/share", h.SharePost)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
	g.POST("/comments/:id/like", h.ToggleCommentLike)
}

func (h *EngagementHandler) loadPost(c echo.Context) (*models.Post, error) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return post, nil
}

// ToggleLike likes the post if not yet liked, unlikes otherwise
func (h *EngagementHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	post, err := h.loadPost(c)
	if err != nil {
		return err
	}

	liked, err := h.engagementService.ToggleLike(currentUserID, post)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	status := "unliked"
	if liked {
		status = "liked"
	}
	count, err := h.likeRepository.GetLikesCountByPostID(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"status": status, "likes_count": count})
}

// AddComment persists a comment on the post
func (h *EngagementHandler) AddComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	post, err := h.loadPost(c)
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.engagementService.AddComment(currentUserID, post, req.Content)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, comment)
}

// ListComments returns the post's comments, oldest first
func (h *EngagementHandler) ListComments(c echo.Context) error {
	post, err := h.loadPost(c)
	if err != nil {
		return err
	}

	offset, limit := pageWindow(c, 100)
	comments, err := h.commentRepository.ListByPostID(post.ID, offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comments)
}

// SharePost increments the post's share counter
func (h *EngagementHandler) SharePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	post, err := h.loadPost(c)
	if err != nil {
		return err
	}

	if err := h.engagementService.Share(currentUserID, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "shared", "shares_count": post.SharesCount + 1})
}

func (h *EngagementHandler) loadComment(c echo.Context) (*models.Comment, error) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	comment, err := h.commentRepository.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return comment, nil
}

// UpdateComment edits a comment; only the author may do so
func (h *EngagementHandler) UpdateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	comment, err := h.loadComment(c)
	if err != nil {
		return err
	}
	if comment.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can only edit your own comments")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment.Content = services.CleanText(req.Content)
	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment; only the author may do so
func (h *EngagementHandler) DeleteComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	comment, err := h.loadComment(c)
	if err != nil {
		return err
	}
	if comment.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can only delete your own comments")
	}

	if err := h.commentRepository.DeleteComment(comment.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleCommentLike likes the comment if not yet liked, unlikes otherwise
func (h *EngagementHandler) ToggleCommentLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	comment, err := h.loadComment(c)
	if err != nil {
		return err
	}

	liked, err := h.engagementService.ToggleCommentLike(currentUserID, comment)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	status := "unliked"
	if liked {
		status = "liked"
	}
	return c.JSON(http.StatusOK, echo.Map{"status": status})
}
