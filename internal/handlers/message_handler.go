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

// MessageHandler handles private-message HTTP requests
type MessageHandler struct {
	messageRepository repositories.MessageRepository
	userRepository    repositories.UserRepository
	notifier          *services.Notifier
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository, notifier *services.Notifier) *MessageHandler {
	return &MessageHandler{
		messageRepository: messageRepo,
		userRepository:    userRepo,
		notifier:          notifier,
	}
}

// RegisterMessageRoutes registers message routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.GET("/messages", h.ListMessages)
	g.POST("/messages", h.SendMessage)
	g.POST("/messages/:id/read", h.MarkRead)
	g.DELETE("/messages/:id", h.DeleteMessage)
}

// ListMessages returns every message the caller sent or received, newest first
func (h *MessageHandler) ListMessages(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	offset, limit := pageWindow(c, 100)
	messages, err := h.messageRepository.ListForUser(currentUserID, offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, messages)
}

// SendMessage persists a message and notifies the recipient
func (h *MessageHandler) SendMessage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.RecipientID == currentUserID {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot message yourself")
	}

	if _, err := h.userRepository.GetUserByID(req.RecipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Recipient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	message := &models.Message{
		SenderID:    currentUserID,
		RecipientID: req.RecipientID,
		Content:     services.CleanText(req.Content),
	}
	if err := h.messageRepository.CreateMessage(message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.notifier.Message(currentUserID, message.RecipientID, message.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, message)
}

// MarkRead sets a message's read flag; only the recipient may do so
func (h *MessageHandler) MarkRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	message, err := h.messageRepository.GetMessageByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Message not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if message.RecipientID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the recipient can mark a message as read")
	}

	if err := h.messageRepository.MarkRead(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteMessage deletes a message; only the sender may do so
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	message, err := h.messageRepository.GetMessageByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Message not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if message.SenderID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can only delete messages you sent")
	}

	if err := h.messageRepository.DeleteMessage(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
