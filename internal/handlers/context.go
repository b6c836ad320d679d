package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/sajidspace/connectly/backend/internal/middleware"
	"github.com/sajidspace/connectly/backend/internal/models"
)

// getUserIDFromContext returns the authenticated user's ID, or 0 when the
// request is anonymous
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get(middleware.ContextUserKey).(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}
