package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/elegantedge/summer-school-backend/errors"
	"github.com/elegantedge/summer-school-backend/logger"
	"github.com/elegantedge/summer-school-backend/middleware"
)

// ownerEmail resolves the ?email parameter on owner-scoped list routes and
// settles the response itself when the request cannot proceed. An absent
// parameter answers an empty result set, not an error; a parameter that
// does not match the authenticated principal is forbidden.
func ownerEmail(c *gin.Context) (string, bool) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []interface{}{})
		return "", false
	}

	if email != middleware.GetPrincipalEmail(c) {
		logger.Warn(c, "owner email mismatch on protected route")
		c.Error(apperrors.ErrForbidden)
		return "", false
	}
	return email, true
}
