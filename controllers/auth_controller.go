package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/elegantedge/summer-school-backend/errors"
	"github.com/elegantedge/summer-school-backend/logger"
	"github.com/elegantedge/summer-school-backend/services"
)

type AuthController struct {
	Tokens *services.TokenService
}

func NewAuthController(tokens *services.TokenService) *AuthController {
	return &AuthController{Tokens: tokens}
}

// IssueToken signs whatever claims the caller supplies into a one-hour
// access token. The route is unprotected; the token only proves possession
// of the claims it was minted with.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.Error(apperrors.ErrBadRequest.With(err))
		return
	}

	token, err := ac.Tokens.Sign(claims)
	if err != nil {
		logger.Error(c, "failed to sign token", err)
		c.Error(apperrors.ErrInternalServer.With(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
