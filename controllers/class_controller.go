package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/elegantedge/summer-school-backend/errors"
	"github.com/elegantedge/summer-school-backend/logger"
	"github.com/elegantedge/summer-school-backend/repository"
)

type ClassController struct {
	Repo repository.ClassRepository
}

func NewClassController(repo repository.ClassRepository) *ClassController {
	return &ClassController{Repo: repo}
}

// ListClasses returns the full catalog, or only the classes taught by the
// instructor whose email is given in ?email.
func (cc *ClassController) ListClasses(c *gin.Context) {
	ctx := c.Request.Context()
	email := c.Query("email")

	if email == "" {
		classes, err := cc.Repo.FindAll(ctx)
		if err != nil {
			logger.Error(c, "failed to list classes", err)
			c.Error(apperrors.ErrDatabase.With(err))
			return
		}
		c.JSON(http.StatusOK, classes)
		return
	}

	classes, err := cc.Repo.FindByInstructorEmail(ctx, email)
	if err != nil {
		logger.Error(c, "failed to list classes", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}
	c.JSON(http.StatusOK, classes)
}
