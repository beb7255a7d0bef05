package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/elegantedge/summer-school-backend/errors"
	"github.com/elegantedge/summer-school-backend/logger"
	"github.com/elegantedge/summer-school-backend/repository"
)

type InstructorController struct {
	Repo repository.InstructorRepository
}

func NewInstructorController(repo repository.InstructorRepository) *InstructorController {
	return &InstructorController{Repo: repo}
}

func (ic *InstructorController) ListInstructors(c *gin.Context) {
	instructors, err := ic.Repo.FindAll(c.Request.Context())
	if err != nil {
		logger.Error(c, "failed to list instructors", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}
	c.JSON(http.StatusOK, instructors)
}

func (ic *InstructorController) GetInstructor(c *gin.Context) {
	instructor, err := ic.Repo.FindByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrInvalidID) {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid instructor id", err))
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.Error(apperrors.ErrNotFound)
		return
	}
	if err != nil {
		logger.Error(c, "failed to find instructor", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}
	c.JSON(http.StatusOK, instructor)
}
