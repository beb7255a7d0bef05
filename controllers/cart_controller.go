package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/elegantedge/summer-school-backend/errors"
	"github.com/elegantedge/summer-school-backend/logger"
	"github.com/elegantedge/summer-school-backend/models"
	"github.com/elegantedge/summer-school-backend/repository"
)

type CartController struct {
	Repo repository.CartRepository
}

func NewCartController(repo repository.CartRepository) *CartController {
	return &CartController{Repo: repo}
}

// SelectClass records the intent to enroll in a class.
func (cc *CartController) SelectClass(c *gin.Context) {
	var entry models.CartEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.Error(apperrors.ErrBadRequest.With(err))
		return
	}

	insertedID, err := cc.Repo.Insert(c.Request.Context(), &entry)
	if err != nil {
		logger.Error(c, "failed to select class", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": insertedID})
}

// ListSelected returns the caller's cart. Protected; the ?email parameter
// must match the token's email.
func (cc *CartController) ListSelected(c *gin.Context) {
	email, ok := ownerEmail(c)
	if !ok {
		return
	}

	entries, err := cc.Repo.FindByUserEmail(c.Request.Context(), email)
	if err != nil {
		logger.Error(c, "failed to list selected classes", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}

	c.JSON(http.StatusOK, entries)
}

// RemoveSelected deletes one cart entry by id.
func (cc *CartController) RemoveSelected(c *gin.Context) {
	deleted, err := cc.Repo.DeleteByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrInvalidID) {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid cart entry id", err))
		return
	}
	if err != nil {
		logger.Error(c, "failed to remove selected class", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
