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

type UserController struct {
	Repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{Repo: repo}
}

// CreateUser registers a new account. Registration is idempotent on email:
// an existing account answers 200 with a message and no insert.
func (uc *UserController) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil || user.Email == "" {
		c.Error(apperrors.ErrBadRequest.With(err))
		return
	}

	ctx := c.Request.Context()

	existing, err := uc.Repo.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger.Error(c, "failed to look up user", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User Already Exists"})
		return
	}

	insertedID, err := uc.Repo.Insert(ctx, &user)
	if err != nil {
		logger.Error(c, "failed to create user", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": insertedID})
}

// ListUsers returns every registered account.
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Repo.FindAll(c.Request.Context())
	if err != nil {
		logger.Error(c, "failed to list users", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}
	c.JSON(http.StatusOK, users)
}
