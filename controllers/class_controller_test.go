package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/elegantedge/summer-school-backend/models"
)

func TestListClasses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("No filter - full catalog", func(t *testing.T) {
		repo := new(MockClassRepo)
		cc := NewClassController(repo)
		r := gin.New()
		r.GET("/classes", cc.ListClasses)

		repo.On("FindAll", mock.Anything).Return([]models.Class{{Name: "Draping Basics"}}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/classes", nil)
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Draping Basics")
		repo.AssertNotCalled(t, "FindByInstructorEmail", mock.Anything, mock.Anything)
	})

	t.Run("Email filter - instructor's classes only", func(t *testing.T) {
		repo := new(MockClassRepo)
		cc := NewClassController(repo)
		r := gin.New()
		r.GET("/classes", cc.ListClasses)

		repo.On("FindByInstructorEmail", mock.Anything, "instructor@x.com").Return([]models.Class{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/classes?email=instructor@x.com", nil)
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		repo.AssertExpectations(t)
	})
}
