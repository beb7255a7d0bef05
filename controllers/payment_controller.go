package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/elegantedge/summer-school-backend/errors"
	"github.com/elegantedge/summer-school-backend/logger"
	"github.com/elegantedge/summer-school-backend/models"
	"github.com/elegantedge/summer-school-backend/services"
)

type PaymentController struct {
	Committer *services.EnrollmentCommitter
	Stripe    services.PaymentIntentCreator
}

func NewPaymentController(committer *services.EnrollmentCommitter, stripe services.PaymentIntentCreator) *PaymentController {
	return &PaymentController{Committer: committer, Stripe: stripe}
}

// CreatePaymentIntent asks Stripe for a charge intent covering the given
// price and hands the client secret back to the browser.
func (pc *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.ErrBadRequest.With(err))
		return
	}

	// Stripe bills in the smallest currency unit.
	amount := int64(math.Round(req.Price * 100))

	clientSecret, err := pc.Stripe.CreatePaymentIntent(amount, "usd")
	if err != nil {
		logger.Error(c, "payment intent creation failed", err)
		c.Error(apperrors.ErrGateway.With(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// SubmitPayment runs the enrollment commit for a confirmed payment.
func (pc *PaymentController) SubmitPayment(c *gin.Context) {
	var sub models.PaymentSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperrors.ErrBadRequest.With(err))
		return
	}

	result, err := pc.Committer.Commit(c.Request.Context(), sub)
	if err != nil {
		logger.Error(c, "enrollment commit failed", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}

	logger.Info(c, "payment recorded",
		zap.String("email", sub.Email),
		zap.String("class_id", sub.ClassID))

	c.JSON(http.StatusOK, gin.H{
		"deleteResult": gin.H{"deletedCount": result.DeletedCount},
		"insertResult": gin.H{"insertedId": result.InsertedID},
	})
}

// ListEnrolledClasses returns the classes the caller has paid for, joined
// with their current catalog state. Protected; ?email must match the token.
func (pc *PaymentController) ListEnrolledClasses(c *gin.Context) {
	email, ok := ownerEmail(c)
	if !ok {
		return
	}

	enrolled, err := pc.Committer.EnrolledClasses(c.Request.Context(), email)
	if err != nil {
		logger.Error(c, "failed to list enrolled classes", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}

	c.JSON(http.StatusOK, enrolled)
}

// PaymentHistory returns raw payment records for ?email, newest first.
// The route carries no auth, matching the client this API was built for.
func (pc *PaymentController) PaymentHistory(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []interface{}{})
		return
	}

	records, err := pc.Committer.PaymentHistory(c.Request.Context(), email)
	if err != nil {
		logger.Error(c, "failed to list payment history", err)
		c.Error(apperrors.ErrDatabase.With(err))
		return
	}

	c.JSON(http.StatusOK, records)
}
