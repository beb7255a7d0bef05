package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/elegantedge/summer-school-backend/errors"
	"github.com/elegantedge/summer-school-backend/middleware"
	"github.com/elegantedge/summer-school-backend/models"
	"github.com/elegantedge/summer-school-backend/services"
)

type paymentTestEnv struct {
	carts    *MockCartRepo
	classes  *MockClassRepo
	payments *MockPaymentRepo
	stripe   *MockStripe
	router   *gin.Engine
}

func newPaymentTestEnv() *paymentTestEnv {
	gin.SetMode(gin.TestMode)
	env := &paymentTestEnv{
		carts:    new(MockCartRepo),
		classes:  new(MockClassRepo),
		payments: new(MockPaymentRepo),
		stripe:   new(MockStripe),
	}
	committer := services.NewEnrollmentCommitter(env.carts, env.classes, env.payments, nil, zap.NewNop())
	pc := NewPaymentController(committer, env.stripe)

	authGate := middleware.AuthGate(testSecret)
	r := gin.New()
	r.Use(apperrors.ErrorMiddleware())
	r.POST("/create-payment-intent", authGate, pc.CreatePaymentIntent)
	r.POST("/payments", authGate, pc.SubmitPayment)
	r.GET("/payments", authGate, pc.ListEnrolledClasses)
	r.GET("/payment-history", pc.PaymentHistory)
	env.router = r
	return env
}

const paymentPayload = `{
	"email": "a@x.com",
	"transactionId": "pi_123",
	"price": 49.99,
	"classId": "64a000000000000000000001",
	"selectedClassId": "64a000000000000000000002",
	"className": "Draping Basics"
}`

func TestSubmitPayment(t *testing.T) {
	t.Run("No token - 401, no side effects", func(t *testing.T) {
		env := newPaymentTestEnv()

		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(paymentPayload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		env.carts.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
		env.classes.AssertNotCalled(t, "AdjustEnrollment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		env.payments.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Success - composite result of delete and insert", func(t *testing.T) {
		env := newPaymentTestEnv()

		env.carts.On("DeleteByID", mock.Anything, "64a000000000000000000002").Return(int64(1), nil).Once()
		env.classes.On("FindByID", mock.Anything, "64a000000000000000000001").Return(&models.Class{}, nil).Once()
		env.classes.On("AdjustEnrollment", mock.Anything, "64a000000000000000000001", -1, 1).Return(int64(1), nil).Once()
		env.payments.On("Insert", mock.Anything, mock.Anything).Return("payment-id", nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(paymentPayload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "a@x.com"))
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"deletedCount":1`)
		assert.Contains(t, recorder.Body.String(), "payment-id")
		env.carts.AssertExpectations(t)
		env.classes.AssertExpectations(t)
		env.payments.AssertExpectations(t)
	})

	t.Run("Upstream failure - structured 500 from error boundary", func(t *testing.T) {
		env := newPaymentTestEnv()

		env.carts.On("DeleteByID", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
		env.classes.On("FindByID", mock.Anything, mock.Anything).Return(&models.Class{}, nil).Once()
		env.classes.On("AdjustEnrollment", mock.Anything, mock.Anything, -1, 1).Return(int64(0), errors.New("connection reset")).Once()

		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(paymentPayload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "a@x.com"))
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), apperrors.ErrDatabase.Message)
		env.payments.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Missing fields - 400", func(t *testing.T) {
		env := newPaymentTestEnv()

		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(`{"email":"a@x.com"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "a@x.com"))
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestListEnrolledClasses(t *testing.T) {
	t.Run("Email mismatch - 403", func(t *testing.T) {
		env := newPaymentTestEnv()

		req := authedRequest(t, http.MethodGet, "/payments?email=b@x.com", "a@x.com")
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("Missing email - empty list", func(t *testing.T) {
		env := newPaymentTestEnv()

		req := authedRequest(t, http.MethodGet, "/payments", "a@x.com")
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	t.Run("Owner match - payments joined with classes", func(t *testing.T) {
		env := newPaymentTestEnv()

		records := []models.PaymentRecord{{Email: "a@x.com", ClassID: "64a000000000000000000001"}}
		env.payments.On("FindByEmail", mock.Anything, "a@x.com", false).Return(records, nil).Once()
		env.classes.On("FindByID", mock.Anything, "64a000000000000000000001").Return(&models.Class{Name: "Draping Basics"}, nil).Once()

		req := authedRequest(t, http.MethodGet, "/payments?email=a@x.com", "a@x.com")
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Draping Basics")
		env.payments.AssertExpectations(t)
	})
}

func TestPaymentHistory(t *testing.T) {
	t.Run("Unauthenticated access allowed, newest first requested", func(t *testing.T) {
		env := newPaymentTestEnv()

		records := []models.PaymentRecord{
			{Email: "a@x.com", TransactionID: "pi_2", Date: time.Now()},
			{Email: "a@x.com", TransactionID: "pi_1", Date: time.Now().Add(-time.Hour)},
		}
		env.payments.On("FindByEmail", mock.Anything, "a@x.com", true).Return(records, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/payment-history?email=a@x.com", nil)
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		body := recorder.Body.String()
		assert.Less(t, strings.Index(body, "pi_2"), strings.Index(body, "pi_1"))
		env.payments.AssertExpectations(t)
	})

	t.Run("Missing email - empty list", func(t *testing.T) {
		env := newPaymentTestEnv()

		req, _ := http.NewRequest(http.MethodGet, "/payment-history", nil)
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})
}

func TestCreatePaymentIntent(t *testing.T) {
	t.Run("No token - 401", func(t *testing.T) {
		env := newPaymentTestEnv()

		req, _ := http.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{"price": 49.99}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		env.stripe.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything)
	})

	t.Run("Success - price converted to cents, client secret returned", func(t *testing.T) {
		env := newPaymentTestEnv()

		env.stripe.On("CreatePaymentIntent", int64(4999), "usd").Return("pi_secret_abc", nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{"price": 49.99}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "a@x.com"))
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "pi_secret_abc")
		env.stripe.AssertExpectations(t)
	})

	t.Run("Gateway failure - 502 from error boundary", func(t *testing.T) {
		env := newPaymentTestEnv()

		env.stripe.On("CreatePaymentIntent", mock.Anything, mock.Anything).Return("", errors.New("stripe unreachable")).Once()

		req, _ := http.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{"price": 10}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "a@x.com"))
		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "payment gateway error")
	})
}
