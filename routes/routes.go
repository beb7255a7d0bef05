package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elegantedge/summer-school-backend/controllers"
	"github.com/elegantedge/summer-school-backend/middleware"
)

// Register wires the full HTTP surface. Protected routes sit behind
// AuthGate; everything else is public.
func Register(
	r *gin.Engine,
	auth *controllers.AuthController,
	users *controllers.UserController,
	instructors *controllers.InstructorController,
	classes *controllers.ClassController,
	cart *controllers.CartController,
	payments *controllers.PaymentController,
	tokenSecret []byte,
) {
	authGate := middleware.AuthGate(tokenSecret)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Elegant Fashion Summer School is running.")
	})

	r.POST("/jwt", auth.IssueToken)

	r.POST("/users", users.CreateUser)
	r.GET("/user", users.ListUsers)

	r.GET("/instructors", instructors.ListInstructors)
	r.GET("/instructors/:id", instructors.GetInstructor)

	r.GET("/classes", classes.ListClasses)

	r.POST("/selectclass", cart.SelectClass)
	r.GET("/selectclass", authGate, cart.ListSelected)
	r.DELETE("/selectclass/:id", cart.RemoveSelected)

	r.POST("/create-payment-intent", authGate, payments.CreatePaymentIntent)
	r.POST("/payments", authGate, payments.SubmitPayment)
	r.GET("/payments", authGate, payments.ListEnrolledClasses)
	r.GET("/payment-history", payments.PaymentHistory)
}
