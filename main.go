package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elegantedge/summer-school-backend/config"
	"github.com/elegantedge/summer-school-backend/controllers"
	"github.com/elegantedge/summer-school-backend/database"
	apperrors "github.com/elegantedge/summer-school-backend/errors"
	"github.com/elegantedge/summer-school-backend/kafka"
	"github.com/elegantedge/summer-school-backend/logger"
	"github.com/elegantedge/summer-school-backend/middleware"
	"github.com/elegantedge/summer-school-backend/repository"
	"github.com/elegantedge/summer-school-backend/routes"
	"github.com/elegantedge/summer-school-backend/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("❌ Failed to load config:", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.ConnectWithConfig(cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Fatal("❌ Failed to connect to DB:", err)
	}
	defer database.Close()

	// Repositories share the one process-wide mongo database handle.
	userRepo := repository.NewMongoUserRepository(database.DB)
	instructorRepo := repository.NewMongoInstructorRepository(database.DB)
	classRepo := repository.NewMongoClassRepository(database.DB)
	cartRepo := repository.NewMongoCartRepository(database.DB)
	paymentRepo := repository.NewMongoPaymentRepository(database.DB)

	var events services.EnrollmentEventPublisher
	if cfg.KafkaBrokers != "" {
		producer := kafka.NewEnrollmentEventProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		defer producer.Close()
		events = producer
	}

	tokenSvc := services.NewTokenService([]byte(cfg.AccessTokenSecret))
	stripeSvc := services.NewStripeService(cfg.StripeSecretKey)
	committer := services.NewEnrollmentCommitter(cartRepo, classRepo, paymentRepo, events, logger.Log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apperrors.ErrorMiddleware())
	r.Use(middleware.RequestLogger(logger.Log))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	routes.Register(
		r,
		controllers.NewAuthController(tokenSvc),
		controllers.NewUserController(userRepo),
		controllers.NewInstructorController(instructorRepo),
		controllers.NewClassController(classRepo),
		controllers.NewCartController(cartRepo),
		controllers.NewPaymentController(committer, stripeSvc),
		[]byte(cfg.AccessTokenSecret),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("✅ Summer School backend is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// Log and fall through so the deferred mongo disconnect and log flush
	// still run on the error path.
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server shutdown complete.")
}
