package main

import (
	"log"

	"pos-kasir/config"
	"pos-kasir/controllers"
	_ "pos-kasir/docs"
	"pos-kasir/libs"
	"pos-kasir/middleware"
	"pos-kasir/repositories"
	"pos-kasir/routes"
	"pos-kasir/services"

	"github.com/gin-gonic/gin"
)

// @title POS Kasir API
// @version 1.0
// @description Point-of-sale backend: catalog, cashier, dashboard and reports.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	rdb := config.ConnectRedis()
	if rdb != nil {
		defer rdb.Close()
	}

	store := repositories.Open(cfg, rdb)
	defer store.Close()
	log.Printf("Storage backend: %s", store.Backend())

	sessions, err := repositories.NewSessionRepository(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open session storage: %v", err)
	}

	authService := services.NewAuthService(cfg, sessions)
	authService.SetIdleTimer(services.NewIdleTimer(cfg.SessionTimeout, func() {
		log.Println("Session idle timeout reached, forcing logout")
		if err := authService.Logout(); err != nil {
			log.Printf("Forced logout failed: %v", err)
		}
	}))
	authService.ResumeSession()

	cartService := services.NewCartService()
	checkoutService := services.NewCheckoutService(store, cartService, authService)
	reportService := services.NewReportService(store)

	cloudinaryService, err := libs.NewCloudinaryService(cfg.MaxUploadSize)
	if err != nil {
		log.Printf("Image upload disabled: %v", err)
		cloudinaryService = nil
	}

	emailService, err := libs.NewEmailService()
	if err != nil {
		log.Printf("Report e-mail disabled: %v", err)
		emailService = nil
	}

	unsubscribe := store.SubscribeTransactions(func(event repositories.ChangeEvent) {
		log.Printf("Transaction change: %s id=%d", event.Event, event.ID)
	})
	defer unsubscribe()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))

	routes.SetupRoutes(router, routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Product:  controllers.NewProductController(store, cloudinaryService),
		Cart:     controllers.NewCartController(store, cartService),
		Checkout: controllers.NewCheckoutController(checkoutService),
		Report:   controllers.NewReportController(cfg, store, reportService, emailService),
	}, authService)

	port := ":" + cfg.Port
	log.Printf("%s starting on port %s", cfg.AppName, port)
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
