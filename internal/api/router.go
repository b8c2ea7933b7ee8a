package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aspirecareer/consultancy-api/internal/api/handler"
	"github.com/aspirecareer/consultancy-api/internal/api/middleware"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
	"github.com/aspirecareer/consultancy-api/internal/core/service"
	"github.com/aspirecareer/consultancy-api/internal/infrastructure/broadcast"
	mongodb "github.com/aspirecareer/consultancy-api/internal/infrastructure/db/mongo"
	redisdb "github.com/aspirecareer/consultancy-api/internal/infrastructure/db/redis"
	"github.com/aspirecareer/consultancy-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	hub *broadcast.Hub,
	mailQueue ports.MailQueue,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	// --- Stores ---
	users := mongodb.NewUserRepository(db)
	forms := mongodb.NewFormRepository(db)
	contacts := mongodb.NewContactRepository(db)
	documents := mongodb.NewDocumentRepository(db)
	agreements := mongodb.NewAgreementRepository(db)
	blacklist := redisdb.NewTokenBlacklist(rdb)
	otps := redisdb.NewOTPStore(rdb)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(users, tokens, blacklist, mailQueue, service.AuthOptions{
		RevokeRotatedRefresh: cfg.RevokeRotatedRefresh,
		FrontendURL:          cfg.FrontendURL,
	}, log)
	adminService := service.NewAdminService(users)
	formService := service.NewFormService(forms)
	contactService := service.NewContactService(contacts, mailQueue, cfg.AdminEmail)
	documentService := service.NewDocumentService(documents, otps, mailQueue, hub, log)
	agreementService := service.NewAgreementService(agreements, users)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	formHandler := handler.NewFormHandler(formService)
	contactHandler := handler.NewContactHandler(contactService)
	userHandler := handler.NewUserHandler(documentService)
	agreementHandler := handler.NewAgreementHandler(agreementService)
	eventsHandler := handler.NewEventsHandler(hub)

	// --- Gates ---
	checkBlacklist := middleware.CheckBlacklist(blacklist)
	authenticate := middleware.Authenticate(tokens, users)
	adminOnly := middleware.AdminOnly()

	api := e.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh-token", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout, checkBlacklist, authenticate)
	auth.GET("/verifyToken", authHandler.Verify)

	// --- User routes: OTP + document upload, then form CRUD ---
	user := api.Group("/user")
	user.POST("/send-otp", userHandler.SendOTP)
	user.POST("/verify-otp", userHandler.VerifyOTP)
	user.POST("/upload", userHandler.Upload)

	userForms := user.Group("", checkBlacklist, authenticate)
	userForms.POST("/forms", formHandler.Create)
	userForms.GET("/forms/:id", formHandler.Get)
	userForms.PUT("/forms/:id/update", formHandler.Update)
	userForms.PATCH("/forms/:id/submit", formHandler.Submit)
	userForms.GET("/my-forms", formHandler.ListMine)
	userForms.GET("/my-forms/stats/:userId", formHandler.Stats)

	// --- Contact routes ---
	api.POST("/contact", contactHandler.Submit)

	// --- Admin routes ---
	admin := api.Group("/admin", checkBlacklist, authenticate, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/block", adminHandler.BlockUser)
	admin.PATCH("/users/:id/unblock", adminHandler.UnblockUser)
	admin.PUT("/users/:id/update", adminHandler.UpdateProfile)
	admin.DELETE("/users/:id/delete", adminHandler.DeleteUser)
	admin.GET("/forms", formHandler.ListAll)
	admin.GET("/forms/:id", formHandler.Get)
	admin.PUT("/forms/:id/update", formHandler.Update)
	admin.DELETE("/forms/:id/delete", formHandler.Delete)
	admin.GET("/forms/user/:userId", formHandler.ListByUser)
	admin.GET("/forms/stats/:userId", formHandler.Stats)
	admin.GET("/contact", contactHandler.ListAll)
	admin.DELETE("/contact/:id", contactHandler.Delete)
	admin.GET("/events", eventsHandler.Stream)

	// --- Agreement routes ---
	agreement := api.Group("/agreement", checkBlacklist, authenticate)
	agreement.POST("/submit-agreement", agreementHandler.Submit)
	agreement.GET("/get-agreements/:id", agreementHandler.ListByUser)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
