package router

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sajidspace/connectly/backend/internal/handlers"
	"github.com/sajidspace/connectly/backend/internal/middleware"
	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/sajidspace/connectly/backend/internal/repositories"
	"github.com/sajidspace/connectly/backend/internal/services"
	"github.com/sajidspace/connectly/backend/pkg/config"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.HTTPErrorHandler = jsonErrorHandler
	log.Println("Global middleware configured.")
}

// jsonErrorHandler converts every error into an {"error": "..."} body
func jsonErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprintf("%v", he.Message)
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]string{"error": message})
}

// AutoMigrate runs schema migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
		&models.Hashtag{},
		&models.Like{},
		&models.CommentLike{},
		&models.Follow{},
		&models.Message{},
		&models.Notification{},
	)
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/healthz", handlers.HealthCheck)

	// --- Initialize repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	profileRepo := repositories.NewPostgresProfileRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	commentLikeRepo := repositories.NewPostgresCommentLikeRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	hashtagRepo := repositories.NewPostgresHashtagRepository(db)
	messageRepo := repositories.NewPostgresMessageRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	// --- Initialize services ---
	notifier := services.NewNotifier(notificationRepo)
	followService := services.NewFollowService(followRepo, notifier)
	engagementService := services.NewEngagementService(postRepo, commentRepo, likeRepo, commentLikeRepo, notifier)
	tagService := services.NewTagService(postRepo, hashtagRepo, userRepo, notifier)
	feedService := services.NewFeedService(postRepo, followRepo, profileRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Mixed routes: reads are open, writes check authentication ---
	api := e.Group("/api/v1")
	api.Use(middleware.OptionalJWTAuthMiddleware(cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)

	profileHandler := handlers.NewProfileHandler(profileRepo, followRepo)
	profileHandler.RegisterProfileRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo, hashtagRepo, tagService, feedService)
	postHandler.RegisterPostRoutes(api)

	engagementHandler := handlers.NewEngagementHandler(engagementService, postRepo, commentRepo, likeRepo)
	engagementHandler.RegisterEngagementRoutes(api)

	feedHandler := handlers.NewFeedHandler(feedService)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("User, profile, post, engagement and feed routes configured.")

	// --- Protected routes (require JWT authentication) ---
	protected := e.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	followHandler := handlers.NewFollowHandler(followService, followRepo, userRepo)
	followHandler.RegisterFollowRoutes(protected)

	messageHandler := handlers.NewMessageHandler(messageRepo, userRepo, notifier)
	messageHandler.RegisterMessageRoutes(protected)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	notificationHandler.RegisterNotificationRoutes(protected)
	log.Println("Follow, message and notification routes configured.")

	log.Println("All routes configured.")
}
