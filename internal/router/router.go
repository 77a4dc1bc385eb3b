package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/vinculo-app/backend/internal/handlers"
	"github.com/vinculo-app/backend/internal/middleware"
	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
	"github.com/vinculo-app/backend/internal/services"
	"github.com/vinculo-app/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// Users and sessions move to PostgreSQL when it is configured, and posts move
// to MongoDB; everything else runs on the in-memory store.
func SetupRoutes(e *echo.Echo, db *config.DB) {
	// --- Initialize repositories ---
	var userRepo repositories.UserRepository
	var sessionRepo repositories.SessionRepository
	if db.Postgres != nil {
		if err := db.Postgres.AutoMigrate(&models.User{}, &models.Session{}); err != nil {
			log.Fatalf("Failed to auto migrate models: %v", err)
		}
		log.Println("PostgreSQL auto-migrations completed.")
		userRepo = repositories.NewPostgresUserRepository(db.Postgres)
		sessionRepo = repositories.NewPostgresSessionRepository(db.Postgres)
	} else {
		userRepo = repositories.NewMemoryUserRepository()
		sessionRepo = repositories.NewMemorySessionRepository()
	}

	var postRepo repositories.PostRepository
	if db.Mongo != nil {
		postRepo = repositories.NewMongoPostRepository(db.Mongo.Database("vinculo"))
	} else {
		postRepo = repositories.NewMemoryPostRepository()
	}

	commentRepo := repositories.NewMemoryCommentRepository()
	shareRepo := repositories.NewMemoryShareRepository()
	diaryRepo := repositories.NewMemoryDiaryRepository()
	communityRepo := repositories.NewMemoryCommunityRepository()
	conversationRepo := repositories.NewMemoryConversationRepository()
	messageRepo := repositories.NewMemoryMessageRepository()
	rewardRepo := repositories.NewMemoryRewardRepository()
	serviceRepo := repositories.NewMemoryLocalServiceRepository()
	articleRepo := repositories.NewMemoryArticleRepository()

	// --- Initialize services ---
	moderation := services.NewModerationService()
	rewards := services.NewRewardsService(rewardRepo, postRepo, diaryRepo, userRepo)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, sessionRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require a valid session) ---
	api := e.Group("/api/v1")
	api.Use(middleware.SessionAuth(sessionRepo))
	log.Println("Session authentication middleware applied to /api/v1 group.")

	authHandler.RegisterSessionRoutes(api)

	verificationHandler := handlers.NewVerificationHandler(userRepo)
	verificationHandler.RegisterVerificationRoutes(api)
	log.Println("Verification routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, userRepo, moderation, rewards)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	feedHandler := handlers.NewFeedHandler(postRepo, userRepo)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	shareHandler := handlers.NewShareHandler(shareRepo, postRepo, userRepo)
	shareHandler.RegisterShareRoutes(api)
	log.Println("Share routes configured.")

	diaryHandler := handlers.NewDiaryHandler(diaryRepo, rewards)
	diaryHandler.RegisterDiaryRoutes(api)
	log.Println("Diary routes configured.")

	communityHandler := handlers.NewCommunityHandler(communityRepo, userRepo)
	communityHandler.RegisterCommunityRoutes(api)
	log.Println("Community routes configured.")

	chatHandler := handlers.NewChatHandler(conversationRepo, messageRepo, userRepo)
	chatHandler.RegisterChatRoutes(api)
	log.Println("Chat routes configured.")

	rewardsHandler := handlers.NewRewardsHandler(rewards)
	rewardsHandler.RegisterRewardsRoutes(api)
	log.Println("Rewards routes configured.")

	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	serviceHandler.RegisterServiceRoutes(api)
	log.Println("Local service routes configured.")

	articleHandler := handlers.NewArticleHandler(articleRepo, rewards)
	articleHandler.RegisterArticleRoutes(api)
	log.Println("Article routes configured.")

	log.Println("All routes configured.")
}
