package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/iansaccar7/casasbr-rental/internal/database"
	"github.com/iansaccar7/casasbr-rental/internal/middleware"
	"github.com/iansaccar7/casasbr-rental/internal/modules/auth"
	"github.com/iansaccar7/casasbr-rental/internal/modules/booking"
	"github.com/iansaccar7/casasbr-rental/internal/modules/favorite"
	"github.com/iansaccar7/casasbr-rental/internal/modules/message"
	"github.com/iansaccar7/casasbr-rental/internal/modules/property"
	"github.com/iansaccar7/casasbr-rental/internal/modules/review"
	jwtsvc "github.com/iansaccar7/casasbr-rental/internal/pkg/jwt"
	"github.com/iansaccar7/casasbr-rental/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	propertyService := property.NewService(propertyRepo)
	propertyHandler := property.NewHandler(propertyService)

	bookingService := booking.NewService(bookingRepo, propertyRepo)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, propertyRepo)
	reviewHandler := review.NewHandler(reviewService)

	favoriteService := favorite.NewService(favoriteRepo, propertyRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	hub := message.NewHub()
	defer hub.Close()
	messageService := message.NewService(messageRepo, userRepo, hub)
	messageHandler := message.NewHandler(messageService, hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		propertyHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			propertyHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterProtectedRoutes(protected)
			messageHandler.RegisterProtectedRoutes(protected)
		}

		// websocket authenticates via query token, not the JWT middleware
		messageHandler.RegisterWebSocket(v1)
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
