package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/weblanjutan/jobseeker-api/internal/auth"
	"github.com/weblanjutan/jobseeker-api/internal/config"
	"github.com/weblanjutan/jobseeker-api/internal/handlers"
	"github.com/weblanjutan/jobseeker-api/internal/middleware"
	"github.com/weblanjutan/jobseeker-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg := config.Load()
	log.Printf("MONGO_DATABASE: %s", cfg.MongoDatabase)
	log.Printf("API_PORT: %s", cfg.Port)
	if cfg.JWTSecret != "" {
		log.Println("JWT_SECRET is SET.")
	} else {
		log.Println("JWT_SECRET is NOT SET.")
	}
	auth.SetBcryptCost(cfg.BcryptCost)

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)
	log.Println("Successfully connected to MongoDB!")

	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// --- Handlers ---
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	h := handlers.NewHandler(db, tokens)
	requireAuth := middleware.RequireAuth(tokens, h.Users)

	// --- Gin Router ---
	r := gin.Default()

	// --- Middleware ---
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigin,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequireDatabase(client))

	// --- System Routes ---
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the jobseeker API"})
	})
	r.GET("/health", func(c *gin.Context) {
		// RequireDatabase already pinged the deployment.
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
	})
	r.GET("/db-info", databaseInfo(db))

	// --- Routes ---
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/token", h.Token)
		authRoutes.GET("/me", requireAuth, h.Me)
		authRoutes.POST("/verify-password", h.VerifyPassword)
	}

	userRoutes := r.Group("/users")
	{
		userRoutes.POST("", requireAuth, h.CreateUser)
		userRoutes.GET("", h.ListUsers)
		userRoutes.GET("/:id", h.GetUser)
		userRoutes.PUT("/:id", requireAuth, h.UpdateUser)
		userRoutes.DELETE("/:id", requireAuth, h.DeleteUser)
		userRoutes.GET("/role/:role", h.ListUsersByRole)
	}

	profileRoutes := r.Group("/profiles")
	{
		profileRoutes.POST("", requireAuth, h.CreateProfile)
		profileRoutes.GET("", h.ListProfiles)
		profileRoutes.GET("/:id", h.GetProfile)
		profileRoutes.GET("/user/:user_id", h.GetProfileByUser)
		profileRoutes.PUT("/:id", requireAuth, h.UpdateProfile)
		profileRoutes.PUT("/user/:user_id", requireAuth, h.UpdateProfileByUser)
		profileRoutes.DELETE("/:id", requireAuth, h.DeleteProfile)
		profileRoutes.DELETE("/user/:user_id", requireAuth, h.DeleteProfileByUser)
	}

	jobPostRoutes := r.Group("/job-posts")
	{
		jobPostRoutes.POST("", requireAuth, h.CreateJobPost)
		jobPostRoutes.GET("", h.ListJobPosts)
		jobPostRoutes.GET("/:id", h.GetJobPost)
		jobPostRoutes.GET("/user/:user_id", h.ListJobPostsByUser)
		jobPostRoutes.PUT("/:id", requireAuth, h.UpdateJobPost)
		jobPostRoutes.DELETE("/:id", requireAuth, h.DeleteJobPost)
	}

	applicationRoutes := r.Group("/applications")
	{
		applicationRoutes.POST("", requireAuth, h.CreateApplication)
		applicationRoutes.GET("", h.ListApplications)
		applicationRoutes.GET("/:id", h.GetApplication)
		applicationRoutes.GET("/user/:user_id", h.ListApplicationsByUser)
		applicationRoutes.GET("/job/:job_post_id", h.ListApplicationsByJobPost)
		applicationRoutes.PUT("/:id", requireAuth, h.UpdateApplication)
		applicationRoutes.DELETE("/:id", requireAuth, h.DeleteApplication)
	}

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func databaseInfo(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := db.ListCollectionNames(c.Request.Context(), bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get database info: %v", err)})
			return
		}
		counts := make(map[string]int64, len(names))
		for _, name := range names {
			count, err := db.Collection(name).CountDocuments(c.Request.Context(), bson.M{})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get database info: %v", err)})
				return
			}
			counts[name] = count
		}
		c.JSON(http.StatusOK, gin.H{
			"database_name":     db.Name(),
			"collections":       names,
			"collection_counts": counts,
		})
	}
}
