package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamreg/backend/config"
	"github.com/teamreg/backend/internal/gql"
	"github.com/teamreg/backend/internal/middleware"
	"github.com/teamreg/backend/internal/user"
)

func SetupRoutes(cfg *config.Config, db *gorm.DB, schema *graphql.Schema, log *zap.Logger) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     cfg.App.ClientRootURLs,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Time-Zone"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.Principal(cfg.JWT.Secret, cfg.App.DefaultTimeZone, db, log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	authGroup := api.Group("/auth")
	authController := user.NewAuthController(user.NewRepository(db), cfg, log)
	user.RegisterAuthRoutes(authGroup, authController)

	graphiql := cfg.App.Env != "production"
	graphqlHandler := gql.Handler(schema, db, graphiql, log)
	r.POST("/graphql", graphqlHandler)
	if graphiql {
		r.GET("/graphql", graphqlHandler)
	}

	return r
}
