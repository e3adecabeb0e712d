package server

import (
	"net/http"
	"time"

	"approval-tracker/internal/config"
	"approval-tracker/internal/directory"
	"approval-tracker/internal/handlers"
	"approval-tracker/internal/lifecycle"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, engine *lifecycle.Engine, dir *directory.Directory) *gin.Engine {
	r := gin.Default()

	// el frontend vive en otro origen
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	requests := handlers.NewRequestHandler(engine)
	users := handlers.NewUserHandler(dir)

	api := r.Group("/api")

	// SOLICITUDES
	api.GET("/requests", requests.List)
	api.POST("/requests", requests.Create)
	api.GET("/requests/:id", requests.Get)
	api.PUT("/requests/:id/approve", requests.Approve)
	api.PUT("/requests/:id/reject", requests.Reject)
	api.GET("/requests/:id/history", requests.History)

	// USUARIOS
	api.GET("/users", users.List)
	api.GET("/users/:id", users.Get)

	// HEALTHCHECK
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Backend funcionando correctamente",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint no encontrado"})
	})

	return r
}
