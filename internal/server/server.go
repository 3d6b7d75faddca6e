// Package server exposes the MindLab JSON API over gin.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mindlab/mindlab/internal/auth"
	"github.com/mindlab/mindlab/internal/generate"
	"github.com/mindlab/mindlab/internal/logger"
	"github.com/mindlab/mindlab/internal/store"
)

// Server wires the store, the content generators and session tokens
// behind the HTTP API.
type Server struct {
	store  *store.Store
	gen    *generate.Service
	tokens *auth.TokenIssuer
	log    *logger.Logger
}

// New creates a Server.
func New(st *store.Store, gen *generate.Service, tokens *auth.TokenIssuer, log *logger.Logger) *Server {
	return &Server{store: st, gen: gen, tokens: tokens, log: log}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/register", s.handleRegister)
		api.GET("/verify/:token", s.handleVerify)
		api.POST("/login", s.handleLogin)
		api.POST("/logout", s.handleLogout)
	}

	protected := api.Group("/")
	protected.Use(s.requireAuth())
	{
		protected.GET("/dashboard", s.handleDashboard)
		protected.POST("/concepts", s.handleCreateConcept)
		protected.POST("/concepts/clear", s.handleClearConcepts)
		protected.GET("/activities/:topic", s.handleActivities)
		protected.GET("/sequence/:topic", s.handleSequence)
		protected.POST("/activities/save", s.handleSaveActivity)
		protected.POST("/insights", s.handleInsights)
		protected.POST("/chat", s.handleChat)
		protected.GET("/chat/history", s.handleChatHistory)
		protected.POST("/chat/clear", s.handleClearChat)
	}

	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":       "ok",
		"ai_available": s.gen.Available(),
	})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
