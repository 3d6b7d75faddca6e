package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleDashboard(c *gin.Context) {
	concepts, err := s.store.RecentConcepts(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.log.Error("dashboard query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		return
	}

	out := make([]gin.H, 0, len(concepts))
	for _, concept := range concepts {
		out = append(out, gin.H{
			"id":         concept.ID,
			"topic":      concept.Topic,
			"created_at": concept.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"concepts": out})
}

type conceptRequest struct {
	Topic string `json:"topic"`
}

func (s *Server) handleCreateConcept(c *gin.Context) {
	var req conceptRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	id, err := s.store.CreateConcept(c.Request.Context(), currentUserID(c), req.Topic)
	if err != nil {
		s.log.Error("create concept failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save concept"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "topic": req.Topic})
}

func (s *Server) handleClearConcepts(c *gin.Context) {
	if err := s.store.ClearConcepts(c.Request.Context(), currentUserID(c)); err != nil {
		s.log.Error("clear concepts failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear concepts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all concepts cleared successfully"})
}
