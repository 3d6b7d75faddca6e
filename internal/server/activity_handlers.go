package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindlab/mindlab/internal/store"
)

func (s *Server) handleActivities(c *gin.Context) {
	topic := c.Param("topic")
	bundle := s.gen.Activities(c.Request.Context(), topic)
	c.JSON(http.StatusOK, bundle)
}

func (s *Server) handleSequence(c *gin.Context) {
	topic := c.Param("topic")
	c.JSON(http.StatusOK, s.gen.Sequence(c.Request.Context(), topic))
}

type saveActivityRequest struct {
	Topic string          `json:"topic"`
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Score int             `json:"score"`
}

func (s *Server) handleSaveActivity(c *gin.Context) {
	var req saveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Topic == "" || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic and type are required"})
		return
	}

	concept, err := s.store.ConceptByTopic(c.Request.Context(), currentUserID(c), req.Topic)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}
	if err != nil {
		s.log.Error("concept lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save activity"})
		return
	}

	if _, err := s.store.SaveActivity(c.Request.Context(), concept.ID, req.Type, string(req.Data), req.Score); err != nil {
		s.log.Error("save activity failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type insightRequest struct {
	Topic string `json:"topic"`
}

func (s *Server) handleInsights(c *gin.Context) {
	var req insightRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	c.JSON(http.StatusOK, s.gen.Insights(c.Request.Context(), req.Topic))
}
