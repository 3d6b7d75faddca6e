package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply := s.gen.ChatReply(c.Request.Context(), req.Message)

	if err := s.store.AppendChat(c.Request.Context(), currentUserID(c), req.Message, reply); err != nil {
		s.log.Error("append chat failed", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (s *Server) handleChatHistory(c *gin.Context) {
	history, err := s.store.RecentChat(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.log.Error("chat history query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load chat history"})
		return
	}

	out := make([]gin.H, 0, len(history))
	for _, e := range history {
		out = append(out, gin.H{
			"message":    e.Message,
			"response":   e.Response,
			"created_at": e.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"history": out})
}

func (s *Server) handleClearChat(c *gin.Context) {
	if err := s.store.ClearChat(c.Request.Context(), currentUserID(c)); err != nil {
		s.log.Error("clear chat failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear chat history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "chat history cleared successfully"})
}
