package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindlab/mindlab/internal/auth"
	"github.com/mindlab/mindlab/internal/store"
)

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := auth.ValidateEmail(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taken, err := s.store.UsernameOrEmailTaken(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		s.log.Error("register lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "username or email already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.log.Error("password hash failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	token := auth.NewVerificationToken()
	if _, err := s.store.CreateUser(c.Request.Context(), req.Username, req.Email, hash, token); err != nil {
		s.log.Error("create user failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	// The token would normally go out by email; it is returned here so a
	// client can complete verification.
	c.JSON(http.StatusCreated, gin.H{
		"message":            "registration successful",
		"verification_token": token,
	})
}

func (s *Server) handleVerify(c *gin.Context) {
	token := c.Param("token")

	user, err := s.store.UserByVerificationToken(c.Request.Context(), token)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verification token"})
		return
	}
	if err != nil {
		s.log.Error("verify lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return
	}

	if err := s.store.MarkEmailVerified(c.Request.Context(), user.ID); err != nil {
		s.log.Error("mark verified failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "email verified successfully"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please enter both username and password"})
		return
	}

	user, err := s.store.UserByUsername(c.Request.Context(), req.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.log.Error("login lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.log.Error("issue token failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": user.Username,
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "you have been logged out"})
}
