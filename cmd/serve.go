package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindlab/mindlab/internal/auth"
	"github.com/mindlab/mindlab/internal/config"
	"github.com/mindlab/mindlab/internal/generate"
	"github.com/mindlab/mindlab/internal/llm"
	"github.com/mindlab/mindlab/internal/logger"
	"github.com/mindlab/mindlab/internal/server"
	"github.com/mindlab/mindlab/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MindLab web server",
	RunE:  runServe,
}

// runServe loads configuration, wires dependencies and serves HTTP until
// interrupted.
func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbFlag, _ := cmd.Flags().GetString("db"); dbFlag != "" {
		cfg.Server.DatabasePath = dbFlag
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	st, err := store.Open(cfg.Server.DatabasePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// The generation pipeline degrades to fallback content when no
	// provider key is configured.
	var provider llm.Provider
	var genTimeout time.Duration
	if llmCfg, ok := llm.DiscoverConfig(); ok {
		genTimeout = llmCfg.Timeout
		provider, err = llm.NewProvider(ctx, llmCfg, log)
		if err != nil {
			log.Warn("AI provider unavailable, using fallback content", "error", err)
			provider = nil
		}
	} else {
		log.Info("no AI provider configured, using fallback content")
	}
	gen := generate.NewService(generate.NewClient(provider, genTimeout), log)

	if cfg.Server.JWTSecret == "" {
		log.Warn("no JWT secret configured, using a random per-process secret; sessions will not survive restarts")
	}
	tokens := auth.NewTokenIssuer(cfg.Server.JWTSecret, time.Duration(cfg.Server.SessionHours)*time.Hour)

	srv := server.New(st, gen, tokens, log)
	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Server.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
