package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flashnote-app/flashnote/internal/api"
	"github.com/flashnote-app/flashnote/internal/api/services"
	"github.com/flashnote-app/flashnote/internal/config"
	"github.com/flashnote-app/flashnote/internal/repositories"
	"golang.org/x/sync/errgroup"
)

// @title Flashnote API
// @version 1.0
// @description Collaborative text-pad backend: short-slug documents with shared edit tokens.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	db, err := repositories.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := repositories.Migrate(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}
	log.Println("Successfully connected to database")

	users := repositories.NewUserRepository(db)
	docs := repositories.NewDocumentRepository(db)
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(cfg, users, docs, tokens),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting Flashnote server on port: %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
