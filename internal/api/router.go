package api

import (
	"fmt"
	"net/http"

	_ "github.com/flashnote-app/flashnote/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/flashnote-app/flashnote/internal/api/handlers"
	"github.com/flashnote-app/flashnote/internal/api/middleware"
	"github.com/flashnote-app/flashnote/internal/api/services"
	"github.com/flashnote-app/flashnote/internal/config"
	"github.com/flashnote-app/flashnote/internal/repositories"
	"github.com/rs/cors"
)

// SetupRouter wires handlers, middleware and CORS into the server's
// root handler.
func SetupRouter(cfg *config.Config, users repositories.UserRepository, docs repositories.DocumentRepository, tokens services.TokenService) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(cfg.CorsOptions())
	auth := middleware.NewAuth(tokens, users)

	authHandler := handlers.NewAuthHandler(users, tokens)
	docHandler := handlers.NewDocHandler(docs)

	// ---------- PUBLIC ROUTES ----------
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	mux.Handle("GET /docs/", httpSwagger.WrapHandler)

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/docs/{slug}", docHandler.GetBySlug)

	// ---------- PROTECTED ROUTES ----------
	mux.Handle("GET /api/auth/me", auth.RequireAuth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /api/docs", auth.RequireAuth(http.HandlerFunc(docHandler.Create)))
	mux.Handle("GET /api/docs", auth.RequireAuth(http.HandlerFunc(docHandler.List)))
	mux.Handle("POST /api/docs/{slug}/edit-token", auth.RequireAuth(http.HandlerFunc(docHandler.EditToken)))
	mux.Handle("DELETE /api/docs/{slug}", auth.RequireAuth(http.HandlerFunc(docHandler.Delete)))

	// PUT accepts either a bearer token or an X-Edit-Token header, so
	// authentication is optional here and permission is decided in the
	// document store.
	mux.Handle("PUT /api/docs/{slug}", auth.OptionalAuth(http.HandlerFunc(docHandler.Update)))

	handler := c.Handler(mux)
	handler = middleware.RequestID(handler)
	handler = middleware.Logger(handler)
	return handler
}
