package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"wordtower/internal/config"
	"wordtower/internal/graph"
	"wordtower/internal/handlers"
	"wordtower/internal/logger"
	"wordtower/internal/repository"
	"wordtower/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	client, err := graph.NewClient(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to connect to graph store", "error", err)
	}
	defer client.Close(ctx)

	// Repositories
	wordRepo := repository.NewWordRepository(client)
	userRepo := repository.NewUserRepository(client)
	prizeRepo := repository.NewPrizeRepository(client)

	// Services
	gameService := service.NewGameService(wordRepo, log)
	userService := service.NewUserService(userRepo, log)
	prizeService := service.NewPrizeService(prizeRepo, log)

	// Handlers
	gameHandler := handlers.NewGameHandler(gameService, log)
	userHandler := handlers.NewUserHandler(userService, log)
	prizeHandler := handlers.NewPrizeHandler(prizeService, log)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/stats", gameHandler.Stats)
	mux.HandleFunc("GET /api/floors/{floor}/words", gameHandler.FloorWords)
	mux.HandleFunc("GET /api/floors/{floor}/quiz", gameHandler.FloorQuiz)
	mux.HandleFunc("GET /api/roots", gameHandler.Roots)
	mux.HandleFunc("GET /api/roots/{root}/words", gameHandler.RootWords)

	mux.HandleFunc("GET /api/leaderboard", userHandler.Leaderboard)
	mux.HandleFunc("GET /api/users", userHandler.List)
	mux.HandleFunc("DELETE /api/users", userHandler.DeleteAll)
	mux.HandleFunc("GET /api/users/{id}", userHandler.Get)
	mux.HandleFunc("PUT /api/users/{id}", userHandler.Upsert)
	mux.HandleFunc("DELETE /api/users/{id}", userHandler.Delete)
	mux.HandleFunc("POST /api/users/{id}/reset", userHandler.Reset)
	mux.HandleFunc("GET /api/users/{id}/parent-password", userHandler.GetParentPassword)
	mux.HandleFunc("PUT /api/users/{id}/parent-password", userHandler.SetParentPassword)

	mux.HandleFunc("GET /api/prizes", prizeHandler.List)
	mux.HandleFunc("PUT /api/prizes/{type}", prizeHandler.Replace)
	mux.HandleFunc("POST /api/prizes/{type}/draw", prizeHandler.Draw)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(handlers.Logging(log)(mux))

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown incomplete", "error", err)
	}
}
