package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avagyan/gym-squads/internal/auth"
	"github.com/avagyan/gym-squads/internal/config"
	"github.com/avagyan/gym-squads/internal/db"
	"github.com/avagyan/gym-squads/internal/handler"
	"github.com/avagyan/gym-squads/internal/handler/server"
	"github.com/avagyan/gym-squads/internal/repository/postgres"
	"github.com/avagyan/gym-squads/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	if err := db.Migrate(context.Background(), database); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	userRepo := postgres.NewUserRepository(database)
	squadRepo := postgres.NewSquadRepository(database)
	membershipRepo := postgres.NewMembershipRepository(database)
	visitRepo := postgres.NewVisitRepository(database)

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	accountService := service.NewAccountService(userRepo, squadRepo, hasher, tokens, cfg.Auth.MinPasswordLen)
	squadService := service.NewSquadService(squadRepo, userRepo)
	membershipService := service.NewMembershipService(membershipRepo, userRepo, squadRepo)
	visitService := service.NewVisitService(visitRepo, userRepo, squadRepo)

	h := handler.NewHandler(accountService, squadService, membershipService, visitService)
	srv := server.NewServer(h, cfg.Server.Addr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
