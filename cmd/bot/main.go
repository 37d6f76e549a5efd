package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mfalcao/slack-punchcard-bot/internal/config"
	"github.com/mfalcao/slack-punchcard-bot/internal/domain/service"
	"github.com/mfalcao/slack-punchcard-bot/internal/gameserver"
	"github.com/mfalcao/slack-punchcard-bot/internal/handlers"
	"github.com/mfalcao/slack-punchcard-bot/internal/ledger"
	"github.com/slack-go/slack"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := ledger.New(cfg.LedgerPath)
	slackClient := slack.New(cfg.SlackBotToken)
	statusClient := gameserver.New(cfg.StatusURL)

	services, err := service.NewInstance(cfg, store, slackClient, statusClient)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	services.Start(ctx)

	handler := handlers.New(services.Punch, services.LFG, cfg.SlackSigningSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := serveUntilShutdown(ctx, server); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// serveUntilShutdown runs the HTTP server until ctx is cancelled, then shuts
// it down gracefully so the process can exit on SIGINT/SIGTERM together with
// the background loops.
func serveUntilShutdown(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
