package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/mensa-bot/internal/config"
	"github.com/diegoclair/mensa-bot/internal/database"
	"github.com/diegoclair/mensa-bot/internal/domain/service"
	"github.com/diegoclair/mensa-bot/internal/handlers"
	"github.com/diegoclair/mensa-bot/internal/openmensa"
	slackmsg "github.com/diegoclair/mensa-bot/internal/slack"
	"github.com/diegoclair/mensa-bot/migrator/sqlite"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

const shutdownTimeout = 10 * time.Second

func serve(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Migrations completed successfully")

	var slackOpts []slack.Option
	if cfg.SocketMode() {
		slackOpts = append(slackOpts, slack.OptionAppLevelToken(cfg.SlackAppToken))
	}
	slackClient := slack.New(cfg.SlackBotToken, slackOpts...)
	messenger := slackmsg.NewMessenger(slackClient)

	log.Println("Loading canteen catalog...")
	instance, err := service.NewInstance(ctx, database.NewInstance(db),
		openmensa.New(cfg.OpenMensaURL, cfg.HTTPTimeout),
		messenger,
		service.Options{
			Location:     loc,
			ReminderTime: cfg.ReminderTime,
			MisfireGrace: cfg.MisfireGrace,
		},
	)
	if err != nil {
		return err
	}

	if err := instance.Scheduler.Restore(ctx); err != nil {
		log.Printf("Failed to restore reminders: %v", err)
	}
	instance.Scheduler.Start()
	defer instance.Scheduler.Stop()

	go instance.Session.RunJanitor(ctx, cfg.SessionTTL, cfg.JanitorInterval)

	handler := handlers.New(handlers.Services{
		Directory:  instance.Directory,
		Sessions:   instance.Session,
		Reminders:  instance.Scheduler,
		Dispatcher: instance.Dispatch,
		Messenger:  messenger,
	}, cfg.SlackSigningSecret, cfg.ReminderTime)

	// Runs before the scheduler stops and the database closes
	defer handler.Wait()

	if cfg.SocketMode() {
		log.Println("Starting in Socket Mode")
		err := handler.RunSocketMode(ctx, socketmode.New(slackClient))
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("socket mode: %w", err)
		}
		return nil
	}

	return serveHTTP(ctx, cfg.Port, handler)
}

func serveHTTP(ctx context.Context, port string, handler *handlers.SlackHandler) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/slack/interactions", handler.HandleInteraction)
	mux.HandleFunc("/slack/options", handler.HandleInteraction)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	// Requests still being answered may schedule more interaction work
	<-shutdownDone

	log.Println("Server stopped")
	return nil
}
