package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"project_factory/adapters/db"
	"project_factory/adapters/rest"
	"project_factory/config"
	"project_factory/core"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()
	cfg := config.MustLoad(configPath)

	log := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting server")
	log.Debug("debug messages are enabled")

	storage, err := db.NewDB(log, cfg.DBAddress, cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("failed to create db: %v", err)
	}
	defer storage.Close()

	teamDB := db.NewTeamDB(storage)
	teamService := core.NewTeamService(log, teamDB)

	userDB := db.NewUserDB(storage)
	userService := core.NewUserService(log, userDB)

	projectDB := db.NewProjectDB(storage)
	projectService := core.NewProjectService(log, projectDB)

	workItemDB := db.NewWorkItemDB(storage)
	workItemService := core.NewWorkItemService(log, workItemDB)

	notificationDB := db.NewNotificationDB(storage)
	notificationService := core.NewNotificationService(log, notificationDB)

	mux := http.NewServeMux()
	mux.Handle("GET /api/healthcheck", rest.NewHealthCheckHandler(log))

	mux.Handle("POST /api/users", rest.NewCreateUserHandler(log, userService))
	mux.Handle("GET /api/users", rest.NewListUsersHandler(log, userService))
	mux.Handle("GET /api/users/{id}", rest.NewGetUserHandler(log, userService))
	mux.Handle("PATCH /api/users/{id}", rest.NewUpdateUserHandler(log, userService))
	mux.Handle("DELETE /api/users/{id}", rest.NewDeleteUserHandler(log, userService))

	mux.Handle("POST /api/teams", rest.NewCreateTeamHandler(log, teamService))
	mux.Handle("GET /api/teams", rest.NewListTeamsHandler(log, teamService))

	mux.Handle("POST /api/projects", rest.NewCreateProjectHandler(log, projectService))
	mux.Handle("GET /api/project", rest.NewListProjectsHandler(log, projectService))

	mux.Handle("POST /api/workitems", rest.NewCreateWorkItemHandler(log, workItemService))
	mux.Handle("GET /api/workitem", rest.NewListWorkItemsHandler(log, workItemService))

	mux.Handle("POST /api/notifications", rest.NewCreateNotificationHandler(log, notificationService))
	mux.Handle("GET /api/notifications", rest.NewListNotificationsHandler(log, notificationService))
	mux.Handle("PATCH /api/notifications/{id}/close", rest.NewCloseNotificationHandler(log, notificationService))

	server := http.Server{
		Addr:        cfg.HTTPConfig.Address,
		ReadTimeout: cfg.HTTPConfig.Timeout,
		Handler:     mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Debug("shutting down server")
		if err := server.Shutdown(context.Background()); err != nil {
			log.Error("erroneous shutdown", "error", err)
		}
	}()

	log.Info("Running HTTP server", "address", cfg.HTTPConfig.Address)
	if err := server.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server closed unexpectedly: %v", err)
		}
	}

	return nil
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		panic("unknown log level: " + logLevel)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level, AddSource: true})
	return slog.New(handler)
}
