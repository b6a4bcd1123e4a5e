package main

import (
	"context"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vncsmyrnk/footvote/internal/adapters/handler/http"
	"github.com/vncsmyrnk/footvote/internal/adapters/repository"
	"github.com/vncsmyrnk/footvote/internal/config"
	"github.com/vncsmyrnk/footvote/internal/core/services"
)

func main() {
	cfg, err := config.Load("server", os.Args[1:])
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	cfg.ConfigureLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startupCtx, cancelStartup := context.WithTimeout(ctx, 30*time.Second)
	repos, err := repository.Open(startupCtx, cfg)
	cancelStartup()
	if err != nil {
		logrus.Fatalf("Error opening store: %v", err)
	}
	defer repos.Close()

	voteService := services.NewVoteService(repos.Votes, cfg.Location)
	commentService := services.NewCommentService(repos.Comments, cfg.Location)
	calendarService := services.NewCalendarService(cfg.Location, time.Now)

	handler := http.NewHandler(
		http.NewVoteHandler(voteService),
		http.NewCommentHandler(commentService),
		http.NewCalendarHandler(calendarService, cfg.WindowSize, cfg.ExtendCount),
		cfg.AllowedOrigins,
	)
	server := &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{"addr": cfg.Addr, "driver": cfg.Driver}).Info("Listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatal(err)
	}
}
