// Command votesummary prints the vote summary of one Wednesday as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/vncsmyrnk/footvote/internal/adapters/repository"
	"github.com/vncsmyrnk/footvote/internal/config"
	"github.com/vncsmyrnk/footvote/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}

	fs := flag.NewFlagSet("votesummary", flag.ExitOnError)
	date := fs.String("date", "", "Event date (YYYY-MM-DD), defaults to the current or next Wednesday")

	cfg, err := config.Parse(fs, os.Args[1:], os.Getenv)
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	cfg.ConfigureLogger()

	if *date == "" {
		*date = services.NewCalendarService(cfg.Location, time.Now).Anchor()
	}

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repos, err := repository.Open(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Error opening store: %v", err)
	}
	defer repos.Close()

	logrus.WithField("date", *date).Info("Summarizing votes...")

	summary, err := services.NewVoteService(repos.Votes, cfg.Location).Summary(ctx, *date)
	if err != nil {
		logrus.Fatalf("Error summarizing votes: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{
		"date":      *date,
		"headcount": summary.Headcount(),
		"summary":   summary,
	}); err != nil {
		logrus.Fatal(err)
	}
}
