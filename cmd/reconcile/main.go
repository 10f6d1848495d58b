package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/werb210/ocr-reconciler/internal/fields"
	"github.com/werb210/ocr-reconciler/internal/insights"
	"github.com/werb210/ocr-reconciler/internal/reconcile"
	repo "github.com/werb210/ocr-reconciler/internal/repository"
)

// One-shot reconciliation report for a single application, for operators
// poking at data without the portal in front of them.
func main() {
	_ = godotenv.Load()

	appID := flag.String("application", "", "application id to reconcile")
	flag.Parse()
	if strings.TrimSpace(*appID) == "" {
		fmt.Fprintln(os.Stderr, "usage: reconcile -application <application-id>")
		os.Exit(2)
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DB_URL env var is required")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dbURL,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening DB: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	registry := fields.Default()
	engine := reconcile.NewEngine(registry, logger)
	svc := insights.NewService(
		repo.NewDocumentRepository(entc, logger),
		repo.NewOCRResultRepository(entc, logger),
		engine, registry, nil, logger,
	)

	payload, err := svc.GetInsights(ctx, *appID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reconcile: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("application %s: %d records, %d mismatch flags\n",
		payload.ApplicationID, len(payload.Results), len(payload.MismatchFlags))
	for _, f := range payload.MismatchFlags {
		others := make([]string, 0, len(f.ConflictsWith))
		for _, ref := range f.ConflictsWith {
			others = append(others, ref.Value)
		}
		fmt.Printf("  CONFLICT %-28s doc=%s value=%q vs %s\n",
			f.FieldKey, f.DocumentID, f.Value, strings.Join(others, ", "))
	}
	for _, key := range payload.MissingRequiredFields {
		fmt.Printf("  MISSING  %s\n", key)
	}
	for _, key := range payload.SkippedFields {
		fmt.Printf("  SKIPPED  %s (too many documents)\n", key)
	}
}
