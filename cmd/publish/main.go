// Command publish upserts the sentences of a finder output directory into
// the shared PostgreSQL corpus, keyed by word.
//
// Usage:
//
//	publish [--migrate] <input-dir>
//
// Flags:
//
//	--migrate  apply pending migrations before publishing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/nlvocab/internal/adapter/filestore"
	"github.com/heartmarshall/nlvocab/internal/app"
	"github.com/heartmarshall/nlvocab/internal/config"
	"github.com/heartmarshall/nlvocab/pkg/ctxutil"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "apply pending migrations before publishing")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [--migrate] <input-dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting publish", slog.String("version", app.BuildVersion()))

	if err := cfg.RequireDatabase(); err != nil {
		logger.Error("missing database configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()
	ctx = ctxutil.WithRunID(ctx, uuid.New())
	ctx = ctxutil.WithCommand(ctx, "publish")

	corpus, err := filestore.LoadCorpus(flag.Arg(0))
	if err != nil {
		logger.ErrorContext(ctx, "load corpus", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc, closePool, err := app.NewPublisher(ctx, cfg, logger, *migrateFlag)
	if err != nil {
		logger.ErrorContext(ctx, "build publisher", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closePool()

	res, err := svc.Publish(ctx, corpus.Records())
	if err != nil {
		logger.ErrorContext(ctx, "publish failed", slog.String("error", err.Error()))
		closePool()
		os.Exit(1)
	}

	logger.InfoContext(ctx, "publish finished",
		slog.Int("records", res.Records),
		slog.Int("batches", res.Batches),
		slog.Int("changed", res.Changed),
	)
}
