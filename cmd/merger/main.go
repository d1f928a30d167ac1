// Command merger imports the words of an exported Anki deck into the known
// word list, so that they are no longer offered for triage.
//
// Usage:
//
//	merger <deck-export.txt> [known-words-file]
//
// The known words file defaults to the configured one.
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

	"github.com/google/uuid"

	"github.com/heartmarshall/nlvocab/internal/app"
	"github.com/heartmarshall/nlvocab/internal/config"
	"github.com/heartmarshall/nlvocab/pkg/ctxutil"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <deck-export.txt> [known-words-file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if flag.NArg() == 2 {
		cfg.Files.KnownWords = flag.Arg(1)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting merger", slog.String("version", app.BuildVersion()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxutil.WithRunID(ctx, uuid.New())
	ctx = ctxutil.WithCommand(ctx, "merger")

	svc, err := app.NewMerger(cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "build merger", slog.String("error", err.Error()))
		os.Exit(1)
	}

	added, err := svc.MergeFile(ctx, flag.Arg(0))
	if err != nil {
		logger.ErrorContext(ctx, "merge failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "merge finished", slog.Int("added", added))
}
