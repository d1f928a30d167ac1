// Command finder curates one example sentence per unknown word. For each
// word it pulls candidates from the configured sentence provider, ranks
// them by how many unknown words they contain, and lets the user browse,
// translate and accept one. Accepted sentences are written to the output
// directory together with synthesized audio.
//
// Usage:
//
//	finder [flags] <word-list> <output-dir>
//
// The word list is an unknown words file as written by the analyzer.
//
// Flags:
//
//	--resume            continue into an existing output directory
//	--known-words-file  known words file (overrides config)
//
// Exit codes: 0 = success or abort, 1 = error.
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

	"github.com/heartmarshall/nlvocab/internal/adapter/filestore"
	"github.com/heartmarshall/nlvocab/internal/app"
	"github.com/heartmarshall/nlvocab/internal/config"
	"github.com/heartmarshall/nlvocab/internal/transport/console"
	"github.com/heartmarshall/nlvocab/pkg/ctxutil"
)

func main() {
	resumeFlag := flag.Bool("resume", false, "continue into an existing output directory")
	knownFlag := flag.String("known-words-file", "", "known words file (overrides config)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <word-list> <output-dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	wordList, outputDir := flag.Arg(0), flag.Arg(1)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *knownFlag != "" {
		cfg.Files.KnownWords = *knownFlag
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting finder", slog.String("version", app.BuildVersion()))

	if err := cfg.RequireFinder(); err != nil {
		logger.Error("missing credentials", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxutil.WithRunID(ctx, uuid.New())
	ctx = ctxutil.WithCommand(ctx, "finder")

	words, err := filestore.LoadUnknownWords(wordList)
	if err != nil {
		logger.ErrorContext(ctx, "load word list", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := filestore.PrepareOutputDir(outputDir, *resumeFlag); err != nil {
		logger.ErrorContext(ctx, "prepare output directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc, err := app.NewFinder(cfg, logger, outputDir, console.New(os.Stdin, os.Stdout))
	if err != nil {
		logger.ErrorContext(ctx, "build finder", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := svc.Run(ctx, words.Words())
	if err != nil {
		logger.ErrorContext(ctx, "finder failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "finder finished",
		slog.Bool("aborted", res.Aborted),
		slog.Int("words", res.Words),
		slog.Int("reviewed", res.Reviewed),
		slog.Int("accepted", res.Accepted),
		slog.Int("marked_known", res.MarkedKnown),
		slog.Int("skipped_existing", res.SkippedExisting),
		slog.Int("skipped_no_candidates", res.SkippedNoCandidates),
	)
}
