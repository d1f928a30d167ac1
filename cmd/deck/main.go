// Command deck turns a finder output directory into an Anki import file.
// Each note carries the sentence, its translation, the word, a dictionary
// definition and the recorded audio.
//
// Usage:
//
//	deck <input-dir> <deck-name> [output-dir]
//
// The output directory defaults to "deck".
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

	"github.com/heartmarshall/nlvocab/internal/adapter/filestore"
	"github.com/heartmarshall/nlvocab/internal/app"
	"github.com/heartmarshall/nlvocab/internal/config"
	"github.com/heartmarshall/nlvocab/internal/service/deck"
	"github.com/heartmarshall/nlvocab/pkg/ctxutil"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <input-dir> <deck-name> [output-dir]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 2 || flag.NArg() > 3 {
		flag.Usage()
		os.Exit(1)
	}
	inputDir, deckName, outputDir := flag.Arg(0), flag.Arg(1), "deck"
	if flag.NArg() == 3 {
		outputDir = flag.Arg(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting deck", slog.String("version", app.BuildVersion()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxutil.WithRunID(ctx, uuid.New())
	ctx = ctxutil.WithCommand(ctx, "deck")

	corpus, err := filestore.LoadCorpus(inputDir)
	if err != nil {
		logger.ErrorContext(ctx, "load corpus", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := app.NewDeck(cfg, logger).Generate(ctx, deck.Input{
		Records:   corpus.Records(),
		AudioDir:  inputDir,
		DeckName:  deckName,
		OutputDir: outputDir,
	})
	if err != nil {
		logger.ErrorContext(ctx, "generate deck", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "deck written",
		slog.String("path", res.Path),
		slog.Int("notes", res.Notes),
		slog.Int("media", res.Media),
	)
}
