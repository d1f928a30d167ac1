// Command analyzer counts the lemmas of a Dutch text and walks them from the
// most frequent down, asking for each unclassified word whether it is known.
// Answers are saved to the known and unknown word files after every prompt.
// The session stops once the known words cover the configured share of the
// text or the frequency drops to the configured floor.
//
// Usage:
//
//	analyzer [flags] <text-file>
//
// Flags:
//
//	--known-words-file    known words file (overrides config)
//	--unknown-words-file  unknown words file (overrides config)
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

	"github.com/heartmarshall/nlvocab/internal/app"
	"github.com/heartmarshall/nlvocab/internal/config"
	"github.com/heartmarshall/nlvocab/internal/transport/console"
	"github.com/heartmarshall/nlvocab/pkg/ctxutil"
)

func main() {
	knownFlag := flag.String("known-words-file", "", "known words file (overrides config)")
	unknownFlag := flag.String("unknown-words-file", "", "unknown words file (overrides config)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <text-file>\n", os.Args[0])
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

	// CLI flags override config.
	if *knownFlag != "" {
		cfg.Files.KnownWords = *knownFlag
	}
	if *unknownFlag != "" {
		cfg.Files.UnknownWords = *unknownFlag
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting analyzer", slog.String("version", app.BuildVersion()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxutil.WithRunID(ctx, uuid.New())
	ctx = ctxutil.WithCommand(ctx, "analyzer")

	svc, err := app.NewAnalyzer(cfg, logger, console.New(os.Stdin, os.Stdout))
	if err != nil {
		logger.ErrorContext(ctx, "build analyzer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := svc.Run(ctx, flag.Arg(0))
	if err != nil {
		logger.ErrorContext(ctx, "triage failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "triage finished",
		slog.String("reason", string(res.Reason)),
		slog.Int("presented", res.Presented),
		slog.Int("known", res.MarkedKnown),
		slog.Int("unknown", res.MarkedUnknown),
		slog.Int("skipped", res.Skipped),
	)
}
