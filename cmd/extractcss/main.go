package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/extractcss"
	"github.com/fwojciec/extractcss/fs"
	"github.com/fwojciec/extractcss/goquery"
	exhttp "github.com/fwojciec/extractcss/http"
	"github.com/fwojciec/extractcss/rod"
	exslog "github.com/fwojciec/extractcss/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Extractor replaces the browser or static extractor built from flags.
	// Set before calling Run(), mainly for end-to-end tests.
	Extractor extractcss.Extractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("extractcss"),
		kong.Description("Extract all CSS applied to rendered web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	waitUntil, err := extractcss.ParseWaitUntil(cli.WaitUntil)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	extractor := m.Extractor
	if extractor == nil {
		extractor, err = newExtractor(cli, logger)
		if err != nil {
			if !cli.Static {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --static")
			}
			return err
		}
		defer extractor.Close()
	}
	deps.Extractor = exslog.NewLoggingExtractor(extractor, logger)

	if cli.OutDir != "" {
		deps.Writer = fs.NewWriter(cli.OutDir)
	}

	cmd := &ExtractCmd{
		URLs:        cli.URLs,
		Options:     extractcss.Options{WaitUntil: waitUntil},
		Concurrency: cli.Concurrency,
		Rate:        cli.Rate,
		Burst:       cli.Burst,
	}

	return cmd.Run(deps)
}

// newExtractor builds the extractor selected by the flags.
func newExtractor(cli *CLI, logger *slog.Logger) (extractcss.Extractor, error) {
	fetcher := exslog.NewLoggingFetcher(exhttp.NewFetcher(exhttp.WithTimeout(cli.Timeout)), logger)

	if cli.Static {
		return goquery.NewExtractor(fetcher), nil
	}

	extractor, err := rod.NewExtractor(
		rod.WithTimeout(cli.Timeout),
		rod.WithFetcher(fetcher),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return extractor, nil
}
