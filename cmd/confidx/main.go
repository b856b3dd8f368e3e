package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/confidx/confidx"
	"github.com/confidx/confidx/crawl"
	"github.com/confidx/confidx/fs"
	"github.com/confidx/confidx/goquery"
	confidxhttp "github.com/confidx/confidx/http"
	confidxslog "github.com/confidx/confidx/slog"
	"github.com/confidx/confidx/sqlite"
)

func main() {
	// An interrupt cancels the context; the run stops cleanly with no
	// error output and no stack trace.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Data directory holding the index database and the page cache.
	// Set before calling Run().
	DataDir string

	// Site describes the schedule site being crawled.
	Site confidx.Site

	// SQLite database backing the document store.
	DB *sqlite.DB

	// Store is exposed for end-to-end testing.
	Store confidx.DocumentStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DataDir: defaultDataDir(),
		Site:    confidx.NeurIPS2019,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("confidx"),
		kong.Description("Crawl the conference schedule into a locally searchable index"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(m.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %q: %w", m.DataDir, err)
	}

	// Open the index, creating it on first use.
	m.DB = sqlite.NewDB(filepath.Join(m.DataDir, "confidx.db"))
	created, err := m.DB.Open()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: set CONFIDX_DIR to use a different data directory")
		return fmt.Errorf("failed to open index in %q: %w", m.DataDir, err)
	}
	defer m.Close()
	if created {
		fmt.Fprintf(stderr, "created new index in %s\n", m.DataDir)
	}

	m.Store = sqlite.NewDocumentService(m.DB)
	deps.Store = m.Store

	var fetcher confidx.Fetcher = confidxhttp.NewFetcher()
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		fetcher = confidxslog.NewLoggingFetcher(fetcher, logger)
		deps.Store = confidxslog.NewLoggingDocumentStore(deps.Store, logger)
	}

	deps.Indexer = &crawl.Indexer{
		Site:      m.Site,
		Fetcher:   fetcher,
		Cache:     fs.NewPageCache(filepath.Join(m.DataDir, "cache")),
		Parser:    goquery.NewParser(),
		Store:     deps.Store,
		MaxEvents: cli.Index.MaxEvents,
	}

	return kongCtx.Run(deps)
}

// defaultDataDir returns $CONFIDX_DIR, or ~/.confidx as a fallback.
func defaultDataDir() string {
	if dir := os.Getenv("CONFIDX_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".confidx"
	}
	return filepath.Join(home, ".confidx")
}
