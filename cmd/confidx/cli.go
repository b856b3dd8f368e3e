package main

import (
	"context"
	"io"

	"github.com/confidx/confidx"
	"github.com/confidx/confidx/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Store   confidx.DocumentStore
	Indexer *crawl.Indexer
}

// CLI defines the command-line interface structure for Kong. Running with
// no command builds the index.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Index IndexCmd `cmd:"" default:"1" help:"Crawl the schedule and index new events"`
	Docs  DocsCmd  `cmd:"" help:"Print all indexed documents"`
	Find  FindCmd  `cmd:"" help:"Search indexed documents"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	MaxEvents int `short:"m" help:"Max number of newly indexed events in one run"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct{}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Text string `arg:"" help:"Text to search for"`
}
