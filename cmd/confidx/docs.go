package main

import (
	"fmt"

	"github.com/confidx/confidx"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	docs, err := deps.Store.ListDocuments(deps.Ctx)
	if err != nil {
		return err
	}

	if out := confidx.FormatDocuments(docs); out != "" {
		fmt.Fprint(deps.Stdout, out)
	}
	return nil
}
