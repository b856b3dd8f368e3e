package main

import (
	"fmt"

	"github.com/confidx/confidx"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	docs, err := deps.Store.SearchDocuments(deps.Ctx, c.Text)
	if err != nil {
		return err
	}

	if out := confidx.FormatDocuments(docs); out != "" {
		fmt.Fprint(deps.Stdout, out)
	}
	return nil
}
