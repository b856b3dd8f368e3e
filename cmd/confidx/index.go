package main

import (
	"fmt"

	"github.com/confidx/confidx/crawl"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	result, err := deps.Indexer.Run(deps.Ctx, func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressEventSkipped:
			fmt.Fprintf(deps.Stdout, "event %s exists, skipping\n", event.ID)
		case crawl.ProgressEventAdded:
			fmt.Fprintf(deps.Stdout, "adding event %s\n", event.ID)
		case crawl.ProgressSpeakerAdded:
			fmt.Fprintf(deps.Stdout, "adding speaker %s\n", event.ID)
		case crawl.ProgressCapReached:
			fmt.Fprintf(deps.Stdout, "max events reached (%d), stopping\n", deps.Indexer.MaxEvents)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "indexed %d events and %d speakers (%d skipped)\n",
		result.EventsAdded, result.SpeakersAdded, result.EventsSkipped)
	return nil
}
