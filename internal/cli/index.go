package cli

import (
	"fmt"
	"os"

	"github.com/IslamTayeb/LLM-file-organizer/internal/index"
	"github.com/spf13/cobra"
)

func RunIndex(cmd *cobra.Command, args []string) error {
	directory := args[0]

	ix, err := index.Load(directory)
	if err != nil {
		return err
	}

	count, issues, err := ix.Update(directory)
	if err != nil {
		return fmt.Errorf("failed to index %q: %w", directory, err)
	}
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", issue.Path, issue.Message)
	}

	if err := ix.Save(); err != nil {
		return err
	}

	fmt.Printf("indexed %d files in %s\n", count, directory)
	if stale := ix.StaleEntries(); len(stale) > 0 {
		fmt.Printf("%d index entries point at files that no longer exist\n", len(stale))
	}
	return nil
}
