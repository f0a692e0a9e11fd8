package cli

import (
	"fmt"
	"os"

	"github.com/IslamTayeb/LLM-file-organizer/internal/index"
	"github.com/spf13/cobra"
)

func RunOrganize(cmd *cobra.Command, args []string) error {
	query := args[0]
	targetDir := args[1]

	baseDir, err := cmd.Flags().GetString("base-dir")
	if err != nil {
		return fmt.Errorf("failed to read --base-dir flag: %w", err)
	}

	ix, err := index.Load(baseDir)
	if err != nil {
		return err
	}
	if len(ix.Entries) == 0 {
		return fmt.Errorf("no indexed files found in %q; run `organizer index` first", baseDir)
	}

	linked, skipped, err := ix.OrganizeByQuery(query, targetDir)
	if err != nil {
		return err
	}
	for _, msg := range skipped {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}

	fmt.Printf("linked %d matching files into %s\n", linked, targetDir)
	return nil
}
