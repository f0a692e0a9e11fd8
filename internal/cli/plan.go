package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/IslamTayeb/LLM-file-organizer/internal/config"
	"github.com/IslamTayeb/LLM-file-organizer/internal/execute"
	"github.com/IslamTayeb/LLM-file-organizer/internal/extract"
	"github.com/IslamTayeb/LLM-file-organizer/internal/plan"
	"github.com/IslamTayeb/LLM-file-organizer/internal/walker"
	"github.com/spf13/cobra"
)

func RunPlan(cmd *cobra.Command, args []string) error {
	source, err := cmd.Flags().GetString("source")
	if err != nil {
		return fmt.Errorf("failed to read --source flag: %w", err)
	}
	query, err := cmd.Flags().GetString("query")
	if err != nil {
		return fmt.Errorf("failed to read --query flag: %w", err)
	}
	depth, err := cmd.Flags().GetInt("depth")
	if err != nil {
		return fmt.Errorf("failed to read --depth flag: %w", err)
	}
	assumeYes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return fmt.Errorf("failed to read --yes flag: %w", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	sourceAbs, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("failed to resolve source %q: %w", source, err)
	}

	records, issues, err := walker.Walk(sourceAbs, walker.Options{
		MaxDepth:   depth,
		Extensions: extract.RecognizedExtensions(),
	})
	if err != nil {
		return err
	}
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", issue.Path, issue.Message)
	}
	if len(records) == 0 {
		return fmt.Errorf("no recognized files under %q", sourceAbs)
	}

	fmt.Printf("analyzing %d files...\n", len(records))
	summaries := plan.Summarize(records)

	logPath, err := plan.WriteAnalysisLog(sourceAbs, query, summaries)
	if err != nil {
		return err
	}
	fmt.Printf("analysis log written to %s\n", logPath)

	generator := plan.NewGenerator(cfg)
	proposed := generator.Propose(cmd.Context(), query, summaries)

	fmt.Printf("\n%s\n", proposed.Explanation)
	if len(proposed.Commands) == 0 {
		fmt.Println("no commands proposed; nothing to do")
		return nil
	}

	fmt.Println("\nproposed commands:")
	for _, command := range proposed.Commands {
		fmt.Printf("  %s\n", command)
	}

	if !assumeYes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout()) {
		fmt.Println("aborted")
		return nil
	}

	runner := execute.NewRunner(sourceAbs)
	if err := runner.Run(cmd.Context(), proposed.Commands); err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}

	fmt.Println("plan applied")
	return nil
}
