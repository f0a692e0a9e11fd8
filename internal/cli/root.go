package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "organizer",
		Short: "Content-aware file organization",
		Long: `Organizer inspects the files in a directory tree, extracts a short
text preview from each (PDF, DOCX, text, images, source code), and uses the
previews either for keyword search or to ask a language model for a plan of
mkdir/cp commands that sorts the files into folders.`,
	}

	indexCmd := &cobra.Command{
		Use:   "index <directory>",
		Short: "Index files in the specified directory",
		Args:  cobra.ExactArgs(1),
		RunE:  RunIndex,
	}

	organizeCmd := &cobra.Command{
		Use:   "organize <query> <target_dir>",
		Short: "Symlink files matching the query into target directory",
		Args:  cobra.ExactArgs(2),
		RunE:  RunOrganize,
	}
	organizeCmd.Flags().String("base-dir", ".", "Base directory containing the index")

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Ask a language model for an organization plan and apply it",
		RunE:  RunPlan,
	}
	planCmd.Flags().String("source", "", "Source directory to organize")
	planCmd.Flags().String("query", "", "What to do with the files")
	planCmd.Flags().Int("depth", -1, "Maximum directory depth to walk (0 = root files only, -1 = unbounded)")
	planCmd.Flags().Bool("yes", false, "Apply the plan without asking")
	_ = planCmd.MarkFlagRequired("source")
	_ = planCmd.MarkFlagRequired("query")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("organizer %s\n", version)
		},
	}

	rootCmd.AddCommand(
		indexCmd,
		organizeCmd,
		planCmd,
		versionCmd,
	)

	return rootCmd
}
