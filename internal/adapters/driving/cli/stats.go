package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
)

var statsFieldFlag string

var statsCmd = &cobra.Command{
	Use:   "stats [dir]",
	Short: "Show the distribution of a field's values",
	Long: `Counts the values of a field across all documents, most frequent first.
Category values outside the approved set are flagged. Nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatsCmd,
}

func init() {
	statsCmd.Flags().StringVar(&statsFieldFlag, "field", domain.FieldCategory, "field to tabulate")
	rootCmd.AddCommand(statsCmd)
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args, "")
	if err != nil {
		return err
	}

	n, cleanup, err := newNormaliser(cfg, false)
	if err != nil {
		return err
	}
	defer closeQuietly(cleanup)

	rows, err := n.Distribution(cmd.Context(), statsFieldFlag)
	if err != nil {
		return fmt.Errorf("distribution: %w", err)
	}

	out := cmd.OutOrStdout()
	printDistribution(out, newReportStyles(out), statsFieldFlag, rows, cfg.Categories)
	return nil
}
