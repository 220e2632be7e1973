package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driving"
)

var (
	watchVariant string
	watchDryRun  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Normalise documents as they change",
	Long: `Watches the directory and normalises each document when it is created
or saved. Runs until interrupted. Holds the directory's batch lock, so a
concurrent 'exhibitfix run' on the same directory is refused.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchVariant, "variant", "", "rule set to run (see 'exhibitfix variants')")
	watchCmd.Flags().BoolVar(&watchDryRun, "dry-run", false, "report changes without writing them")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args, watchVariant)
	if err != nil {
		return err
	}

	n, cleanup, err := newNormaliser(cfg, true)
	if err != nil {
		return err
	}
	defer closeQuietly(cleanup)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	st := newReportStyles(out)
	fmt.Fprintf(out, "Watching %s (variant %s). Press Ctrl+C to stop.\n", n.Dir(), n.Variant())

	report := func(fr *domain.FileResult) {
		printFileResult(out, st, n.Dir(), *fr)
	}
	if err := n.Watch(ctx, driving.RunOptions{DryRun: watchDryRun}, report); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
