package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driving"
	"github.com/custodia-labs/exhibitfix/internal/rules"
)

// statsNone disables the distribution table.
const statsNone = "none"

var (
	runVariant  string
	runDryRun   bool
	runCheck    bool
	runFailFast bool
	runStats    string
)

var runCmd = &cobra.Command{
	Use:   "run [dir]",
	Short: "Normalise every document in a directory",
	Long: `Applies the selected variant's rules to every document in the directory
and rewrites the documents that changed. The directory defaults to the one in
the config file.

Failed reads and writes are reported and the run continues, unless
--fail-fast is given. Use --check in CI to fail when documents are not
normalised.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runVariant, "variant", "", "rule set to run (see 'exhibitfix variants')")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "report changes without writing them")
	runCmd.Flags().BoolVar(&runCheck, "check", false, "dry run that fails if any document would change")
	runCmd.Flags().BoolVar(&runFailFast, "fail-fast", false, "abort on the first unreadable or unwritable document")
	runCmd.Flags().StringVar(&runStats, "stats", "", "field to tabulate after the run (default per variant, 'none' to disable)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args, runVariant)
	if err != nil {
		return err
	}

	n, cleanup, err := newNormaliser(cfg, false)
	if err != nil {
		return err
	}
	defer closeQuietly(cleanup)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	st := newReportStyles(out)
	fmt.Fprintf(out, "Normalising %s (variant %s)\n\n", n.Dir(), n.Variant())

	opts := driving.RunOptions{
		DryRun:   runDryRun || runCheck,
		FailFast: runFailFast,
	}
	result, runErr := n.Run(ctx, opts)
	if result != nil {
		printBatchResult(out, st, result)
	}
	if runErr != nil {
		return fmt.Errorf("run failed: %w", runErr)
	}

	if field := statsField(n.Variant(), runStats); field != "" {
		rows, err := n.Distribution(ctx, field)
		if err != nil {
			return fmt.Errorf("distribution: %w", err)
		}
		printDistribution(out, st, field, rows, cfg.Categories)
	}

	if failed := result.FailedCount(); failed > 0 {
		return fmt.Errorf("%d of %d documents could not be processed", failed, result.Total())
	}
	if runCheck && result.ChangedCount() > 0 {
		return fmt.Errorf("%d of %d documents need normalising: %w",
			result.ChangedCount(), result.Total(), domain.ErrChangesPending)
	}
	return nil
}

// statsField picks the field to tabulate: the flag if set, else the variant's default.
func statsField(variant, flag string) string {
	switch flag {
	case statsNone:
		return ""
	case "":
		if v, err := rules.LookupVariant(variant); err == nil {
			return v.StatsField
		}
		return ""
	default:
		return flag
	}
}
