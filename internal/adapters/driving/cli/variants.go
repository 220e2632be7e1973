package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/rules"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the available rule sets",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, v := range rules.Variants() {
			marker := " "
			if v.Name == domain.DefaultVariant {
				marker = "*"
			}
			cmd.Printf("%s %-16s %s\n", marker, v.Name, v.Description)
			cmd.Printf("  %-16s rules: %s\n", "", strings.Join(v.Rules, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}
