package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration exhibitfix runs with: the config file merged
over the built-in defaults, including the category table.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Long: `Writes the effective configuration to the config file so the directory,
variant and category table can be edited. Values already in the file are kept.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if openConfig == nil {
		return errNotConfigured
	}
	store, err := openConfig(configPath)
	if err != nil {
		return err
	}

	data, err := toml.Marshal(store.Config())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	out := cmd.OutOrStdout()
	if path := store.Path(); path != "" {
		fmt.Fprintf(out, "# %s\n", path)
	}
	_, err = out.Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if openConfig == nil {
		return errNotConfigured
	}
	store, err := openConfig(configPath)
	if err != nil {
		return err
	}

	if err := store.Update(store.Config()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", store.Path())
	return nil
}
