package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the catalogue schema and load the seed file",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedPath, "seed", "", "seed file (default SEED_PATH)")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	_, a, logger, err := session(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	path := seedPath
	if path == "" {
		path = a.Config.SeedPath
	}

	if err := a.InitAndSeed(logger, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Catalogue ready (%s).\n", path)
	return nil
}
