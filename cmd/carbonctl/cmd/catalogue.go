package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var manufacturersCmd = &cobra.Command{
	Use:   "manufacturers",
	Short: "List catalogue manufacturers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, a, _, err := session(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ms, err := a.Parts.ListManufacturers(ctx)
		if err != nil {
			return err
		}
		for _, m := range ms {
			fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	},
}

var partsManufacturer string

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "List the parts of one manufacturer",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, a, _, err := session(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		parts, err := a.Parts.ListParts(ctx, partsManufacturer)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "PART\tSERIAL")
		for _, p := range parts {
			fmt.Fprintf(tw, "%s\t%s\n", p.PartName, p.SerialID)
		}
		return tw.Flush()
	},
}

func init() {
	partsCmd.Flags().StringVarP(&partsManufacturer, "manufacturer", "m", "", "manufacturer name")
	_ = partsCmd.MarkFlagRequired("manufacturer")
}
