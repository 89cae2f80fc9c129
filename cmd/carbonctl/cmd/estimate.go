package cmd

import (
	"carbon-logistics-service/internal/report"
	"carbon-logistics-service/internal/services"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	estimateReq  services.CalculateRequest
	outputFormat string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate emissions for one part and its legs",
	Long: `Resolve the pickup and delivery places, compute the local leg (and the
global leg when both global places are given) and print the emission totals.

Figures are rounded half-up to two decimals.`,
	RunE: runEstimate,
}

func init() {
	f := estimateCmd.Flags()
	f.StringVarP(&estimateReq.Manufacturer, "manufacturer", "m", "", "manufacturer name")
	f.StringVarP(&estimateReq.PartName, "part", "p", "", "part name")
	f.StringVarP(&estimateReq.SerialID, "serial", "s", "", "serial id")
	f.StringVarP(&estimateReq.EquipmentType, "equipment", "e", "New", "equipment age (Old, New)")
	f.StringVar(&estimateReq.Pickup, "pickup", "", "local pickup place")
	f.StringVar(&estimateReq.Delivery, "delivery", "", "local delivery place")
	f.StringVar(&estimateReq.GlobalPickup, "global-pickup", "", "global pickup place")
	f.StringVar(&estimateReq.GlobalDelivery, "global-delivery", "", "global delivery place")
	f.StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("unsupported format %q", outputFormat)
	}
	if err := estimateReq.Validate(); err != nil {
		return err
	}

	ctx, a, _, err := session(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Calculator.Calculate(ctx, estimateReq)
	if err != nil {
		return err
	}

	r := report.FromResult(res)
	if outputFormat == "json" {
		return report.WriteJSON(cmd.OutOrStdout(), r)
	}
	return report.WriteText(cmd.OutOrStdout(), r)
}
