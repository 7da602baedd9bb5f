package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/tuvi/internal/chart"
	"github.com/papapumpkin/tuvi/internal/lunar"
	"github.com/papapumpkin/tuvi/internal/render"
)

var solarCmd = &cobra.Command{
	Use:   "solar <YYYY-MM-DD>",
	Short: "Convert a lunar date to the solar calendar",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolar,
}

func init() {
	solarCmd.Flags().Bool("leap", false, "the month is the leap month")
	rootCmd.AddCommand(solarCmd)
}

func runSolar(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	year, month, day, err := chart.ParseDate(args[0])
	if err != nil {
		return err
	}
	leap, _ := cmd.Flags().GetBool("leap")

	m, err := lunar.ResolveLunar(lunar.Date{Day: day, Month: month, Year: year, Leap: leap}, 0)
	if err != nil {
		return err
	}
	return render.Encode(cmd.OutOrStdout(), render.NewConversion(m, false), cfg.Format)
}
