package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/tuvi/internal/chart"
	"github.com/papapumpkin/tuvi/internal/lunar"
	"github.com/papapumpkin/tuvi/internal/render"
)

var lunarCmd = &cobra.Command{
	Use:   "lunar <YYYY-MM-DD>",
	Short: "Convert a solar date to the lunar calendar",
	Args:  cobra.ExactArgs(1),
	RunE:  runLunar,
}

func init() {
	lunarCmd.Flags().String("time", "", "clock time as HH:MM; adds the hour pillar")
	rootCmd.AddCommand(lunarCmd)
}

func runLunar(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	year, month, day, err := chart.ParseDate(args[0])
	if err != nil {
		return err
	}
	clock, _ := cmd.Flags().GetString("time")
	hour, _, err := chart.ParseClock(clock)
	if err != nil {
		return err
	}

	m, err := lunar.Resolve(day, month, year, hour)
	if err != nil {
		return err
	}
	return render.Encode(cmd.OutOrStdout(), render.NewConversion(m, clock != ""), cfg.Format)
}
