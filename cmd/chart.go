package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/tuvi/internal/batch"
	"github.com/papapumpkin/tuvi/internal/chart"
	"github.com/papapumpkin/tuvi/internal/render"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute the natal chart for one birth",
	Example: `  tuvi chart --date 1995-03-02 --time 08:30 --sex female
  tuvi chart --date 1995-02-02 --lunar --sex m --year 2025 -f text`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().String("date", "", "birth date as YYYY-MM-DD (required)")
	chartCmd.Flags().String("time", "", "birth time as HH:MM (default 00:00)")
	chartCmd.Flags().String("sex", "", "male or female (required)")
	chartCmd.Flags().Bool("lunar", false, "the date is on the lunar calendar")
	chartCmd.Flags().Bool("leap", false, "the lunar month is the leap month")
	chartCmd.Flags().String("name", "", "name shown on the chart")
	chartCmd.Flags().Int("age", 0, "show the periods in force at this age")
	chartCmd.Flags().Int("year", 0, "show the periods in force in this calendar year")
	_ = chartCmd.MarkFlagRequired("date")
	_ = chartCmd.MarkFlagRequired("sex")

	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	flags := cmd.Flags()
	rec := batch.Record{}
	rec.Date, _ = flags.GetString("date")
	rec.Time, _ = flags.GetString("time")
	rec.Sex, _ = flags.GetString("sex")
	rec.Name, _ = flags.GetString("name")
	rec.Lunar, _ = flags.GetBool("lunar")
	rec.Leap, _ = flags.GetBool("leap")

	in, err := rec.Input()
	if err != nil {
		return err
	}
	c, err := chart.Compute(in)
	if err != nil {
		return err
	}
	logger.Debug("chart computed",
		zap.String("chart_id", c.ID),
		zap.String("self", c.SelfBranch.String()),
		zap.String("bureau", c.Bureau.String()),
	)

	opts := render.Options{}
	opts.Age, _ = flags.GetInt("age")
	opts.Year, _ = flags.GetInt("year")
	if opts.Age < 0 {
		return fmt.Errorf("age must be positive: %d", opts.Age)
	}
	if opts.Year < 0 {
		return fmt.Errorf("year must be positive: %d", opts.Year)
	}
	if opts.Age == 0 && opts.Year == 0 {
		opts.Year = cfg.Year(time.Now())
	}

	return render.Encode(cmd.OutOrStdout(), render.Build(c, opts), cfg.Format)
}
