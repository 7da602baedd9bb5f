package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papapumpkin/tuvi/internal/batch"
	"github.com/papapumpkin/tuvi/internal/render"
	"github.com/papapumpkin/tuvi/internal/telemetry"
	"github.com/papapumpkin/tuvi/internal/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Compute charts for every birth in a TOML or YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Bool("watch", false, "recompute whenever the file changes")
	batchCmd.Flags().Int("workers", 0, "charts computed in parallel (default from config)")
	batchCmd.Flags().String("events", "", "append JSON-lines run events to this file")
	batchCmd.Flags().Bool("summary", false, "print the summary only, no chart documents")

	_ = viper.BindPFlag("batch.workers", batchCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("batch.events_file", batchCmd.Flags().Lookup("events"))

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	printer := ui.NewWriter(cmd.ErrOrStderr())
	path := args[0]
	watch, _ := cmd.Flags().GetBool("watch")
	summaryOnly, _ := cmd.Flags().GetBool("summary")

	var emitter *telemetry.Emitter
	if cfg.Batch.EventsFile != "" {
		emitter, err = telemetry.NewEmitter(cfg.Batch.EventsFile)
		if err != nil {
			return err
		}
		defer emitter.Close()
	}

	runner := batch.NewRunner(
		batch.WithWorkers(cfg.Batch.Workers),
		batch.WithLogger(logger),
		batch.WithEmitter(emitter),
	)
	report := func(results []batch.Result, sum batch.Summary) error {
		printer.BatchResults(results)
		printer.BatchSummary(sum)
		if summaryOnly {
			return nil
		}
		return writeCollection(cmd.OutOrStdout(), results, cfg.Format)
	}

	if !watch {
		f, err := batch.Load(path)
		if err != nil {
			printer.Error(err.Error())
			return err
		}
		results, sum, err := runner.Run(contextOf(cmd), f)
		if err != nil {
			return err
		}
		if err := report(results, sum); err != nil {
			return err
		}
		if sum.Failed > 0 {
			return fmt.Errorf("%d of %d birth(s) failed", sum.Failed, sum.Total)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer.Watching(path)
	return runner.Watch(ctx, path, cfg.Debounce(), func(results []batch.Result, sum batch.Summary, err error) {
		if err != nil {
			printer.Error(err.Error())
			return
		}
		if err := report(results, sum); err != nil {
			logger.Warn("writing batch output", zap.Error(err))
		}
	})
}

// writeCollection encodes the charts of a run, skipping failures and
// duplicates.
func writeCollection(w io.Writer, results []batch.Result, format string) error {
	coll := render.Collection{Charts: make([]render.Document, 0, len(results))}
	for _, r := range results {
		if r.Chart == nil || r.DuplicateOf >= 0 {
			continue
		}
		coll.Charts = append(coll.Charts, render.Build(r.Chart, render.Options{}))
	}
	return render.Encode(w, coll, format)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
