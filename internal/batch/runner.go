package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/papapumpkin/tuvi/internal/chart"
	"github.com/papapumpkin/tuvi/internal/logging"
	"github.com/papapumpkin/tuvi/internal/telemetry"
)

// DefaultWorkers is the worker bound when none is configured.
const DefaultWorkers = 4

// Result is the outcome for one record. Exactly one of Chart and Err is set.
type Result struct {
	Index int
	Label string
	Chart *chart.Chart
	Err   error
	// DuplicateOf is the index of an earlier record that produced the same
	// chart, or -1.
	DuplicateOf int
}

// Summary counts the outcomes of a run.
type Summary struct {
	RunID      string
	Total      int
	Computed   int
	Failed     int
	Duplicates int
	Elapsed    time.Duration
}

// Runner computes the charts of a batch file concurrently.
type Runner struct {
	workers int
	logger  *zap.Logger
	emitter *telemetry.Emitter
	now     func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the maximum number of charts computed at once.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the logger for per-record diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = logging.OrNop(l) }
}

// WithEmitter records run events to a telemetry stream.
func WithEmitter(e *telemetry.Emitter) Option {
	return func(r *Runner) { r.emitter = e }
}

// NewRunner returns a Runner with DefaultWorkers and a no-op logger unless
// overridden.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		workers: DefaultWorkers,
		logger:  logging.Nop(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run computes every record of f. A record that fails is reported in its
// Result and does not stop the others. Run returns an error only when ctx is
// cancelled before all records are done.
func (r *Runner) Run(ctx context.Context, f *File) ([]Result, Summary, error) {
	start := r.now()
	runID := uuid.NewString()
	log := r.logger.With(zap.String("run", runID))
	r.emit(telemetry.Event{
		Kind:  telemetry.KindRunStart,
		RunID: runID,
		Data:  map[string]any{"file": f.Path, "births": len(f.Births), "workers": r.workers},
	})
	log.Debug("batch run started", zap.Int("births", len(f.Births)), zap.Int("workers", r.workers))

	results := make([]Result, len(f.Births))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, rec := range f.Births {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.compute(runID, i, rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, fmt.Errorf("batch run: %w", err)
	}

	sum := Summary{RunID: runID, Total: len(results)}
	seen := make(map[string]int, len(results))
	for i := range results {
		res := &results[i]
		if res.Err != nil {
			sum.Failed++
			continue
		}
		sum.Computed++
		if first, ok := seen[res.Chart.ID]; ok {
			res.DuplicateOf = first
			sum.Duplicates++
			r.emit(telemetry.Event{
				Kind:    telemetry.KindDuplicate,
				RunID:   runID,
				ChartID: res.Chart.ID,
				Record:  res.Label,
				Data:    map[string]int{"first": first + 1},
			})
			log.Info("duplicate birth", zap.String("record", res.Label), zap.Int("first", first+1))
			continue
		}
		seen[res.Chart.ID] = i
	}
	sum.Elapsed = r.now().Sub(start)

	r.emit(telemetry.Event{
		Kind:  telemetry.KindRunDone,
		RunID: runID,
		Data: map[string]any{
			"computed":   sum.Computed,
			"failed":     sum.Failed,
			"duplicates": sum.Duplicates,
			"elapsed_ms": sum.Elapsed.Milliseconds(),
		},
	})
	log.Debug("batch run done",
		zap.Int("computed", sum.Computed),
		zap.Int("failed", sum.Failed),
		zap.Duration("elapsed", sum.Elapsed))
	return results, sum, nil
}

func (r *Runner) compute(runID string, i int, rec Record) Result {
	res := Result{Index: i, Label: rec.Label(i), DuplicateOf: -1}
	in, err := rec.Input()
	if err == nil {
		res.Chart, err = chart.Compute(in)
	}
	if err != nil {
		res.Err = err
		r.emit(telemetry.Event{
			Kind:   telemetry.KindChartFailed,
			RunID:  runID,
			Record: res.Label,
			Data:   map[string]string{"error": err.Error()},
		})
		r.logger.Warn("chart failed", zap.String("run", runID), zap.String("record", res.Label), zap.Error(err))
		return res
	}
	r.emit(telemetry.Event{
		Kind:    telemetry.KindChartComputed,
		RunID:   runID,
		ChartID: res.Chart.ID,
		Record:  res.Label,
		Data: map[string]any{
			"bureau": res.Chart.Bureau.Value(),
			"self":   res.Chart.SelfBranch.Code(),
		},
	})
	return res
}

func (r *Runner) emit(evt telemetry.Event) {
	if err := r.emitter.Emit(evt); err != nil {
		r.logger.Warn("telemetry", zap.Error(err))
	}
}

// Watch runs the file at path once and again after every change, handing
// each outcome to handle. Decode errors after a change are handed over as
// a nil result set with the error, and the watch goes on. Watch returns
// when ctx is done.
func (r *Runner) Watch(ctx context.Context, path string, debounce time.Duration, handle func([]Result, Summary, error)) error {
	w, err := NewWatcher(path, debounce)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()

	runOnce := func() error {
		f, err := Load(path)
		if err != nil {
			handle(nil, Summary{}, err)
			return nil
		}
		results, sum, err := r.Run(ctx, f)
		if err != nil {
			return err
		}
		handle(results, sum, nil)
		return nil
	}

	if err := runOnce(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ch, ok := <-w.Changes:
			if !ok {
				return nil
			}
			r.emit(telemetry.Event{
				Kind: telemetry.KindReload,
				Data: map[string]string{"file": ch.File, "change": ch.Kind.String()},
			})
			r.logger.Info("batch file changed", zap.String("file", ch.File), zap.Stringer("change", ch.Kind))
			if ch.Kind == ChangeRemoved {
				continue
			}
			if err := runOnce(); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}
