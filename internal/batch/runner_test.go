package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papapumpkin/tuvi/internal/chart"
	"github.com/papapumpkin/tuvi/internal/telemetry"
)

func mixedFile() *File {
	return &File{Path: "mixed.toml", Births: []Record{
		{Name: "Lan", Date: "1995-03-02", Time: "08:30", Sex: "female"},
		{Name: "bad", Date: "1995-02-30", Sex: "female"},
		// Same birth as Lan under another name.
		{Name: "Lan again", Date: "1995-03-02", Time: "08:30", Sex: "f"},
		{Name: "Minh", Date: "1995-03-02", Time: "08:30", Sex: "male"},
		{Name: "no leap", Date: "2024-04-01", Sex: "male", Lunar: true, Leap: true},
	}}
}

func readEvents(t *testing.T, path string) []telemetry.Event {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []telemetry.Event
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var evt telemetry.Event
		require.NoError(t, json.Unmarshal(sc.Bytes(), &evt))
		events = append(events, evt)
	}
	require.NoError(t, sc.Err())
	return events
}

func TestRunnerRun(t *testing.T) {
	t.Parallel()

	eventsPath := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := telemetry.NewEmitter(eventsPath)
	require.NoError(t, err)

	r := NewRunner(WithWorkers(2), WithEmitter(em))
	results, sum, err := r.Run(context.Background(), mixedFile())
	require.NoError(t, err)
	require.NoError(t, em.Close())

	require.Len(t, results, 5)
	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.True(t, (res.Chart == nil) != (res.Err == nil), "record %d: exactly one of chart and error", i)
	}
	assert.Equal(t, "#1 Lan", results[0].Label)
	assert.Equal(t, -1, results[0].DuplicateOf)
	assert.Equal(t, 0, results[2].DuplicateOf)
	assert.Equal(t, -1, results[3].DuplicateOf)
	assert.NotEqual(t, results[0].Chart.ID, results[3].Chart.ID)

	var ie *chart.InputError
	assert.ErrorAs(t, results[1].Err, &ie)
	assert.Error(t, results[4].Err)

	assert.Equal(t, 5, sum.Total)
	assert.Equal(t, 3, sum.Computed)
	assert.Equal(t, 2, sum.Failed)
	assert.Equal(t, 1, sum.Duplicates)
	assert.NotEmpty(t, sum.RunID)

	kinds := map[string]int{}
	for _, evt := range readEvents(t, eventsPath) {
		kinds[evt.Kind]++
		assert.Equal(t, sum.RunID, evt.RunID)
	}
	assert.Equal(t, map[string]int{
		telemetry.KindRunStart:      1,
		telemetry.KindChartComputed: 3,
		telemetry.KindChartFailed:   2,
		telemetry.KindDuplicate:     1,
		telemetry.KindRunDone:       1,
	}, kinds)
}

func TestRunnerDeterministicAcrossWorkerCounts(t *testing.T) {
	t.Parallel()

	f := mixedFile()
	one, _, err := NewRunner(WithWorkers(1)).Run(context.Background(), f)
	require.NoError(t, err)
	many, _, err := NewRunner(WithWorkers(8)).Run(context.Background(), f)
	require.NoError(t, err)

	for i := range one {
		if one[i].Chart == nil {
			assert.Nil(t, many[i].Chart)
			continue
		}
		assert.Equal(t, one[i].Chart.ID, many[i].Chart.ID)
	}
}

func TestRunnerCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewRunner().Run(ctx, mixedFile())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithWorkersIgnoresNonPositive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultWorkers, NewRunner(WithWorkers(0)).workers)
	assert.Equal(t, 3, NewRunner(WithWorkers(3)).workers)
}

func TestRunnerWatch(t *testing.T) {
	path := writeFile(t, "births.toml", tomlBatch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type outcome struct {
		n   int
		err error
	}
	outcomes := make(chan outcome, 8)
	var wg sync.WaitGroup
	wg.Add(1)
	var watchErr error
	go func() {
		defer wg.Done()
		watchErr = NewRunner().Watch(ctx, path, 20*time.Millisecond, func(rs []Result, _ Summary, err error) {
			outcomes <- outcome{n: len(rs), err: err}
		})
	}()

	next := func() outcome {
		t.Helper()
		select {
		case o := <-outcomes:
			return o
		case <-time.After(3 * time.Second):
			t.Fatal("timed out waiting for a run")
			return outcome{}
		}
	}

	first := next()
	require.NoError(t, first.err)
	assert.Equal(t, 2, first.n)

	one := "[[birth]]\ndate = \"2000-01-01\"\nsex = \"m\"\n"
	require.NoError(t, os.WriteFile(path, []byte(one), 0o644))
	second := next()
	require.NoError(t, second.err)
	assert.Equal(t, 1, second.n)

	require.NoError(t, os.WriteFile(path, []byte("[[birth]\n"), 0o644))
	third := next()
	assert.Error(t, third.err)

	cancel()
	wg.Wait()
	assert.NoError(t, watchErr)
}
