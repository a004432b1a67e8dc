package app_test

import (
	"context"
	"iter"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mkdo/internal/app"
	"go.trai.ch/mkdo/internal/core/domain"
	"go.trai.ch/mkdo/internal/core/ports"
	"go.uber.org/mock/gomock"
)

func eventSeq(events <-chan ports.WatchEvent) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for ev := range events {
			if !yield(ev) {
				return
			}
		}
	}
}

func waitFor(t *testing.T, ch <-chan int) int {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a run")
		return 0
	}
}

func TestApp_Watch_RerunsOnContentChange(t *testing.T) {
	f := newFixture(t)
	doc := f.write(t, "mkdo.md", buildDoc)
	f.withConfig(&domain.Config{})
	f.app.WithDebounce(10 * time.Millisecond)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	events := make(chan ports.WatchEvent)
	f.watcher.EXPECT().Start(gomock.Any(), doc).Return(nil)
	f.watcher.EXPECT().Events().Return(eventSeq(events))
	f.watcher.EXPECT().Stop().Return(nil)

	var runs atomic.Int32
	ran := make(chan int, 8)
	f.bash.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Code, _ *domain.RunContext) int {
			ran <- int(runs.Add(1))
			return 0
		}).
		Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type result struct {
		code int
		err  error
	}
	done := make(chan result, 1)
	go func() {
		code, err := f.app.Run(ctx, "build", nil, app.RunOptions{Cwd: f.dir, Watch: true})
		done <- result{code, err}
	}()

	assert.Equal(t, 1, waitFor(t, ran))

	// Same bytes: no run.
	events <- ports.WatchEvent{Path: doc, Operation: ports.OpWrite}
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(doc, []byte(buildDoc+"\n## test\n\n```bash\ngo test ./...\n```\n"), 0o600))
	events <- ports.WatchEvent{Path: doc, Operation: ports.OpWrite}
	assert.Equal(t, 2, waitFor(t, ran))

	cancel()
	close(events)

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.Equal(t, 0, res.code)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
	assert.Equal(t, int32(2), runs.Load())
}

func TestApp_Watch_ReportsFailedRuns(t *testing.T) {
	f := newFixture(t)
	doc := f.write(t, "mkdo.md", buildDoc)
	f.withConfig(&domain.Config{})

	events := make(chan ports.WatchEvent)
	f.watcher.EXPECT().Start(gomock.Any(), doc).Return(nil)
	f.watcher.EXPECT().Events().Return(eventSeq(events))
	f.watcher.EXPECT().Stop().Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reported := make(chan struct{})
	f.bash.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(4)
	f.logger.EXPECT().Warn("task 'build' exited with code 4").Do(func(string) {
		close(reported)
	})

	done := make(chan int, 1)
	go func() {
		code, _ := f.app.Run(ctx, "build", nil, app.RunOptions{Cwd: f.dir, Watch: true})
		done <- code
	}()

	select {
	case <-reported:
	case <-time.After(5 * time.Second):
		t.Fatal("failed run was not reported")
	}
	cancel()
	close(events)

	assert.Equal(t, 4, waitFor(t, done))
}

func TestApp_Watch_StartFailure(t *testing.T) {
	f := newFixture(t)
	doc := f.write(t, "mkdo.md", buildDoc)
	f.withConfig(&domain.Config{})

	f.watcher.EXPECT().Start(gomock.Any(), doc).Return(domain.ErrWatchFailed)

	code, err := f.app.Run(context.Background(), "build", nil, app.RunOptions{Cwd: f.dir, Watch: true})
	require.ErrorIs(t, err, domain.ErrWatchFailed)
	assert.Equal(t, 1, code)
}

func TestApp_Watch_EventsEndUnexpectedly(t *testing.T) {
	f := newFixture(t)
	doc := f.write(t, "mkdo.md", buildDoc)
	f.withConfig(&domain.Config{})

	events := make(chan ports.WatchEvent)
	close(events)
	f.watcher.EXPECT().Start(gomock.Any(), doc).Return(nil)
	f.watcher.EXPECT().Events().Return(eventSeq(events))
	f.watcher.EXPECT().Stop().Return(nil)
	f.bash.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(0).AnyTimes()

	code, err := f.app.Run(context.Background(), "build", nil, app.RunOptions{Cwd: f.dir, Watch: true})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchFailed.Error())
	assert.Equal(t, 1, code)
}
