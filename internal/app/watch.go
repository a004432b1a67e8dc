package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/mkdo/internal/adapters/watcher" //nolint:depguard // Debouncing and content digests
	"go.trai.ch/mkdo/internal/core/domain"
	"go.trai.ch/mkdo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// watch runs the task, then runs it again each time the document or a file
// matched by globs changes content, until ctx is done. Runs never overlap.
// It returns the exit code of the last run.
func (a *App) watch(
	ctx context.Context,
	s *session,
	name string,
	rc *domain.RunContext,
	tracer ports.Tracer,
	globs []string,
) (int, error) {
	targets, err := watchTargets(s, globs)
	if err != nil {
		return 1, err
	}

	if err := a.watcher.Start(ctx, targets...); err != nil {
		return 1, err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	// Record current contents so the first event that rewrites identical
	// bytes does not trigger a run.
	cache := watcher.NewContentCache()
	for _, target := range targets {
		_, _ = cache.Changed(target)
	}

	rerun := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		if !a.contentChanged(cache, paths) {
			return
		}
		select {
		case rerun <- paths:
		default:
		}
	})
	defer debouncer.Stop()

	g, gctx := errgroup.WithContext(ctx)
	code := 0

	// Event Routine
	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		if ctx.Err() != nil {
			return nil
		}
		return zerr.Wrap(domain.ErrWatchFailed, "file events ended")
	})

	// Runner Routine
	g.Go(func() error {
		code = a.runWatched(gctx, s, name, rc, tracer)
		for {
			select {
			case <-gctx.Done():
				return nil
			case paths := <-rerun:
				rc.Info(fmt.Sprintf("%s changed, running '%s' again", displayPath(s.cwd, paths[0]), name))
				code = a.runWatched(gctx, s, name, rc, tracer)
			}
		}
	})

	if err := g.Wait(); err != nil {
		return 1, err
	}
	return code, nil
}

// runWatched runs the task once and reports failures instead of returning
// them, so the watch keeps going.
func (a *App) runWatched(
	ctx context.Context,
	s *session,
	name string,
	rc *domain.RunContext,
	tracer ports.Tracer,
) int {
	code, err := a.runTask(ctx, s, name, rc, tracer)
	if err != nil {
		a.logger.Error(err)
		return code
	}
	if code != 0 {
		rc.Fail(fmt.Sprintf("task '%s' exited with code %d", name, code))
	}
	return code
}

// contentChanged updates the digests of paths and reports whether any of
// them changed.
func (a *App) contentChanged(cache *watcher.ContentCache, paths []string) bool {
	changed := false
	for _, path := range paths {
		ok, err := cache.Changed(path)
		if err != nil {
			a.logger.Error(zerr.With(zerr.Wrap(err, "failed to read watched file"), "file", path))
			continue
		}
		changed = changed || ok
	}
	return changed
}

// watchTargets returns the document followed by the files matching globs.
// Relative globs are matched from the working directory.
func watchTargets(s *session, globs []string) ([]string, error) {
	targets := []string{s.file}
	seen := map[string]struct{}{s.file: {}}

	for _, pattern := range globs {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(s.cwd, pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid watch glob"), "pattern", pattern)
		}
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			targets = append(targets, match)
		}
	}

	return targets, nil
}

func displayPath(cwd, path string) string {
	if rel, err := filepath.Rel(cwd, path); err == nil {
		return rel
	}
	return path
}
