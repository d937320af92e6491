package build

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher watches the build root and re-runs a full build when source
// documents change. Every rebuild starts from a fresh store, so remote
// snippet sources are re-pulled each cycle.
type Watcher struct {
	builder      *Builder
	rootDir      string
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	log          zerolog.Logger
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
}

// NewWatcher creates a file watcher driving the given builder.
func NewWatcher(builder *Builder, logger zerolog.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		builder:      builder,
		rootDir:      builder.rootDir,
		watcher:      watcher,
		debounceTime: 500 * time.Millisecond,
		log:          logger,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}

	if err := w.addDirectoriesRecursively(w.rootDir); err != nil {
		watcher.Close()
		return nil, err
	}

	return w, nil
}

// Start begins watching for document changes.
func (w *Watcher) Start(ctx context.Context) {
	go w.watch(ctx)
}

// Stop stops the watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		w.watcher.Close()
	})
}

// watch is the main event loop with debouncing logic.
func (w *Watcher) watch(ctx context.Context) {
	defer close(w.doneCh)

	var debounceTimer *time.Timer
	rebuildCh := make(chan struct{}, 1)
	changed := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.shouldProcessEvent(event) {
				continue
			}

			relPath, _ := filepath.Rel(w.rootDir, event.Name)
			changed[relPath] = true

			// New directories need watching too.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addDirectoriesRecursively(event.Name); err != nil {
						w.log.Warn().Err(err).Str("path", event.Name).Msg("Failed to watch new directory")
					}
				}
			}

			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}

			debounceTimer = time.AfterFunc(w.debounceTime, func() {
				select {
				case rebuildCh <- struct{}{}:
				default:
				}
			})

		case <-rebuildCh:
			w.rebuild(ctx, changed)
			changed = make(map[string]bool)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("File watcher error")
		}
	}
}

// rebuild runs one full build cycle after a change batch.
func (w *Watcher) rebuild(ctx context.Context, changed map[string]bool) {
	if len(changed) == 0 {
		return
	}

	w.log.Info().Int("files", len(changed)).Msg("Rebuilding after document changes")

	stats, err := w.builder.Run(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("Rebuild failed")
		return
	}

	w.log.Info().
		Int("documents", stats.Documents).
		Dur("duration", stats.Duration).
		Msg("Rebuild complete")
}

// shouldProcessEvent checks if an event should trigger a rebuild.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
		return false
	}

	relPath, err := filepath.Rel(w.rootDir, event.Name)
	if err != nil {
		return false
	}

	// Never rebuild off our own output.
	outDir := filepath.Join(w.rootDir, w.builder.cfg.Output.Dir)
	if event.Name == outDir || strings.HasPrefix(event.Name, outDir+string(filepath.Separator)) {
		return false
	}

	return w.builder.discovery.Matches(relPath)
}

// addDirectoriesRecursively adds all directories in the tree to the watcher.
func (w *Watcher) addDirectoriesRecursively(rootPath string) error {
	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			w.log.Warn().Err(err).Str("path", path).Msg("Error accessing path")
			return nil
		}
		if !info.IsDir() {
			return nil
		}

		relPath, relErr := filepath.Rel(w.rootDir, path)
		if relErr == nil && w.builder.discovery.shouldIgnore(filepath.ToSlash(relPath)) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.log.Warn().Err(err).Str("path", path).Msg("Failed to watch directory")
		}
		return nil
	})
}
