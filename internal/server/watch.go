package server

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/engine"
)

// debounce coalesces the burst of write events editors and exporters emit
// while rewriting a file.
const debounce = 250 * time.Millisecond

// fileWatch re-analyzes the log file whenever it is rewritten and publishes
// the new report through the hub. Every rewrite is a full independent run of
// the engine over the whole file, never an incremental read.
type fileWatch struct {
	path string
	cfg  engine.Config
	hub  *reportHub
}

// Start blocks until the context is cancelled. Watching the parent directory
// rather than the file itself survives rename-based rewrites.
func (w *fileWatch) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	var timer *time.Timer
	reparse := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-reparse:
			w.reanalyze()
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case reparse <- struct{}{}:
				default:
				}
			})
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func (w *fileWatch) reanalyze() {
	rep, err := engine.AnalyzeFile(w.path, w.cfg)
	if err != nil {
		log.Printf("re-analysis of %s failed: %v", w.path, err)
		return
	}
	log.Printf("re-analyzed %s: %d entries, %d errors", w.path, rep.TotalEntries, rep.ErrorCount)
	w.hub.Publish(rep)
}
