package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"capstone-timeline/pkg/services"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const exportDebounce = 500 * time.Millisecond

var (
	exportOut   string
	exportWatch bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write albums.json, team.json and timeline.json to a directory",
	Long: `export resolves the content folders once and writes the same JSON the API
serves, for hosting the front-end without this server. With --watch it keeps
running and re-exports whenever anything under the public folder changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content := services.NewContent(appConfig, logger)
		if err := content.Export(exportOut); err != nil {
			return err
		}
		if !exportWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchAndExport(ctx, content, exportOut)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist/api", "output directory")
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "re-export when content changes")
}

// watchAndExport re-runs Export after a burst of filesystem events settles.
// Events inside outDir are ignored so an export under the public folder does
// not trigger itself.
func watchAndExport(ctx context.Context, content *services.Content, outDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return err
	}
	if err := addWatchTree(watcher, content.Root, absOut); err != nil {
		return err
	}
	logger.Info("watching for changes", zap.String("dir", content.Root))

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isUnder(event.Name, absOut) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addWatchTree(watcher, event.Name, absOut); err != nil {
						logger.Warn("cannot watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(exportDebounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})

		case <-rebuild:
			if err := content.Export(outDir); err != nil {
				logger.Error("export failed", zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// addWatchTree watches root and every directory below it except skip.
func addWatchTree(watcher *fsnotify.Watcher, root, skip string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if isUnder(path, skip) || (path != root && strings.HasPrefix(d.Name(), ".")) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	return nil
}

func isUnder(path, dir string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
