package cli

import (
	"context"
	"fmt"
	stdimage "image"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"pigment/internal/image"
	"pigment/internal/palette"
	"pigment/internal/scheduler"
)

// watchDebounce delays extraction after a file event so rapid rewrites
// coalesce into a single run.
const watchDebounce = 100 * time.Millisecond

var (
	// Watch command flags
	watchFormat string
	watchOutput string
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <image>",
	Short: "Re-extract the palette whenever an image file changes",
	Long: `Watch an image file and re-run palette extraction every time it changes.

Extractions run asynchronously: if the file changes again while an
extraction is still running, the in-flight extraction is superseded and
its result discarded, so the published palette always reflects the
newest file contents.

Examples:
  # Print a fresh palette on every change
  pigment watch wallpaper.png

  # Keep a JSON palette file up to date for other tools to consume
  pigment watch --format json --output palette.json wallpaper.png`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "", "output format (hex, rgb, json)")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output file rewritten on every change (default: stdout)")
}

// runWatch executes the watch command.
func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to access image file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("watch needs a file, not a directory: %s", path)
	}

	format := watchFormat
	if format == "" {
		format = cfg.Format
	}
	// Fail early on a bad format instead of on the first event.
	if _, err := formatResult(palette.Result{}, format, false); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := image.NewFileLoader()
	extractor := palette.NewWithIterations(cfg.Iterations)
	extract := func(_ context.Context, img stdimage.Image) palette.Result {
		return extractor.Extract(img)
	}

	// The palette notification fires once the full result is published,
	// so the publish callback reads it back from the scheduler.
	var sched *scheduler.Scheduler
	publish := func(source string) {
		result, ok := sched.Result(source)
		if !ok {
			return
		}
		output, err := formatResult(result, format, false)
		if err != nil {
			log.Error("failed to format result", "error", err)
			return
		}
		if watchOutput != "" {
			if err := os.WriteFile(watchOutput, []byte(output), 0o644); err != nil {
				log.Error("failed to write output file", "path", watchOutput, "error", err)
			}
			return
		}
		fmt.Print(output)
	}
	sched = scheduler.New(extract, scheduler.Notifier{
		OnPalette: func(source string, _ []palette.Entry) { publish(source) },
	}, log)

	submit := func() {
		img, err := loader.Load(ctx, path)
		if err != nil {
			log.Error("failed to load image", "path", path, "error", err)
			return
		}
		if cfg.Resize > 0 {
			img = image.ScaleTo(img, cfg.Resize)
		}
		sched.Submit(ctx, path, img)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors often replace
	// files instead of writing them in place.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	log.Info("watching image", "path", path)
	submit()

	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			sched.Wait()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				sched.Wait()
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("image changed", "op", event.Op.String())
			debounce.Reset(watchDebounce)
		case <-debounce.C:
			submit()
		case err, ok := <-watcher.Errors:
			if !ok {
				sched.Wait()
				return nil
			}
			log.Error("watch error", "error", err)
		}
	}
}
