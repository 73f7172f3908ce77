package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/TextSum/internal/emoji"
	"github.com/yildizm/TextSum/internal/formatter"
	"github.com/yildizm/TextSum/internal/logger"
	"github.com/yildizm/TextSum/internal/monitor"
	"github.com/yildizm/TextSum/internal/report"
	"github.com/yildizm/go-termfmt"
)

var (
	watchExcludeSpaces bool
	watchWPM           int
	watchMode          string
	watchLogFormat     string
	watchMaxBytes      int64
	watchDebounce      time.Duration
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-analyze a file every time it changes",
		Long: `Monitor a text file and print a fresh report whenever it is saved.

Uses file system notifications to detect changes. Bursts of writes are
collapsed into one report after the debounce interval. Press Ctrl+C to stop.

Examples:
  textsum watch draft.md
  textsum watch --debounce 1s -o json draft.md`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	addReportFlags(cmd, &watchExcludeSpaces, &watchWPM)
	addInputFlags(cmd, &watchMode, &watchLogFormat, &watchMaxBytes)
	cmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "quiet period before re-analyzing (0 uses the configured value)")

	return cmd
}

// fileWatch re-renders the report for one file
type fileWatch struct {
	path      string
	input     inputOptions
	options   report.Options
	formatter formatter.Formatter
	separator bool
	out       io.Writer
	log       *logger.Logger
	stats     *monitor.Session

	lastText string
	rendered bool
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]
	cfg := GetGlobalConfig()

	if err := validateWatchFilePath(filename); err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}

	path, err := filepath.Abs(filepath.Clean(filename))
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	opts, err := resolveReportOptions(cmd, cfg)
	if err != nil {
		return err
	}
	inOpts, err := resolveInputOptions(cmd, cfg, watchMode, watchLogFormat, watchMaxBytes)
	if err != nil {
		return err
	}

	debounce := cfg.Watch.Debounce
	if cmd.Flags().Changed("debounce") {
		debounce = watchDebounce
	}

	format := getOutputFormat()
	f, err := formatter.New(format, useColor())
	if err != nil {
		return err
	}

	w := &fileWatch{
		path:      path,
		input:     inOpts,
		options:   opts,
		formatter: f,
		separator: format == "text" || format == "terminal" || format == "",
		out:       cmd.OutOrStdout(),
		log:       newLogger("watch"),
		stats:     monitor.NewSession(),
	}
	defer printSessionSummary(w.stats)

	watcher, err := createWatcher(path)
	if err != nil {
		return err
	}
	defer cleanupWatcher(watcher)

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Watching file: %s\n", path)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}

	if err := w.render(context.Background()); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		select {
		case <-signals:
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "\nReceived interrupt signal, stopping...\n")
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	return runWatchLoop(ctx, watcher, w, debounce)
}

// createWatcher watches the directory holding path. Editors often replace a
// file on save, which would drop a watch placed on the file itself.
func createWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		cleanupWatcher(watcher)
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	return watcher, nil
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}

// runWatchLoop renders a report once events for the file stop arriving for
// the debounce interval
func runWatchLoop(ctx context.Context, watcher *fsnotify.Watcher, w *fileWatch, debounce time.Duration) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
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
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.log.DebugWithFields("file event", []logger.Field{logger.F("op", event.Op.String())})

			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.render(ctx); err != nil {
				w.log.WarnWithFields("failed to analyze file", []logger.Field{logger.Path(w.path), logger.Error(err)})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.WarnWithFields("watcher error", []logger.Field{logger.Error(err)})
		}
	}
}

// relevant reports whether event changed the watched file's content
func (w *fileWatch) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// render re-reads the whole file and prints its report when the text changed
func (w *fileWatch) render(ctx context.Context) error {
	var text string
	err := w.stats.Track(monitor.OperationRead, func() error {
		var err error
		text, _, err = loadText(w.path, w.input)
		return err
	})
	if err != nil {
		return err
	}
	w.stats.Bytes.Add(int64(len(text)))

	if w.rendered && text == w.lastText {
		w.stats.Skipped.Inc()
		w.log.Debug("content unchanged, skipping report")
		return nil
	}

	var r *report.Report
	err = w.stats.Track(monitor.OperationAnalyze, func() error {
		var err error
		r, err = buildReport(ctx, w.log, text, filepath.Base(w.path), w.options)
		return err
	})
	if err != nil {
		return err
	}

	err = w.stats.Track(monitor.OperationRender, func() error {
		output, err := w.formatter.Format(r)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}

		if w.separator && w.rendered {
			fmt.Fprintf(w.out, "\n%s Updated at %s\n\n", emoji.GetEmoji("watch"), r.GeneratedAt.Format("15:04:05"))
		}
		_, err = w.out.Write(output)
		return err
	})
	if err != nil {
		return err
	}

	w.stats.Reports.Inc()
	w.lastText = text
	w.rendered = true
	return nil
}

// printSessionSummary writes the watch statistics to stderr in verbose mode
func printSessionSummary(stats *monitor.Session) {
	if !isVerbose() {
		return
	}

	opts := termfmt.DefaultOptions()
	opts.Color = useColor()
	opts.Emoji = !emoji.IsEmojiDisabled()

	fmt.Fprintf(os.Stderr, "\n%s Watch session\n%s\n", emoji.GetEmoji("statistics"), stats.Snapshot().Summary(opts))
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
