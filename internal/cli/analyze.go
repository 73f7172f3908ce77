package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/TextSum/internal/analyzer"
	"github.com/yildizm/TextSum/internal/config"
	"github.com/yildizm/TextSum/internal/formatter"
	"github.com/yildizm/TextSum/internal/input"
	"github.com/yildizm/TextSum/internal/logger"
	"github.com/yildizm/TextSum/internal/report"
)

var (
	analyzeExcludeSpaces bool
	analyzeAll           bool
	analyzeTop           int
	analyzeWPM           int
	analyzeMode          string
	analyzeLogFormat     string
	analyzeMaxBytes      int64
	analyzeTimeout       time.Duration
	analyzeOutputFile    string
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a text file or stdin",
		Long: `Count characters, words and sentences and compute letter density for a text.

If no file is specified (or the file is "-"), reads from stdin. In log mode the
input is parsed as log lines and only the log messages are analyzed.

Examples:
  textsum analyze essay.txt
  textsum analyze --exclude-spaces --all essay.txt
  cat notes.md | textsum analyze -o json
  textsum analyze --mode log --log-format json app.log`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	addReportFlags(cmd, &analyzeExcludeSpaces, &analyzeWPM)
	addInputFlags(cmd, &analyzeMode, &analyzeLogFormat, &analyzeMaxBytes)
	cmd.Flags().BoolVar(&analyzeAll, "all", false, "show every letter in the density table")
	cmd.Flags().IntVar(&analyzeTop, "top", 5, "letters shown in the density table")
	cmd.Flags().DurationVar(&analyzeTimeout, "timeout", 30*time.Second, "analysis timeout")
	cmd.Flags().StringVar(&analyzeOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func addReportFlags(cmd *cobra.Command, excludeSpaces *bool, wpm *int) {
	cmd.Flags().BoolVar(excludeSpaces, "exclude-spaces", false, "count total characters without whitespace")
	cmd.Flags().IntVar(wpm, "wpm", 200, "reading speed in words per minute")
}

func addInputFlags(cmd *cobra.Command, mode, logFormat *string, maxBytes *int64) {
	cmd.Flags().StringVar(mode, "mode", "plain", "input mode (plain, log)")
	cmd.Flags().StringVar(logFormat, "log-format", "auto", "log format in log mode (auto, json, logfmt, text)")
	cmd.Flags().Int64Var(maxBytes, "max-bytes", 0, "maximum input size in bytes (0 uses the configured limit)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	log := newLogger("analyze")

	opts, err := resolveReportOptions(cmd, cfg)
	if err != nil {
		return err
	}
	inOpts, err := resolveInputOptions(cmd, cfg, analyzeMode, analyzeLogFormat, analyzeMaxBytes)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	text, source, err := loadText(path, inOpts)
	if err != nil {
		return err
	}

	r, err := buildReport(ctx, log, text, source, opts)
	if err != nil {
		return err
	}

	f, err := formatter.New(getOutputFormat(), useColor())
	if err != nil {
		return err
	}

	output, err := f.Format(r)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return handleOutputDestination(cmd, output, analyzeOutputFile)
}

// resolveReportOptions starts from the configured display settings and applies
// the flags the user set explicitly
func resolveReportOptions(cmd *cobra.Command, cfg *config.Config) (report.Options, error) {
	opts := report.Options{
		ExcludeSpaces:  cfg.Display.ExcludeSpaces,
		VisibleLetters: cfg.Display.VisibleLetters,
		WordsPerMinute: cfg.Display.WordsPerMinute,
	}

	flags := cmd.Flags()
	if flags.Changed("exclude-spaces") {
		opts.ExcludeSpaces, _ = flags.GetBool("exclude-spaces")
	}
	if flags.Changed("all") {
		opts.ShowAll, _ = flags.GetBool("all")
	}
	if flags.Changed("top") {
		top, _ := flags.GetInt("top")
		if top <= 0 {
			return opts, fmt.Errorf("--top must be greater than 0, got %d", top)
		}
		opts.VisibleLetters = top
	}
	if flags.Changed("wpm") {
		wpm, _ := flags.GetInt("wpm")
		if wpm <= 0 {
			return opts, fmt.Errorf("--wpm must be greater than 0, got %d", wpm)
		}
		opts.WordsPerMinute = wpm
	}

	return opts, nil
}

// inputOptions describes how raw input becomes analyzable text
type inputOptions struct {
	Mode      input.Mode
	LogFormat string
	MaxBytes  int64
}

func resolveInputOptions(cmd *cobra.Command, cfg *config.Config, mode, logFormat string, maxBytes int64) (inputOptions, error) {
	flags := cmd.Flags()

	modeName := cfg.Input.Mode
	if flags.Changed("mode") {
		modeName = mode
	}
	parsed, err := input.ParseMode(modeName)
	if err != nil {
		return inputOptions{}, err
	}

	opts := inputOptions{
		Mode:      parsed,
		LogFormat: cfg.Input.LogFormat,
		MaxBytes:  cfg.Input.MaxBytes,
	}
	if flags.Changed("log-format") {
		opts.LogFormat = logFormat
	}
	if flags.Changed("max-bytes") && maxBytes > 0 {
		opts.MaxBytes = maxBytes
	}
	return opts, nil
}

// loadText reads path (stdin when empty) and extracts the text to analyze
func loadText(path string, opts inputOptions) (text, source string, err error) {
	src, err := input.Open(path)
	if err != nil {
		return "", "", err
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close input: %v\n", closeErr)
		}
	}()

	raw, err := input.ReadAll(src.Reader, opts.MaxBytes)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", src.Name(), err)
	}

	text, err = input.Extract(raw, opts.Mode, opts.LogFormat)
	if err != nil {
		return "", "", err
	}

	return text, src.Name(), nil
}

// buildReport analyzes text and derives the report shown to the user
func buildReport(ctx context.Context, log *logger.Logger, text, source string, opts report.Options) (*report.Report, error) {
	analysis, err := analyzer.NewEngine(log).Analyze(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return report.Build(text, *analysis, opts).WithSource(source), nil
}

// handleOutputDestination writes output to file or the command's stdout
func handleOutputDestination(cmd *cobra.Command, output []byte, outputFile string) error {
	if outputFile == "" {
		_, err := cmd.OutOrStdout().Write(output)
		return err
	}

	if err := writeOutputBytesToFile(output, outputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Output saved to: %s\n", outputFile)
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	// #nosec G304 - output path is chosen by the user
	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
