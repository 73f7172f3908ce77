package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/yildizm/TextSum/internal/config"
	"github.com/yildizm/TextSum/internal/emoji"
	"github.com/yildizm/TextSum/internal/logger"
	"github.com/yildizm/TextSum/internal/ui"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textsum",
		Short: "Text statistics in your terminal",
		Long: `TextSum counts characters, words and sentences and shows how often each
letter appears in a text.

Analyze a file or stdin once, type into a live view that updates as you write,
or watch a file and get a fresh report every time it is saved.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			applyEmojiSetting(cmd)
			return loadGlobalConfig(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format (text, json, markdown, csv, prompt)")

	// Add subcommands
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newLiveCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func applyEmojiSetting(cmd *cobra.Command) {
	// Auto-disable emojis on Windows if not explicitly set
	if runtime.GOOS == "windows" {
		if flag := cmd.Flag("no-emoji"); flag != nil && !flag.Changed {
			noEmoji = true
		}
	}
	emoji.SetEmojiDisabled(noEmoji)
}

// loadGlobalConfig loads the configuration and applies it to global flags the
// user did not set explicitly
func loadGlobalConfig(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().WithWarner(newLogger("config")).LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	globalConfig = cfg

	if flag := cmd.Flag("verbose"); flag != nil && !flag.Changed && cfg.Output.Verbose {
		verbose = true
	}
	if flag := cmd.Flag("output"); flag != nil && !flag.Changed {
		outputFmt = cfg.Output.DefaultFormat
	}

	newLogger("config").DebugWithFields("configuration loaded", []logger.Field{
		logger.F("format", outputFmt),
		logger.F("color_mode", cfg.Output.ColorMode),
	})
	return nil
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "TextSum %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers
func isVerbose() bool {
	return verbose
}

func getOutputFormat() string {
	return outputFmt
}

// GetGlobalConfig returns the loaded configuration, or defaults before loading
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

// useColor decides whether formatted output may contain color
func useColor() bool {
	if noColor {
		return false
	}
	switch GetGlobalConfig().Output.ColorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return !ui.IsColorDisabled()
	}
}

func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}
