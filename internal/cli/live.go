package cli

import (
	"github.com/spf13/cobra"
	"github.com/yildizm/TextSum/internal/config"
	"github.com/yildizm/TextSum/internal/input"
	"github.com/yildizm/TextSum/internal/ui"
)

var (
	liveExcludeSpaces bool
	liveWPM           int
	liveTheme         string
	liveCharLimit     int
)

func newLiveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live [file]",
		Short: "Type or paste text and watch the statistics update",
		Long: `Open an editor in the terminal that recomputes the statistics on every keystroke.

The editor can start with the contents of a file. Nothing typed is saved.

Keys:
  ctrl+e  exclude spaces from the character total
  ctrl+a  see more / show less letters
  ctrl+d  switch between light and dark mode
  ctrl+l  toggle the character limit
  ctrl+x  clear the text
  f1      help
  esc     quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLive,
	}

	addReportFlags(cmd, &liveExcludeSpaces, &liveWPM)
	cmd.Flags().StringVar(&liveTheme, "theme", "", "color theme (auto, light, dark)")
	cmd.Flags().IntVar(&liveCharLimit, "char-limit", 0, "character limit, enabled from the start")

	return cmd
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	text := ""
	if len(args) > 0 {
		loaded, _, err := loadText(args[0], inputOptions{
			Mode:     input.ModePlain,
			MaxBytes: cfg.Input.MaxBytes,
		})
		if err != nil {
			return err
		}
		text = loaded
	}

	state, err := resolveLiveState(cmd, cfg)
	if err != nil {
		return err
	}

	newLogger("live").Debug("starting live view with %d characters", len(text))
	return ui.Run(text, state)
}

// resolveLiveState builds the initial live view toggles from config and flags
func resolveLiveState(cmd *cobra.Command, cfg *config.Config) (ui.State, error) {
	opts, err := resolveReportOptions(cmd, cfg)
	if err != nil {
		return ui.State{}, err
	}

	theme := cfg.Display.Theme
	if cmd.Flags().Changed("theme") {
		theme = liveTheme
	}

	state := ui.State{
		ExcludeSpaces:  opts.ExcludeSpaces,
		VisibleLetters: opts.VisibleLetters,
		WordsPerMinute: opts.WordsPerMinute,
		DarkMode:       ui.ResolveDarkMode(theme),
		CharLimit:      cfg.Display.CharLimit,
		LimitEnabled:   cfg.Display.CharLimit > 0,
		Color:          useColor(),
	}

	if cmd.Flags().Changed("char-limit") {
		state.CharLimit = liveCharLimit
		state.LimitEnabled = liveCharLimit > 0
	}

	return state, nil
}
