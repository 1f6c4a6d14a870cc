package cli

import (
	"srtran/internal/config"
	"srtran/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string

	logger *logging.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "srtran",
	Short: "Translate SubRip subtitle files",
	Long: `srtran parses SubRip (.srt) subtitle files, runs each cue's text
through a translation step, and writes a new subtitle file with the
same timecodes and sequentially renumbered cues.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Path to TOML config file")
}
