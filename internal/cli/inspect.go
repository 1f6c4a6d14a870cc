package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"srtran/internal/srt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Show the cues of an SRT file",
	Long: `Parse an SRT file and print its cues in a table, along with any
blocks the parser dropped as malformed.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	if ext := strings.ToLower(filepath.Ext(subtitlePath)); ext != ".srt" {
		return fmt.Errorf(
			"unsupported subtitle format %q: only .srt is supported",
			ext,
		)
	}

	content, err := os.ReadFile(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	entries, skipped := srt.ParseReport(string(content))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Start", "End", "Text"})
	for i, entry := range entries {
		tw.AppendRow(table.Row{i + 1, entry.StartTime, entry.EndTime, entry.Text})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, WidthMax: 60},
	})
	tw.Render()

	fmt.Printf("%d cues\n", len(entries))
	for _, block := range skipped {
		fmt.Printf("block %d skipped: %s\n", block.Ordinal, block.Reason)
	}

	return nil
}
