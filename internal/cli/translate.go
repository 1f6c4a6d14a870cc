package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"srtran/internal/session"
	"srtran/internal/translate"

	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [subtitle_file]",
	Short: "Translate an SRT file to another language",
	Long: `Translate a SubRip subtitle file. Timecodes are carried over
unchanged and cues are renumbered sequentially from 1.

The current provider is a placeholder that labels each cue instead of
calling a real translation backend.

Examples:
  srtran translate movie.srt --target-language he
  srtran translate movie.srt -t es -o movie.es.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language identifier (required)")
	translateCmd.Flags().
		Int("concurrency", 0, "Max parallel translation calls (0 = launch all at once)")

	_ = translateCmd.MarkFlagRequired("target-language")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := cmd.Context()

	targetLang, _ := cmd.Flags().GetString("target-language")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	outputPath, _ := cmd.Flags().GetString("output")

	if ext := strings.ToLower(filepath.Ext(subtitlePath)); ext != ".srt" {
		return fmt.Errorf(
			"unsupported subtitle format %q: only .srt is supported",
			ext,
		)
	}
	if targetLang == "" {
		return fmt.Errorf("target language is required")
	}
	if concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", concurrency)
	}

	content, err := os.ReadFile(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	sess := session.New(filepath.Base(subtitlePath), targetLang)
	sess.OutputPrefix = cfg.Output.Prefix
	sess.OutputFallback = cfg.Output.DefaultName
	sess.Concurrency = cfg.Translator.Concurrency
	if concurrency > 0 {
		sess.Concurrency = concurrency
	}

	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(subtitlePath), sess.OutputName())
	}

	translator, err := translate.Factory(
		translate.Provider(cfg.Translator.Provider),
		translate.Options{Delay: cfg.Delay()},
	)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	logger.Infow("Starting subtitle translation",
		"session", sess.ID,
		"input", subtitlePath,
		"output", outputPath,
		"target_language", targetLang,
	)

	result, err := sess.Run(ctx, translator, string(content))
	if err != nil {
		return err
	}

	for _, block := range result.Skipped {
		logger.Warnw("Skipped malformed block",
			"block", block.Ordinal,
			"reason", block.Reason,
		)
	}

	if err := os.WriteFile(outputPath, []byte(result.Output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles translated successfully: %s\n", absOutput)
	fmt.Printf("  Cues: %d\n", len(result.Entries))
	fmt.Printf("  Target language: %s\n", targetLang)
	if len(result.Skipped) > 0 {
		fmt.Printf("  Skipped malformed blocks: %d\n", len(result.Skipped))
	}

	return nil
}
