package translate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"srtran/internal/srt"
)

// TranslateEntries fans one Translate call per entry out concurrently and
// joins them all-or-nothing: the output keeps the input order regardless of
// completion order, and the first failure cancels the remaining in-flight
// calls and fails the whole batch with no partial result. concurrency <= 0
// launches every call at once.
func TranslateEntries(
	ctx context.Context,
	tr Translator,
	entries []srt.Entry,
	targetLanguage string,
	concurrency int,
) ([]srt.Entry, error) {
	if len(entries) == 0 {
		return []srt.Entry{}, nil
	}

	out := make([]srt.Entry, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			translated, err := tr.Translate(ctx, entry.Text, targetLanguage)
			if err != nil {
				return fmt.Errorf("cue %d: %w", i+1, err)
			}
			entry.Text = translated
			out[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
