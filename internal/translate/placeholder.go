package translate

import (
	"context"
	"time"
)

// target language identifier that selects the Hebrew prefix
const LanguageHebrew = "he"

const (
	DefaultDelay = 150 * time.Millisecond

	hebrewPrefix  = "[עברית] "
	genericPrefix = "[translated] "
)

// Placeholder implements Translator without a real backend: it waits a fixed
// short delay, then returns the input text behind a language-dependent label.
// It marks the seam where a machine-translation provider would plug in.
type Placeholder struct {
	delay time.Duration
}

func NewPlaceholder(delay time.Duration) *Placeholder {
	if delay < 0 {
		delay = 0
	}
	return &Placeholder{delay: delay}
}

func (p *Placeholder) Translate(
	ctx context.Context,
	text, targetLanguage string,
) (string, error) {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	if targetLanguage == LanguageHebrew {
		return hebrewPrefix + text, nil
	}
	return genericPrefix + text, nil
}
