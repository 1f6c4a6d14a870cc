package translate

import (
	"context"
	"fmt"
	"time"
)

// interface for per-cue text translation
//
// Implementations must be safe for concurrent use: one call is made per cue
// and calls may run in parallel.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// translation service provider
type Provider string

const (
	ProviderPlaceholder Provider = "placeholder"
)

type Options struct {
	Delay time.Duration // placeholder response delay (default 150ms)
}

// creates a Translator based on provider
func Factory(provider Provider, opts Options) (Translator, error) {
	switch provider {
	case ProviderPlaceholder:
		delay := opts.Delay
		if delay == 0 {
			delay = DefaultDelay
		}
		return NewPlaceholder(delay), nil
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}
