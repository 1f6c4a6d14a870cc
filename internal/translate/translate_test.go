package translate

import (
	"context"
	"testing"
	"time"
)

func TestFactoryReturnsPlaceholder(t *testing.T) {
	translator, err := Factory(ProviderPlaceholder, Options{})
	if err != nil {
		t.Fatalf("Factory(ProviderPlaceholder) returned error: %v", err)
	}
	if _, ok := translator.(*Placeholder); !ok {
		t.Errorf("expected *Placeholder, got %T", translator)
	}
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	_, err := Factory(Provider("deepl"), Options{})
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestPlaceholderPrefixes(t *testing.T) {
	tests := []struct {
		name     string
		language string
		text     string
		want     string
	}{
		{
			name:     "hebrew",
			language: LanguageHebrew,
			text:     "Hello",
			want:     "[עברית] Hello",
		},
		{
			name:     "other language",
			language: "es",
			text:     "Hello",
			want:     "[translated] Hello",
		},
		{
			name:     "unknown identifier",
			language: "not-a-language",
			text:     "Hello",
			want:     "[translated] Hello",
		},
		{
			name:     "multi-line caption",
			language: LanguageHebrew,
			text:     "Line one\nLine two",
			want:     "[עברית] Line one\nLine two",
		},
	}

	translator := NewPlaceholder(0)
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translator.Translate(ctx, tt.text, tt.language)
			if err != nil {
				t.Fatalf("Translate returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaceholderHonorsContext(t *testing.T) {
	translator := NewPlaceholder(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := translator.Translate(ctx, "Hello", "es")
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Translate blocked for %v after cancellation", elapsed)
	}
}
