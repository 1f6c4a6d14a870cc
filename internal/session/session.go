package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"srtran/internal/srt"
	"srtran/internal/translate"
)

const (
	// prefix prepended to the source filename for the output file
	DefaultOutputPrefix = "translated_"
	// output filename used when the source has no name
	DefaultOutputName = "translated.srt"
)

var (
	ErrNoTargetLanguage = errors.New("no target language selected")
	ErrNoCues           = errors.New("no subtitle cues found")
)

// Session carries one translate-and-regenerate cycle. It makes the state of
// the interactive flow (selected file, selected language) explicit, so each
// run is isolated and a superseded run cannot leak into a newer one.
type Session struct {
	ID             uuid.UUID
	SourceName     string
	TargetLanguage string
	CreatedAt      time.Time

	OutputPrefix   string // defaults to DefaultOutputPrefix
	OutputFallback string // defaults to DefaultOutputName
	Concurrency    int    // translation fan-out limit, <= 0 means unbounded
}

// Result is the immutable outcome of one Run.
type Result struct {
	Entries []srt.Entry        // translated cues, in source order
	Output  string             // regenerated SRT text
	Skipped []srt.SkippedBlock // blocks the parser dropped
}

func New(sourceName, targetLanguage string) *Session {
	return &Session{
		ID:             uuid.New(),
		SourceName:     sourceName,
		TargetLanguage: targetLanguage,
		CreatedAt:      time.Now(),
	}
}

// OutputName is the filename the translated file should be offered under:
// the source filename behind a fixed prefix, or a fixed fallback when the
// source has no name.
func (s *Session) OutputName() string {
	if s.SourceName == "" {
		if s.OutputFallback != "" {
			return s.OutputFallback
		}
		return DefaultOutputName
	}
	prefix := s.OutputPrefix
	if prefix == "" {
		prefix = DefaultOutputPrefix
	}
	return prefix + s.SourceName
}

// Run executes parse -> translate -> generate over the given file content.
// Validation failures surface before any translation call is made; a
// translation failure fails the whole run with no partial result.
func (s *Session) Run(
	ctx context.Context,
	tr translate.Translator,
	content string,
) (*Result, error) {
	if s.TargetLanguage == "" {
		return nil, ErrNoTargetLanguage
	}

	entries, skipped := srt.ParseReport(content)
	if len(entries) == 0 {
		return nil, ErrNoCues
	}

	translated, err := translate.TranslateEntries(
		ctx,
		tr,
		entries,
		s.TargetLanguage,
		s.Concurrency,
	)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	return &Result{
		Entries: translated,
		Output:  srt.Generate(translated),
		Skipped: skipped,
	}, nil
}
