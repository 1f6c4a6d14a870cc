package translate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"srtran/internal/srt"
)

// stubTranslator labels text with the target language, optionally sleeping a
// per-text delay and failing on a designated text.
type stubTranslator struct {
	delays map[string]time.Duration
	failOn string
}

func (s *stubTranslator) Translate(
	ctx context.Context,
	text, targetLanguage string,
) (string, error) {
	if d := s.delays[text]; d > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(d):
		}
	}
	if s.failOn != "" && text == s.failOn {
		return "", errors.New("backend unavailable")
	}
	return "[" + targetLanguage + "] " + text, nil
}

func testEntries() []srt.Entry {
	return []srt.Entry{
		{Index: 1, StartTime: "00:00:01,000", EndTime: "00:00:02,000", Text: "A"},
		{Index: 2, StartTime: "00:00:03,000", EndTime: "00:00:04,000", Text: "B"},
		{Index: 3, StartTime: "00:00:05,000", EndTime: "00:00:06,000", Text: "C"},
	}
}

func TestTranslateEntriesPreservesOrder(t *testing.T) {
	// completion order is C, B, A; output order must stay A, B, C
	stub := &stubTranslator{delays: map[string]time.Duration{
		"A": 60 * time.Millisecond,
		"B": 30 * time.Millisecond,
	}}

	out, err := TranslateEntries(
		context.Background(),
		stub,
		testEntries(),
		"es",
		0,
	)
	if err != nil {
		t.Fatalf("TranslateEntries returned error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}

	for i, want := range []string{"[es] A", "[es] B", "[es] C"} {
		if out[i].Text != want {
			t.Errorf("entry %d: got %q, want %q", i, out[i].Text, want)
		}
	}
}

func TestTranslateEntriesKeepsTimecodes(t *testing.T) {
	out, err := TranslateEntries(
		context.Background(),
		&stubTranslator{},
		testEntries(),
		"es",
		0,
	)
	if err != nil {
		t.Fatalf("TranslateEntries returned error: %v", err)
	}

	entries := testEntries()
	for i := range entries {
		if out[i].StartTime != entries[i].StartTime ||
			out[i].EndTime != entries[i].EndTime {
			t.Errorf("entry %d: timecodes changed: %+v", i, out[i])
		}
	}
}

func TestTranslateEntriesAllOrNothing(t *testing.T) {
	stub := &stubTranslator{
		delays: map[string]time.Duration{"C": 20 * time.Millisecond},
		failOn: "B",
	}

	out, err := TranslateEntries(
		context.Background(),
		stub,
		testEntries(),
		"es",
		0,
	)
	if err == nil {
		t.Fatal("expected error when one translation fails")
	}
	if out != nil {
		t.Errorf("expected no partial results, got %v", out)
	}
	if !strings.Contains(err.Error(), "cue 2") {
		t.Errorf("expected error to name the failed cue, got: %v", err)
	}
}

func TestTranslateEntriesConcurrencyLimit(t *testing.T) {
	out, err := TranslateEntries(
		context.Background(),
		&stubTranslator{},
		testEntries(),
		"he",
		1,
	)
	if err != nil {
		t.Fatalf("TranslateEntries returned error: %v", err)
	}
	for i, want := range []string{"[he] A", "[he] B", "[he] C"} {
		if out[i].Text != want {
			t.Errorf("entry %d: got %q, want %q", i, out[i].Text, want)
		}
	}
}

func TestTranslateEntriesEmpty(t *testing.T) {
	out, err := TranslateEntries(
		context.Background(),
		&stubTranslator{},
		nil,
		"es",
		0,
	)
	if err != nil {
		t.Fatalf("TranslateEntries returned error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty result, got %d entries", len(out))
	}
}
