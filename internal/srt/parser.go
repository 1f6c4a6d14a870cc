package srt

import (
	"regexp"
	"strings"
)

// why a block was dropped during parsing
type SkipReason string

const (
	SkipTooFewLines SkipReason = "fewer than 3 lines"
	SkipBadTimecode SkipReason = "unrecognized timecode line"
)

// block that the parser dropped, with its 1-based position in the source
type SkippedBlock struct {
	Ordinal int
	Reason  SkipReason
}

var (
	blankLines   = regexp.MustCompile(`\n\s*\n`)
	timecodeLine = regexp.MustCompile(`(\d{2}:\d{2}:\d{2},\d{3}) --> (\d{2}:\d{2}:\d{2},\d{3})`)
)

// Parse converts the full text of an SRT file into cue entries, in source
// order. Malformed blocks (fewer than 3 lines, or a second line that is not
// a timecode range) are skipped silently; use ParseReport when the caller
// wants to surface them.
func Parse(content string) []Entry {
	entries, _ := ParseReport(content)
	return entries
}

// ParseReport is Parse plus a record of every block that was dropped.
func ParseReport(content string) ([]Entry, []SkippedBlock) {
	content = strings.TrimPrefix(content, "\ufeff")
	// CRLF input is normalized up front so captions never carry stray \r
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	var entries []Entry
	var skipped []SkippedBlock

	for i, block := range blankLines.Split(content, -1) {
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			skipped = append(skipped, SkippedBlock{
				Ordinal: i + 1,
				Reason:  SkipTooFewLines,
			})
			continue
		}

		m := timecodeLine.FindStringSubmatch(lines[1])
		if m == nil {
			skipped = append(skipped, SkippedBlock{
				Ordinal: i + 1,
				Reason:  SkipBadTimecode,
			})
			continue
		}

		entries = append(entries, Entry{
			Index:     leadingInt(lines[0]),
			StartTime: m[1],
			EndTime:   m[2],
			Text:      strings.TrimSpace(strings.Join(lines[2:], "\n")),
		})
	}

	return entries, skipped
}

// decimal value of the leading digits; zero when the line has none. The
// index is informational only, so a garbled index line does not invalidate
// the block.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
