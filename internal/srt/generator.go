package srt

import (
	"fmt"
	"strings"
)

// Generate serializes entries back into SRT text. Cues are renumbered
// sequentially from 1 regardless of their original Index values; timecodes
// are copied through verbatim.
func Generate(entries []Entry) string {
	var sb strings.Builder
	for i, entry := range entries {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n", entry.StartTime, entry.EndTime))

		// text
		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
