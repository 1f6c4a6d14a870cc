package srt

// represents one cue in a subtitle track
//
// StartTime and EndTime are kept as the exact strings found in the source
// (HH:MM:SS,mmm). They are never parsed into durations and never validated
// for ordering; the generator copies them through verbatim.
type Entry struct {
	Index     int
	StartTime string
	EndTime   string
	Text      string
}
