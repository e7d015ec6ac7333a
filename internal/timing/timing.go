// Package timing defines the shapes of the externally produced timing
// signals the scheduler consumes: per-word speech timestamps from a
// recognition engine and per-phoneme mouth-shape cues from a lip-sync
// extractor. The package only decodes; how the signals were produced is
// opaque to it.
package timing

// TimedWord is one record from the word-timestamp source. Records are
// index-aligned with the parser's cleaned word sequence.
type TimedWord struct {
	Text  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// PhonemeCue is a timestamped one-letter mouth-shape code, independent of
// word and line structure.
type PhonemeCue struct {
	Start float64 `json:"start"`
	Shape string  `json:"value"`
}
