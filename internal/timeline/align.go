package timeline

import (
	"fmt"
	"strings"

	"github.com/gracie007-cloud/automatic-lip-syncing/internal/timing"
)

// MisalignmentError reports a divergence between the parsed word sequence
// and the word-timestamp source at a given index. The positional join is
// assumed, not verified, so this is surfaced as a warning by callers rather
// than a hard failure.
type MisalignmentError struct {
	Index      int
	ScriptWord string
	TimedWord  string
}

func (e *MisalignmentError) Error() string {
	if e.ScriptWord == "" {
		return fmt.Sprintf("timing misalignment at word %d: unexpected extra timed word %q", e.Index, e.TimedWord)
	}
	if e.TimedWord == "" {
		return fmt.Sprintf("timing misalignment at word %d: no timestamp for %q", e.Index, e.ScriptWord)
	}
	return fmt.Sprintf("timing misalignment at word %d: script has %q, timestamp source has %q",
		e.Index, e.ScriptWord, e.TimedWord)
}

// VerifyAlignment checks the positional join between parsed words and the
// timestamp sequence by comparing texts case-insensitively. It returns the
// first divergence found, or nil when the sequences agree.
func VerifyAlignment(words []string, timed []timing.TimedWord) error {
	n := len(words)
	if len(timed) < n {
		n = len(timed)
	}
	for i := 0; i < n; i++ {
		if !strings.EqualFold(words[i], timed[i].Text) {
			return &MisalignmentError{Index: i, ScriptWord: words[i], TimedWord: timed[i].Text}
		}
	}
	if len(words) > len(timed) {
		return &MisalignmentError{Index: len(timed), ScriptWord: words[len(timed)]}
	}
	if len(timed) > len(words) {
		return &MisalignmentError{Index: len(words), TimedWord: timed[len(words)].Text}
	}
	return nil
}
