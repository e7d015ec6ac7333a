// Package timeline fuses the parser's structural tags with the external
// timing signals into a per-category event schedule. Three index spaces meet
// here: tag word indices join against the word-timestamp sequence, line and
// paragraph indices gate image/pose/paragraph transitions, and phoneme cues
// carry their own wall-clock times.
package timeline

import (
	"strconv"

	"github.com/gracie007-cloud/automatic-lip-syncing/internal/script"
	"github.com/gracie007-cloud/automatic-lip-syncing/internal/timing"
	"github.com/gracie007-cloud/automatic-lip-syncing/pkg/schedule"
)

// poseCount is the size of the body-pose cycle. Pose advances by one on
// every accepted image transition and wraps.
const poseCount = 5

// mouthShapes translates extractor cue codes to the player's mouth-shape
// vocabulary. Codes outside the table fall back to the closed mouth.
var mouthShapes = map[string]string{
	"A": "m",  // closed (p, b, m)
	"B": "t",  // consonants
	"C": "a",  // open
	"D": "a",  // wide open
	"E": "u",  // rounded
	"F": "au", // puckered
	"G": "f",  // f, v
	"H": "y",  // l
	"X": "m",  // idle
}

// Resolver assigns wall-clock times to structural tags and phoneme cues and
// accumulates the raw per-category event lists. It carries per-run mutable
// state (last line, last paragraph, pose counter), so a fresh Resolver must
// be used for every run.
type Resolver struct {
	timed []timing.TimedWord

	lastLine int
	lastPara int
	pose     int
}

// NewResolver prepares a resolver over the given word-timestamp sequence.
// The sequence is assumed index-aligned with the parsed word list; use
// VerifyAlignment to check that assumption explicitly.
func NewResolver(timed []timing.TimedWord) *Resolver {
	return &Resolver{
		timed:    timed,
		lastLine: -1,
		lastPara: -1,
	}
}

// timeFor maps a tag's word index to a wall-clock time. Indices past the end
// of the timestamp sequence clamp to the last word's end time; with no
// timing source at all everything resolves to zero.
func (r *Resolver) timeFor(wordIndex int) float64 {
	if wordIndex < len(r.timed) {
		return r.timed[wordIndex].Start
	}
	if len(r.timed) > 0 {
		return r.timed[len(r.timed)-1].End
	}
	return 0
}

// Resolve processes tags in their original encounter order, then phoneme
// cues in their given order, and returns the raw schedule document seeded
// with the per-category baselines. The result still contains consecutive
// duplicates; compaction is the document's concern.
func (r *Resolver) Resolve(tags []script.Tag, cues []timing.PhonemeCue) schedule.Document {
	doc := schedule.New()

	for _, tag := range tags {
		t := r.timeFor(tag.WordIndex)

		switch tag.Kind {
		case script.TagEmotion:
			doc.Append(schedule.CategoryEmotion, schedule.Event{Time: t, Value: strconv.Itoa(tag.Value)})

		case script.TagImage, script.TagImageAuto:
			// Line and paragraph checks are independent: a tag can trigger
			// either, both, or neither. Deduplicating here rather than in the
			// compactor keeps the pose counter advancing exactly once per
			// genuine line transition.
			if tag.LineIndex != r.lastLine {
				doc.Append(schedule.CategoryImage, schedule.Event{Time: t, Value: strconv.Itoa(tag.LineIndex)})
				r.pose = (r.pose + 1) % poseCount
				doc.Append(schedule.CategoryPose, schedule.Event{Time: t, Value: strconv.Itoa(r.pose)})
				r.lastLine = tag.LineIndex
			}
			if tag.ParagraphIndex != r.lastPara {
				doc.Append(schedule.CategoryParagraph, schedule.Event{Time: t, Value: strconv.Itoa(tag.ParagraphIndex)})
				r.lastPara = tag.ParagraphIndex
			}
		}
	}

	for _, cue := range cues {
		doc.Append(schedule.CategoryPhoneme, schedule.Event{Time: cue.Start, Value: MouthShape(cue.Shape)})
	}

	return doc
}

// MouthShape translates one extractor cue code to the output vocabulary.
func MouthShape(code string) string {
	if shape, ok := mouthShapes[code]; ok {
		return shape
	}
	return schedule.ClosedMouth
}
