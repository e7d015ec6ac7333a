package schedule

import (
	"bytes"
	"fmt"
)

// Category identifies one of the five independent event tracks in a schedule.
type Category string

const (
	CategoryParagraph Category = "paragraph"
	CategoryEmotion   Category = "emotion"
	CategoryImage     Category = "image"
	CategoryPose      Category = "pose"
	CategoryPhoneme   Category = "phoneme"
)

// Delimiter separates category sections in the serialized document.
const Delimiter = "SECTION"

// ClosedMouth is the default mouth shape, used both as the phoneme baseline
// and as the fallback for unknown cue codes.
const ClosedMouth = "m"

// Categories lists the tracks in their fixed serialization order.
var Categories = []Category{
	CategoryParagraph,
	CategoryEmotion,
	CategoryImage,
	CategoryPose,
	CategoryPhoneme,
}

// Event is a single timed entry within one category track.
type Event struct {
	Time  float64 `json:"time"`
	Value string  `json:"value"`
}

// Document holds the five category tracks of an animation schedule. Tracks
// are chronological; a finalized (compacted) document additionally carries no
// two consecutive events with equal value in any track.
type Document struct {
	Paragraph []Event
	Emotion   []Event
	Image     []Event
	Pose      []Event
	Phoneme   []Event
}

// New returns a document pre-seeded with the baseline event for every
// category at time 0.000, so a player always has a defined initial state.
func New() Document {
	return Document{
		Paragraph: []Event{{Time: 0, Value: "0"}},
		Emotion:   []Event{{Time: 0, Value: "0"}},
		Image:     []Event{{Time: 0, Value: "0"}},
		Pose:      []Event{{Time: 0, Value: "0"}},
		Phoneme:   []Event{{Time: 0, Value: ClosedMouth}},
	}
}

// Track returns the event list for a category.
func (d Document) Track(c Category) []Event {
	switch c {
	case CategoryParagraph:
		return d.Paragraph
	case CategoryEmotion:
		return d.Emotion
	case CategoryImage:
		return d.Image
	case CategoryPose:
		return d.Pose
	case CategoryPhoneme:
		return d.Phoneme
	}
	return nil
}

func (d *Document) setTrack(c Category, events []Event) {
	switch c {
	case CategoryParagraph:
		d.Paragraph = events
	case CategoryEmotion:
		d.Emotion = events
	case CategoryImage:
		d.Image = events
	case CategoryPose:
		d.Pose = events
	case CategoryPhoneme:
		d.Phoneme = events
	}
}

// Append adds an event to the named category track.
func (d *Document) Append(c Category, ev Event) {
	d.setTrack(c, append(d.Track(c), ev))
}

// Compact returns a copy of the document with consecutive duplicate values
// removed from every track. The scan is a strict run collapse: a value may
// reappear later when a different value was kept in between. The input
// document is left untouched.
func (d Document) Compact() Document {
	var out Document
	for _, c := range Categories {
		out.setTrack(c, compactTrack(d.Track(c)))
	}
	return out
}

func compactTrack(events []Event) []Event {
	if len(events) == 0 {
		return nil
	}
	kept := make([]Event, 0, len(events))
	last := ""
	for i, ev := range events {
		if i == 0 || ev.Value != last {
			kept = append(kept, ev)
			last = ev.Value
		}
	}
	return kept
}

// Marshal serializes the document: one time,category,value line per event,
// time with exactly three decimals, sections in fixed category order and
// separated by a Delimiter line. No delimiter follows the last section.
func (d Document) Marshal() []byte {
	var buf bytes.Buffer
	for i, c := range Categories {
		for _, ev := range d.Track(c) {
			fmt.Fprintf(&buf, "%.3f,%s,%s\n", ev.Time, c, ev.Value)
		}
		if i < len(Categories)-1 {
			buf.WriteString(Delimiter + "\n")
		}
	}
	return buf.Bytes()
}
