package script

import (
	"fmt"
	"regexp"
	"strings"
)

// TagKind distinguishes the structural markers a script can carry.
type TagKind string

const (
	TagEmotion TagKind = "emotion"
	TagImage   TagKind = "image"
	// TagImageAuto is the implicit per-line checkpoint emitted at the end of
	// every line, tag-bearing or not.
	TagImageAuto TagKind = "image_auto"
)

// Tag is a structural marker anchored to a position in the word stream.
// WordIndex is the index of the word immediately following the tag in reading
// order; it is the join key into the word-timestamp source.
type Tag struct {
	WordIndex      int     `json:"word_index"`
	Kind           TagKind `json:"kind"`
	Value          int     `json:"value"`
	LineIndex      int     `json:"line_index"`
	ParagraphIndex int     `json:"paragraph_index"`
}

// Warning describes a token the parser accepted leniently.
type Warning struct {
	LineIndex int    `json:"line_index"`
	Token     string `json:"token"`
	Message   string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s: %s", w.LineIndex+1, w.Token, w.Message)
}

// Document is the parsed form of an annotated script. Tags keep their
// original encounter order; downstream resolution depends on it.
type Document struct {
	Words    []string  `json:"words"`
	Tags     []Tag     `json:"tags"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// EmotionCodes is the fixed emotion vocabulary. Angle-bracketed names outside
// this table produce no tag.
var EmotionCodes = map[string]int{
	"explain":  0,
	"happy":    1,
	"sad":      2,
	"angry":    3,
	"confused": 4,
	"rq":       5,
}

// tokenPattern matches, in priority order, an angle-bracketed tag, a
// square-bracketed tag, or a maximal run of non-whitespace characters.
var tokenPattern = regexp.MustCompile(`<[^>]+>|\[[^\]]+\]|\S+`)

// stripPattern removes every rune that is neither alphanumeric nor whitespace.
var stripPattern = regexp.MustCompile(`[^\w\s]`)

// Parse tokenizes an annotated script into its plain word sequence and the
// ordered list of structural tags. Empty input yields an empty document; the
// per-category baselines are seeded later during resolution.
func Parse(text string) Document {
	var doc Document
	if text == "" {
		return doc
	}

	wordIdx := 0
	paraIdx := 0

	for lineIdx, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" && lineIdx > 0 {
			paraIdx++
		}

		for _, token := range tokenPattern.FindAllString(line, -1) {
			switch {
			case strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">"):
				name := strings.ToLower(token[1 : len(token)-1])
				code, ok := EmotionCodes[name]
				if !ok {
					doc.Warnings = append(doc.Warnings, Warning{
						LineIndex: lineIdx,
						Token:     token,
						Message:   "unrecognized emotion name, tag dropped",
					})
					continue
				}
				doc.Tags = append(doc.Tags, Tag{
					WordIndex:      wordIdx,
					Kind:           TagEmotion,
					Value:          code,
					LineIndex:      lineIdx,
					ParagraphIndex: paraIdx,
				})
			case strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]"):
				// The interior is intentionally left unparsed; consumers
				// re-derive topic information from the raw line text.
				doc.Tags = append(doc.Tags, Tag{
					WordIndex:      wordIdx,
					Kind:           TagImage,
					Value:          lineIdx,
					LineIndex:      lineIdx,
					ParagraphIndex: paraIdx,
				})
			default:
				if strings.ContainsAny(token, "<>[]") {
					doc.Warnings = append(doc.Warnings, Warning{
						LineIndex: lineIdx,
						Token:     token,
						Message:   "stray bracket kept as plain word",
					})
				}
				clean := stripPattern.ReplaceAllString(token, "")
				if clean == "" {
					continue
				}
				doc.Words = append(doc.Words, clean)
				wordIdx++
			}
		}

		// One structural checkpoint per line, even when the line carries no
		// explicit tag. This drives line-level image and pose changes.
		doc.Tags = append(doc.Tags, Tag{
			WordIndex:      wordIdx,
			Kind:           TagImageAuto,
			Value:          lineIdx,
			LineIndex:      lineIdx,
			ParagraphIndex: paraIdx,
		})
	}

	return doc
}
