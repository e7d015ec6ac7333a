package timing

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// mouthCueFile mirrors the JSON document the lip-sync extractor writes:
// metadata plus an ordered mouthCues array.
type mouthCueFile struct {
	MouthCues []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Value string  `json:"value"`
	} `json:"mouthCues"`
}

// DecodeMouthCues parses an extractor JSON document into phoneme cues,
// preserving order. The cue stream is assumed already chronological.
func DecodeMouthCues(data []byte) ([]PhonemeCue, error) {
	var file mouthCueFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode mouth cues: %w", err)
	}
	if file.MouthCues == nil {
		return nil, errors.New("decode mouth cues: missing mouthCues field")
	}

	cues := make([]PhonemeCue, 0, len(file.MouthCues))
	for _, c := range file.MouthCues {
		cues = append(cues, PhonemeCue{Start: c.Start, Shape: c.Value})
	}
	return cues, nil
}

// LoadMouthCues reads and decodes a mouth-cue JSON file.
func LoadMouthCues(path string) ([]PhonemeCue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mouth cues: %w", err)
	}
	return DecodeMouthCues(data)
}
