package timing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// DecodeWords parses word-timestamp JSON. Two layouts are accepted: a bare
// array of {word,start,end} records, or an array of recognizer result chunks
// whose records are concatenated in order.
func DecodeWords(data []byte) ([]TimedWord, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &elements); err != nil {
		return nil, fmt.Errorf("decode word timestamps: %w", err)
	}

	var words []TimedWord
	for i, element := range elements {
		var probe struct {
			Result []TimedWord `json:"result"`
			Word   *string     `json:"word"`
			Start  float64     `json:"start"`
			End    float64     `json:"end"`
		}
		if err := json.Unmarshal(element, &probe); err != nil {
			return nil, fmt.Errorf("decode word timestamps: record %d: %w", i, err)
		}
		switch {
		case probe.Result != nil:
			words = append(words, probe.Result...)
		case probe.Word != nil:
			words = append(words, TimedWord{Text: *probe.Word, Start: probe.Start, End: probe.End})
		}
		// Chunks with neither field are partials without recognized words.
	}
	return words, nil
}

// LoadWords reads and decodes a word-timestamp JSON file.
func LoadWords(path string) ([]TimedWord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word timestamps: %w", err)
	}
	return DecodeWords(data)
}
