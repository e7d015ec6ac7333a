package engines

import (
	"context"
	"fmt"

	"github.com/gracie007-cloud/automatic-lip-syncing/internal/timing"
)

// Extractor runs the Rhubarb lip-sync tool to produce phoneme cues for an
// audio file.
type Extractor struct {
	Bin    string
	Runner Runner
}

// NewExtractor returns an Extractor using the given binary path and the
// default command runner.
func NewExtractor(bin string) *Extractor {
	return &Extractor{Bin: bin, Runner: CmdRunner{}}
}

// ExtractCues runs the extractor in phonetic mode, writing its JSON report
// to outPath, and returns the decoded cue list.
func (e *Extractor) ExtractCues(ctx context.Context, audioPath, outPath string) ([]timing.PhonemeCue, error) {
	args := []string{"-r", "phonetic", "-f", "json", audioPath, "-o", outPath}
	if _, err := e.Runner.Run(ctx, e.Bin, args, nil); err != nil {
		return nil, fmt.Errorf("run %s: %w", e.Bin, err)
	}

	cues, err := timing.LoadMouthCues(outPath)
	if err != nil {
		return nil, fmt.Errorf("extractor output: %w", err)
	}
	return cues, nil
}
