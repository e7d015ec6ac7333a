package engines

import (
	"context"
	"fmt"

	"github.com/gracie007-cloud/automatic-lip-syncing/internal/timing"
)

// Aligner runs a speech-recognition command that emits word-timestamp JSON
// on stdout. The command receives the model directory (when configured) and
// the audio path as its final arguments.
type Aligner struct {
	Bin      string
	ModelDir string
	Runner   Runner
}

// NewAligner returns an Aligner using the default command runner.
func NewAligner(bin, modelDir string) *Aligner {
	return &Aligner{Bin: bin, ModelDir: modelDir, Runner: CmdRunner{}}
}

// WordTimestamps transcribes the audio file and returns the ordered timed
// word sequence.
func (a *Aligner) WordTimestamps(ctx context.Context, audioPath string) ([]timing.TimedWord, error) {
	var args []string
	if a.ModelDir != "" {
		args = append(args, "--model", a.ModelDir)
	}
	args = append(args, audioPath)

	result, err := a.Runner.Run(ctx, a.Bin, args, nil)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", a.Bin, err)
	}

	words, err := timing.DecodeWords(result.Stdout)
	if err != nil {
		return nil, fmt.Errorf("aligner output: %w", err)
	}
	return words, nil
}
