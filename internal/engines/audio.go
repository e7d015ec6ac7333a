package engines

import (
	"context"
	"fmt"
)

// PrepareAudio resamples an audio file into the mono/low-rate WAV the
// recognizer expects, overwriting outPath when it exists.
func PrepareAudio(ctx context.Context, runner Runner, ffmpegBin, inPath, outPath string, sampleRate, channels int) error {
	args := []string{
		"-y",
		"-i", inPath,
		"-ac", fmt.Sprint(channels),
		"-ar", fmt.Sprint(sampleRate),
		outPath,
	}
	if _, err := runner.Run(ctx, ffmpegBin, args, nil); err != nil {
		return fmt.Errorf("run %s: %w", ffmpegBin, err)
	}
	return nil
}
