// Package engines invokes the external signal producers: the lip-sync
// extractor for mouth cues, the speech aligner for word timestamps, and
// ffmpeg for recognition-friendly audio. Each is an opaque command; only the
// shape of its output matters to the rest of the system.
package engines

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// RunResult captures the output of a completed command.
type RunResult struct {
	Stdout []byte
	Stderr []byte
}

// Runner abstracts command execution so engine invocations can be tested
// without the real binaries.
type Runner interface {
	Run(ctx context.Context, command string, args []string, stderr io.Writer) (RunResult, error)
}

// CmdRunner executes commands with os/exec.
type CmdRunner struct{}

func (CmdRunner) Run(ctx context.Context, command string, args []string, stderr io.Writer) (RunResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	stderrWriter := io.Writer(&stderrBuf)
	if stderr != nil {
		stderrWriter = io.MultiWriter(&stderrBuf, stderr)
	}
	cmd.Stderr = stderrWriter

	err := cmd.Run()
	return RunResult{Stdout: stdoutBuf.Bytes(), Stderr: stderrBuf.Bytes()}, err
}

var _ Runner = CmdRunner{}
