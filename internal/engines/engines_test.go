package engines

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// fakeRunner records invocations and plays back canned results.
type fakeRunner struct {
	commands [][]string
	stdout   []byte
	err      error
	onRun    func(command string, args []string)
}

func (f *fakeRunner) Run(_ context.Context, command string, args []string, _ io.Writer) (RunResult, error) {
	f.commands = append(f.commands, append([]string{command}, args...))
	if f.onRun != nil {
		f.onRun(command, args)
	}
	return RunResult{Stdout: f.stdout}, f.err
}

func TestExtractorCommandLine(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "cues.json")
	runner := &fakeRunner{
		onRun: func(string, []string) {
			// Simulate the extractor writing its report.
			report := `{"mouthCues":[{"start":0.0,"end":0.3,"value":"A"},{"start":0.3,"end":0.6,"value":"C"}]}`
			if err := os.WriteFile(outPath, []byte(report), 0o644); err != nil {
				t.Fatal(err)
			}
		},
	}

	ex := &Extractor{Bin: "rhubarb", Runner: runner}
	cues, err := ex.ExtractCues(context.Background(), "ev.wav", outPath)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(cues) != 2 || cues[1].Shape != "C" {
		t.Errorf("cues = %+v", cues)
	}

	want := []string{"rhubarb", "-r", "phonetic", "-f", "json", "ev.wav", "-o", outPath}
	got := runner.commands[0]
	if len(got) != len(want) {
		t.Fatalf("command = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractorRunFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}
	ex := &Extractor{Bin: "rhubarb", Runner: runner}
	if _, err := ex.ExtractCues(context.Background(), "ev.wav", "out.json"); err == nil {
		t.Fatal("expected error when the extractor fails")
	}
}

func TestAlignerParsesStdout(t *testing.T) {
	runner := &fakeRunner{
		stdout: []byte(`[{"result":[{"word":"hello","start":0.0,"end":0.5}]}]`),
	}
	al := &Aligner{Bin: "vosk-words", ModelDir: "model", Runner: runner}

	words, err := al.WordTimestamps(context.Background(), "ev_16k.wav")
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	if len(words) != 1 || words[0].Text != "hello" {
		t.Errorf("words = %+v", words)
	}

	got := runner.commands[0]
	want := []string{"vosk-words", "--model", "model", "ev_16k.wav"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAlignerOmitsModelFlagWhenUnset(t *testing.T) {
	runner := &fakeRunner{stdout: []byte(`[]`)}
	al := &Aligner{Bin: "aligner", Runner: runner}
	if _, err := al.WordTimestamps(context.Background(), "a.wav"); err != nil {
		t.Fatalf("align: %v", err)
	}
	got := runner.commands[0]
	if len(got) != 2 || got[1] != "a.wav" {
		t.Errorf("command = %v, want [aligner a.wav]", got)
	}
}

func TestPrepareAudioArgs(t *testing.T) {
	runner := &fakeRunner{}
	err := PrepareAudio(context.Background(), runner, "ffmpeg", "in.wav", "out.wav", 16000, 1)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	want := []string{"ffmpeg", "-y", "-i", "in.wav", "-ac", "1", "-ar", "16000", "out.wav"}
	got := runner.commands[0]
	if len(got) != len(want) {
		t.Fatalf("command = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, got[i], want[i])
		}
	}
}
