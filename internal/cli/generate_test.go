package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gracie007-cloud/automatic-lip-syncing/pkg/schedule"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateFromPrecomputedSignals(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "ev.txt", "Hello world\n<happy> [lake] More text")
	words := writeInput(t, dir, "w.json", `[
		{"word":"Hello","start":0.0,"end":0.5},
		{"word":"world","start":0.5,"end":1.0},
		{"word":"More","start":1.0,"end":1.5},
		{"word":"text","start":1.5,"end":2.0}
	]`)
	cues := writeInput(t, dir, "c.json", `{"mouthCues":[
		{"start":0.0,"end":0.4,"value":"X"},
		{"start":0.4,"end":0.9,"value":"C"},
		{"start":0.9,"end":2.0,"value":"B"}
	]}`)

	base := filepath.Join(dir, "ev")
	stdout, _, err := runCLI(t, "generate", base, "--words", words, "--cues", cues)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(stdout, "Schedule written") {
		t.Errorf("stdout = %q", stdout)
	}

	doc, err := schedule.Load(base + "_schedule.csv")
	if err != nil {
		t.Fatalf("load schedule: %v", err)
	}

	// <happy> anchors to word index 2 ("More") at 1.000.
	found := false
	for _, ev := range doc.Emotion {
		if ev.Time == 1.0 && ev.Value == "1" {
			found = true
		}
	}
	if !found {
		t.Errorf("emotion track = %+v, want event 1.000/1", doc.Emotion)
	}

	// One image event per distinct line after compaction.
	if len(doc.Image) != 2 || doc.Image[1].Value != "1" || doc.Image[1].Time != 1.0 {
		t.Errorf("image track = %+v", doc.Image)
	}

	// Single paragraph: baseline only.
	if len(doc.Paragraph) != 1 {
		t.Errorf("paragraph track = %+v, want baseline only", doc.Paragraph)
	}

	// Cue X duplicates the closed-mouth baseline and compacts away.
	wantPhoneme := []string{"m", "a", "t"}
	if len(doc.Phoneme) != len(wantPhoneme) {
		t.Fatalf("phoneme track = %+v", doc.Phoneme)
	}
	for i, ev := range doc.Phoneme {
		if ev.Value != wantPhoneme[i] {
			t.Errorf("phoneme %d = %q, want %q", i, ev.Value, wantPhoneme[i])
		}
	}
}

func TestGenerateEmptyScript(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "ev.txt", "")
	words := writeInput(t, dir, "w.json", `[]`)
	cues := writeInput(t, dir, "c.json", `{"mouthCues":[]}`)

	base := filepath.Join(dir, "ev")
	if _, _, err := runCLI(t, "generate", base, "--words", words, "--cues", cues); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(base + "_schedule.csv")
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Count(out, schedule.Delimiter+"\n") != 4 {
		t.Errorf("expected 4 delimiters in:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 { // 5 baselines + 4 delimiters
		t.Errorf("got %d lines, want 9:\n%s", len(lines), out)
	}
}

func TestGenerateMissingScriptFailsWithoutPartialOutput(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "missing")

	if _, _, err := runCLI(t, "generate", base); err == nil {
		t.Fatal("expected error for missing script")
	}
	if _, err := os.Stat(base + "_schedule.csv"); !os.IsNotExist(err) {
		t.Errorf("schedule artifact should not exist, stat err = %v", err)
	}
}

func TestGenerateMisalignmentWarns(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "ev.txt", "Hello there")
	words := writeInput(t, dir, "w.json", `[{"word":"hello","start":0.0,"end":0.5},{"word":"world","start":0.5,"end":1.0}]`)
	cues := writeInput(t, dir, "c.json", `{"mouthCues":[]}`)

	base := filepath.Join(dir, "ev")
	_, stderr, err := runCLI(t, "generate", base, "--words", words, "--cues", cues)
	if err != nil {
		t.Fatalf("generate should tolerate misalignment, got %v", err)
	}
	if !strings.Contains(stderr, "timing misalignment") {
		t.Errorf("stderr = %q, want misalignment warning", stderr)
	}
}
