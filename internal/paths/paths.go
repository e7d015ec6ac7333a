package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gracie007-cloud/automatic-lip-syncing/internal/config"
)

// InputPaths holds the canonical locations derived from an input base path.
// Given base "takes/ev", the script lives at takes/ev.txt, the audio at
// takes/ev.wav, and generated artifacts sit alongside them.
type InputPaths struct {
	Base       string
	Script     string
	Audio      string
	Schedule   string
	MouthCues  string
	WordTimes  string
	PrepAudio  string
	ConfigFile string
}

// Resolve derives artifact paths from the input base. A base given with a
// .txt or .wav extension is accepted and trimmed.
func Resolve(base string, cfg config.Config) (InputPaths, error) {
	if strings.TrimSpace(base) == "" {
		return InputPaths{}, fmt.Errorf("input base path is required")
	}

	switch strings.ToLower(filepath.Ext(base)) {
	case ".txt", ".wav":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	abs, err := filepath.Abs(base)
	if err != nil {
		return InputPaths{}, fmt.Errorf("resolve input base: %w", err)
	}

	return InputPaths{
		Base:       abs,
		Script:     abs + ".txt",
		Audio:      abs + ".wav",
		Schedule:   abs + cfg.Output.ScheduleSuffix,
		MouthCues:  abs + cfg.Output.MouthCuesSuffix,
		WordTimes:  abs + cfg.Output.WordsSuffix,
		PrepAudio:  abs + "_16k.wav",
		ConfigFile: filepath.Join(filepath.Dir(abs), "lipsync.yaml"),
	}, nil
}

// ConfigFile returns the configuration path for the working directory, used
// by commands that do not operate on a specific input.
func ConfigFile() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Join(wd, "lipsync.yaml"), nil
}

// GlobalDir returns the user-level lipsync directory (~/.lipsync), creating
// it if needed.
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	dir := filepath.Join(home, ".lipsync")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global dir: %w", err)
	}
	return dir, nil
}

// GlobalLogsDir returns the global logs directory (~/.lipsync/logs),
// creating it if needed.
func GlobalLogsDir() (string, error) {
	global, err := GlobalDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(global, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global logs dir: %w", err)
	}
	return dir, nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
