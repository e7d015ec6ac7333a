package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gracie007-cloud/automatic-lip-syncing/internal/config"
	"github.com/gracie007-cloud/automatic-lip-syncing/internal/engines"
	"github.com/gracie007-cloud/automatic-lip-syncing/internal/logx"
	"github.com/gracie007-cloud/automatic-lip-syncing/internal/paths"
	"github.com/gracie007-cloud/automatic-lip-syncing/internal/script"
	"github.com/gracie007-cloud/automatic-lip-syncing/internal/timeline"
	"github.com/gracie007-cloud/automatic-lip-syncing/internal/timing"
	"github.com/gracie007-cloud/automatic-lip-syncing/pkg/schedule"
)

var (
	generateWords string
	generateCues  string
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <base>",
		Short: "Generate the animation schedule for an input base path",
		Long: "generate reads <base>.txt and produces <base>_schedule.csv. Word\n" +
			"timestamps and mouth cues are taken from the --words/--cues JSON files\n" +
			"when given, from previously generated artifacts next to the input, or\n" +
			"by running the configured engines on <base>.wav.",
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().StringVar(&generateWords, "words", "", "Path to word-timestamp JSON (skips the aligner)")
	cmd.Flags().StringVar(&generateCues, "cues", "", "Path to mouth-cue JSON (skips the extractor)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, pp, err := loadForBase(args[0])
	if err != nil {
		return err
	}

	logsDir, err := paths.GlobalLogsDir()
	if err != nil {
		return err
	}
	logger, closer, err := logx.New(logsDir)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.WithField("base", pp.Base).Info("generate schedule")

	text, err := os.ReadFile(pp.Script)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	doc := script.Parse(string(text))
	logger.WithField("words", len(doc.Words)).WithField("tags", len(doc.Tags)).Info("script parsed")
	for _, w := range doc.Warnings {
		logger.Warn(w.String())
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	timed, err := resolveWords(ctx, cfg, pp)
	if err != nil {
		return err
	}
	cues, err := resolveCues(ctx, cfg, pp)
	if err != nil {
		return err
	}

	if err := timeline.VerifyAlignment(doc.Words, timed); err != nil {
		logger.Warn(err.Error())
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	final := timeline.NewResolver(timed).Resolve(doc.Tags, cues).Compact()

	if err := writeFileAtomic(pp.Schedule, final.Marshal()); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	logger.WithField("path", pp.Schedule).Info("schedule written")

	return printGenerateSummary(cmd, pp.Schedule, final)
}

// resolveWords finds the word-timestamp source: explicit flag, an existing
// artifact next to the input, or a fresh aligner run.
func resolveWords(ctx context.Context, cfg config.Config, pp paths.InputPaths) ([]timing.TimedWord, error) {
	if generateWords != "" {
		return timing.LoadWords(generateWords)
	}

	if ok, err := paths.FileExists(pp.WordTimes); err != nil {
		return nil, err
	} else if ok {
		return timing.LoadWords(pp.WordTimes)
	}

	if cfg.Tools.Aligner == "" {
		return nil, errors.New("no word-timestamp source: pass --words or configure tools.aligner")
	}
	if ok, err := paths.FileExists(pp.Audio); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("audio file not found: %s", pp.Audio)
	}

	runner := engines.CmdRunner{}
	if err := engines.PrepareAudio(ctx, runner, cfg.Tools.Ffmpeg, pp.Audio, pp.PrepAudio,
		cfg.Recognition.SampleRate, cfg.Recognition.Channels); err != nil {
		return nil, err
	}
	defer os.Remove(pp.PrepAudio)

	aligner := engines.NewAligner(cfg.Tools.Aligner, cfg.Tools.AlignerModel)
	words, err := aligner.WordTimestamps(ctx, pp.PrepAudio)
	if err != nil {
		return nil, err
	}

	// Persist so repeat runs skip recognition.
	if data, err := json.MarshalIndent(words, "", "  "); err == nil {
		_ = os.WriteFile(pp.WordTimes, data, 0o644)
	}
	return words, nil
}

// resolveCues finds the mouth-cue source: explicit flag, an existing
// artifact, or a fresh extractor run.
func resolveCues(ctx context.Context, cfg config.Config, pp paths.InputPaths) ([]timing.PhonemeCue, error) {
	if generateCues != "" {
		return timing.LoadMouthCues(generateCues)
	}

	if ok, err := paths.FileExists(pp.MouthCues); err != nil {
		return nil, err
	} else if ok {
		return timing.LoadMouthCues(pp.MouthCues)
	}

	if ok, err := paths.FileExists(pp.Audio); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("audio file not found: %s", pp.Audio)
	}

	extractor := engines.NewExtractor(cfg.Tools.Rhubarb)
	return extractor.ExtractCues(ctx, pp.Audio, pp.MouthCues)
}

// writeFileAtomic writes to a temp file in the target directory and renames
// it into place, so a failed run never leaves a partial schedule behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".schedule-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func printGenerateSummary(cmd *cobra.Command, path string, doc schedule.Document) error {
	counts := map[string]int{}
	for _, c := range schedule.Categories {
		counts[string(c)] = len(doc.Track(c))
	}

	if outputJSON {
		payload := struct {
			Schedule string         `json:"schedule"`
			Events   map[string]int `json:"events"`
		}{Schedule: path, Events: counts}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Schedule written: %s\n", path)
	for _, c := range schedule.Categories {
		cmd.Printf("  %-10s %d event(s)\n", c, counts[string(c)])
	}
	return nil
}

func loadForBase(base string) (config.Config, paths.InputPaths, error) {
	// Paths depend on configured suffixes, but the config file location
	// depends on the base directory; resolve with defaults first.
	pp, err := paths.Resolve(base, config.Default())
	if err != nil {
		return config.Config{}, paths.InputPaths{}, err
	}
	cfg, err := config.Load(pp.ConfigFile)
	if err != nil {
		return config.Config{}, paths.InputPaths{}, err
	}
	pp, err = paths.Resolve(base, cfg)
	if err != nil {
		return config.Config{}, paths.InputPaths{}, err
	}
	return cfg, pp, nil
}
