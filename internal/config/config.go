package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the tool and pipeline configuration for schedule
// generation.
type Config struct {
	Version     int               `yaml:"version"`
	Tools       ToolsConfig       `yaml:"tools"`
	Recognition RecognitionConfig `yaml:"recognition"`
	Output      OutputConfig      `yaml:"output"`
}

// ToolsConfig points at the external binaries the pipeline invokes.
type ToolsConfig struct {
	Rhubarb      string `yaml:"rhubarb"`
	Ffmpeg       string `yaml:"ffmpeg"`
	Aligner      string `yaml:"aligner"`
	AlignerModel string `yaml:"aligner_model"`
}

// RecognitionConfig describes the audio format the aligner expects.
type RecognitionConfig struct {
	SampleRate int `yaml:"sample_rate"`
	Channels   int `yaml:"channels"`
}

// OutputConfig controls artifact naming next to the input base path.
type OutputConfig struct {
	ScheduleSuffix  string `yaml:"schedule_suffix"`
	MouthCuesSuffix string `yaml:"mouth_cues_suffix"`
	WordsSuffix     string `yaml:"words_suffix"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Tools: ToolsConfig{
			Rhubarb:      "rhubarb",
			Ffmpeg:       "ffmpeg",
			Aligner:      "",
			AlignerModel: "vosk_model",
		},
		Recognition: RecognitionConfig{
			SampleRate: 16000,
			Channels:   1,
		},
		Output: OutputConfig{
			ScheduleSuffix:  "_schedule.csv",
			MouthCuesSuffix: "_rhubarb.json",
			WordsSuffix:     "_words.json",
		},
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise
// returns the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults ensures nested fields fall back to sensible defaults when
// the YAML omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Tools.Rhubarb == "" {
		c.Tools.Rhubarb = defaults.Tools.Rhubarb
	}
	if c.Tools.Ffmpeg == "" {
		c.Tools.Ffmpeg = defaults.Tools.Ffmpeg
	}
	if c.Tools.AlignerModel == "" {
		c.Tools.AlignerModel = defaults.Tools.AlignerModel
	}
	if c.Recognition.SampleRate == 0 {
		c.Recognition.SampleRate = defaults.Recognition.SampleRate
	}
	if c.Recognition.Channels == 0 {
		c.Recognition.Channels = defaults.Recognition.Channels
	}
	if c.Output.ScheduleSuffix == "" {
		c.Output.ScheduleSuffix = defaults.Output.ScheduleSuffix
	}
	if c.Output.MouthCuesSuffix == "" {
		c.Output.MouthCuesSuffix = defaults.Output.MouthCuesSuffix
	}
	if c.Output.WordsSuffix == "" {
		c.Output.WordsSuffix = defaults.Output.WordsSuffix
	}
}

// ToolOverrides maps probe tool names to configured binary paths.
func (c Config) ToolOverrides() map[string]string {
	return map[string]string{
		"rhubarb": c.Tools.Rhubarb,
		"ffmpeg":  c.Tools.Ffmpeg,
	}
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}
