package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gracie007-cloud/automatic-lip-syncing/internal/config"
)

func TestResolve(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name string
		base string
	}{
		{name: "bare base", base: "takes/ev"},
		{name: "txt extension trimmed", base: "takes/ev.txt"},
		{name: "wav extension trimmed", base: "takes/ev.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pp, err := Resolve(tt.base, cfg)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if !strings.HasSuffix(pp.Script, filepath.Join("takes", "ev")+".txt") {
				t.Errorf("script = %q", pp.Script)
			}
			if !strings.HasSuffix(pp.Schedule, "ev_schedule.csv") {
				t.Errorf("schedule = %q", pp.Schedule)
			}
			if !strings.HasSuffix(pp.MouthCues, "ev_rhubarb.json") {
				t.Errorf("mouth cues = %q", pp.MouthCues)
			}
			if filepath.Base(pp.ConfigFile) != "lipsync.yaml" {
				t.Errorf("config file = %q", pp.ConfigFile)
			}
			if !filepath.IsAbs(pp.Base) {
				t.Errorf("base not absolute: %q", pp.Base)
			}
		})
	}
}

func TestResolveEmptyBase(t *testing.T) {
	if _, err := Resolve("   ", config.Default()); err == nil {
		t.Fatal("expected error for empty base")
	}
}
