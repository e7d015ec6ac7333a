package tools

import "testing"

func TestNormalizeVersionLine(t *testing.T) {
	tests := []struct {
		name string
		tool string
		line string
		want string
	}{
		{
			name: "rhubarb banner",
			tool: ToolRhubarb,
			line: "Rhubarb Lip Sync version 1.14.0",
			want: "1.14.0",
		},
		{
			name: "ffmpeg banner",
			tool: ToolFfmpeg,
			line: "ffmpeg version 6.1.1 Copyright (c) 2000-2023 the FFmpeg developers",
			want: "6.1.1",
		},
		{
			name: "ffprobe banner",
			tool: ToolFfprobe,
			line: "ffprobe version 6.1.1 Copyright (c) 2007-2023 the FFmpeg developers",
			want: "6.1.1",
		},
		{
			name: "unexpected banner passes through",
			tool: ToolRhubarb,
			line: "v1.14.0",
			want: "v1.14.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeVersionLine(tt.tool, tt.line); got != tt.want {
				t.Errorf("normalizeVersionLine(%q, %q) = %q, want %q", tt.tool, tt.line, got, tt.want)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	if !Required(ToolRhubarb) || !Required(ToolFfmpeg) {
		t.Error("rhubarb and ffmpeg should be required")
	}
	if Required(ToolFfprobe) {
		t.Error("ffprobe should be informational only")
	}
}
