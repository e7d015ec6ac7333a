// Package tools discovers the external binaries the pipeline leans on.
package tools

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Known tool names, in display order.
const (
	ToolRhubarb = "rhubarb"
	ToolFfmpeg  = "ffmpeg"
	ToolFfprobe = "ffprobe"
)

// Required reports whether a missing tool should fail a strict check.
// ffprobe is informational only.
func Required(name string) bool {
	return name == ToolRhubarb || name == ToolFfmpeg
}

// ToolInfo captures availability and version details for an external tool.
type ToolInfo struct {
	Name      string `json:"name"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// Probe discovers tool availability and version information. Overrides maps
// tool names to configured binary paths; unlisted tools resolve via PATH.
func Probe(ctx context.Context, overrides map[string]string) []ToolInfo {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
	}

	names := []string{ToolRhubarb, ToolFfmpeg, ToolFfprobe}
	result := make([]ToolInfo, 0, len(names))
	for _, name := range names {
		result = append(result, probeOne(ctx, name, overrides[name]))
	}
	return result
}

func probeOne(ctx context.Context, name, override string) ToolInfo {
	binary := name
	if override != "" {
		binary = override
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ToolInfo{Name: name, Available: false, Error: "not found"}
		}
		return ToolInfo{Name: name, Available: false, Error: err.Error()}
	}

	version, err := readVersion(ctx, path, name)
	if err != nil {
		return ToolInfo{Name: name, Path: path, Available: true, Error: err.Error()}
	}
	return ToolInfo{Name: name, Path: path, Version: version, Available: true}
}

func readVersion(ctx context.Context, path, name string) (string, error) {
	var args []string
	switch name {
	case ToolRhubarb:
		args = []string{"--version"}
	case ToolFfmpeg, ToolFfprobe:
		args = []string{"-version"}
	default:
		return "", fmt.Errorf("unsupported tool: %s", name)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	line := firstLine(strings.TrimSpace(string(output)))
	return normalizeVersionLine(name, line), nil
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}

func normalizeVersionLine(name, line string) string {
	fields := strings.Fields(line)
	switch name {
	case ToolRhubarb:
		// "Rhubarb Lip Sync version 1.14.0"
		if len(fields) >= 5 {
			return fields[4]
		}
	case ToolFfmpeg, ToolFfprobe:
		// "ffmpeg version 6.0 Copyright ..."
		if len(fields) >= 3 {
			return fields[2]
		}
	}
	return line
}
