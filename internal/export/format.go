package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Format int8

const (
	HTML Format = iota
	SVG
	CSV
	JSON
)

var formatNames = []string{"html", "svg", "csv", "json"}

func ParseFormat(text string) (Format, error) {
	switch strings.ToLower(text) {
	case "html":
		return HTML, nil
	case "svg":
		return SVG, nil
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("no extension in %q", path)
	}
	return ParseFormat(ext)
}

func (f Format) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}
