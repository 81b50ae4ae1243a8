// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders reference lists and citation networks to JSON,
// YAML, or BibTeX, writing to a file or stdout.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/refnet/internal/network"
	"github.com/pdiddy/refnet/pkg/types"
)

// Format selects an output rendering.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatBibTeX Format = "bibtex"
)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatBibTeX:
		return FormatBibTeX, nil
	}
	return "", fmt.Errorf("unknown output format %q (want json, yaml, or bibtex)", s)
}

// Writer renders references or a network snapshot in one format, to the
// file at Path or to stdout when Path is empty.
type Writer struct {
	Format Format
	Path   string
}

// WriteReferences renders a reference list.
func (w Writer) WriteReferences(refs []types.Reference) error {
	var content string
	switch w.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(refs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		content = string(data)
	case FormatYAML:
		data, err := yaml.Marshal(refs)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		content = string(data)
	case FormatBibTeX:
		content = ToBibTeXList(refs)
	default:
		return fmt.Errorf("unknown output format %q", w.Format)
	}
	return w.write(content)
}

// WriteNetwork renders a network snapshot. The BibTeX form lists each
// paper as a comment header; a network is a graph dump, not a bibliography.
func (w Writer) WriteNetwork(snap network.Snapshot) error {
	var content string
	switch w.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		content = string(data)
	case FormatYAML:
		data, err := yaml.Marshal(snap)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		content = string(data)
	case FormatBibTeX:
		var blocks []string
		for _, p := range snap.Papers {
			blocks = append(blocks, fmt.Sprintf("%% Paper: %s\n%% Authors: %s\n",
				p.Title, strings.Join(p.Authors, ", ")))
		}
		content = strings.Join(blocks, "\n")
	default:
		return fmt.Errorf("unknown output format %q", w.Format)
	}
	return w.write(content)
}

func (w Writer) write(content string) error {
	if w.Path == "" {
		fmt.Print(content)
		return nil
	}
	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(w.Path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", w.Path, err)
	}
	fmt.Fprintf(os.Stderr, "output written to %s\n", w.Path)
	return nil
}
