package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kachup1/signet/pkg/pipeline"
)

// parseFormats parses a comma-separated format string into a slice.
// If empty, the configured default format is used.
func (c *CLI) parseFormats(s string) []string {
	if s == "" {
		if c.Config.Render.Format != "" {
			return []string{c.Config.Render.Format}
		}
		return []string{pipeline.DefaultFormat}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, .dot), it strips that extension.
// This is used when generating multiple files (e.g., graph.svg, graph.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
}

// writeArtifacts writes rendered artifacts to disk, one file per format.
// A single format honors the output path exactly; multiple formats share
// a base path and get per-format extensions.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		path := base + "." + format
		if p.output != "" && len(p.formats) == 1 {
			path = p.output
		}

		out, err := openOutput(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := out.Close(); err != nil {
			return err
		}
		printFile(path)
	}

	if p.cacheHit {
		printDetail("(from cache)")
	}
	return nil
}

// openOutput opens path for writing, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// nopCloser wraps a writer with a no-op Close so stdout survives the
// deferred close in the write helpers.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
