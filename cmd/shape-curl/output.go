package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shapestone/shape-curl/internal/batch"
	"github.com/shapestone/shape-curl/internal/config"
	"github.com/shapestone/shape-curl/pkg/curl"
)

// writeRequest prints one request in the given format.
func writeRequest(w io.Writer, format string, req *curl.ParsedRequest) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, req)
	case config.FormatYAML:
		return writeYAML(w, req)
	case config.FormatCurl:
		_, err := fmt.Fprintln(w, curl.Render(req))
		return err
	case config.FormatHTTP:
		return curl.NewEncoder(w).Encode(req)
	case config.FormatAST:
		return writeJSON(w, curl.ToMap(req))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeEntries prints import results. The curl and http formats write one
// block per entry and a comment line for failures.
func writeEntries(w io.Writer, format string, entries []batch.Entry) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, entries)
	case config.FormatYAML:
		return writeYAML(w, entries)
	case config.FormatAST:
		nodes := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			if e.Request == nil {
				nodes = append(nodes, map[string]any{"line": e.Line, "error": e.Error})
				continue
			}
			nodes = append(nodes, curl.ToMap(e.Request))
		}
		return writeJSON(w, nodes)
	}

	for i, e := range entries {
		if i > 0 && format == config.FormatHTTP {
			if _, err := fmt.Fprint(w, "\n\n"); err != nil {
				return err
			}
		}
		if e.Request == nil {
			if _, err := fmt.Fprintf(w, "# line %d: %s\n", e.Line, e.Error); err != nil {
				return err
			}
			continue
		}
		if err := writeRequest(w, format, e.Request); err != nil {
			return fmt.Errorf("line %d: %w", e.Line, err)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
