package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ideaspark/pkg/types"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q: use text, json, or yaml", format)
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return checkFormat(format)
}

// writeEntries prints numbered idea entries, descriptions indented below
// their titles.
func writeEntries(w io.Writer, entries []types.IdeaEntry) {
	for i, e := range entries {
		fmt.Fprintf(w, "%d. %s\n", i+1, e.Title)
		if e.Description != "" {
			fmt.Fprintf(w, "   %s\n", e.Description)
		}
	}
}

func writeResult(w io.Writer, format string, res types.IdeaResult) error {
	if format != formatText {
		return writeStructured(w, format, res)
	}

	name := string(res.Category)
	if info, ok := types.LookupCategory(res.Category); ok {
		name = info.Icon + " " + info.Name
	}
	fmt.Fprintf(w, "%s + %s · %s (%s)\n\n", res.Word1, res.Word2, name, res.Source)
	writeEntries(w, res.Ideas)
	return nil
}

func writeCategories(w io.Writer, format string, cats []types.CategoryInfo) error {
	if format != formatText {
		return writeStructured(w, format, cats)
	}
	width := 0
	for _, c := range cats {
		width = max(width, len(c.ID))
	}
	for _, c := range cats {
		fmt.Fprintf(w, "%-*s  %s %s\n", width, c.ID, c.Icon, c.Name)
	}
	return nil
}

func writeWords(w io.Writer, list []string) {
	fmt.Fprintln(w, strings.Join(list, "\n"))
}
