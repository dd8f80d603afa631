// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ideas turns numbered-list idea text into title and description
// pairs for display. The splitting rules are heuristic and intentionally
// forgiving: malformed model output may split oddly, but never errors.
package ideas

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/ideaspark/pkg/types"
)

// longLine is the length above which a separator-less line is split at its
// first sentence boundary.
const longLine = 100

// quoteChars are stripped from both ends of a title.
const quoteChars = "\"'“”‘’"

var (
	// numberedLine matches lines that start with an integer and a period.
	numberedLine = regexp.MustCompile(`^\d+\.`)

	// numberPrefix matches the list number and the whitespace after it.
	numberPrefix = regexp.MustCompile(`^\d+\.\s*`)

	// sentenceBreak matches a period and whitespace before an uppercase
	// letter. The letter is part of the match and belongs to the next
	// sentence.
	sentenceBreak = regexp.MustCompile(`\.\s+[A-Z]`)
)

// Parse returns one entry per numbered line of text, in line order.
// Lines that are blank or not numbered are ignored.
func Parse(text string) []types.IdeaEntry {
	var entries []types.IdeaEntry
	for _, line := range NumberedLines(text) {
		entries = append(entries, Split(StripNumber(line)))
	}
	return entries
}

// NumberedLines returns the trimmed lines of text that begin with "N.".
func NumberedLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && numberedLine.MatchString(trimmed) {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// StripNumber removes a leading "N." and the whitespace that follows it.
func StripNumber(line string) string {
	return strings.TrimSpace(numberPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
}

// Split divides a cleaned idea line into title and description. The first
// rule that applies wins: " - ", then ": ", then the first sentence of a
// long line, then the whole line as title.
func Split(idea string) types.IdeaEntry {
	var title, description string

	switch {
	case strings.Contains(idea, " - "):
		title, description, _ = strings.Cut(idea, " - ")
	case strings.Contains(idea, ": "):
		title, description, _ = strings.Cut(idea, ": ")
	case utf8.RuneCountInString(idea) > longLine:
		sentences := splitSentences(idea)
		title = sentences[0]
		description = strings.Join(sentences[1:], ". ")
		if description != "" {
			description += "."
		}
	default:
		title = idea
	}

	return types.IdeaEntry{
		Title:       CleanTitle(title),
		Description: description,
	}
}

// CleanTitle strips straight and curly quote characters from both ends.
func CleanTitle(title string) string {
	return strings.Trim(title, quoteChars)
}

// splitSentences splits s at every sentence break, dropping the period and
// whitespace of each break. It always returns at least one element.
func splitSentences(s string) []string {
	var parts []string
	start := 0
	for _, m := range sentenceBreak.FindAllStringIndex(s, -1) {
		parts = append(parts, s[start:m[0]])
		// The uppercase letter is the last byte of the match.
		start = m[1] - 1
	}
	return append(parts, s[start:])
}
