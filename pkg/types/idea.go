// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// IdeaEntry is one rendered idea: a title and an optional description,
// derived from a single numbered line of ideas text.
type IdeaEntry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// IdeaSource records which generator produced an ideas text.
type IdeaSource string

const (
	SourceRemote IdeaSource = "remote"
	SourceLocal  IdeaSource = "local"
)

// IdeaResult is the outcome of one generation: the raw numbered text and
// the entries parsed from it.
type IdeaResult struct {
	Word1    string     `json:"word1" yaml:"word1"`
	Word2    string     `json:"word2" yaml:"word2"`
	Category Category   `json:"category" yaml:"category"`
	Source   IdeaSource `json:"source" yaml:"source"`

	// Text is the numbered-list text exactly as produced.
	Text string `json:"text" yaml:"text"`

	// Ideas holds the parsed entries in line order.
	Ideas []IdeaEntry `json:"ideas" yaml:"ideas"`
}
