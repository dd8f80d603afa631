// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spark

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/pdiddy/ideaspark/internal/ideas"
	"github.com/pdiddy/ideaspark/internal/words"
	"github.com/pdiddy/ideaspark/pkg/types"
)

// ErrBusy reports a generation started while another is in flight.
var ErrBusy = errors.New("generation already in progress")

// Session is the state behind one interactive page: the two words, the
// selected category, the last ideas text, and whether a generation is in
// flight. A Session is not safe for concurrent use; UIs drive it from a
// single event loop.
type Session struct {
	Word1    string
	Word2    string
	Category types.Category

	// Ideas is the raw numbered text of the last generation.
	Ideas string

	// Source records where Ideas came from.
	Source types.IdeaSource

	// Loading is set between Begin and Finish.
	Loading bool
}

func (s *Session) SetWord1(w string) { s.Word1 = w }

func (s *Session) SetWord2(w string) { s.Word2 = w }

// ShuffleWord1 replaces the first word with a random pool word.
func (s *Session) ShuffleWord1(r *rand.Rand) { s.Word1 = words.Random(r) }

// ShuffleWord2 replaces the second word with a random pool word.
func (s *Session) ShuffleWord2(r *rand.Rand) { s.Word2 = words.Random(r) }

// ShuffleBoth replaces both words with independent random draws.
func (s *Session) ShuffleBoth(r *rand.Rand) { s.Word1, s.Word2 = words.Pair(r) }

// SelectCategory sets the category. Unknown ids are rejected and leave the
// selection unchanged.
func (s *Session) SelectCategory(id string) error {
	c := types.Category(id)
	if !c.Valid() {
		return fmt.Errorf("unknown category %q", id)
	}
	s.Category = c
	return nil
}

// Request returns the generation request for the current fields.
func (s *Session) Request() Request {
	return Request{Word1: s.Word1, Word2: s.Word2, Category: s.Category}
}

// CanGenerate reports whether the generate action is enabled.
func (s *Session) CanGenerate() bool {
	return !s.Loading && s.Request().Validate() == nil
}

// Begin starts a generation: it sets Loading, clears the previous ideas,
// and returns the request to run.
func (s *Session) Begin() (Request, error) {
	if s.Loading {
		return Request{}, ErrBusy
	}
	req := s.Request()
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	s.Loading = true
	s.Ideas = ""
	s.Source = ""
	return req, nil
}

// Finish stores a completed generation and clears Loading.
func (s *Session) Finish(res types.IdeaResult) {
	s.Ideas = res.Text
	s.Source = res.Source
	s.Loading = false
}

// Abort clears Loading without storing ideas.
func (s *Session) Abort() { s.Loading = false }

// Generate runs Begin, the producer, and Finish in one call.
func (s *Session) Generate(ctx context.Context, p *Producer) error {
	req, err := s.Begin()
	if err != nil {
		return err
	}
	res, err := p.Produce(ctx, req)
	if err != nil {
		s.Abort()
		return err
	}
	s.Finish(res)
	return nil
}

// Reset clears the words, the category, and the ideas.
func (s *Session) Reset() {
	s.Word1 = ""
	s.Word2 = ""
	s.Category = ""
	s.Ideas = ""
	s.Source = ""
}

// Entries parses the current ideas text for display.
func (s *Session) Entries() []types.IdeaEntry {
	return ideas.Parse(s.Ideas)
}
