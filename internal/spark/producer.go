// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package spark produces idea text from two words and a category, and
// models the interactive session state around that operation.
package spark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/ideaspark/internal/fallback"
	"github.com/pdiddy/ideaspark/internal/ideas"
	"github.com/pdiddy/ideaspark/pkg/types"
)

// ErrIncomplete reports a request missing a word or a valid category.
var ErrIncomplete = errors.New("two words and a category are required")

// Requester fetches idea text from a remote generator. Any error means
// remote generation is unavailable.
type Requester interface {
	Generate(ctx context.Context, word1, word2 string, cat types.Category) (string, error)
}

// Request is one generation request.
type Request struct {
	Word1    string
	Word2    string
	Category types.Category
}

// Validate reports ErrIncomplete unless both words are non-blank and the
// category is one of the fixed ids.
func (r Request) Validate() error {
	switch {
	case strings.TrimSpace(r.Word1) == "":
		return fmt.Errorf("%w: first word is empty", ErrIncomplete)
	case strings.TrimSpace(r.Word2) == "":
		return fmt.Errorf("%w: second word is empty", ErrIncomplete)
	case r.Category == "":
		return fmt.Errorf("%w: no category selected", ErrIncomplete)
	case !r.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", ErrIncomplete, r.Category)
	}
	return nil
}

// Producer tries the remote requester and falls back to local templates
// on any failure.
type Producer struct {
	remote Requester
	local  *fallback.Generator
	logger *zap.Logger
}

// NewProducer returns a Producer. A nil remote makes every generation
// local; a nil logger discards logs.
func NewProducer(remote Requester, local *fallback.Generator, logger *zap.Logger) *Producer {
	if local == nil {
		local = fallback.New(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Producer{remote: remote, local: local, logger: logger}
}

// Produce generates ideas for req. It fails only on invalid input; remote
// failures are logged and replaced by local output.
func (p *Producer) Produce(ctx context.Context, req Request) (types.IdeaResult, error) {
	if err := req.Validate(); err != nil {
		return types.IdeaResult{}, err
	}

	text, source := p.produceText(ctx, req)

	return types.IdeaResult{
		Word1:    req.Word1,
		Word2:    req.Word2,
		Category: req.Category,
		Source:   source,
		Text:     text,
		Ideas:    ideas.Parse(text),
	}, nil
}

func (p *Producer) produceText(ctx context.Context, req Request) (string, types.IdeaSource) {
	if p.remote != nil {
		text, err := p.remote.Generate(ctx, req.Word1, req.Word2, req.Category)
		if err == nil && text != "" {
			p.logger.Debug("remote generation succeeded",
				zap.String("category", string(req.Category)),
				zap.Int("bytes", len(text)))
			return text, types.SourceRemote
		}
		if err == nil {
			err = errors.New("empty generated text")
		}
		p.logger.Info("remote generation failed, using local templates",
			zap.String("category", string(req.Category)),
			zap.Error(err))
	}

	return p.local.Generate(req.Word1, req.Word2, req.Category), types.SourceLocal
}
