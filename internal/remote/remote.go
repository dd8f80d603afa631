// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package remote requests ideas from a hosted text-generation endpoint.
// The call is best-effort: every failure mode is reported as
// ErrUnavailable so callers can substitute local output.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pdiddy/ideaspark/internal/httputil"
	"github.com/pdiddy/ideaspark/pkg/types"
)

// inferenceURL is the endpoint used when Backend.Endpoint is empty.
// Package-level var for test substitution.
var inferenceURL = types.DefaultInferenceURL

// ErrUnavailable matches every error returned by Backend.Generate.
var ErrUnavailable = errors.New("remote generation unavailable")

// UnavailableError carries the cause of a failed remote generation. It
// matches ErrUnavailable under errors.Is and unwraps to the cause.
type UnavailableError struct {
	Reason string
	Err    error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", ErrUnavailable, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %v", ErrUnavailable, e.Reason, e.Err)
}

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

func (e *UnavailableError) Unwrap() error { return e.Err }

func unavailable(reason string, err error) error {
	return &UnavailableError{Reason: reason, Err: err}
}

// Backend sends one unauthenticated generation request per call.
type Backend struct {
	Client    *http.Client
	Endpoint  string
	UserAgent string
	Params    types.GenerationParams
}

// NewBackend builds a Backend from configuration. A zero timeout leaves
// requests unbounded.
func NewBackend(cfg types.RemoteConfig) *Backend {
	return &Backend{
		Client:    &http.Client{Timeout: cfg.Timeout},
		Endpoint:  cfg.Endpoint,
		UserAgent: cfg.UserAgent,
		Params:    cfg.GenerationParams,
	}
}

// inferenceRequest is the request body of the text-generation API.
type inferenceRequest struct {
	Inputs     string                 `json:"inputs"`
	Parameters types.GenerationParams `json:"parameters"`
}

// generation is one element of the text-generation response.
type generation struct {
	GeneratedText string `json:"generated_text"`
	Error         string `json:"error,omitempty"`
}

// Generate asks the endpoint for ideas combining word1 and word2 and
// returns the generated text unchanged.
func (b *Backend) Generate(ctx context.Context, word1, word2 string, cat types.Category) (string, error) {
	prompt, err := BuildPrompt(word1, word2, cat)
	if err != nil {
		return "", unavailable("rendering prompt", err)
	}

	params := b.Params
	if params == (types.GenerationParams{}) {
		params = types.DefaultGenerationParams()
	}

	endpoint := b.Endpoint
	if endpoint == "" {
		endpoint = inferenceURL
	}

	header := http.Header{}
	if b.UserAgent != "" {
		header.Set("User-Agent", b.UserAgent)
	}

	var raw json.RawMessage
	err = httputil.PostJSON(ctx, b.Client, endpoint, header, inferenceRequest{
		Inputs:     prompt,
		Parameters: params,
	}, &raw)
	if err != nil {
		return "", unavailable("calling inference API", err)
	}

	text, err := generatedText(raw)
	if err != nil {
		return "", unavailable("parsing inference response", err)
	}
	if text == "" {
		return "", unavailable("empty generated text", nil)
	}
	return text, nil
}

// generatedText accepts both response shapes: an array whose first element
// carries generated_text, or a single object with it at the top level.
func generatedText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", nil
	}

	var gen generation
	switch raw[0] {
	case '[':
		var list []generation
		if err := json.Unmarshal(raw, &list); err != nil {
			return "", err
		}
		if len(list) == 0 {
			return "", nil
		}
		gen = list[0]
	case '{':
		if err := json.Unmarshal(raw, &gen); err != nil {
			return "", err
		}
	default:
		return "", nil
	}

	if gen.GeneratedText == "" && gen.Error != "" {
		return "", fmt.Errorf("provider error: %s", gen.Error)
	}
	return gen.GeneratedText, nil
}
