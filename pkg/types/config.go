// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultInferenceURL is the text-generation endpoint used when no
// override is configured.
const DefaultInferenceURL = "https://api-inference.huggingface.co/models/mistralai/Mixtral-8x7B-Instruct-v0.1"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "ideaspark/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// GenerationParams are the sampling parameters sent with every remote
// request.
type GenerationParams struct {
	// MaxNewTokens caps the generated length (default 1000).
	MaxNewTokens int `json:"max_new_tokens" yaml:"max_new_tokens" mapstructure:"max_new_tokens"`

	// Temperature controls sampling randomness (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature" mapstructure:"temperature"`

	// TopP is the nucleus-sampling threshold (default 0.9).
	TopP float64 `json:"top_p" yaml:"top_p" mapstructure:"top_p"`

	// ReturnFullText asks the provider to echo the prompt. Always false in
	// practice; kept configurable for providers that default it on.
	ReturnFullText bool `json:"return_full_text" yaml:"return_full_text" mapstructure:"return_full_text"`
}

// DefaultGenerationParams returns the parameters the remote requester uses
// when none are configured.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		MaxNewTokens: 1000,
		Temperature:  0.7,
		TopP:         0.9,
	}
}

// RemoteConfig holds settings for the remote idea requester.
type RemoteConfig struct {
	HTTPConfig       `yaml:",inline" mapstructure:",squash"`
	GenerationParams `yaml:",inline" mapstructure:",squash"`

	// Endpoint is the inference URL (default DefaultInferenceURL).
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// Disabled skips the remote call; every generation uses local templates.
	Disabled bool `json:"disabled" yaml:"disabled" mapstructure:"disabled"`
}

// ServeConfig holds settings for the HTTP server.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`
}

// Config groups all IdeaSpark settings.
type Config struct {
	Remote RemoteConfig `json:"remote" yaml:"remote" mapstructure:"remote"`
	Serve  ServeConfig  `json:"serve" yaml:"serve" mapstructure:"serve"`
}
