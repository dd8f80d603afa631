package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/viper"

	"github.com/pdiddy/ideaspark/internal/fallback"
	"github.com/pdiddy/ideaspark/internal/remote"
	"github.com/pdiddy/ideaspark/internal/spark"
	"github.com/pdiddy/ideaspark/pkg/types"
)

const (
	defaultUserAgent = "ideaspark/0.1"
	defaultAddr      = ":8080"
)

// setConfigDefaults registers every key so environment overrides are seen
// by Unmarshal.
func setConfigDefaults(v *viper.Viper) {
	params := types.DefaultGenerationParams()

	v.SetDefault("remote.endpoint", types.DefaultInferenceURL)
	v.SetDefault("remote.timeout", "0s")
	v.SetDefault("remote.user_agent", defaultUserAgent)
	v.SetDefault("remote.max_new_tokens", params.MaxNewTokens)
	v.SetDefault("remote.temperature", params.Temperature)
	v.SetDefault("remote.top_p", params.TopP)
	v.SetDefault("remote.return_full_text", params.ReturnFullText)
	v.SetDefault("remote.disabled", false)
	v.SetDefault("serve.addr", defaultAddr)
}

// loadConfig decodes the merged defaults, config file, and environment.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Random streams drawn from one --seed. Sources that are used side by side
// take distinct streams.
const (
	wordStream uint64 = iota
	templateStream
)

// newRand returns a source for stream seeded by seed, or nil for the global
// one when seed is zero.
func newRand(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)+stream))
}

// newProducer wires the remote requester and local templates. The remote
// side is skipped when local is set or the config disables it.
func newProducer(cfg types.RemoteConfig, local bool, r *rand.Rand) *spark.Producer {
	var requester spark.Requester
	if !local && !cfg.Disabled {
		requester = remote.NewBackend(cfg)
	}
	return spark.NewProducer(requester, fallback.New(r), logger)
}
