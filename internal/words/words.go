// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package words holds the fixed pool of candidate words and draws random
// picks from it.
package words

import "math/rand/v2"

// pool is grouped by theme, ten words per group.
var pool = [...]string{
	// technology
	"robot", "digital", "cyber", "quantum", "virtual", "neural", "smart", "nano", "bio", "eco",
	// nature
	"ocean", "forest", "mountain", "solar", "lunar", "crystal", "thunder", "wind", "fire", "ice",
	// actions
	"flying", "dancing", "spinning", "glowing", "flowing", "racing", "climbing", "diving", "jumping", "singing",
	// objects
	"mirror", "door", "bridge", "tower", "garden", "library", "kitchen", "studio", "workshop", "laboratory",
	// qualities
	"invisible", "magical", "ancient", "modern", "tiny", "giant", "silent", "colorful", "transparent", "flexible",
	// animals
	"dragon", "phoenix", "wolf", "eagle", "dolphin", "butterfly", "tiger", "lion", "bear", "fox",
	// time
	"midnight", "dawn", "sunset", "eternal", "instant", "future", "vintage", "timeless", "rapid", "slow",
	// materials
	"glass", "metal", "wood", "stone", "fabric", "paper", "plastic", "ceramic", "diamond", "gold",
}

// Size is the number of words in the pool.
const Size = len(pool)

// All returns a copy of the pool in its fixed order.
func All() []string {
	out := make([]string, Size)
	copy(out, pool[:])
	return out
}

// Contains reports whether w is a pool word.
func Contains(w string) bool {
	for _, p := range pool {
		if p == w {
			return true
		}
	}
	return false
}

// Random returns a uniformly drawn pool word. A nil r uses the global
// source.
func Random(r *rand.Rand) string {
	if r == nil {
		return pool[rand.IntN(Size)]
	}
	return pool[r.IntN(Size)]
}

// Pair draws two independent words; they may be equal.
func Pair(r *rand.Rand) (string, string) {
	return Random(r), Random(r)
}
