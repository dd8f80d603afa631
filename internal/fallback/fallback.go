// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fallback generates ideas locally from fixed per-category
// templates. It is the path taken whenever remote generation is
// unavailable, and it cannot fail.
package fallback

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/ideaspark/pkg/types"
)

// TemplateCount is the number of templates per category, and the number
// of lines every generation emits.
const TemplateCount = 5

// Generator fills and shuffles the category templates. A Generator with a
// non-nil Rand is not safe for concurrent use.
type Generator struct {
	// Rand drives the shuffle. Nil uses the global source.
	Rand *rand.Rand
}

// New returns a Generator using r for shuffling.
func New(r *rand.Rand) *Generator {
	return &Generator{Rand: r}
}

// Templates returns the five filled templates for cat in their fixed
// order. Unknown categories use the business set.
func Templates(cat types.Category, word1, word2 string) [TemplateCount]string {
	set, ok := templates[cat]
	if !ok {
		set = templates[types.CategoryBusiness]
	}

	r := strings.NewReplacer(
		"{W1}", Capitalize(word1),
		"{W2}", Capitalize(word2),
		"{w1}", word1,
		"{w2}", word2,
	)

	var out [TemplateCount]string
	for i, tmpl := range set {
		out[i] = r.Replace(tmpl)
	}
	return out
}

// Generate returns the filled templates for cat in a uniformly random
// order, one per line, numbered "1. " through "5. ".
func (g *Generator) Generate(word1, word2 string, cat types.Category) string {
	filled := Templates(cat, word1, word2)
	ideas := filled[:]

	swap := func(i, j int) { ideas[i], ideas[j] = ideas[j], ideas[i] }
	if g != nil && g.Rand != nil {
		g.Rand.Shuffle(len(ideas), swap)
	} else {
		rand.Shuffle(len(ideas), swap)
	}

	lines := make([]string, len(ideas))
	for i, idea := range ideas {
		lines[i] = fmt.Sprintf("%d. %s", i+1, idea)
	}
	return strings.Join(lines, "\n")
}

// Capitalize upper-cases the first character of s and leaves the rest
// unchanged.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}
