// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for IdeaSpark: the category
// registry, idea entries and results, and runtime configuration.
package types

import (
	"fmt"
	"strings"
)

// Category identifies one of the fixed creative directions.
type Category string

const (
	CategoryBusiness  Category = "business"
	CategoryWriting   Category = "writing"
	CategoryProducts  Category = "products"
	CategorySolutions Category = "solutions"
	CategoryArt       Category = "art"
	CategoryStories   Category = "stories"
)

// CategoryInfo is the static display and prompt record for a category.
type CategoryInfo struct {
	// ID is the stable category identifier.
	ID Category `json:"id" yaml:"id"`

	// Name is the display label (e.g. "Creative Writing").
	Name string `json:"name" yaml:"name"`

	// Icon is the glyph shown next to the label.
	Icon string `json:"icon" yaml:"icon"`

	// Gradient is the page style used when the category is selected.
	Gradient string `json:"gradient" yaml:"gradient"`

	// PromptPhrase is the context phrase embedded in the remote prompt.
	PromptPhrase string `json:"prompt_phrase" yaml:"prompt_phrase"`
}

// registry is in display order.
var registry = []CategoryInfo{
	{
		ID:           CategoryBusiness,
		Name:         "Business",
		Icon:         "💼",
		Gradient:     "from-blue-500 to-cyan-500",
		PromptPhrase: "business opportunities, startups, or entrepreneurial ventures",
	},
	{
		ID:           CategoryWriting,
		Name:         "Creative Writing",
		Icon:         "✍️",
		Gradient:     "from-purple-500 to-pink-500",
		PromptPhrase: "creative writing prompts, story ideas, or narrative concepts",
	},
	{
		ID:           CategoryProducts,
		Name:         "Product Ideas",
		Icon:         "📦",
		Gradient:     "from-orange-500 to-red-500",
		PromptPhrase: "new product concepts, improvements, or market opportunities",
	},
	{
		ID:           CategorySolutions,
		Name:         "Problem Solving",
		Icon:         "🔧",
		Gradient:     "from-green-500 to-emerald-500",
		PromptPhrase: "practical solutions to everyday problems or challenges",
	},
	{
		ID:           CategoryArt,
		Name:         "Art & Design",
		Icon:         "🎨",
		Gradient:     "from-indigo-500 to-purple-500",
		PromptPhrase: "artistic projects, design concepts, or creative visual ideas",
	},
	{
		ID:           CategoryStories,
		Name:         "Story Concepts",
		Icon:         "✨",
		Gradient:     "from-pink-500 to-rose-500",
		PromptPhrase: "engaging story concepts, plot ideas, or narrative themes",
	},
}

// Categories returns the category registry in display order. The returned
// slice is a copy; callers may modify it freely.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(registry))
	copy(out, registry)
	return out
}

// LookupCategory returns the registry record for c.
func LookupCategory(c Category) (CategoryInfo, bool) {
	for _, info := range registry {
		if info.ID == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// Valid reports whether c is one of the fixed category ids.
func (c Category) Valid() bool {
	_, ok := LookupCategory(c)
	return ok
}

// ParseCategory resolves a user-supplied id. Matching ignores case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q: use one of %s", s, strings.Join(CategoryIDs(), ", "))
	}
	return c, nil
}

// CategoryIDs returns the category ids in display order.
func CategoryIDs() []string {
	ids := make([]string, len(registry))
	for i, info := range registry {
		ids[i] = string(info.ID)
	}
	return ids
}
