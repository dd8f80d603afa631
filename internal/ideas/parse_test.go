// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ideas

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/ideaspark/internal/fallback"
	"github.com/pdiddy/ideaspark/pkg/types"
)

func TestNumberedLinesFiltersAndKeepsOrder(t *testing.T) {
	text := strings.Join([]string{
		"Here are some ideas:",
		"",
		"1. First - one",
		"- a bullet",
		"  2. Second - two  ",
		"Not numbered. 3. nope",
		"10. Tenth - ten",
		"4) Paren - no",
		"5.NoSpace - five",
	}, "\n")

	got := NumberedLines(text)
	assert.Equal(t, []string{
		"1. First - one",
		"2. Second - two",
		"10. Tenth - ten",
		"5.NoSpace - five",
	}, got)
}

func TestStripNumber(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1. Title - Desc", "Title - Desc"},
		{"12.   Spaced", "Spaced"},
		{"3.Tight", "Tight"},
		{"  4. Indented  ", "Indented"},
		{"No number", "No number"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripNumber(tt.in))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want types.IdeaEntry
	}{
		{
			name: "dash separator",
			in:   "Title - Description text",
			want: types.IdeaEntry{Title: "Title", Description: "Description text"},
		},
		{
			name: "later dashes stay in description",
			in:   "A - B - C",
			want: types.IdeaEntry{Title: "A", Description: "B - C"},
		},
		{
			name: "dash wins over colon",
			in:   "Project: Phoenix - A rebirth story",
			want: types.IdeaEntry{Title: "Project: Phoenix", Description: "A rebirth story"},
		},
		{
			name: "colon separator",
			in:   "Glass Garden: A greenhouse made of recycled glass: cheap and bright",
			want: types.IdeaEntry{Title: "Glass Garden", Description: "A greenhouse made of recycled glass: cheap and bright"},
		},
		{
			name: "hyphenated words are not separators",
			in:   "Eco-Ocean Robot-System",
			want: types.IdeaEntry{Title: "Eco-Ocean Robot-System"},
		},
		{
			name: "short line without separator",
			in:   "Just a title",
			want: types.IdeaEntry{Title: "Just a title"},
		},
		{
			name: "long line splits at first sentence",
			in:   "Smart Garden Monitor uses sensors to track soil moisture. It sends alerts to your phone. Plants stay healthy all year long.",
			// The trailing period is appended even when the last sentence
			// already ends with one.
			want: types.IdeaEntry{
				Title:       "Smart Garden Monitor uses sensors to track soil moisture",
				Description: "It sends alerts to your phone. Plants stay healthy all year long..",
			},
		},
		{
			name: "long line without sentence break",
			in:   "A very long idea without any separator that keeps going and going well past the threshold of one hundred characters",
			want: types.IdeaEntry{Title: "A very long idea without any separator that keeps going and going well past the threshold of one hundred characters"},
		},
		{
			name: "lowercase after period is not a break",
			in:   "Tidal energy kites harvest power from ocean currents using tethered robotic wings. they need little maintenance overall",
			want: types.IdeaEntry{Title: "Tidal energy kites harvest power from ocean currents using tethered robotic wings. they need little maintenance overall"},
		},
		{
			name: "quoted title",
			in:   `"Smart Garden" - A device for plants`,
			want: types.IdeaEntry{Title: "Smart Garden", Description: "A device for plants"},
		},
		{
			name: "curly quoted title",
			in:   "“Smart Garden” - A device for plants",
			want: types.IdeaEntry{Title: "Smart Garden", Description: "A device for plants"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.in))
		})
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{`'"Smart Garden"'`, "Smart Garden"},
		{`"Smart Garden"`, "Smart Garden"},
		{"'Solo'", "Solo"},
		{"‘Curly’", "Curly"},
		{`Don't Stop`, "Don't Stop"},
		{"Plain", "Plain"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	text := "Sure! Here you go:\n\n" +
		"1. \"Smart Garden Monitor\" - A device that tracks soil moisture.\n" +
		"2. Robot Reef: Autonomous drones that replant coral.\n" +
		"\n" +
		"3. Just a title\n" +
		"Hope this helps!"

	got := Parse(text)
	require.Len(t, got, 3)
	assert.Equal(t, types.IdeaEntry{Title: "Smart Garden Monitor", Description: "A device that tracks soil moisture."}, got[0])
	assert.Equal(t, types.IdeaEntry{Title: "Robot Reef", Description: "Autonomous drones that replant coral."}, got[1])
	assert.Equal(t, types.IdeaEntry{Title: "Just a title"}, got[2])
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("no numbered lines\nat all"))
}

func TestParseFallbackOutput(t *testing.T) {
	g := fallback.New(rand.New(rand.NewPCG(2, 3)))
	text := g.Generate("ocean", "robot", types.CategoryProducts)

	got := Parse(text)
	require.Len(t, got, fallback.TemplateCount)

	titles := make(map[string]string)
	for _, e := range got {
		titles[e.Title] = e.Description
	}
	assert.Equal(t,
		"An innovative device that combines the functionality of ocean with the convenience of robot for everyday use.",
		titles["OceanRobot Pro"])
	assert.Equal(t,
		"A sustainable solution that uses robot principles to enhance traditional ocean applications while reducing environmental impact.",
		titles["Eco-Ocean Robot System"])
	assert.Contains(t, titles, "Smart Ocean with Robot Integration")
	assert.Contains(t, titles, "The Ocean Robot Kit")
	assert.Contains(t, titles, "Portable Ocean Robot Station")
}

func TestSplitLengthCountsRunes(t *testing.T) {
	// 92 runes but over 100 bytes: short enough to stay whole.
	short := "Glow. Bright" + strings.Repeat("🌊", 80)
	assert.Equal(t, types.IdeaEntry{Title: short}, Split(short))

	// 101 runes: long enough for the sentence split.
	long := "Glow. Bright" + strings.Repeat("🌊", 89)
	assert.Equal(t, types.IdeaEntry{Title: "Glow", Description: "Bright" + strings.Repeat("🌊", 89) + "."}, Split(long))
}

func TestParseIndentedNumberedLine(t *testing.T) {
	got := Parse("  6.   indented - yes")
	assert.Equal(t, []types.IdeaEntry{{Title: "indented", Description: "yes"}}, got)
}
