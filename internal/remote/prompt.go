// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package remote

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/pdiddy/ideaspark/pkg/types"
)

// ideaPromptTmpl asks for 5-7 numbered ideas in "N. Title - Description"
// form, which is the shape the ideas parser splits best.
var ideaPromptTmpl = template.Must(template.New("ideas").Parse(`Generate 5-7 creative and practical ideas that combine the words "{{.Word1}}" and "{{.Word2}}" for {{.Phrase}}. 

Make the ideas:
- Innovative and unique
- Practical and achievable
- Each idea should have a clear title followed by a detailed explanation
- Varied in scope and approach

Format your response as a numbered list where each entry follows this exact format:
"1. [Idea Title] - [Detailed explanation of the idea in 1-2 sentences]"

Example format:
"1. Smart Garden Monitor - A device that combines sensors and AI to automatically track soil moisture, light levels, and plant health, sending notifications to your phone when your plants need attention."

Make sure every idea has both a title AND a description separated by " - "`))

// BuildPrompt renders the generation prompt for two words and a category.
func BuildPrompt(word1, word2 string, cat types.Category) (string, error) {
	info, ok := types.LookupCategory(cat)
	if !ok {
		return "", fmt.Errorf("unknown category %q", cat)
	}

	var buf bytes.Buffer
	err := ideaPromptTmpl.Execute(&buf, struct {
		Word1, Word2, Phrase string
	}{word1, word2, info.PromptPhrase})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
