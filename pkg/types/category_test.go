// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesOrderAndIDs(t *testing.T) {
	want := []string{"business", "writing", "products", "solutions", "art", "stories"}
	assert.Equal(t, want, CategoryIDs())

	cats := Categories()
	require.Len(t, cats, 6)
	for i, c := range cats {
		assert.Equal(t, want[i], string(c.ID))
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Icon)
		assert.NotEmpty(t, c.Gradient)
		assert.NotEmpty(t, c.PromptPhrase)
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].Name = "changed"

	info, ok := LookupCategory(CategoryBusiness)
	require.True(t, ok)
	assert.Equal(t, "Business", info.Name)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   Category
		errMsg string
	}{
		{in: "business", want: CategoryBusiness},
		{in: "  Products ", want: CategoryProducts},
		{in: "ART", want: CategoryArt},
		{in: "", errMsg: "unknown category"},
		{in: "poetry", errMsg: "unknown category"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryStories.Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("Business").Valid())
}
