package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"ChatGPT", "chatgpt"},
		{"Notion AI", "notion-ai"},
		{"Stable Diffusion XL 1.0", "stable-diffusion-xl-1-0"},
		{"  padded  ", "padded"},
		{"--weird--input--", "weird-input"},
		{"ALL CAPS & SYMBOLS!!", "all-caps-symbols"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.name))
		})
	}
}

func TestValidSlug(t *testing.T) {
	valid := []string{"chatgpt", "notion-ai", "a", "a1-b2-c3"}
	for _, s := range valid {
		assert.True(t, ValidSlug(s), s)
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "UPPER", "with space", "unicode-é"}
	for _, s := range invalid {
		assert.False(t, ValidSlug(s), s)
	}
}

func TestPricingValid(t *testing.T) {
	assert.True(t, PricingFree.Valid())
	assert.True(t, PricingLimited.Valid())
	assert.True(t, PricingUnlimited.Valid())
	assert.False(t, Pricing("").Valid())
	assert.False(t, Pricing("cheap").Valid())
}

func TestToolHasCategory(t *testing.T) {
	tool := Tool{Categories: []string{"LLM", "Research"}}
	assert.True(t, tool.HasCategory("LLM"))
	assert.False(t, tool.HasCategory("llm")) // case-sensitive
	assert.False(t, tool.HasCategory("Video"))
}

func TestToolCopyIsDeep(t *testing.T) {
	tool := Tool{Name: "A", Categories: []string{"LLM"}, Tags: []string{"Web"}}
	dup := tool.copy()
	dup.Categories[0] = "changed"
	dup.Tags[0] = "changed"

	assert.Equal(t, "LLM", tool.Categories[0])
	assert.Equal(t, "Web", tool.Tags[0])
}
