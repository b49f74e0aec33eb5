package catalog

import (
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryFixture() []Tool {
	return []Tool{
		{
			ID: "1", Name: "Zeta", Slug: "zeta",
			Categories: []string{"LLM"}, Pricing: PricingFree,
			Tags: []string{"Web"}, Trending: 40,
			UpdatedAt: date(2024, time.January, 1),
		},
		{
			ID: "2", Name: "Alpha", Slug: "alpha",
			Categories: []string{"LLM"}, Pricing: PricingFree,
			Short: "Fast drafting assistant", Trending: 40,
			UpdatedAt: date(2024, time.March, 1),
		},
		{
			ID: "3", Name: "Middle", Slug: "middle",
			Categories: []string{"LLM"}, Pricing: PricingLimited,
			DescriptionEN: "Video captioning with language models", Trending: 90,
			UpdatedAt: date(2024, time.February, 1),
		},
		{
			ID: "4", Name: "Voice Kit", Slug: "voice-kit",
			Categories: []string{"TTS", "Audio"}, Pricing: PricingUnlimited,
			DescriptionFA: "ابزار تبدیل متن به گفتار", Trending: 10,
			UpdatedAt: date(2024, time.April, 1),
		},
	}
}

func TestQueryNoFilters(t *testing.T) {
	tools := queryFixture()
	result := Query(tools, QueryParams{})
	require.Len(t, result, 4)
	// No sort mode requested: input order preserved.
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "4", result[3].ID)
}

func TestQueryUnknownSortPreservesInputOrder(t *testing.T) {
	tools := queryFixture()
	result := Query(tools, QueryParams{Sort: SortMode("bogus")})
	require.Len(t, result, len(tools))
	for i, tool := range tools {
		assert.Equal(t, tool.ID, result[i].ID)
	}
}

func TestQuerySearch(t *testing.T) {
	tools := queryFixture()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		result := Query(tools, QueryParams{Search: "alpha"})
		require.Len(t, result, 1)
		assert.Equal(t, "Alpha", result[0].Name)
	})

	t.Run("matches description substring", func(t *testing.T) {
		result := Query(tools, QueryParams{Search: "captioning"})
		require.Len(t, result, 1)
		assert.Equal(t, "Middle", result[0].Name)
	})

	t.Run("matches persian description", func(t *testing.T) {
		result := Query(tools, QueryParams{Search: "گفتار"})
		require.Len(t, result, 1)
		assert.Equal(t, "Voice Kit", result[0].Name)
	})

	t.Run("matches joined tags and categories", func(t *testing.T) {
		assert.Len(t, Query(tools, QueryParams{Search: "web"}), 1)
		assert.Len(t, Query(tools, QueryParams{Search: "tts"}), 1)
	})

	t.Run("substring containment only, no fuzzing", func(t *testing.T) {
		assert.Empty(t, Query(tools, QueryParams{Search: "alpah"}))
	})
}

func TestQueryFilters(t *testing.T) {
	tools := queryFixture()

	t.Run("pricing is exact equality", func(t *testing.T) {
		result := Query(tools, QueryParams{Pricing: PricingLimited})
		require.Len(t, result, 1)
		assert.Equal(t, "Middle", result[0].Name)
	})

	t.Run("category is membership", func(t *testing.T) {
		result := Query(tools, QueryParams{Category: "Audio"})
		require.Len(t, result, 1)
		assert.Equal(t, "Voice Kit", result[0].Name)
	})
}

// The composition example: free LLM tools sorted by name ascending.
func TestQueryFilterComposition(t *testing.T) {
	tools := queryFixture()
	result := Query(tools, QueryParams{Pricing: PricingFree, Category: "LLM", Sort: SortName})

	require.Len(t, result, 2)
	assert.Equal(t, "Alpha", result[0].Name)
	assert.Equal(t, "Zeta", result[1].Name)
}

func TestQuerySortModes(t *testing.T) {
	tools := queryFixture()

	t.Run("trending descends and ties keep input order", func(t *testing.T) {
		result := Query(tools, QueryParams{Sort: SortTrending})
		require.Len(t, result, 4)
		assert.Equal(t, "Middle", result[0].Name)
		// Zeta and Alpha tie at 40; Zeta came first in the input.
		assert.Equal(t, "Zeta", result[1].Name)
		assert.Equal(t, "Alpha", result[2].Name)
		assert.Equal(t, "Voice Kit", result[3].Name)
	})

	t.Run("newest descends by updated_at", func(t *testing.T) {
		result := Query(tools, QueryParams{Sort: SortNewest})
		require.Len(t, result, 4)
		assert.Equal(t, "Voice Kit", result[0].Name)
		assert.Equal(t, "Alpha", result[1].Name)
		assert.Equal(t, "Middle", result[2].Name)
		assert.Equal(t, "Zeta", result[3].Name)
	})

	t.Run("name ascends", func(t *testing.T) {
		result := Query(tools, QueryParams{Sort: SortName})
		names := make([]string, len(result))
		for i, tool := range result {
			names[i] = tool.Name
		}
		assert.Equal(t, []string{"Alpha", "Middle", "Voice Kit", "Zeta"}, names)
	})
}

func TestQueryIsPure(t *testing.T) {
	tools := queryFixture()
	params := QueryParams{Search: "a", Sort: SortTrending}

	first := Query(tools, params)
	second := Query(tools, params)
	assert.Equal(t, first, second, "identical inputs yield identical ordering")

	// The input slice is never reordered.
	assert.Equal(t, "1", tools[0].ID)
	assert.Equal(t, "2", tools[1].ID)
	assert.Equal(t, "3", tools[2].ID)
	assert.Equal(t, "4", tools[3].ID)
}

func TestQueryEmptyInput(t *testing.T) {
	assert.Empty(t, Query(nil, QueryParams{Search: "anything", Sort: SortName}))
}

func TestSortModeValid(t *testing.T) {
	assert.True(t, SortTrending.Valid())
	assert.True(t, SortNewest.Valid())
	assert.True(t, SortName.Valid())
	assert.False(t, SortMode("random").Valid())
}

func TestQueryTieUpdatedAtStable(t *testing.T) {
	same := utc.Time{Time: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)}
	tools := []Tool{
		{ID: "a", Name: "A", UpdatedAt: same},
		{ID: "b", Name: "B", UpdatedAt: same},
	}
	result := Query(tools, QueryParams{Sort: SortNewest})
	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "b", result[1].ID)
}
