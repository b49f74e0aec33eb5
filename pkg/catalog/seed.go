package catalog

import (
	"time"

	"github.com/agentstation/utc"
)

// Store slot keys. The versioned names allow a future format migration to
// move to a fresh slot while older blobs keep their fallback semantics.
const (
	ToolsKey       = "wiki-ai.tools.v1"
	SubmissionsKey = "wiki-ai.submissions.v1"
	ConfigKey      = "wiki-ai.config.v1"
)

// DefaultCategories is the taxonomy a fresh catalog starts with.
var DefaultCategories = []string{
	"LLM",
	"TTS",
	"Image",
	"Video",
	"Audio",
	"Agents",
	"Productivity",
	"DevTools",
	"No-code",
	"Data",
	"Research",
	"Marketing",
}

// DefaultBrand is the branding a fresh catalog starts with.
var DefaultBrand = Brand{
	Title:   "Wiki AI",
	Tagline: "Discover, compare, and track AI tools.",
}

// DefaultTaxonomy returns the taxonomy used when no config slot exists.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Categories: copyStrings(DefaultCategories),
		Brand:      DefaultBrand,
	}
}

func date(year int, month time.Month, day int) utc.Time {
	return utc.Time{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// SeedTools returns the starter dataset a fresh catalog is bootstrapped
// with. Each call generates fresh ids; slugs are the stable identifiers.
func SeedTools() []Tool {
	now := utc.Now()
	return []Tool{
		{
			ID:            NewID(),
			Name:          "ChatGPT",
			Slug:          "chatgpt",
			URL:           "https://chat.openai.com",
			Logo:          "https://seeklogo.com/images/C/chatgpt-logo-02AFA704B5-seeklogo.com.png",
			Short:         "General-purpose conversational AI by OpenAI.",
			Categories:    []string{"LLM", "Productivity"},
			Pricing:       PricingLimited,
			Tags:          []string{"Web", "API"},
			Features:      []string{"GPT-4 class models", "Assistants & Tools", "Plugins / browsing"},
			LangSupport:   []string{"EN", "FA", "AR"},
			Trending:      93,
			CreatedAt:     date(2023, time.March, 14),
			UpdatedAt:     now,
			DescriptionEN: "ChatGPT helps you reason, write, and build workflows with natural language. It supports multimodal inputs and can integrate with tools.",
			DescriptionFA: "چت‌جی‌پی‌تی یک دستیار هوش مصنوعی چندمنظوره است که برای نوشتن، ایده‌پردازی و ساخت جریان‌کار با زبان طبیعی استفاده می‌شود.",
		},
		{
			ID:            NewID(),
			Name:          "Claude",
			Slug:          "claude",
			URL:           "https://claude.ai",
			Logo:          "https://avatars.githubusercontent.com/u/125704493?s=200&v=4",
			Short:         "Helpful, harmless, honest assistant by Anthropic.",
			Categories:    []string{"LLM", "Research"},
			Pricing:       PricingLimited,
			Tags:          []string{"Web"},
			Features:      []string{"Great at analysis", "Long context", "Safe by design"},
			LangSupport:   []string{"EN", "FA"},
			Trending:      88,
			CreatedAt:     date(2023, time.March, 14),
			UpdatedAt:     now,
			DescriptionEN: "Claude is a capable assistant focused on reliability and long-context reasoning.",
			DescriptionFA: "کلود یک دستیار قدرتمند با تمرکز بر دقت و توان تحلیل متن‌های طولانی است.",
		},
		{
			ID:            NewID(),
			Name:          "Midjourney",
			Slug:          "midjourney",
			URL:           "https://www.midjourney.com",
			Logo:          "https://seeklogo.com/images/M/midjourney-logo-7B71F9A8F2-seeklogo.com.png",
			Short:         "Text-to-image model with artistic flair.",
			Categories:    []string{"Image"},
			Pricing:       PricingUnlimited,
			Tags:          []string{"Discord"},
			Features:      []string{"Artistic render", "Extensive styles"},
			LangSupport:   []string{"EN"},
			Trending:      85,
			CreatedAt:     date(2022, time.July, 1),
			UpdatedAt:     now,
			DescriptionEN: "Midjourney turns prompts into striking images, great for concept art and design.",
			DescriptionFA: "میدجرنی با دریافت پرامپت به سرعت تصاویر چشمگیر تولید می‌کند و برای کانسپت‌آرت عالی است.",
		},
		{
			ID:            NewID(),
			Name:          "Runway",
			Slug:          "runway",
			URL:           "https://runwayml.com",
			Logo:          "https://seeklogo.com/images/R/runway-ml-logo-9DB3B640D3-seeklogo.com.png",
			Short:         "Video generation & editing tools.",
			Categories:    []string{"Video", "Image"},
			Pricing:       PricingLimited,
			Tags:          []string{"Web"},
			Features:      []string{"Gen-3 Alpha", "Green screen", "Motion brush"},
			LangSupport:   []string{"EN"},
			Trending:      77,
			CreatedAt:     date(2023, time.June, 1),
			UpdatedAt:     now,
			DescriptionEN: "Runway offers AI-first video generation and creative editing tools.",
			DescriptionFA: "رانوی مجموعه‌ای از ابزارهای هوش مصنوعی برای ویدیو و ادیت خلاقانه ارائه می‌دهد.",
		},
		{
			ID:            NewID(),
			Name:          "ElevenLabs",
			Slug:          "elevenlabs",
			URL:           "https://elevenlabs.io",
			Logo:          "https://seeklogo.com/images/E/eleven-labs-logo-3E47CDA180-seeklogo.com.png",
			Short:         "Realistic text-to-speech & voice cloning.",
			Categories:    []string{"TTS", "Audio"},
			Pricing:       PricingLimited,
			Tags:          []string{"Web", "API"},
			Features:      []string{"Voice cloning", "Multilingual TTS"},
			LangSupport:   []string{"EN", "FA"},
			Trending:      72,
			CreatedAt:     date(2023, time.February, 1),
			UpdatedAt:     now,
			DescriptionEN: "ElevenLabs provides high-quality voices and cloning capabilities for content and apps.",
			DescriptionFA: "اله‌ون‌لبز صداهای طبیعی و امکان کلون‌کردن صدا را برای تولید محتوا و اپلیکیشن‌ها فراهم می‌کند.",
		},
		{
			ID:            NewID(),
			Name:          "Notion AI",
			Slug:          "notion-ai",
			URL:           "https://notion.so/ai",
			Logo:          "https://seeklogo.com/images/N/notion-logo-4CE8FBF5DB-seeklogo.com.png",
			Short:         "Writing & knowledge workflows inside Notion.",
			Categories:    []string{"Productivity"},
			Pricing:       PricingLimited,
			Tags:          []string{"Web"},
			Features:      []string{"Summarize", "Brainstorm", "Translate"},
			LangSupport:   []string{"EN"},
			Trending:      66,
			CreatedAt:     date(2023, time.March, 1),
			UpdatedAt:     now,
			DescriptionEN: "AI features embedded in Notion for writing and docs.",
			DescriptionFA: "نوشن AI امکانات نگارشی و کمکی را مستقیم داخل نوشن ارائه می‌دهد.",
		},
		{
			ID:            NewID(),
			Name:          "Poe",
			Slug:          "poe",
			URL:           "https://poe.com",
			Logo:          "https://avatars.githubusercontent.com/u/12012625?s=200&v=4",
			Short:         "Multi-bot chat hub by Quora.",
			Categories:    []string{"LLM"},
			Pricing:       PricingLimited,
			Tags:          []string{"Web"},
			Features:      []string{"Multiple models", "Shareable bots"},
			LangSupport:   []string{"EN"},
			Trending:      61,
			CreatedAt:     date(2023, time.February, 15),
			UpdatedAt:     now,
			DescriptionEN: "Poe lets you chat with many AI models in one place.",
			DescriptionFA: "پو امکان گفتگو با مدل‌های متنوع را در یک پلتفرم می‌دهد.",
		},
		{
			ID:            NewID(),
			Name:          "ComfyUI",
			Slug:          "comfyui",
			URL:           "https://github.com/comfyanonymous/ComfyUI",
			Logo:          "https://raw.githubusercontent.com/comfyanonymous/ComfyUI/master/web/assets/favicon.png",
			Short:         "Node-based Stable Diffusion GUI.",
			Categories:    []string{"Image", "DevTools"},
			Pricing:       PricingFree,
			Tags:          []string{"Desktop"},
			Features:      []string{"Visual graph", "Extensible nodes"},
			LangSupport:   []string{"EN"},
			Trending:      58,
			CreatedAt:     date(2023, time.January, 20),
			UpdatedAt:     now,
			DescriptionEN: "A powerful visual interface to build custom Stable Diffusion pipelines.",
			DescriptionFA: "یک رابط بصری گره‌محور برای ساخت پایپ‌لاین‌های استیبل‌دیفیوشن.",
		},
	}
}
