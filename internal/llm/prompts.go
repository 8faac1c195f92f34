package llm

import "fmt"

// Prompt templates for the monthly artwork styles. Each is parameterized by
// the issue theme.
const (
	cartoonPromptTemplate = `A gentle, warm, single-panel cartoon in the style of The New Yorker.
The scene depicts a senior citizen involved in an activity related to the theme of %q.
The mood is humorous, heartwarming, and dignified.
Clean line art with a simple watercolor wash.
High-quality, professional illustration.`

	artisticPromptTemplate = `A painterly, emotionally resonant digital art piece exploring the theme of %q through the lens of senior life.
The style is hopeful, dignified, and celebrates the wisdom and beauty of aging.
Rich colors, detailed composition, high-resolution.`

	portraitPromptTemplate = `A warm, dignified portrait of a diverse senior related to the theme of %q.
The subject should radiate wisdom, joy, and hope.
Painterly style with soft, flattering lighting.
Professional quality, emotionally engaging.`

	vignettePromptTemplate = `A heartwarming vignette showing seniors and their families in a moment related to %q.
Multi-generational, diverse, full of life and connection.
Artistic style with rich detail and emotional depth.`
)

var promptTemplates = []string{
	cartoonPromptTemplate,
	artisticPromptTemplate,
	portraitPromptTemplate,
	vignettePromptTemplate,
}

// Prompts returns count prompts for a theme, cycling through the style
// templates round-robin so counts above the template count reuse styles.
func Prompts(theme string, count int) []string {
	if count <= 0 {
		return nil
	}
	prompts := make([]string, count)
	for i := 0; i < count; i++ {
		prompts[i] = fmt.Sprintf(promptTemplates[i%len(promptTemplates)], theme)
	}
	return prompts
}
