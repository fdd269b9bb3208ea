// ABOUTME: Prompt templates for article summarization
// ABOUTME: Full-text prompts carry strict structure rules; title-only prompts disclose the limitation

package summary

import "fmt"

const shortPromptTemplate = `
You are a professional news summarizer. Create a concise 3-bullet summary of this article for busy executives.

RULES:
- Read and understand the full article before summarizing
- Capture only material facts from the text — no speculation or outside sources
- Use neutral, factual language without editorializing adjectives
- Use present tense for ongoing events, past tense for completed events
- Each bullet should be self-contained and understandable without the full article

STRUCTURE:
1. Main event – Who, what, when, why it matters
2. Key actions or players – Major steps taken, partnerships, political/lobbying context
3. Implications – Potential impact, stakes, or controversy

FORMAT:
- 3 bullets total
- 1-2 sentences each
- 20-35 words per bullet
- Use "–" to separate the topic from details (e.g., "Topic – Details here")

Article Title: %s
Article URL: %s
Content: %s
`

const longPromptTemplate = `
You are a professional news summarizer. Create a detailed 6-bullet summary of this article for informed readers who want comprehensive understanding.

RULES:
- Read and understand the full article before summarizing
- Capture only material facts from the text — no speculation or outside sources
- Use neutral, factual language without editorializing adjectives
- Condense multiple related sentences into single concise bullets where possible
- Use present tense for ongoing events, past tense for completed events
- Each bullet should be self-contained and focus on one theme

STRUCTURE:
1. Main event and context – Introduce central figure/event with relevant background
2. Key background facts – Past legal actions or milestones leading to the event
3. Current actions – Lobbying, business deals, or alliances described in the article
4. Political/legal environment – Reactions from political figures, government bodies, or regulators
5. Stakes and potential outcomes – What could happen if the event proceeds
6. Industry/competitive impact – How it could affect rivals, markets, or broader trends

FORMAT:
- 6 bullets total
- 2-3 sentences each
- 30-50 words per bullet
- Use "–" to separate the topic from details (e.g., "Topic – Details here")
- Maintain logical flow from core event to implications

Article Title: %s
Article URL: %s
Content: %s
`

const titleOnlyPromptTemplate = `
Based only on this article title and URL, provide a %s summary of what this article is likely about:

Title: %s
URL: %s

Note: This content was behind a paywall, so base your summary on the title and context clues from the URL.
Format as bullet points, one per line, without bullet symbols.
Be informative but acknowledge the limitation.
Do not include any preamble like "Here is a summary" - just start with the bullet points directly.
`

func fullTextPrompt(length, title, url, text string) string {
	if length == "long" {
		return fmt.Sprintf(longPromptTemplate, title, url, text)
	}
	return fmt.Sprintf(shortPromptTemplate, title, url, text)
}

func titleOnlyPrompt(length, title, url string) string {
	count := "3 bullet points (or fewer)"
	if length == "long" {
		count = "up to 6 bullet points"
	}
	return fmt.Sprintf(titleOnlyPromptTemplate, count, title, url)
}
