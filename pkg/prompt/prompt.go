// Package prompt holds the fixed instructions sent to the model. Fields are
// interpolated verbatim: no escaping and no length capping.
package prompt

import (
	"fmt"

	"taleweaver/pkg/schema"
)

const rewriteTemplate = `You are a master ghostwriter. Your task is to rewrite a book. The last scene was: "%s". The user's instruction is: "%s". The desired genre is "%s" and mood is "%s". Write the ENTIRE rest of the book (at least 15-20 new, full-length chapters) with a full plot arc, mimicking the original author's style. Structure with clear chapter headings.`

const alternateUniverseTemplate = `You are a master storyteller with encyclopedic knowledge of all published books. A user wants you to generate an alternate story for a book they are reading. Book Title: %s, Author's Name: %s, Current Position: %s, "What If" Scenario: %s, Desired Genre: %s, Desired Mood: %s. Your Mission: Write the ENTIRE rest of the story from this point. CRITICAL: You must perfectly mimic the original author's writing style. The story must be extremely long (10-15 new, full-length chapters), have a full plot arc, and a satisfying conclusion. Structure with clear chapter headings.`

const suggestQuotesTemplate = `A user has highlighted the following text from a story: "%s".
Generate exactly 3 short, clever, and poetic annotation quotes inspired by this text. The quotes should be suitable for a reader's personal notes.
Return only the 3 quotes, each on a new line. Do not add any other text or formatting.`

// QuoteCount is the number of quotes SuggestQuotes asks for.
const QuoteCount = 3

func Rewrite(req schema.RewriteRequest) string {
	return fmt.Sprintf(rewriteTemplate, req.SelectedText, req.Prompt, req.Genre, req.Mood)
}

func AlternateUniverse(req schema.AlternateUniverseRequest) string {
	return fmt.Sprintf(alternateUniverseTemplate,
		req.BookTitle,
		req.AuthorName,
		req.SceneDescription,
		req.Prompt,
		req.Genre,
		req.Mood,
	)
}

func SuggestQuotes(req schema.QuoteSuggestionRequest) string {
	return fmt.Sprintf(suggestQuotesTemplate, req.HighlightedText)
}
