package schema

type RewriteResponse struct {
	Success        bool   `json:"success"`
	RewrittenStory string `json:"rewrittenStory"`
}

type GenerateResponse struct {
	Success        bool   `json:"success"`
	GeneratedStory string `json:"generatedStory"`
}

// QuoteSuggestionResponse carries the raw model output; quotes are
// separated by newlines.
type QuoteSuggestionResponse struct {
	Success     bool   `json:"success"`
	Suggestions string `json:"suggestions"`
}

// ErrorResponse is the uniform error body of every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
