package schema

import (
	"strings"
)

// RewriteRequest is the body of POST /api/rewrite.
type RewriteRequest struct {
	SelectedText string `json:"selectedText" jsonschema:"minLength=1" jsonschema_description:"Passage the new story continues from"`
	Prompt       string `json:"prompt" jsonschema:"minLength=1" jsonschema_description:"Instruction describing how the story should change"`
	Mood         string `json:"mood" jsonschema:"minLength=1" jsonschema_description:"Desired mood of the rewrite"`
	Genre        string `json:"genre" jsonschema:"minLength=1" jsonschema_description:"Desired genre of the rewrite"`
}

// AlternateUniverseRequest is the body of POST /api/generate.
type AlternateUniverseRequest struct {
	BookTitle        string `json:"bookTitle" jsonschema:"minLength=1" jsonschema_description:"Title of the published book"`
	AuthorName       string `json:"authorName" jsonschema:"minLength=1" jsonschema_description:"Author of the published book"`
	SceneDescription string `json:"sceneDescription" jsonschema:"minLength=1" jsonschema_description:"Where the reader currently is in the book"`
	Prompt           string `json:"prompt" jsonschema:"minLength=1" jsonschema_description:"The \"what if\" scenario to diverge on"`
	Genre            string `json:"genre" jsonschema:"minLength=1" jsonschema_description:"Desired genre of the new story"`
	Mood             string `json:"mood" jsonschema:"minLength=1" jsonschema_description:"Desired mood of the new story"`
}

// QuoteSuggestionRequest is the body of POST /api/suggest-quote.
type QuoteSuggestionRequest struct {
	HighlightedText string `json:"highlightedText" jsonschema:"minLength=1" jsonschema_description:"Highlighted passage the quotes are inspired by"`
}

const (
	MsgAllFieldsRequired       = "All fields are required."
	MsgHighlightedTextRequired = "Highlighted text is required."
)

// ValidationError reports missing request fields. Error returns the
// message meant for clients; Missing is for logs only.
type ValidationError struct {
	Message string
	Missing []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type field struct {
	name  string
	value string
}

func required(msg string, fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Message: msg, Missing: missing}
}

func (r RewriteRequest) Validate() error {
	return required(MsgAllFieldsRequired,
		field{"selectedText", r.SelectedText},
		field{"prompt", r.Prompt},
		field{"mood", r.Mood},
		field{"genre", r.Genre},
	)
}

func (r AlternateUniverseRequest) Validate() error {
	return required(MsgAllFieldsRequired,
		field{"bookTitle", r.BookTitle},
		field{"authorName", r.AuthorName},
		field{"sceneDescription", r.SceneDescription},
		field{"prompt", r.Prompt},
		field{"genre", r.Genre},
		field{"mood", r.Mood},
	)
}

func (r QuoteSuggestionRequest) Validate() error {
	return required(MsgHighlightedTextRequired, field{"highlightedText", r.HighlightedText})
}
