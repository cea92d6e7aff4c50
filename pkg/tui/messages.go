package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"taleweaver/pkg/document"
	"taleweaver/pkg/export"
	"taleweaver/pkg/schema"
)

type storyMsg struct {
	story string
	err   error
}

// quoteMsg addresses its annotation by ID; positions shift while the
// request is in flight.
type quoteMsg struct {
	id          string
	suggestions string
	err         error
}

type documentMsg struct {
	doc *document.Document
	err error
}

type exportedMsg struct {
	path string
	err  error
}

type copiedMsg struct{ err error }

func rewriteCmd(gen Generator, req schema.RewriteRequest) tea.Cmd {
	return func() tea.Msg {
		story, err := gen.Rewrite(context.Background(), req)
		if err != nil {
			log.Error("rewrite failed", "error", err)
		}
		return storyMsg{story: story, err: err}
	}
}

func generateCmd(gen Generator, req schema.AlternateUniverseRequest) tea.Cmd {
	return func() tea.Msg {
		story, err := gen.Generate(context.Background(), req)
		if err != nil {
			log.Error("generate failed", "error", err)
		}
		return storyMsg{story: story, err: err}
	}
}

func suggestQuoteCmd(gen Generator, id, text string) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := gen.SuggestQuotes(context.Background(), text)
		if err != nil {
			log.Error("suggest quote failed", "error", err)
		}
		return quoteMsg{id: id, suggestions: suggestions, err: err}
	}
}

func loadDocumentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := document.Load(path)
		if err != nil {
			log.Error("load document", "path", path, "error", err)
		}
		return documentMsg{doc: doc, err: err}
	}
}

func exportCmd(dir, body string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.SaveFile(dir, export.DefaultTitle, body)
		return exportedMsg{path: path, err: err}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
