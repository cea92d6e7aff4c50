// Package tui is the terminal reader: a personal library with highlights and
// notes over a loaded PDF, an alternate universe form, and a result pane.
package tui

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/wordwrap"

	"taleweaver/pkg/client"
	"taleweaver/pkg/document"
	"taleweaver/pkg/prefs"
	"taleweaver/pkg/schema"
)

// Generator is the generation API as seen by the reader.
type Generator interface {
	Rewrite(ctx context.Context, req schema.RewriteRequest) (string, error)
	Generate(ctx context.Context, req schema.AlternateUniverseRequest) (string, error)
	SuggestQuotes(ctx context.Context, highlightedText string) (string, error)
}

type Options struct {
	Client    Generator
	Document  *document.Document
	Prefs     prefs.Preferences
	HasPrefs  bool
	ExportDir string
	Rand      *rand.Rand
}

type App struct {
	width    int
	height   int
	gen      Generator
	state    *state
	quitting bool
}

func NewApp(opts Options) *App {
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	return &App{
		width:  80,
		height: 24,
		gen:    opts.Client,
		state:  newState(opts),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := a.state

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeResult()
		return a, nil

	case spinner.TickMsg:
		if !s.loading {
			return a, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return a, cmd

	case storyMsg:
		s.loading = false
		if msg.err != nil {
			s.alert = generationAlert(msg.err)
			return a, nil
		}
		a.showResult(msg.story)
		return a, nil

	case quoteMsg:
		s.status = ""
		if msg.err != nil {
			s.alert = alertQuoteFailed
			return a, nil
		}
		if quote, ok := client.PickQuote(msg.suggestions, s.rng); ok {
			if err := s.store.UpdateNoteByID(msg.id, quote); err != nil {
				log.Debug("dropping quote", "annotation", msg.id, "error", err)
			}
		}
		return a, nil

	case documentMsg:
		s.loading = false
		if msg.err != nil {
			s.alert = alertLoadFailed
			return a, nil
		}
		a.setDocument(msg.doc)
		return a, nil

	case exportedMsg:
		if msg.err != nil {
			s.status = "Export failed: " + msg.err.Error()
			return a, nil
		}
		s.status = "Saved " + msg.path
		return a, nil

	case copiedMsg:
		if msg.err != nil {
			s.status = "Copy failed: " + msg.err.Error()
			return a, nil
		}
		s.status = "Copied to clipboard"
		return a, nil
	}

	return a, a.updateFocusedInput(msg)
}

// generationAlert shows validation messages of the API as is and a generic
// alert for anything else.
func generationAlert(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest && apiErr.Message != "" {
		return apiErr.Message
	}
	return alertGenerateFailed
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit
	}

	// The alert blocks everything else until dismissed.
	if s.alert != "" {
		s.alert = ""
		return nil
	}
	if s.loading {
		return nil
	}

	switch s.overlay {
	case overlayRewrite:
		return a.handleRewriteKey(msg)
	case overlayNote:
		return a.handleNoteKey(msg)
	case overlaySticker:
		return a.handleStickerKey(msg)
	case overlayOpen:
		return a.handleOpenKey(msg)
	case overlayResult:
		return a.handleResultKey(msg)
	}

	if key.Matches(msg, keys.Mode) {
		if s.mode == modeLibrary {
			s.mode = modeUniverse
			return a.focusUniverseField()
		}
		s.mode = modeLibrary
		return nil
	}

	if s.mode == modeUniverse {
		return a.handleUniverseKey(msg)
	}
	return a.handleLibraryKey(msg)
}

func (a *App) updateFocusedInput(msg tea.Msg) tea.Cmd {
	s := a.state
	var cmd tea.Cmd
	switch {
	case s.overlay == overlayRewrite:
		s.rewrite.customMood, cmd = s.rewrite.customMood.Update(msg)
		var cmd2 tea.Cmd
		s.rewrite.instruction, cmd2 = s.rewrite.instruction.Update(msg)
		return tea.Batch(cmd, cmd2)
	case s.overlay == overlayNote:
		s.note, cmd = s.note.Update(msg)
	case s.overlay == overlayOpen:
		s.openPath, cmd = s.openPath.Update(msg)
	case s.overlay == overlayResult:
		s.viewport, cmd = s.viewport.Update(msg)
	case s.mode == modeUniverse && s.universe.field < len(s.universe.inputs):
		i := s.universe.field
		s.universe.inputs[i], cmd = s.universe.inputs[i].Update(msg)
	}
	return cmd
}

// startLoading marks a request in flight and starts the spinner with it.
func (a *App) startLoading(cmd tea.Cmd) tea.Cmd {
	a.state.loading = true
	return tea.Batch(a.state.spinner.Tick, cmd)
}

func (a *App) setDocument(doc *document.Document) {
	s := a.state
	s.doc = doc
	s.cursor = 0
	s.selection = ""
	s.annCursor = 0
	s.focus = focusDocument
	s.store.Reset()
	s.result = ""
	s.status = ""
	s.viewport.SetContent("")
}

func (a *App) showResult(story string) {
	s := a.state
	s.result = story
	s.status = ""
	s.overlay = overlayResult
	a.resizeResult()
	s.viewport.GotoTop()
}

func (a *App) resizeResult() {
	s := a.state
	width := max(20, a.width-6)
	s.viewport.Width = width
	s.viewport.Height = max(5, a.height-8)
	s.viewport.SetContent(wordwrap.String(s.result, width))
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	s := a.state
	var body string
	switch {
	case s.loading:
		body = a.renderLoading()
	case s.overlay == overlayResult:
		body = a.renderResult()
	case s.overlay == overlayRewrite:
		body = a.renderRewrite()
	case s.mode == modeUniverse:
		body = a.renderUniverse()
	default:
		body = a.renderLibrary()
	}

	out := a.renderHeader() + "\n" + body
	if s.alert != "" {
		out += "\n\n" + styleAlert.Render(s.alert) + styleSubtitle.Render("  (press any key)")
	}
	return out
}

func (a *App) renderHeader() string {
	title := "TaleWeaver ✨"
	if a.state.hasPrefs && a.state.prefs.Name != "" {
		title = "Welcome, " + a.state.prefs.Name + "!"
	}
	return styleTitle.Render(title) + "\n" + styleSubtitle.Render("Your story, reimagined.") + "\n"
}

func (a *App) renderLoading() string {
	return "\n" + a.state.spinner.View() + " " + loadingText
}
