package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taleweaver/pkg/schema"
)

var universeLabels = []string{
	"Book Title",
	"Author's Name",
	"Current Scene / Chapter",
	`Your "What If..." Idea`,
}

func (a *App) focusUniverseField() tea.Cmd {
	f := &a.state.universe
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	if f.field < len(f.inputs) {
		return f.inputs[f.field].Focus()
	}
	return nil
}

func (a *App) handleUniverseKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	f := &s.universe
	onPicker := f.field >= universeGenre

	switch {
	case key.Matches(msg, keys.Back):
		a.quitting = true
		return tea.Quit
	case key.Matches(msg, keys.SubmitForm):
		return a.submitUniverse()
	case key.Matches(msg, keys.Enter):
		if f.field == universeFields-1 {
			return a.submitUniverse()
		}
		f.field++
		return a.focusUniverseField()
	case key.Matches(msg, keys.Tab), onPicker && key.Matches(msg, keys.Down):
		f.field = (f.field + 1) % universeFields
		return a.focusUniverseField()
	case key.Matches(msg, keys.ShiftTab), onPicker && key.Matches(msg, keys.Up):
		f.field = (f.field - 1 + universeFields) % universeFields
		return a.focusUniverseField()
	case key.Matches(msg, keys.Result) && onPicker:
		if s.result != "" {
			s.overlay = overlayResult
		}
		return nil
	}

	switch f.field {
	case universeGenre:
		switch {
		case key.Matches(msg, keys.Left):
			f.genre.prev()
		case key.Matches(msg, keys.Right):
			f.genre.next()
		}
		return nil
	case universeMood:
		switch {
		case key.Matches(msg, keys.Left):
			f.mood.prev()
		case key.Matches(msg, keys.Right):
			f.mood.next()
		}
		return nil
	}
	return a.updateFocusedInput(msg)
}

func (a *App) submitUniverse() tea.Cmd {
	f := &a.state.universe

	values := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		values[i] = strings.TrimSpace(in.Value())
		if values[i] == "" {
			a.state.alert = alertAllFields
			f.field = i
			return a.focusUniverseField()
		}
	}

	req := schema.AlternateUniverseRequest{
		BookTitle:        values[universeTitle],
		AuthorName:       values[universeAuthor],
		SceneDescription: values[universeScene],
		Prompt:           values[universePrompt],
		Genre:            f.genre.value(),
		Mood:             f.mood.value(),
	}
	return a.startLoading(generateCmd(a.gen, req))
}

func (a *App) renderUniverse() string {
	s := a.state
	f := s.universe
	width := max(20, a.width-4)

	var b strings.Builder
	b.WriteString(styleLabel.Render("Alternate Universe") + "\n")
	b.WriteString(styleSubtitle.Render("Describe a scene from a published book and tell the AI how to change it!") + "\n\n")

	for i, in := range f.inputs {
		b.WriteString(renderField(universeLabels[i], "", f.field == i) + "\n")
		b.WriteString("  " + in.View() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(renderPicker(f.genre, f.field == universeGenre) + "\n")
	b.WriteString(renderPicker(f.mood, f.field == universeMood) + "\n\n")

	help := "[tab] Next field  [left/right] Change  [ctrl+s] Generate New Story  [ctrl+t] Personal Library"
	if s.result != "" {
		help += "  [v] Result"
	}
	b.WriteString(styleStatusBar.Render(help))

	return styleActiveBox.Width(width).Render(b.String())
}
