package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taleweaver/pkg/catalog"
	"taleweaver/pkg/schema"
	"taleweaver/pkg/utils"
)

func (a *App) openRewrite() tea.Cmd {
	f := &a.state.rewrite
	f.instruction.Reset()
	f.customMood.Reset()
	f.field = rewriteInstruction
	a.state.overlay = overlayRewrite
	return a.focusRewriteField()
}

func (a *App) focusRewriteField() tea.Cmd {
	f := &a.state.rewrite
	f.customMood.Blur()
	f.instruction.Blur()
	switch f.field {
	case rewriteCustom:
		return f.customMood.Focus()
	case rewriteInstruction:
		return f.instruction.Focus()
	}
	return nil
}

// moveRewriteField steps through the fields, skipping the custom mood input
// unless "Craft Your Own" is chosen.
func (a *App) moveRewriteField(step int) tea.Cmd {
	f := &a.state.rewrite
	for {
		f.field = (f.field + step + 4) % 4
		if f.field != rewriteCustom || f.mood.value() == catalog.CraftYourOwn {
			break
		}
	}
	return a.focusRewriteField()
}

func (a *App) handleRewriteKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	f := &s.rewrite

	switch {
	case key.Matches(msg, keys.Back):
		f.customMood.Blur()
		f.instruction.Blur()
		s.overlay = overlayNone
		return nil
	case key.Matches(msg, keys.Tab), key.Matches(msg, keys.Down) && f.field < rewriteCustom:
		return a.moveRewriteField(1)
	case key.Matches(msg, keys.ShiftTab), key.Matches(msg, keys.Up) && f.field < rewriteCustom:
		return a.moveRewriteField(-1)
	case key.Matches(msg, keys.Enter):
		return a.submitRewrite()
	}

	switch f.field {
	case rewriteGenre:
		switch {
		case key.Matches(msg, keys.Left):
			f.genre.prev()
		case key.Matches(msg, keys.Right):
			f.genre.next()
		}
		return nil
	case rewriteMood:
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

func (a *App) submitRewrite() tea.Cmd {
	s := a.state
	f := &s.rewrite

	instruction := strings.TrimSpace(f.instruction.Value())
	if s.selection == "" || instruction == "" {
		s.alert = alertNoInstruction
		return nil
	}

	mood, err := catalog.ResolveMood(f.mood.value(), f.customMood.Value(), s.rng)
	if err != nil {
		s.alert = alertNoCustomMood
		return nil
	}

	f.customMood.Blur()
	f.instruction.Blur()
	s.overlay = overlayNone

	req := schema.RewriteRequest{
		SelectedText: s.selection,
		Prompt:       instruction,
		Mood:         mood,
		Genre:        f.genre.value(),
	}
	return a.startLoading(rewriteCmd(a.gen, req))
}

func (a *App) renderRewrite() string {
	s := a.state
	f := s.rewrite
	width := max(20, a.width-4)

	var b strings.Builder
	b.WriteString(styleLabel.Render("Rewrite the story from here") + "\n")
	b.WriteString(styleSubtitle.Render(utils.LimitStr(s.selection, width)) + "\n\n")

	b.WriteString(renderPicker(f.genre, f.field == rewriteGenre) + "\n")
	b.WriteString(renderPicker(f.mood, f.field == rewriteMood) + "\n")
	if f.mood.value() == catalog.CraftYourOwn {
		b.WriteString(renderField("Your mood", f.customMood.View(), f.field == rewriteCustom) + "\n")
	}
	b.WriteString(renderField("Instruction", f.instruction.View(), f.field == rewriteInstruction) + "\n\n")
	b.WriteString(styleStatusBar.Render("[tab] Next field  [left/right] Change  [enter] Rewrite  [esc] Cancel"))

	return styleActiveBox.Width(width).Render(b.String())
}

func renderPicker(p picker, focused bool) string {
	value := p.entries[p.index].String()
	if focused {
		value = styleCursor.Render("< " + value + " >")
	}
	return renderField(p.label, value, focused)
}

func renderField(label, value string, focused bool) string {
	l := styleSubtitle.Render(label + ": ")
	if focused {
		l = styleLabel.Render(label + ": ")
	}
	return l + value
}
