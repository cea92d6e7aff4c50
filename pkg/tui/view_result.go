package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taleweaver/pkg/export"
)

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	switch {
	case key.Matches(msg, keys.Back):
		s.overlay = overlayNone
		s.status = ""
		return nil
	case key.Matches(msg, keys.Export):
		return exportCmd(s.exportDir, s.result)
	case key.Matches(msg, keys.Copy):
		return copyCmd(s.result)
	}
	return a.updateFocusedInput(msg)
}

func (a *App) renderResult() string {
	s := a.state

	var b strings.Builder
	b.WriteString(styleLabel.Render(export.DefaultTitle) + "\n")
	b.WriteString(styleActiveBox.Render(s.viewport.View()))
	b.WriteString("\n")
	if s.status != "" {
		b.WriteString(styleSubtitle.Render(s.status) + "\n")
	}
	b.WriteString(styleStatusBar.Render("[up/down] Scroll  [d] Download as PDF  [y] Copy  [esc] Back"))
	return b.String()
}
