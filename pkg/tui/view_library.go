package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"taleweaver/pkg/annotation"
	"taleweaver/pkg/utils"
)

// maxParagraphLines caps how much of one paragraph the list shows.
const maxParagraphLines = 4

func (a *App) handleLibraryKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch {
	case key.Matches(msg, keys.Tab):
		if s.focus == focusDocument {
			s.focus = focusAnnotations
		} else {
			s.focus = focusDocument
		}
		return nil
	case key.Matches(msg, keys.Open):
		s.overlay = overlayOpen
		s.openPath.Reset()
		return s.openPath.Focus()
	case key.Matches(msg, keys.Result):
		if s.result != "" {
			s.overlay = overlayResult
		}
		return nil
	case key.Matches(msg, keys.Back):
		a.quitting = true
		return tea.Quit
	}

	if s.focus == focusAnnotations {
		return a.handleAnnotationKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, keys.Down):
		if s.doc != nil && s.cursor < len(s.doc.Paragraphs)-1 {
			s.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if s.doc != nil && len(s.doc.Paragraphs) > 0 {
			s.selection = s.doc.Paragraphs[s.cursor].Text
		}
	case key.Matches(msg, keys.Highlight):
		n, _ := strconv.Atoi(msg.String())
		return a.highlightSelection(annotation.Palette[n-1])
	case key.Matches(msg, keys.Rewrite):
		if s.selection == "" {
			s.alert = alertSelectToRewrite
			return nil
		}
		return a.openRewrite()
	}
	return nil
}

func (a *App) highlightSelection(color annotation.Color) tea.Cmd {
	s := a.state
	if s.selection == "" {
		s.alert = alertSelectFirst
		return nil
	}
	if err := s.store.Add(s.selection, color); err != nil {
		s.alert = err.Error()
		return nil
	}
	s.annCursor = 0
	return nil
}

func (a *App) handleAnnotationKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	if s.store.Len() == 0 {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if s.annCursor > 0 {
			s.annCursor--
		}
	case key.Matches(msg, keys.Down):
		if s.annCursor < s.store.Len()-1 {
			s.annCursor++
		}
	case key.Matches(msg, keys.Note):
		ann, err := s.store.At(s.annCursor)
		if err != nil {
			return nil
		}
		s.overlay = overlayNote
		s.note.SetValue(ann.Note)
		s.note.CursorEnd()
		return s.note.Focus()
	case key.Matches(msg, keys.Sticker):
		s.overlay = overlaySticker
		s.sticker = 0
	case key.Matches(msg, keys.Quote):
		ann, err := s.store.At(s.annCursor)
		if err != nil {
			return nil
		}
		s.status = "Asking for a quote..."
		return suggestQuoteCmd(a.gen, ann.ID, ann.Text)
	}
	return nil
}

func (a *App) handleNoteKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	switch {
	case key.Matches(msg, keys.Back):
		s.note.Blur()
		s.overlay = overlayNone
		return nil
	case key.Matches(msg, keys.Enter):
		if err := s.store.UpdateNote(s.annCursor, s.note.Value()); err != nil {
			s.alert = err.Error()
		}
		s.note.Blur()
		s.overlay = overlayNone
		return nil
	}
	return a.updateFocusedInput(msg)
}

func (a *App) handleStickerKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	switch {
	case key.Matches(msg, keys.Back):
		s.overlay = overlayNone
	case key.Matches(msg, keys.Left):
		s.sticker = (s.sticker - 1 + len(annotation.Stickers)) % len(annotation.Stickers)
	case key.Matches(msg, keys.Right):
		s.sticker = (s.sticker + 1) % len(annotation.Stickers)
	case key.Matches(msg, keys.Enter):
		if err := s.store.AddSticker(s.annCursor, annotation.Stickers[s.sticker]); err != nil {
			s.alert = err.Error()
		}
		s.overlay = overlayNone
	}
	return nil
}

func (a *App) handleOpenKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	switch {
	case key.Matches(msg, keys.Back):
		s.openPath.Blur()
		s.overlay = overlayNone
		return nil
	case key.Matches(msg, keys.Enter):
		path := strings.TrimSpace(s.openPath.Value())
		s.openPath.Blur()
		s.overlay = overlayNone
		if path == "" {
			return nil
		}
		return a.startLoading(loadDocumentCmd(path))
	}
	return a.updateFocusedInput(msg)
}

func (a *App) renderLibrary() string {
	s := a.state
	var b strings.Builder

	b.WriteString(styleLabel.Render("Personal Library"))
	if s.doc != nil {
		b.WriteString(styleSubtitle.Render("  " + s.doc.Title))
	}
	b.WriteString("\n")

	docStyle, annStyle := styleActiveBox, styleBox
	if s.focus == focusAnnotations {
		docStyle, annStyle = styleBox, styleActiveBox
	}
	width := max(20, a.width-4)

	b.WriteString(docStyle.Width(width).Render(a.renderParagraphs(width - 4)))
	b.WriteString("\n")

	switch s.overlay {
	case overlayOpen:
		b.WriteString(styleLabel.Render("Open PDF") + "\n")
		b.WriteString(styleActiveBox.Width(width).Render(s.openPath.View()))
		b.WriteString("\n")
	case overlayNote:
		b.WriteString(styleLabel.Render("Note") + "\n")
		b.WriteString(styleActiveBox.Width(width).Render(s.note.View()))
		b.WriteString("\n")
	case overlaySticker:
		b.WriteString(styleLabel.Render("Stickers") + "\n")
		b.WriteString(styleActiveBox.Width(width).Render(renderStickers(s.sticker)))
		b.WriteString("\n")
	}

	b.WriteString(styleLabel.Render("Creative Tools") + "\n")
	b.WriteString(annStyle.Width(width).Render(a.renderAnnotations(width - 4)))
	b.WriteString("\n")

	if s.status != "" {
		b.WriteString(styleSubtitle.Render(s.status) + "\n")
	}

	var help string
	if s.focus == focusAnnotations {
		help = "[up/down] Move  [n] Note  [s] Sticker  [q] Suggest quote  [tab] Document  [ctrl+t] Alternate Universe"
	} else {
		help = "[enter] Select  [1-5] Highlight  [r] Rewrite  [o] Open  [tab] Tools  [ctrl+t] Alternate Universe"
	}
	if s.result != "" {
		help += "  [v] Result"
	}
	b.WriteString(styleStatusBar.Render(help))
	return b.String()
}

func (a *App) renderParagraphs(width int) string {
	s := a.state
	if s.doc == nil || len(s.doc.Paragraphs) == 0 {
		return styleSubtitle.Render("No book open. Press [o] to open a PDF.")
	}

	// Keep the cursor in view with roughly half the screen for paragraphs.
	visible := max(1, (a.height-16)/maxParagraphLines)
	start := max(0, s.cursor-visible/2)
	end := min(len(s.doc.Paragraphs), start+visible)

	var lines []string
	for i := start; i < end; i++ {
		text := s.doc.Paragraphs[i].Text
		wrapped := strings.Split(wordwrap.String(text, width-2), "\n")
		if len(wrapped) > maxParagraphLines {
			wrapped = append(wrapped[:maxParagraphLines-1], "…")
		}
		body := strings.Join(wrapped, "\n  ")

		if color, ok := s.store.ColorOf(text); ok {
			body = highlight(string(color)).Render(body)
		}
		if text == s.selection {
			body = styleSelected.Render(body)
		}

		prefix := "  "
		if i == s.cursor {
			prefix = styleCursor.Render("> ")
		}
		lines = append(lines, prefix+body)
	}
	lines = append(lines, styleSubtitle.Render(fmt.Sprintf("paragraph %d/%d", s.cursor+1, len(s.doc.Paragraphs))))
	return strings.Join(lines, "\n")
}

func (a *App) renderAnnotations(width int) string {
	s := a.state
	swatches := make([]string, 0, len(annotation.Palette))
	for i, c := range annotation.Palette {
		swatches = append(swatches, highlight(string(c)).Render(" "+strconv.Itoa(i+1)+" "))
	}
	out := "Highlighter " + strings.Join(swatches, " ")

	list := s.store.List()
	if len(list) == 0 {
		return out + "\n" + styleSubtitle.Render("No annotations yet.")
	}
	for i, ann := range list {
		prefix := "  "
		if s.focus == focusAnnotations && i == s.annCursor {
			prefix = styleCursor.Render("> ")
		}
		line := prefix + highlight(string(ann.Color)).Render(utils.LimitStr(ann.Text, max(10, width/2)))
		if ann.Note != "" {
			line += "  " + utils.LimitStr(ann.Note, max(10, width/2))
		}
		out += "\n" + line
	}
	return out
}

func renderStickers(selected int) string {
	parts := make([]string, len(annotation.Stickers))
	for i, st := range annotation.Stickers {
		if i == selected {
			parts[i] = styleCursor.Render("[" + st + "]")
		} else {
			parts[i] = " " + st + " "
		}
	}
	return strings.Join(parts, "")
}
