package tui

import (
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"taleweaver/pkg/annotation"
	"taleweaver/pkg/catalog"
	"taleweaver/pkg/document"
	"taleweaver/pkg/prefs"
)

type mode int

const (
	modeLibrary mode = iota
	modeUniverse
)

type focus int

const (
	focusDocument focus = iota
	focusAnnotations
)

type overlay int

const (
	overlayNone overlay = iota
	overlayRewrite
	overlayNote
	overlaySticker
	overlayOpen
	overlayResult
)

const (
	alertSelectFirst     = "Please select text first!"
	alertSelectToRewrite = "Please select text to rewrite."
	alertNoInstruction   = "Please enter a rewrite instruction."
	alertNoCustomMood    = "Please type in your custom mood!"
	alertAllFields       = "All fields are required."
	alertGenerateFailed  = "Failed to get a response from the AI."
	alertQuoteFailed     = "Sorry, couldn't get a suggestion from the AI."
	alertLoadFailed      = "Failed to load PDF file. The file might be corrupted or in an unsupported format."

	loadingText = "Weaving a new tale..."
)

// picker cycles through a fixed list of catalog entries.
type picker struct {
	label   string
	entries []catalog.Entry
	index   int
}

func newPicker(label string, entries []catalog.Entry, name string) picker {
	return picker{label: label, entries: entries, index: catalog.IndexOf(entries, name)}
}

func (p *picker) next() { p.index = (p.index + 1) % len(p.entries) }
func (p *picker) prev() { p.index = (p.index - 1 + len(p.entries)) % len(p.entries) }

func (p picker) value() string { return p.entries[p.index].Name }

type rewriteForm struct {
	field       int
	genre       picker
	mood        picker
	customMood  textinput.Model
	instruction textinput.Model
}

const (
	rewriteGenre = iota
	rewriteMood
	rewriteCustom
	rewriteInstruction
)

type universeForm struct {
	field  int
	inputs []textinput.Model
	genre  picker
	mood   picker
}

const (
	universeTitle = iota
	universeAuthor
	universeScene
	universePrompt
	universeGenre
	universeMood
	universeFields
)

type state struct {
	prefs    prefs.Preferences
	hasPrefs bool

	mode    mode
	focus   focus
	overlay overlay

	// Personal library
	doc       *document.Document
	cursor    int
	selection string
	store     *annotation.Store
	annCursor int
	sticker   int

	rewrite  rewriteForm
	universe universeForm
	note     textinput.Model
	openPath textinput.Model

	// Result
	result   string
	viewport viewport.Model
	status   string

	loading bool
	spinner spinner.Model
	alert   string

	exportDir string
	rng       *rand.Rand
}

func newTextInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 60
	return in
}

func newState(opts Options) *state {
	genre := catalog.DefaultGenre
	mood := catalog.DefaultMood
	if opts.HasPrefs {
		if opts.Prefs.Genre != "" {
			genre = opts.Prefs.Genre
		}
		if opts.Prefs.Mood != "" {
			mood = opts.Prefs.Mood
		}
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleSpinner

	universe := universeForm{
		inputs: []textinput.Model{
			newTextInput("e.g., The Hobbit", 200),
			newTextInput("e.g., J.R.R. Tolkien", 200),
			newTextInput("e.g., The part where Bilbo meets Gollum in the cave.", 1000),
			newTextInput("e.g., What if Bilbo decided to stay with Gollum?", 1000),
		},
		genre: newPicker("Desired Genre", catalog.Genres, genre),
		mood:  newPicker("Desired Mood", catalog.Moods, mood),
	}

	return &state{
		prefs:    opts.Prefs,
		hasPrefs: opts.HasPrefs,
		doc:      opts.Document,
		store:    annotation.NewStore(),
		rewrite: rewriteForm{
			genre:       newPicker("Genre", catalog.Genres, genre),
			mood:        newPicker("Mood", catalog.RewriteMoods, mood),
			customMood:  newTextInput("Type your own mood...", 100),
			instruction: newTextInput("e.g., Make the villain win", 1000),
		},
		universe:  universe,
		note:      newTextInput("Write a note...", 500),
		openPath:  newTextInput("/path/to/book.pdf", 1000),
		viewport:  viewport.New(80, 20),
		spinner:   spin,
		exportDir: opts.ExportDir,
		rng:       opts.Rand,
	}
}
