// Package annotation keeps the highlighted passages of the open document.
// Entries are ordered most-recent-first and addressed by position, or by
// ID when the position may have shifted since it was read.
package annotation

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/segmentio/ksuid"
)

// Color is a highlighter color in #rrggbb form.
type Color string

// Palette is the fixed set of highlighter colors.
var Palette = []Color{"#ffdd57", "#ff6b6b", "#7ed5ea", "#a0e8a0", "#c5a0e8"}

// Stickers are the glyphs that can be appended to a note.
var Stickers = []string{"✨", "❤️", "🔥", "💡", "🤔", "😂", "😭", "🤯", "✍️", "👀", "🤫", "💀"}

var (
	ErrNoSelection     = errors.New("no text selected")
	ErrUnknownColor    = errors.New("color is not in the palette")
	ErrIndexOutOfRange = errors.New("annotation index out of range")
	ErrNotFound        = errors.New("annotation not found")
)

type Annotation struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Color Color  `json:"color"`
	Note  string `json:"note"`
}

func (c Color) Valid() bool {
	return slices.Contains(Palette, c)
}

// Store is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	items []Annotation
}

func NewStore() *Store {
	return &Store{}
}

// Add prepends a new annotation with an empty note.
func (s *Store) Add(text string, color Color) error {
	if strings.TrimSpace(text) == "" {
		return ErrNoSelection
	}
	if !color.Valid() {
		return ErrUnknownColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.Insert(s.items, 0, Annotation{ID: ksuid.New().String(), Text: text, Color: color})
	return nil
}

// IndexOf returns the current position of the annotation with id.
func (s *Store) IndexOf(id string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.items, func(a Annotation) bool { return a.ID == id })
	return i, i >= 0
}

// UpdateNoteByID replaces the note of the annotation with id.
func (s *Store) UpdateNoteByID(id, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.items, func(a Annotation) bool { return a.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	s.items[i].Note = note
	return nil
}

// UpdateNote replaces the note at index.
func (s *Store) UpdateNote(index int, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return ErrIndexOutOfRange
	}
	s.items[index].Note = note
	return nil
}

// AddSticker appends sticker to the note at index.
func (s *Store) AddSticker(index int, sticker string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return ErrIndexOutOfRange
	}
	s.items[index].Note += sticker
	return nil
}

func (s *Store) At(index int) (Annotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		return Annotation{}, ErrIndexOutOfRange
	}
	return s.items[index], nil
}

// List returns a copy of all annotations, most recent first.
func (s *Store) List() []Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Reset drops every annotation. Used when a new document is opened.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// ColorOf returns the color of the most recent annotation on text.
func (s *Store) ColorOf(text string) (Color, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.items {
		if a.Text == text {
			return a.Color, true
		}
	}
	return "", false
}
