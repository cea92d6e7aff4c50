// Package catalog lists the moods and genres offered to the reader.
package catalog

import (
	"errors"
	"math/rand/v2"
	"strings"
)

type Entry struct {
	Emoji string
	Name  string
	// Label overrides Name when shown to the user.
	Label string
}

func (e Entry) String() string {
	label := e.Name
	if e.Label != "" {
		label = e.Label
	}
	if e.Emoji == "" {
		return label
	}
	return e.Emoji + " " + label
}

const (
	DefaultGenre = "Romance"
	DefaultMood  = "Fluffy as a Marshmallow"

	SurpriseMe   = "Surprise Me"
	CraftYourOwn = "Craft Your Own"
)

var ErrCustomMoodRequired = errors.New("custom mood is required")

var Moods = []Entry{
	{Emoji: "🧁", Name: "Fluffy as a Marshmallow"},
	{Emoji: "😎", Name: "Main Character Energy"},
	{Emoji: "😭", Name: "Tears Loading..."},
	{Emoji: "🧨", Name: "Drama Bomb Activated"},
	{Emoji: "😂", Name: "Full Tu Jhakaas Comedy"},
	{Emoji: "😵‍💫", Name: "Kya Hi Ho Raha Hai Bro?"},
	{Emoji: "💀", Name: "Dark But Make It Aesthetic"},
	{Emoji: "🧘‍♀️", Name: "Vibe Check: Passed"},
	{Emoji: "🧚", Name: "Nani Ne Kaha Tha Yeh Jadoo Hai"},
}

var Genres = []Entry{
	{Emoji: "💘", Name: "Romance"},
	{Emoji: "🔍", Name: "Mystery"},
	{Emoji: "🧝", Name: "Fantasy"},
	{Emoji: "🎭", Name: "Drama"},
	{Emoji: "😹", Name: "Comedy"},
	{Emoji: "🧨", Name: "Thriller"},
	{Emoji: "👑", Name: "Historical"},
	{Emoji: "👻", Name: "Horror"},
	{Emoji: "🌈", Name: "YA (Teen Fic)"},
	{Emoji: "🤖", Name: "Sci-Fi"},
	{Emoji: "🔮", Name: "Supernatural"},
	{Emoji: "🎨", Name: "Slice of Life"},
	{Emoji: "📚", Name: "Non-Fiction"},
}

// RewriteMoods is Moods plus the two special choices of the rewrite dialog.
var RewriteMoods = append(append([]Entry(nil), Moods...),
	Entry{Emoji: "🎲", Name: SurpriseMe, Label: "Bhai Jo Bhi Ho, Surprise Kar"},
	Entry{Emoji: "✍️", Name: CraftYourOwn, Label: "Craft Your Own Mood"},
)

// IndexOf returns the position of name in entries, or 0 when absent.
func IndexOf(entries []Entry, name string) int {
	for i, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return i
		}
	}
	return 0
}

// ResolveMood turns a dialog choice into the mood sent to the model:
// SurpriseMe draws a random entry of Moods, CraftYourOwn uses custom.
func ResolveMood(mood, custom string, rng *rand.Rand) (string, error) {
	switch mood {
	case SurpriseMe:
		if rng == nil {
			return Moods[rand.IntN(len(Moods))].Name, nil
		}
		return Moods[rng.IntN(len(Moods))].Name, nil
	case CraftYourOwn:
		custom = strings.TrimSpace(custom)
		if custom == "" {
			return "", ErrCustomMoodRequired
		}
		return custom, nil
	default:
		return mood, nil
	}
}
