package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMood(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	got, err := ResolveMood("Main Character Energy", "", rng)
	require.NoError(t, err)
	assert.Equal(t, "Main Character Energy", got)

	got, err = ResolveMood(CraftYourOwn, "  chaotic goblin  ", rng)
	require.NoError(t, err)
	assert.Equal(t, "chaotic goblin", got)

	_, err = ResolveMood(CraftYourOwn, " ", rng)
	assert.ErrorIs(t, err, ErrCustomMoodRequired)

	for range 20 {
		got, err = ResolveMood(SurpriseMe, "", rng)
		require.NoError(t, err)
		assert.Contains(t, names(Moods), got)
	}
}

func TestRewriteMoods(t *testing.T) {
	require.Len(t, RewriteMoods, len(Moods)+2)
	assert.Equal(t, SurpriseMe, RewriteMoods[len(Moods)].Name)
	assert.Equal(t, "✍️ Craft Your Own Mood", RewriteMoods[len(Moods)+1].String())
	assert.Len(t, Moods, 9, "RewriteMoods must not alias Moods")
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 2, IndexOf(Genres, "fantasy"))
	assert.Equal(t, 0, IndexOf(Genres, "Cookbook"))
	assert.Equal(t, DefaultGenre, Genres[IndexOf(Genres, DefaultGenre)].Name)
	assert.Equal(t, DefaultMood, Moods[IndexOf(Moods, DefaultMood)].Name)
}

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}
