package client

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taleweaver/pkg/mocks"
	"taleweaver/pkg/prompt"
	"taleweaver/pkg/schema"
	"taleweaver/pkg/server"
)

func newGateway(t *testing.T) (*Client, *mocks.MockInferencer) {
	t.Helper()
	inf := mocks.NewMockInferencer(t)
	srv := server.NewServer(context.Background(), inf)
	ts := httptest.NewServer(srv.Echo)
	t.Cleanup(ts.Close)
	return New(ts.URL + "/"), inf
}

func TestClient_Rewrite(t *testing.T) {
	c, inf := newGateway(t)
	req := schema.RewriteRequest{SelectedText: "s", Prompt: "p", Mood: "m", Genre: "g"}
	inf.On("Infer", mock.Anything, prompt.Rewrite(req)).Return("rewritten", nil).Once()

	got, err := c.Rewrite(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", got)
}

func TestClient_GenerateValidation(t *testing.T) {
	c, inf := newGateway(t)

	_, err := c.Generate(context.Background(), schema.AlternateUniverseRequest{BookTitle: "Dune"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, schema.MsgAllFieldsRequired, apiErr.Message)
	inf.AssertNotCalled(t, "Infer", mock.Anything, mock.Anything)
}

func TestClient_SuggestQuotes(t *testing.T) {
	c, inf := newGateway(t)
	inf.On("Infer", mock.Anything, mock.Anything).Return("one\ntwo\nthree", nil).Once()

	got, err := c.SuggestQuotes(context.Background(), "The stars wept silver.")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree", got)
}

func TestClient_ServiceError(t *testing.T) {
	c, inf := newGateway(t)
	inf.On("Infer", mock.Anything, mock.Anything).Return("", errors.New("boom")).Once()

	_, err := c.SuggestQuotes(context.Background(), "x")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "Failed to generate quote suggestions.")
}

func TestClient_NonJSONError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := New(ts.URL).Rewrite(context.Background(), schema.RewriteRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Message)
}

func TestPickQuote(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	suggestions := "\n  first quote \n\n   \nsecond quote\nthird quote\n"

	seen := map[string]bool{}
	for range 200 {
		q, ok := PickQuote(suggestions, rng)
		require.True(t, ok)
		assert.NotEmpty(t, strings.TrimSpace(q))
		seen[q] = true
	}
	assert.Equal(t, map[string]bool{"first quote": true, "second quote": true, "third quote": true}, seen)

	_, ok := PickQuote(" \n\t\n", rng)
	assert.False(t, ok)
}
