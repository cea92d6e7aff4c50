package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taleweaver/pkg/mocks"
	"taleweaver/pkg/prompt"
	"taleweaver/pkg/schema"
)

func newTestServer(t *testing.T) (*Server, *mocks.MockInferencer) {
	t.Helper()
	inf := mocks.NewMockInferencer(t)
	return NewServer(context.Background(), inf), inf
}

func doJSON(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) schema.ErrorResponse {
	t.Helper()
	var out schema.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandlePostRewrite(t *testing.T) {
	s, inf := newTestServer(t)

	req := schema.RewriteRequest{
		SelectedText: "The lantern guttered out.",
		Prompt:       "Make it a love story",
		Mood:         "Fluffy as a Marshmallow",
		Genre:        "Romance",
	}
	inf.On("Infer", mock.Anything, prompt.Rewrite(req)).Return("Chapter 1: Light", nil).Once()

	body, _ := json.Marshal(req)
	rec := doJSON(s, http.MethodPost, "/api/rewrite", string(body))

	require.Equal(t, http.StatusOK, rec.Code)
	var out schema.RewriteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, "Chapter 1: Light", out.RewrittenStory)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestHandlePostRewrite_MissingField(t *testing.T) {
	s, inf := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/rewrite", `{"selectedText":"x","prompt":"","mood":"m","genre":"g"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, schema.ErrorResponse{Success: false, Error: schema.MsgAllFieldsRequired}, decodeError(t, rec))
	inf.AssertNotCalled(t, "Infer", mock.Anything, mock.Anything)
}

func TestHandlePostRewrite_ModelFailure(t *testing.T) {
	s, inf := newTestServer(t)
	inf.On("Infer", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()

	rec := doJSON(s, http.MethodPost, "/api/rewrite", `{"selectedText":"x","prompt":"p","mood":"m","genre":"g"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "Failed to generate content from AI.", got.Error)
	assert.NotContains(t, rec.Body.String(), "quota")
}

func TestServerContextCancelsModelCalls(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	inf := mocks.NewMockInferencer(t)
	s := NewServer(ctx, inf)
	body := `{"selectedText":"x","prompt":"p","mood":"m","genre":"g"}`

	live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
	inf.On("Infer", live, mock.Anything).Return("Chapter 1", nil).Once()
	rec := doJSON(s, http.MethodPost, "/api/rewrite", body)
	assert.Equal(t, http.StatusOK, rec.Code)

	cancel()
	done := mock.MatchedBy(func(ctx context.Context) bool { return errors.Is(ctx.Err(), context.Canceled) })
	inf.On("Infer", done, mock.Anything).Return("", context.Canceled).Once()
	rec = doJSON(s, http.MethodPost, "/api/rewrite", body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandlePostRewrite_EmptyModelOutput(t *testing.T) {
	s, inf := newTestServer(t)
	inf.On("Infer", mock.Anything, mock.Anything).Return("  \n", nil).Once()

	rec := doJSON(s, http.MethodPost, "/api/rewrite", `{"selectedText":"x","prompt":"p","mood":"m","genre":"g"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandlePostGenerate(t *testing.T) {
	s, inf := newTestServer(t)

	req := schema.AlternateUniverseRequest{
		BookTitle:        "The Hobbit",
		AuthorName:       "J.R.R. Tolkien",
		SceneDescription: "Riddles in the dark",
		Prompt:           "What if Bilbo lost the riddle game?",
		Genre:            "Horror",
		Mood:             "Dark But Make It Aesthetic",
	}
	inf.On("Infer", mock.Anything, prompt.AlternateUniverse(req)).Return("Chapter 1: The Dark", nil).Once()

	body, _ := json.Marshal(req)
	rec := doJSON(s, http.MethodPost, "/api/generate", string(body))

	require.Equal(t, http.StatusOK, rec.Code)
	var out schema.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, "Chapter 1: The Dark", out.GeneratedStory)
}

func TestHandlePostGenerate_MissingAuthor(t *testing.T) {
	s, inf := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/generate",
		`{"bookTitle":"The Hobbit","sceneDescription":"cave","prompt":"what if","genre":"Fantasy","mood":"Vibe Check: Passed"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, schema.MsgAllFieldsRequired, decodeError(t, rec).Error)
	inf.AssertNotCalled(t, "Infer", mock.Anything, mock.Anything)
}

func TestHandlePostGenerate_ModelFailure(t *testing.T) {
	s, inf := newTestServer(t)
	inf.On("Infer", mock.Anything, mock.Anything).Return("", errors.New("network down")).Once()

	rec := doJSON(s, http.MethodPost, "/api/generate",
		`{"bookTitle":"b","authorName":"a","sceneDescription":"s","prompt":"p","genre":"g","mood":"m"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to generate story from AI.", decodeError(t, rec).Error)
}

func TestHandlePostSuggest(t *testing.T) {
	s, inf := newTestServer(t)

	req := schema.QuoteSuggestionRequest{HighlightedText: "The stars wept silver."}
	inf.On("Infer", mock.Anything, prompt.SuggestQuotes(req)).
		Return("Silver grief lights the way.\nEven stars mourn beautifully.\nTears can shine.", nil).Once()

	rec := doJSON(s, http.MethodPost, "/api/suggest-quote", `{"highlightedText":"The stars wept silver."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out schema.QuoteSuggestionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)

	lines := strings.Split(out.Suggestions, "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.NotEmpty(t, strings.TrimSpace(line))
	}
}

func TestHandlePostSuggest_EmptyText(t *testing.T) {
	s, inf := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/suggest-quote", `{"highlightedText":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, schema.MsgHighlightedTextRequired, decodeError(t, rec).Error)
	inf.AssertNotCalled(t, "Infer", mock.Anything, mock.Anything)
}

func TestHandlePostSuggest_ModelFailure(t *testing.T) {
	s, inf := newTestServer(t)
	inf.On("Infer", mock.Anything, mock.Anything).Return("", errors.New("bad key")).Once()

	rec := doJSON(s, http.MethodPost, "/api/suggest-quote", `{"highlightedText":"x"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to generate quote suggestions.", decodeError(t, rec).Error)
}

func TestPromptsAreDeterministic(t *testing.T) {
	s, inf := newTestServer(t)

	var prompts []string
	inf.On("Infer", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { prompts = append(prompts, args.String(1)) }).
		Return("story", nil).Times(2)

	body := `{"selectedText":"It rained.","prompt":"Make it snow","mood":"Vibe Check: Passed","genre":"Slice of Life"}`
	for range 2 {
		rec := doJSON(s, http.MethodPost, "/api/rewrite", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	require.Len(t, prompts, 2)
	assert.Equal(t, prompts[0], prompts[1])
}

func TestInvalidJSON(t *testing.T) {
	s, inf := newTestServer(t)

	for _, path := range []string{"/api/rewrite", "/api/generate", "/api/suggest-quote"} {
		rec := doJSON(s, http.MethodPost, path, `{"highlightedText":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, "invalid json", decodeError(t, rec).Error, path)
	}
	inf.AssertNotCalled(t, "Infer", mock.Anything, mock.Anything)
}

func TestUnknownRoute(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(s, http.MethodGet, "/api/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	got := decodeError(t, rec)
	assert.False(t, got.Success)
	assert.NotEmpty(t, got.Error)
}

func TestCORS(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/rewrite", nil)
	req.Header.Set(echo.HeaderOrigin, "http://example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestHandleGetRoot(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(s, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleGetSchema(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(s, http.MethodGet, "/api/schema", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, out, "/api/rewrite")
	assert.Contains(t, out, "/api/generate")
	assert.Contains(t, out, "/api/suggest-quote")
}

func TestMetrics(t *testing.T) {
	s, inf := newTestServer(t)
	inf.On("Infer", mock.Anything, mock.Anything).Return("Chapter 1", nil).Once()

	rec := doJSON(s, http.MethodPost, "/api/rewrite", `{"selectedText":"x","prompt":"p","mood":"m","genre":"g"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(s, http.MethodPost, "/api/suggest-quote", `{"highlightedText":" "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `taleweaver_generation_requests_total{op="rewrite",status="success"}`)
	assert.Contains(t, body, `taleweaver_validation_failures_total{path="/api/suggest-quote"}`)
	assert.Contains(t, body, "taleweaver_generation_duration_seconds_bucket")
}
