// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/ideaspark/internal/fallback"
	"github.com/pdiddy/ideaspark/internal/spark"
	"github.com/pdiddy/ideaspark/internal/words"
	"github.com/pdiddy/ideaspark/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stubRequester returns fixed text, or fails when text is empty.
type stubRequester struct{ text string }

func (s stubRequester) Generate(context.Context, string, string, types.Category) (string, error) {
	if s.text == "" {
		return "", errors.New("offline")
	}
	return s.text, nil
}

func newTestHandler(t *testing.T, remoteText string, logger *zap.Logger) http.Handler {
	t.Helper()
	p := spark.NewProducer(stubRequester{text: remoteText}, fallback.New(rand.New(rand.NewPCG(5, 6))), nil)
	return NewServer(p, rand.New(rand.NewPCG(7, 8)), logger).Handler()
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, h, req)
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t, "", nil)
	w := do(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCategoriesEndpoint(t *testing.T) {
	h := newTestHandler(t, "", nil)
	w := do(t, h, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got []types.CategoryInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, types.Categories(), got)
}

func TestRandomWords(t *testing.T) {
	h := newTestHandler(t, "", nil)

	tests := []struct {
		query  string
		status int
		count  int
	}{
		{"", http.StatusOK, 2},
		{"?count=1", http.StatusOK, 1},
		{"?count=10", http.StatusOK, 10},
		{"?count=0", http.StatusBadRequest, 0},
		{"?count=11", http.StatusBadRequest, 0},
		{"?count=abc", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := do(t, h, httptest.NewRequest(http.MethodGet, "/api/words/random"+tt.query, nil))
			require.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				return
			}
			var got wordsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			require.Len(t, got.Words, tt.count)
			for _, word := range got.Words {
				assert.True(t, words.Contains(word), word)
			}
		})
	}
}

func TestIdeasEndpointFallback(t *testing.T) {
	h := newTestHandler(t, "", nil)
	body := `{"word1":"ocean","word2":"robot","category":"products"}`
	w := do(t, h, httptest.NewRequest(http.MethodPost, "/api/ideas", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res types.IdeaResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, types.SourceLocal, res.Source)
	assert.Equal(t, types.CategoryProducts, res.Category)
	assert.Len(t, res.Ideas, 5)
	assert.Contains(t, res.Text, "1. ")
}

func TestIdeasEndpointRemote(t *testing.T) {
	h := newTestHandler(t, "1. Sea Bot - Cleans beaches.", nil)
	body := `{"word1":"ocean","word2":"robot","category":"art"}`
	w := do(t, h, httptest.NewRequest(http.MethodPost, "/api/ideas", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	var res types.IdeaResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, types.SourceRemote, res.Source)
	assert.Equal(t, []types.IdeaEntry{{Title: "Sea Bot", Description: "Cleans beaches."}}, res.Ideas)
}

func TestIdeasEndpointBadInput(t *testing.T) {
	h := newTestHandler(t, "", nil)
	for _, body := range []string{
		`{"word1":"ocean","word2":"","category":"products"}`,
		`{"word1":"ocean","word2":"robot"}`,
		`{"word1":"ocean","word2":"robot","category":"poetry"}`,
		`not json`,
	} {
		w := do(t, h, httptest.NewRequest(http.MethodPost, "/api/ideas", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), `"error"`)
	}
}

func TestParseEndpoint(t *testing.T) {
	h := newTestHandler(t, "", nil)
	text := "Intro\n1. Alpha - first\n2. Beta: second\nnoise"
	w := do(t, h, httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(text)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"title":"Alpha","description":"first"},{"title":"Beta","description":"second"}]`, w.Body.String())

	w = do(t, h, httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader("nothing numbered")))
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, "", nil)
	w := do(t, h, httptest.NewRequest(http.MethodGet, "/api/ideas", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestPageRendersEmptyState(t *testing.T) {
	h := newTestHandler(t, "", nil)
	w := do(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `placeholder="ocean"`)
	assert.Contains(t, body, `placeholder="robot"`)
	for _, info := range types.Categories() {
		assert.Contains(t, body, `value="category:`+string(info.ID)+`"`)
	}
	assert.Contains(t, body, `value="generate" disabled`)
	assert.NotContains(t, body, "Your Creative Ideas")
}

func TestPageShuffle(t *testing.T) {
	h := newTestHandler(t, "", nil)
	w := postForm(t, h, url.Values{"word2": {"keep"}, "action": {"shuffle1"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="word2" value="keep"`)
	assert.NotContains(t, w.Body.String(), `name="word1" value=""`)
}

func TestPageCategoryThenGenerate(t *testing.T) {
	h := newTestHandler(t, "", nil)

	w := postForm(t, h, url.Values{"word1": {"ocean"}, "word2": {"robot"}, "action": {"category:products"}})
	body := w.Body.String()
	assert.Contains(t, body, `name="category" value="products"`)
	assert.Contains(t, body, `class="selected from-orange-500 to-red-500"`)
	assert.NotContains(t, body, `value="generate" disabled`)

	w = postForm(t, h, url.Values{"word1": {"ocean"}, "word2": {"robot"}, "category": {"products"}, "action": {"generate"}})
	require.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	assert.Contains(t, body, "Your Creative Ideas")
	assert.Contains(t, body, "Start Over")
	assert.Contains(t, body, "source: local")
	assert.Equal(t, 5, strings.Count(body, `<article class="idea">`))
}

func TestPageGenerateIncomplete(t *testing.T) {
	h := newTestHandler(t, "", nil)
	w := postForm(t, h, url.Values{"word1": {"ocean"}, "action": {"generate"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="error"`)
	assert.NotContains(t, w.Body.String(), "Your Creative Ideas")
}

func TestPageReset(t *testing.T) {
	h := newTestHandler(t, "", nil)
	w := postForm(t, h, url.Values{
		"word1": {"ocean"}, "word2": {"robot"}, "category": {"art"},
		"ideas": {"1. A - B"}, "action": {"reset"},
	})
	body := w.Body.String()
	assert.Contains(t, body, `name="word1" value=""`)
	assert.Contains(t, body, `name="category" value=""`)
	assert.NotContains(t, body, "Your Creative Ideas")
}

func TestPageUnknownCategoryDropped(t *testing.T) {
	h := newTestHandler(t, "", nil)
	w := postForm(t, h, url.Values{"category": {"poetry"}})
	assert.Contains(t, w.Body.String(), `name="category" value=""`)
}

func TestRequestIDMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := newTestHandler(t, "", zap.New(core))

	w := do(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = do(t, h, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)
	fields := entries[1].ContextMap()
	assert.Equal(t, "abc-123", fields["request_id"])
	assert.Equal(t, "/healthz", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t, "", nil)
	w := do(t, h, httptest.NewRequest(http.MethodOptions, "/api/ideas", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h := newTestHandler(t, "", nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, h, nil) }()

	tr := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: tr}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	tr.CloseIdleConnections()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	assert.NoError(t, <-done)
}
