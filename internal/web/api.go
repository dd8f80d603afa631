// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/pdiddy/ideaspark/internal/ideas"
	"github.com/pdiddy/ideaspark/internal/spark"
	"github.com/pdiddy/ideaspark/internal/words"
	"github.com/pdiddy/ideaspark/pkg/types"
)

const (
	defaultWordCount = 2
	maxWordCount     = 10

	// maxBodyBytes caps request bodies for the JSON and parse endpoints.
	maxBodyBytes = 1 << 20
)

type ideasRequest struct {
	Word1    string `json:"word1"`
	Word2    string `json:"word2"`
	Category string `json:"category"`
}

type wordsResponse struct {
	Words []string `json:"words"`
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, types.Categories())
}

// GET /api/words/random?count=N
func (s *Server) handleRandomWords(w http.ResponseWriter, r *http.Request) {
	count := defaultWordCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxWordCount {
			badRequest(w, "count must be an integer between 1 and 10")
			return
		}
		count = n
	}

	out := make([]string, count)
	s.withRand(func(rng *rand.Rand) {
		for i := range out {
			out[i] = words.Random(rng)
		}
	})
	writeJSON(w, http.StatusOK, wordsResponse{Words: out})
}

// POST /api/ideas
func (s *Server) handleIdeas(w http.ResponseWriter, r *http.Request) {
	var body ideasRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	res, err := s.producer.Produce(r.Context(), spark.Request{
		Word1:    body.Word1,
		Word2:    body.Word2,
		Category: types.Category(body.Category),
	})
	if errors.Is(err, spark.ErrIncomplete) {
		badRequest(w, err.Error())
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	if res.Ideas == nil {
		res.Ideas = []types.IdeaEntry{}
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /api/parse takes raw ideas text as the body.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		badRequest(w, "request body too large")
		return
	}
	entries := ideas.Parse(string(raw))
	if entries == nil {
		entries = []types.IdeaEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
