// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/ideaspark/internal/spark"
	"github.com/pdiddy/ideaspark/pkg/types"
)

// Form actions posted by the page.
const (
	actionShuffle1    = "shuffle1"
	actionShuffle2    = "shuffle2"
	actionShuffleBoth = "shuffle-both"
	actionCategory    = "category"
	actionGenerate    = "generate"
	actionReset       = "reset"
)

// pageData is the template input for index.html.
type pageData struct {
	Session     spark.Session
	Categories  []types.CategoryInfo
	Entries     []types.IdeaEntry
	Selected    types.CategoryInfo
	CanGenerate bool
	Error       string
	RequestID   string
}

// sessionFromForm rebuilds the page state carried in the form fields. An
// unknown category is dropped.
func sessionFromForm(r *http.Request) spark.Session {
	s := spark.Session{
		Word1:  r.FormValue("word1"),
		Word2:  r.FormValue("word2"),
		Ideas:  r.FormValue("ideas"),
		Source: types.IdeaSource(r.FormValue("source")),
	}
	_ = s.SelectCategory(r.FormValue("category"))
	return s
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	session := sessionFromForm(r)
	var msg string

	// Category buttons post "category:<id>"; other clients may send the id
	// in a separate "select" field.
	action, arg, _ := strings.Cut(r.PostFormValue("action"), ":")
	if arg == "" {
		arg = r.PostFormValue("select")
	}

	switch action {
	case actionShuffle1:
		s.withRand(session.ShuffleWord1)
	case actionShuffle2:
		s.withRand(session.ShuffleWord2)
	case actionShuffleBoth:
		s.withRand(session.ShuffleBoth)
	case actionCategory:
		if err := session.SelectCategory(arg); err != nil {
			msg = err.Error()
		}
	case actionGenerate:
		if err := session.Generate(r.Context(), s.producer); err != nil {
			if !errors.Is(err, spark.ErrIncomplete) {
				s.logger.Error("generating ideas", zap.Error(err))
			}
			msg = err.Error()
		}
	case actionReset:
		session.Reset()
	}

	data := pageData{
		Session:     session,
		Categories:  types.Categories(),
		Entries:     session.Entries(),
		CanGenerate: session.CanGenerate(),
		Error:       msg,
		RequestID:   RequestID(r.Context()),
	}
	data.Selected, _ = types.LookupCategory(session.Category)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("rendering page", zap.Error(err))
	}
}
