package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/saneatsu/saneatsu.me-sub001/internal/core"
	"github.com/saneatsu/saneatsu.me-sub001/internal/helpers"
)

// GET /api/articles/suggestions?q=&lang=&limit=
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	lang, err := s.config.ResolveLanguage(params.Get("lang"))
	if err != nil {
		respondCoreError(w, r, err)
		return
	}

	limit := 0
	if value := params.Get("limit"); value != "" {
		limit, err = strconv.Atoi(value)
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, CodeInvalidRequest, fmt.Sprintf("invalid limit %q", value))
			return
		}
	}

	result, err := s.suggestions.Search(r.Context(), core.SuggestionQuery{
		Query:    params.Get("q"),
		Language: lang,
		Limit:    limit,
	})
	if err != nil {
		respondCoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GET /api/articles/{slug}?lang=
func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	lang, err := s.config.ResolveLanguage(r.URL.Query().Get("lang"))
	if err != nil {
		respondCoreError(w, r, err)
		return
	}

	article, err := s.articles.GetArticle(r.Context(), r.PathValue("slug"), lang)
	if err != nil {
		respondCoreError(w, r, err)
		return
	}

	body, err := json.Marshal(article)
	if err != nil {
		respondCoreError(w, r, err)
		return
	}
	etag := helpers.ETag(body)
	w.Header().Set("ETag", etag)
	if helpers.MatchETag(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
