package http

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/paperread/internal/pagination"
	"github.com/mrlokans/paperread/internal/services"
)

func numberedParagraphs(n int) []string {
	paragraphs := make([]string, n)
	for i := range paragraphs {
		paragraphs[i] = fmt.Sprintf("Paragraph number %d.", i+1)
	}
	return paragraphs
}

func TestContentController_FixedMode(t *testing.T) {
	env := setupTestEnv(t)
	article := env.createArticle(t, "Twenty paragraphs", numberedParagraphs(20)...)
	router := env.router()

	w := doRequest(router, "GET", fmt.Sprintf("/api/articles/%d/content_paginated?mode=fixed&page_size=8&page=3", article.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page services.ContentPage
	decodeJSON(t, w, &page)

	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 20, page.TotalParagraphs)
	assert.Equal(t, numberedParagraphs(20)[16:], page.Paragraphs)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)
	assert.Equal(t, 4, page.PageInfo.ParagraphCount)
	assert.Equal(t, pagination.ModeFixed, page.PageInfo.PaginationMode)

	assert.Equal(t, article.ID, page.ArticleID)
	assert.Equal(t, "Twenty paragraphs", page.ArticleTitle)
	assert.Equal(t, 20, page.ParagraphCount)
	assert.Equal(t, 40, page.WordCount)
}

func TestContentController_SmartMode(t *testing.T) {
	env := setupTestEnv(t)
	p := strings.Repeat("a", 40)
	article := env.createArticle(t, "Even paragraphs", p, p, p, p)
	router := env.router()

	query := "mode=smart&target_chars=100&min_chars=50&max_chars=150&min_paragraphs=1&max_paragraphs=5"
	w := doRequest(router, "GET", fmt.Sprintf("/api/articles/%d/content_paginated?%s", article.ID, query), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page services.ContentPage
	decodeJSON(t, w, &page)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Paragraphs, 3)
	assert.Equal(t, 120, page.PageInfo.CharCount)
	assert.Equal(t, pagination.ModeSmart, page.PageInfo.PaginationMode)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestContentController_ClampsPage(t *testing.T) {
	env := setupTestEnv(t)
	article := env.createArticle(t, "Short", numberedParagraphs(20)...)
	router := env.router()

	for _, tc := range []struct {
		page     string
		expected int
	}{
		{"999", 3},
		{"0", 1},
		{"-5", 1},
	} {
		t.Run("page "+tc.page, func(t *testing.T) {
			w := doRequest(router, "GET", fmt.Sprintf("/api/articles/%d/content_paginated?mode=fixed&page_size=8&page=%s", article.ID, tc.page), nil, "")
			require.Equal(t, http.StatusOK, w.Code)

			var page services.ContentPage
			decodeJSON(t, w, &page)
			assert.Equal(t, tc.expected, page.CurrentPage)
		})
	}
}

func TestContentController_HugePageSize(t *testing.T) {
	env := setupTestEnv(t)
	article := env.createArticle(t, "Two", "First.", "Second.")
	router := env.router()

	w := doRequest(router, "GET", fmt.Sprintf("/api/articles/%d/content_paginated?mode=fixed&page_size=9223372036854775807", article.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page services.ContentPage
	decodeJSON(t, w, &page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []string{"First.", "Second."}, page.Paragraphs)
}

func TestContentController_EmptyArticle(t *testing.T) {
	env := setupTestEnv(t)
	article := env.createArticle(t, "Empty")
	router := env.router()

	w := doRequest(router, "GET", fmt.Sprintf("/api/articles/%d/content_paginated", article.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var page services.ContentPage
	decodeJSON(t, w, &page)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Paragraphs)
	assert.NotNil(t, page.Paragraphs)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestContentController_UsesServerDefaults(t *testing.T) {
	env := setupTestEnv(t)
	article := env.createArticle(t, "Defaults", numberedParagraphs(3)...)
	router := env.router()

	w := doRequest(router, "GET", fmt.Sprintf("/api/articles/%d/content_paginated", article.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var page services.ContentPage
	decodeJSON(t, w, &page)
	assert.Equal(t, pagination.DefaultPolicy.Mode, page.PageInfo.PaginationMode)
	assert.Equal(t, 1, page.TotalPages)
}

func TestContentController_InvalidQuery(t *testing.T) {
	env := setupTestEnv(t)
	article := env.createArticle(t, "Any", numberedParagraphs(3)...)
	router := env.router()

	tests := []struct {
		name  string
		query string
	}{
		{"unknown mode", "mode=auto"},
		{"non-numeric page", "page=first"},
		{"zero page size", "page_size=0"},
		{"negative max chars", "max_chars=-10"},
		{"non-numeric max paragraphs", "max_paragraphs=many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "GET", fmt.Sprintf("/api/articles/%d/content_paginated?%s", article.ID, tt.query), nil, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestContentController_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	router := env.router()

	w := doRequest(router, "GET", "/api/articles/999/content_paginated", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, "GET", "/api/articles/abc/content_paginated", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentController_DeletedArticle(t *testing.T) {
	env := setupTestEnv(t)
	article := env.createArticle(t, "Gone", numberedParagraphs(3)...)
	require.NoError(t, env.articles.DeleteArticle(article.ID))

	w := doRequest(env.router(), "GET", fmt.Sprintf("/api/articles/%d/content_paginated", article.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContentController_ReflectsUpdatedContent(t *testing.T) {
	env := setupTestEnv(t)
	article := env.createArticle(t, "Growing", numberedParagraphs(4)...)
	router := env.router()
	path := fmt.Sprintf("/api/articles/%d/content_paginated?mode=fixed&page_size=2", article.ID)

	w := doRequest(router, "GET", path, nil, "")
	var before services.ContentPage
	decodeJSON(t, w, &before)
	assert.Equal(t, 2, before.TotalPages)

	content := strings.Join(numberedParagraphs(6), "\n\n")
	w = doRequest(router, "PUT", fmt.Sprintf("/api/articles/%d", article.ID), map[string]any{"content": content}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "GET", path, nil, "")
	var after services.ContentPage
	decodeJSON(t, w, &after)
	assert.Equal(t, 3, after.TotalPages)
	assert.Equal(t, 6, after.TotalParagraphs)
}
