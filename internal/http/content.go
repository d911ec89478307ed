package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/paperread/internal/pagination"
	"github.com/mrlokans/paperread/internal/services"
)

type ContentController struct {
	reader ContentReader
}

func NewContentController(reader ContentReader) *ContentController {
	return &ContentController{reader: reader}
}

// GetPaginatedContent returns one page of an article. Missing policy
// parameters fall back to the server defaults; the page number is clamped.
// GET /api/articles/:id/content_paginated
func (cc *ContentController) GetPaginatedContent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, ok := parseOptionalInt(c, "page", 1)
	if !ok {
		return
	}

	policy, ok := parsePolicyQuery(c, cc.reader.DefaultPolicy())
	if !ok {
		return
	}

	result, err := cc.reader.GetPage(id, policy, page)
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			respondNotFound(c, "article")
			return
		}
		respondInternalError(c, err, "paginate article")
		return
	}

	c.JSON(http.StatusOK, result)
}

// parsePolicyQuery overrides fields of defaults with query parameters.
// Unknown modes and non-positive numbers are rejected with 400.
func parsePolicyQuery(c *gin.Context, defaults pagination.Policy) (pagination.Policy, bool) {
	policy := defaults

	if raw := c.Query("mode"); raw != "" {
		switch mode := pagination.Mode(raw); mode {
		case pagination.ModeFixed, pagination.ModeSmart:
			policy.Mode = mode
		default:
			respondBadRequest(c, "mode must be fixed or smart")
			return pagination.Policy{}, false
		}
	}

	fields := []struct {
		name   string
		target *int
	}{
		{"page_size", &policy.PageSize},
		{"target_chars", &policy.TargetChars},
		{"min_chars", &policy.MinChars},
		{"max_chars", &policy.MaxChars},
		{"min_paragraphs", &policy.MinParagraphs},
		{"max_paragraphs", &policy.MaxParagraphs},
	}
	for _, f := range fields {
		value, ok := parseOptionalInt(c, f.name, *f.target)
		if !ok {
			return pagination.Policy{}, false
		}
		if value < 1 {
			respondBadRequest(c, f.name+" must be a positive integer")
			return pagination.Policy{}, false
		}
		*f.target = value
	}

	return policy, true
}
