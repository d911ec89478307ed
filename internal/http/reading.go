package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RecordReadingRequest reports time spent on an article. CurrentPage is
// optional; when absent the stored page is kept.
type RecordReadingRequest struct {
	ReadDuration int `json:"read_duration"`
	CurrentPage  int `json:"current_page"`
}

// HistoryItem is one entry of a reader's history.
type HistoryItem struct {
	ArticleID    uint      `json:"article_id"`
	ArticleTitle string    `json:"article_title"`
	ReadDuration int       `json:"read_duration"`
	LastPage     int       `json:"last_page"`
	ReadAt       time.Time `json:"read_at"`
}

type ReadingController struct {
	articles ArticleStore
	history  HistoryStore
}

func NewReadingController(articles ArticleStore, history HistoryStore) *ReadingController {
	return &ReadingController{articles: articles, history: history}
}

// RecordReading adds reading time and the current page to the reader's history.
// POST /api/articles/:id/record_reading
func (rc *ReadingController) RecordReading(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RecordReadingRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
	}
	if req.ReadDuration < 0 {
		respondBadRequest(c, "read_duration must not be negative")
		return
	}

	if _, err := rc.articles.GetArticleByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "article")
			return
		}
		respondInternalError(c, err, "get article")
		return
	}

	entry, err := rc.history.RecordReading(id, GetUserID(c), req.ReadDuration, req.CurrentPage)
	if err != nil {
		respondInternalError(c, err, "record reading")
		return
	}

	c.JSON(http.StatusOK, newReadingInfo(entry))
}

// GetHistory returns the reader's history, most recent first.
// GET /api/history
func (rc *ReadingController) GetHistory(c *gin.Context) {
	limit, _ := parseLimitOffset(c, 50, 200)

	entries, err := rc.history.GetHistory(GetUserID(c), limit)
	if err != nil {
		respondInternalError(c, err, "get history")
		return
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, HistoryItem{
			ArticleID:    e.ArticleID,
			ArticleTitle: e.Article.Title,
			ReadDuration: e.ReadDuration,
			LastPage:     e.LastPage,
			ReadAt:       e.ReadAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"history": items, "total": len(items)})
}
