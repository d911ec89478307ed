package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/paperread/internal/entities"
)

const previewLength = 200

// ReadingInfo is the current reader's progress on an article.
type ReadingInfo struct {
	LastPage     int       `json:"last_page"`
	ReadDuration int       `json:"read_duration"`
	ReadAt       time.Time `json:"read_at"`
}

// ArticleSummary is an article as shown in lists, without its full content.
type ArticleSummary struct {
	ID             uint                 `json:"id"`
	Title          string               `json:"title"`
	Source         string               `json:"source,omitempty"`
	Difficulty     entities.Difficulty  `json:"difficulty"`
	Category       string               `json:"category,omitempty"`
	Kind           entities.ContentKind `json:"kind"`
	WordCount      int                  `json:"word_count"`
	ParagraphCount int                  `json:"paragraph_count"`
	IsRecommended  bool                 `json:"is_recommended"`
	CreatedAt      time.Time            `json:"created_at"`
	ContentPreview string               `json:"content_preview"`
	ReadingInfo    *ReadingInfo         `json:"reading_info"`
	IsFavourite    bool                 `json:"is_favourite"`
}

// ArticleDetail is a full article together with the reader's state.
type ArticleDetail struct {
	*entities.Article
	ReadingInfo *ReadingInfo `json:"reading_info"`
	IsFavourite bool         `json:"is_favourite"`
}

// ArticleRequest is the body of create and update requests. Update applies
// only the fields that are present.
type ArticleRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Source        *string `json:"source"`
	Difficulty    *string `json:"difficulty"`
	Category      *string `json:"category"`
	Kind          *string `json:"kind"`
	IsRecommended *bool   `json:"is_recommended"`
}

type ArticlesController struct {
	store      ArticleStore
	history    HistoryStore
	favourites FavouritesStore
}

func NewArticlesController(store ArticleStore, history HistoryStore, favourites FavouritesStore) *ArticlesController {
	return &ArticlesController{store: store, history: history, favourites: favourites}
}

// ListArticles returns active articles with previews and the reader's progress.
// GET /api/articles
func (ac *ArticlesController) ListArticles(c *gin.Context) {
	limit, offset := parseLimitOffset(c, 20, 100)

	list, total, err := ac.store.ListArticles(limit, offset)
	if err != nil {
		respondInternalError(c, err, "list articles")
		return
	}

	userID := GetUserID(c)
	ids := make([]uint, len(list))
	for i, a := range list {
		ids[i] = a.ID
	}

	var readings map[uint]entities.ReadingHistory
	if ac.history != nil {
		if readings, err = ac.history.GetEntriesForArticles(userID, ids); err != nil {
			respondInternalError(c, err, "list reading history")
			return
		}
	}
	var favourite map[uint]bool
	if ac.favourites != nil {
		if favourite, err = ac.favourites.GetFavouriteArticleIDs(userID, ids); err != nil {
			respondInternalError(c, err, "list favourites")
			return
		}
	}

	summaries := make([]ArticleSummary, len(list))
	for i, a := range list {
		summaries[i] = newArticleSummary(&a)
		summaries[i].IsFavourite = favourite[a.ID]
		if entry, ok := readings[a.ID]; ok {
			summaries[i].ReadingInfo = newReadingInfo(&entry)
		}
	}

	c.JSON(http.StatusOK, newPaginatedResponse(summaries, total, limit, offset))
}

// GetArticle returns one article with its full content.
// GET /api/articles/:id
func (ac *ArticlesController) GetArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	article, err := ac.store.GetArticleByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "article")
			return
		}
		respondInternalError(c, err, "get article")
		return
	}

	detail := ArticleDetail{Article: article}
	userID := GetUserID(c)
	if ac.history != nil {
		entry, err := ac.history.GetEntry(id, userID)
		switch {
		case err == nil:
			detail.ReadingInfo = newReadingInfo(entry)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			respondInternalError(c, err, "get reading history")
			return
		}
	}
	if ac.favourites != nil {
		favourite, err := ac.favourites.GetFavouriteArticleIDs(userID, []uint{id})
		if err != nil {
			respondInternalError(c, err, "get favourite")
			return
		}
		detail.IsFavourite = favourite[id]
	}

	c.JSON(http.StatusOK, detail)
}

// CreateArticle stores a new article. Word and paragraph counts are derived
// from the content.
// POST /api/articles
func (ac *ArticlesController) CreateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		respondBadRequest(c, "title is required")
		return
	}
	if req.Content == nil {
		respondBadRequest(c, "content is required")
		return
	}

	article := &entities.Article{}
	if msg := applyArticleRequest(article, req); msg != "" {
		respondBadRequest(c, msg)
		return
	}
	if article.Kind == entities.ContentKindGrammar {
		article.Author = GetUserID(c)
	}

	if err := ac.store.CreateArticle(article); err != nil {
		respondInternalError(c, err, "create article")
		return
	}

	respondCreated(c, article)
}

// UpdateArticle changes an article. A content change re-derives its paragraphs.
// PUT /api/articles/:id
func (ac *ArticlesController) UpdateArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		respondBadRequest(c, "title must not be empty")
		return
	}

	article, err := ac.store.GetArticleByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "article")
			return
		}
		respondInternalError(c, err, "get article")
		return
	}

	if msg := applyArticleRequest(article, req); msg != "" {
		respondBadRequest(c, msg)
		return
	}

	if err := ac.store.UpdateArticle(article); err != nil {
		respondInternalError(c, err, "update article")
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle soft-deletes an article.
// DELETE /api/articles/:id
func (ac *ArticlesController) DeleteArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.store.DeleteArticle(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "article")
			return
		}
		respondInternalError(c, err, "delete article")
		return
	}

	respondSuccess(c, "article deleted")
}

// applyArticleRequest copies the present fields of req onto article and
// returns a validation message, or "" when the request is valid.
func applyArticleRequest(article *entities.Article, req ArticleRequest) string {
	if req.Difficulty != nil {
		difficulty, ok := entities.ParseDifficulty(*req.Difficulty)
		if !ok {
			return "difficulty must be beginner, intermediate or advanced"
		}
		article.Difficulty = difficulty
	}
	if req.Kind != nil {
		switch kind := entities.ContentKind(*req.Kind); kind {
		case entities.ContentKindArticle, entities.ContentKindGrammar:
			article.Kind = kind
		default:
			return "kind must be article or grammar"
		}
	}
	if req.Title != nil {
		article.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Source != nil {
		article.Source = *req.Source
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.IsRecommended != nil {
		article.IsRecommended = *req.IsRecommended
	}
	return ""
}

func newArticleSummary(a *entities.Article) ArticleSummary {
	return ArticleSummary{
		ID:             a.ID,
		Title:          a.Title,
		Source:         a.Source,
		Difficulty:     a.Difficulty,
		Category:       a.Category,
		Kind:           a.Kind,
		WordCount:      a.WordCount,
		ParagraphCount: a.ParagraphCount,
		IsRecommended:  a.IsRecommended,
		CreatedAt:      a.CreatedAt,
		ContentPreview: contentPreview(a.Content),
	}
}

func contentPreview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "..."
}

func newReadingInfo(entry *entities.ReadingHistory) *ReadingInfo {
	return &ReadingInfo{
		LastPage:     entry.LastPage,
		ReadDuration: entry.ReadDuration,
		ReadAt:       entry.ReadAt,
	}
}
