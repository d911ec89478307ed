package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavouritesController struct {
	store    FavouritesStore
	articles ArticleStore
}

func NewFavouritesController(store FavouritesStore, articles ArticleStore) *FavouritesController {
	return &FavouritesController{store: store, articles: articles}
}

// AddFavourite marks an article as a favourite of the reader.
// POST /api/articles/:id/favourite
func (fc *FavouritesController) AddFavourite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := fc.articles.GetArticleByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "article")
			return
		}
		respondInternalError(c, err, "get article")
		return
	}

	if err := fc.store.AddFavourite(id, GetUserID(c)); err != nil {
		respondInternalError(c, err, "add favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "favourite added", "article_id": id, "is_favourite": true})
}

// RemoveFavourite removes an article from the reader's favourites.
// DELETE /api/articles/:id/favourite
func (fc *FavouritesController) RemoveFavourite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.store.RemoveFavourite(id, GetUserID(c)); err != nil {
		respondInternalError(c, err, "remove favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "favourite removed", "article_id": id, "is_favourite": false})
}

// ListFavourites returns the reader's favourite articles with pagination.
// GET /api/favourites
func (fc *FavouritesController) ListFavourites(c *gin.Context) {
	limit, offset := parseLimitOffset(c, 50, 100)

	favourites, total, err := fc.store.GetFavourites(GetUserID(c), limit, offset)
	if err != nil {
		respondInternalError(c, err, "list favourites")
		return
	}

	summaries := make([]ArticleSummary, 0, len(favourites))
	for _, f := range favourites {
		if f.Article.ID == 0 {
			// article was deleted after it was favourited
			continue
		}
		summary := newArticleSummary(&f.Article)
		summary.IsFavourite = true
		summaries = append(summaries, summary)
	}

	c.JSON(http.StatusOK, newPaginatedResponse(summaries, total, limit, offset))
}
