package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/paperread/internal/services"
	"github.com/mrlokans/paperread/internal/tasks"
)

// TaskEnqueuer hands work to the background task queue.
type TaskEnqueuer interface {
	Enqueue(tasks ...backlite.Task) ([]string, error)
}

// RebuildParagraphsRequest selects what to rebuild. Without an article ID
// every article (or every article missing a decomposition) is rebuilt.
type RebuildParagraphsRequest struct {
	ArticleID   uint `json:"article_id"`
	OnlyMissing bool `json:"only_missing"`
}

type AdminController struct {
	rebuilder ParagraphRebuilder
	queue     TaskEnqueuer
}

// NewAdminController creates the controller. queue may be nil, in which case
// rebuilds run within the request.
func NewAdminController(rebuilder ParagraphRebuilder, queue TaskEnqueuer) *AdminController {
	return &AdminController{rebuilder: rebuilder, queue: queue}
}

// RebuildParagraphs re-derives stored paragraph decompositions.
// POST /api/admin/paragraphs/rebuild
func (ac *AdminController) RebuildParagraphs(c *gin.Context) {
	var req RebuildParagraphsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
	}

	if ac.queue != nil {
		var task backlite.Task = tasks.RebuildAllParagraphsTask{OnlyMissing: req.OnlyMissing}
		if req.ArticleID != 0 {
			task = tasks.RebuildParagraphsTask{ArticleID: req.ArticleID}
		}
		ids, err := ac.queue.Enqueue(task)
		if err != nil {
			respondInternalError(c, err, "enqueue paragraph rebuild")
			return
		}
		respondAccepted(c, "paragraph rebuild queued", gin.H{"task_ids": ids})
		return
	}

	if req.ArticleID != 0 {
		count, err := ac.rebuilder.RebuildArticle(req.ArticleID)
		if err != nil {
			if errors.Is(err, services.ErrArticleNotFound) {
				respondNotFound(c, "article")
				return
			}
			respondInternalError(c, err, "rebuild paragraphs")
			return
		}
		c.JSON(http.StatusOK, SuccessResponse{
			Message: "paragraphs rebuilt",
			Data:    services.RebuildResult{Total: 1, Rebuilt: 1, Paragraphs: count},
		})
		return
	}

	result, err := ac.rebuilder.RebuildAll(c.Request.Context(), req.OnlyMissing, 0)
	if err != nil {
		respondInternalError(c, err, "rebuild paragraphs")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "paragraphs rebuilt", Data: result})
}
